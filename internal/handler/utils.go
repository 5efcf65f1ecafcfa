package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/apperr"
	"github.com/snnyvrz/bookify/internal/auth"
	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/model"
)

// abortWithError hands err to ErrorHandler for rendering.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// adminName is the username of the logged-in admin, or "" outside the
// dashboard group.
func adminName(c *gin.Context) string {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		return ""
	}
	return id.Username
}

func parseIDParam(c *gin.Context, code, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortWithError(c, apperr.BadRequest(code, message))
		return uuid.Nil, false
	}
	return id, true
}

func toBook(b model.Book) Book {
	return Book{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Rating:        b.Rating,
		Genre:         b.Genre,
		City:          b.City,
		Country:       b.Country,
		YearPublished: b.YearPublished,
		Languages:     b.Languages,
		BookPage:      b.BookPage,
		Description:   b.Description,
		BuyLink:       b.BuyLink,
		PosterImages:  b.PosterImages,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func toBookResponse(b model.Book) BookResponse {
	return BookResponse{Data: toBook(b)}
}

func toListBooksResponse(p *catalog.Page) ListBooksResponse {
	if p == nil {
		return ListBooksResponse{Data: []Book{}}
	}

	data := make([]Book, 0, len(p.Books))
	for _, b := range p.Books {
		data = append(data, toBook(b))
	}

	return ListBooksResponse{
		Data: data,
		Pagination: &Pagination{
			CurrentPage:    p.CurrentPage,
			TotalPages:     p.TotalPages,
			TotalDocuments: p.TotalDocuments,
		},
	}
}

func toGenresResponse(genres []catalog.GenreCount) GenresResponse {
	data := make([]GenreCount, 0, len(genres))
	for _, g := range genres {
		data = append(data, GenreCount{Genre: g.Genre, Count: g.Count})
	}
	return GenresResponse{Data: data}
}
