package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/catalog"
)

// BookRequest is the upload and edit payload. Author, languages and poster
// images are comma-delimited lists.
type BookRequest struct {
	Title         string  `form:"title" json:"title" binding:"required"`
	Author        string  `form:"author" json:"author" binding:"required" example:"Jose Rizal, Andres Bonifacio"`
	Rating        float64 `form:"rating" json:"rating" binding:"gte=0,lte=10"`
	Genre         string  `form:"genre" json:"genre" binding:"required,genre" example:"Fiction"`
	City          string  `form:"city" json:"city" binding:"required"`
	Country       string  `form:"country" json:"country" binding:"required"`
	YearPublished int     `form:"yearPublished" json:"yearPublished"`
	Languages     string  `form:"languages" json:"languages" binding:"required" example:"English, Filipino"`
	BookPage      int     `form:"bookPage" json:"bookPage" binding:"gte=0"`
	Description   string  `form:"description" json:"description" binding:"required"`
	BuyLink       string  `form:"buyLink" json:"buyLink" binding:"required"`
	PosterImages  string  `form:"posterImages" json:"posterImages" binding:"required"`
}

func (r BookRequest) toInput() catalog.BookInput {
	return catalog.BookInput{
		Title:         r.Title,
		Author:        r.Author,
		Rating:        r.Rating,
		Genre:         r.Genre,
		City:          r.City,
		Country:       r.Country,
		YearPublished: r.YearPublished,
		Languages:     r.Languages,
		BookPage:      r.BookPage,
		Description:   r.Description,
		BuyLink:       r.BuyLink,
		PosterImages:  r.PosterImages,
	}
}

type DeleteSelectedRequest struct {
	IDs []string `json:"ids"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BulkErrorResponse struct {
	Error string `json:"error"`
}

type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Author        []string  `json:"author"`
	Rating        float64   `json:"rating"`
	Genre         string    `json:"genre"`
	City          string    `json:"city"`
	Country       string    `json:"country"`
	YearPublished int       `json:"yearPublished"`
	Languages     []string  `json:"languages"`
	BookPage      int       `json:"bookPage"`
	Description   string    `json:"description"`
	BuyLink       string    `json:"buyLink"`
	PosterImages  []string  `json:"posterImages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookResponse struct {
	Data Book `json:"data"`
}

type Pagination struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalDocuments int64 `json:"totalDocuments"`
}

// ListBooksResponse carries no pagination when the listing could not be read.
type ListBooksResponse struct {
	Data       []Book      `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type GenreCount struct {
	Genre string `json:"genre"`
	Count int64  `json:"count"`
}

type GenresResponse struct {
	Data []GenreCount `json:"data"`
}

type BookViewResponse struct {
	Data    Book              `json:"data"`
	Listing ListBooksResponse `json:"listing"`
}
