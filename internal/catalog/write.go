package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/apperr"
	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/repository"
)

// BookInput is a book as submitted by the upload and edit forms, with the
// multi-valued fields still comma-delimited.
type BookInput struct {
	Title         string
	Author        string
	Rating        float64
	Genre         string
	City          string
	Country       string
	YearPublished int
	Languages     string
	BookPage      int
	Description   string
	BuyLink       string
	PosterImages  string
}

func (in BookInput) normalize() model.Book {
	return model.Book{
		Title:         strings.TrimSpace(in.Title),
		Author:        SplitDelimited(in.Author),
		Rating:        in.Rating,
		Genre:         in.Genre,
		City:          strings.TrimSpace(in.City),
		Country:       strings.TrimSpace(in.Country),
		YearPublished: in.YearPublished,
		Languages:     SplitDelimited(in.Languages),
		BookPage:      in.BookPage,
		Description:   strings.TrimSpace(in.Description),
		BuyLink:       strings.TrimSpace(in.BuyLink),
		PosterImages:  SplitDelimited(in.PosterImages),
	}
}

// ValidateBook checks the record invariants that must hold before a book is
// persisted.
func ValidateBook(b model.Book) error {
	var problems []string

	required := []struct {
		name  string
		value string
	}{
		{"title", b.Title},
		{"city", b.City},
		{"country", b.Country},
		{"description", b.Description},
		{"buyLink", b.BuyLink},
	}
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, r.name+" is required")
		}
	}

	if len(b.Author) == 0 {
		problems = append(problems, "author must contain at least one name")
	}
	if len(b.Languages) == 0 {
		problems = append(problems, "languages must contain at least one value")
	}
	if len(b.PosterImages) == 0 {
		problems = append(problems, "posterImages must contain at least one URL")
	}
	if b.Rating < 0 || b.Rating > 10 {
		problems = append(problems, "rating must be between 0 and 10")
	}
	if !model.IsValidGenre(b.Genre) {
		problems = append(problems, fmt.Sprintf("genre %q is not allowed", b.Genre))
	}

	if len(problems) > 0 {
		return apperr.BadRequest("INVALID_BOOK", strings.Join(problems, "; "))
	}
	return nil
}

func storeWriteError(err error, code, message string) error {
	if repository.IsCheckViolation(err) {
		return apperr.Wrap(err, http.StatusBadRequest, "INVALID_BOOK", "book violates a store constraint")
	}
	return apperr.Internal(err, code, message)
}

func (s *Service) Create(ctx context.Context, in BookInput) (*model.Book, error) {
	book := in.normalize()
	if err := ValidateBook(book); err != nil {
		return nil, err
	}

	if err := s.books.Create(ctx, &book); err != nil {
		return nil, storeWriteError(err, "BOOK_CREATE_FAILED", "failed to create book")
	}

	s.logger.InfoContext(ctx, "book created", "book_id", book.ID, "title", book.Title)
	return &book, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("BOOK_NOT_FOUND", "book not found")
		}
		return nil, apperr.Internal(err, "BOOK_FETCH_FAILED", "failed to fetch book")
	}
	return book, nil
}

// Update replaces every field of the book identified by id with in,
// re-applying the delimited-field normalization.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in BookInput) (*model.Book, error) {
	book := in.normalize()
	if err := ValidateBook(book); err != nil {
		return nil, err
	}
	book.ID = id

	if err := s.books.Update(ctx, &book); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("BOOK_NOT_FOUND", "book not found")
		}
		return nil, storeWriteError(err, "BOOK_UPDATE_FAILED", "failed to update book")
	}

	updated, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "BOOK_FETCH_FAILED", "failed to fetch updated book")
	}

	s.logger.InfoContext(ctx, "book updated", "book_id", id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := s.books.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("BOOK_NOT_FOUND", "book not found")
		}
		return nil, apperr.Internal(err, "BOOK_DELETE_FAILED", "failed to delete book")
	}

	s.logger.InfoContext(ctx, "book deleted", "book_id", id)
	return book, nil
}

// DeleteMany removes every book whose id is in ids and reports how many were
// removed. An empty id set is rejected before the store is touched.
func (s *Service) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperr.BadRequest("NO_IDS", "no ids provided")
	}

	n, err := s.books.DeleteMany(ctx, ids)
	if err != nil {
		return 0, apperr.Internal(err, "BOOK_BULK_DELETE_FAILED", "failed to delete books")
	}

	s.logger.InfoContext(ctx, "books deleted", "requested", len(ids), "deleted", n)
	return n, nil
}

// Replace empties the book collection and inserts books. Every book is
// validated first; nothing is deleted if any of them is invalid.
func (s *Service) Replace(ctx context.Context, books []model.Book) (int, error) {
	for i, b := range books {
		if err := ValidateBook(b); err != nil {
			return 0, fmt.Errorf("book %d (%q): %w", i, b.Title, err)
		}
	}

	removed, err := s.books.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear books: %w", err)
	}

	if err := s.books.CreateBatch(ctx, books); err != nil {
		return 0, fmt.Errorf("insert books: %w", err)
	}

	s.logger.InfoContext(ctx, "book collection replaced", "removed", removed, "inserted", len(books))
	return len(books), nil
}
