// Package catalog holds the book catalog services: the listing query path,
// record-level writes and the promotional carousel.
package catalog

import (
	"context"
	"log/slog"

	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/repository"
)

type Options struct {
	// FilteredTotals computes totalDocuments over the active filter instead
	// of the whole collection.
	FilteredTotals bool
}

type Service struct {
	books  repository.BookRepository
	logger *slog.Logger
	opts   Options
}

func NewService(books repository.BookRepository, logger *slog.Logger, opts Options) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{books: books, logger: logger, opts: opts}
}

// Page is one page of the book listing.
type Page struct {
	Books          []model.Book
	CurrentPage    int
	TotalPages     int
	TotalDocuments int64
}

type GenreCount struct {
	Genre string
	Count int64
}

// Result holds exactly one of Page or Genres.
type Result struct {
	Page   *Page
	Genres []GenreCount
}

// List answers a listing query. Store failures are logged and yield nil;
// callers render a nil result as an empty listing.
func (s *Service) List(ctx context.Context, q Query) *Result {
	if q.DistinctItem == DistinctGenre {
		genres, err := s.genreCounts(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "error fetching genre counts", "error", err)
			return nil
		}
		return &Result{Genres: genres}
	}

	page, err := s.page(ctx, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "error fetching books",
			"error", err,
			"search", q.Search,
			"page", q.Page,
		)
		return nil
	}
	return &Result{Page: page}
}

func (s *Service) page(ctx context.Context, q Query) (*Page, error) {
	filter := q.Filter()

	var (
		total int64
		err   error
	)
	if s.opts.FilteredTotals {
		total, err = s.books.Count(ctx, filter)
	} else {
		total, err = s.books.CountAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	books, err := s.books.Find(ctx, filter, q.Sort(), q.Skip(), PageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Books:          books,
		CurrentPage:    q.Page,
		TotalPages:     totalPages(total),
		TotalDocuments: total,
	}, nil
}

func (s *Service) genreCounts(ctx context.Context) ([]GenreCount, error) {
	rows, err := s.books.GroupCount(ctx, "genre")
	if err != nil {
		return nil, err
	}

	out := make([]GenreCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, GenreCount{Genre: r.Key, Count: r.Count})
	}
	return out, nil
}
