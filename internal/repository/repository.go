package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snnyvrz/bookify/internal/model"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrUnsupportedField = errors.New("field cannot be grouped")
)

// BookFilter narrows a book query. Zero values mean "no constraint".
type BookFilter struct {
	// Search is matched case-insensitively as a substring of title, author,
	// description or genre.
	Search string
	Genre  string
}

type BookSort int

const (
	SortNatural BookSort = iota
	SortRatingDesc
	SortYearDesc
)

// GroupCount is one row of a group-and-count aggregation.
type GroupCount struct {
	Key   string `gorm:"column:group_key"`
	Count int64  `gorm:"column:total"`
}

// groupableFields maps the accepted GroupCount field names to their stored
// column (and document) names.
var groupableFields = map[string]string{
	"genre":   "genre",
	"country": "country",
	"city":    "city",
}

type BookRepository interface {
	CountAll(ctx context.Context) (int64, error)
	Count(ctx context.Context, filter BookFilter) (int64, error)
	Find(ctx context.Context, filter BookFilter, sort BookSort, skip, limit int) ([]model.Book, error)
	GroupCount(ctx context.Context, field string) ([]GroupCount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	CreateBatch(ctx context.Context, books []model.Book) error
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) (*model.Book, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type CarouselRepository interface {
	List(ctx context.Context) ([]model.CarouselItem, error)
	Create(ctx context.Context, item *model.CarouselItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IsCheckViolation reports whether err is a PostgreSQL check constraint
// violation (SQLSTATE 23514).
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
