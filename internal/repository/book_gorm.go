package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"gorm.io/gorm"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Authors are stored as a JSON array, so they are matched one element at a
// time. Both sides of every comparison are folded by the database.
const (
	sqliteSearchClause = `(LOWER(title) LIKE LOWER(?) ESCAPE '\' OR ` +
		`EXISTS (SELECT 1 FROM json_each(books.author) WHERE LOWER(json_each.value) LIKE LOWER(?) ESCAPE '\') OR ` +
		`LOWER(description) LIKE LOWER(?) ESCAPE '\' OR LOWER(genre) LIKE LOWER(?) ESCAPE '\')`

	postgresSearchClause = `(title ILIKE ? ESCAPE '\' OR ` +
		`EXISTS (SELECT 1 FROM json_array_elements_text(` +
		`CASE WHEN json_typeof(books.author::json) = 'array' THEN books.author::json ELSE '[]'::json END) AS a(name) WHERE a.name ILIKE ? ESCAPE '\') OR ` +
		`description ILIKE ? ESCAPE '\' OR genre ILIKE ? ESCAPE '\')`
)

func (r *GormBookRepository) searchClause() string {
	if r.db.Dialector.Name() == "postgres" {
		return postgresSearchClause
	}
	return sqliteSearchClause
}

func (r *GormBookRepository) filtered(ctx context.Context, filter BookFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Book{})

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		q = q.Where(r.searchClause(), pattern, pattern, pattern, pattern)
	}

	if filter.Genre != "" {
		q = q.Where("genre = ?", filter.Genre)
	}

	return q
}

func (r *GormBookRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Book{}).Count(&total).Error
	return total, err
}

func (r *GormBookRepository) Count(ctx context.Context, filter BookFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filter).Count(&total).Error
	return total, err
}

func (r *GormBookRepository) Find(ctx context.Context, filter BookFilter, sort BookSort, skip, limit int) ([]model.Book, error) {
	q := r.filtered(ctx, filter)

	switch sort {
	case SortRatingDesc:
		q = q.Order("rating DESC")
	case SortYearDesc:
		q = q.Order("year_published DESC")
	}
	q = q.Order("created_at ASC")

	if skip < 0 {
		skip = 0
	}

	books := make([]model.Book, 0, limit)
	if err := q.Offset(skip).Limit(limit).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *GormBookRepository) GroupCount(ctx context.Context, field string) ([]GroupCount, error) {
	column, ok := groupableFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}

	var rows []GroupCount
	err := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Order("total DESC").
		Order("group_key ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *GormBookRepository) CreateBatch(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&books, 100).Error
}

func (r *GormBookRepository) Update(ctx context.Context, book *model.Book) error {
	book.UpdatedAt = time.Now()

	result := r.db.WithContext(ctx).
		Model(&model.Book{ID: book.ID}).
		Select(
			"title", "author", "rating", "genre", "city", "country",
			"year_published", "languages", "book_page", "description",
			"buy_link", "poster_images", "updated_at",
		).
		Updates(book)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	book, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return book, nil
}

func (r *GormBookRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Delete(&model.Book{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}

func (r *GormBookRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Book{})
	return result.RowsAffected, result.Error
}
