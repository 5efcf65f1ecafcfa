package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Book{}, &model.CarouselItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NewBook returns a valid book with the given distinguishing fields; the rest
// are filled with fixed placeholder values.
func NewBook(title, genre string, rating float64, year int) model.Book {
	return model.Book{
		Title:         title,
		Author:        []string{"Author of " + title},
		Rating:        rating,
		Genre:         genre,
		City:          "Manila",
		Country:       "Philippines",
		YearPublished: year,
		Languages:     []string{"English"},
		BookPage:      200,
		Description:   "About " + title,
		BuyLink:       "https://example.com/" + title,
		PosterImages:  []string{"https://img.example.com/" + title + ".jpg"},
	}
}

// SeedBooks inserts books in order. Books without CreatedAt get strictly
// increasing timestamps so insertion order is the natural order.
func SeedBooks(t *testing.T, db *gorm.DB, books ...model.Book) []model.Book {
	t.Helper()

	base := time.Now().Add(-time.Hour)
	out := make([]model.Book, 0, len(books))

	for i, b := range books {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = base.Add(time.Duration(i) * time.Second)
			b.UpdatedAt = b.CreatedAt
		}

		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed book %q: %v", b.Title, err)
		}
		out = append(out, b)
	}

	return out
}

// SeedNumbered inserts n Fiction books titled "Book 01".."Book n".
func SeedNumbered(t *testing.T, db *gorm.DB, n int) []model.Book {
	t.Helper()

	books := make([]model.Book, 0, n)
	for i := 1; i <= n; i++ {
		books = append(books, NewBook(fmt.Sprintf("Book %02d", i), "Fiction", 5, 2000+i))
	}
	return SeedBooks(t, db, books...)
}

func SeedCarouselItem(t *testing.T, db *gorm.DB, title string) model.CarouselItem {
	t.Helper()

	item := model.CarouselItem{
		Title:        title,
		Description:  "Featured: " + title,
		PosterImages: []string{"https://img.example.com/" + title + ".jpg"},
	}

	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed carousel item %q: %v", title, err)
	}

	return item
}
