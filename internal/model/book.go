package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"not null"`
	Author        []string  `gorm:"serializer:json;type:text;not null"`
	Rating        float64   `gorm:"not null;check:chk_books_rating,rating >= 0 AND rating <= 10"`
	Genre         string    `gorm:"not null;index"`
	City          string    `gorm:"not null"`
	Country       string    `gorm:"not null"`
	YearPublished int       `gorm:"not null"`
	Languages     []string  `gorm:"serializer:json;type:text;not null"`
	BookPage      int       `gorm:"not null"`
	Description   string    `gorm:"not null"`
	BuyLink       string    `gorm:"not null"`
	PosterImages  []string  `gorm:"serializer:json;type:text;not null"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (b *Book) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}
