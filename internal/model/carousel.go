package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarouselItem is a promotional slide shown above the public catalog.
type CarouselItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"not null"`
	Description  string    `gorm:"not null"`
	PosterImages []string  `gorm:"serializer:json;type:text;not null"`
	CreatedAt    time.Time `gorm:"index"`
}

func (CarouselItem) TableName() string {
	return "carousels"
}

func (c *CarouselItem) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
