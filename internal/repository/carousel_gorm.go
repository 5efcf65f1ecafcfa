package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"gorm.io/gorm"
)

type GormCarouselRepository struct {
	db *gorm.DB
}

func NewGormCarouselRepository(db *gorm.DB) *GormCarouselRepository {
	return &GormCarouselRepository{db: db}
}

func (r *GormCarouselRepository) List(ctx context.Context) ([]model.CarouselItem, error) {
	items := []model.CarouselItem{}
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormCarouselRepository) Create(ctx context.Context, item *model.CarouselItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormCarouselRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CarouselItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
