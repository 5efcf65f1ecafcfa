package catalog

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/apperr"
	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/repository"
)

type CarouselInput struct {
	Title        string
	Description  string
	PosterImages string
}

type CarouselService struct {
	items  repository.CarouselRepository
	logger *slog.Logger
}

func NewCarouselService(items repository.CarouselRepository, logger *slog.Logger) *CarouselService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CarouselService{items: items, logger: logger}
}

// List returns every carousel item, or nil after logging when the store
// cannot be read.
func (s *CarouselService) List(ctx context.Context) []model.CarouselItem {
	items, err := s.items.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "error fetching carousel", "error", err)
		return nil
	}
	return items
}

func (s *CarouselService) Create(ctx context.Context, in CarouselInput) (*model.CarouselItem, error) {
	item := model.CarouselItem{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		PosterImages: SplitDelimited(in.PosterImages),
	}

	if item.Title == "" || item.Description == "" || len(item.PosterImages) == 0 {
		return nil, apperr.BadRequest("INVALID_CAROUSEL_ITEM",
			"title, description and at least one poster image are required")
	}

	if err := s.items.Create(ctx, &item); err != nil {
		return nil, apperr.Internal(err, "CAROUSEL_CREATE_FAILED", "failed to create carousel item")
	}
	return &item, nil
}

func (s *CarouselService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("CAROUSEL_ITEM_NOT_FOUND", "carousel item not found")
		}
		return apperr.Internal(err, "CAROUSEL_DELETE_FAILED", "failed to delete carousel item")
	}
	return nil
}
