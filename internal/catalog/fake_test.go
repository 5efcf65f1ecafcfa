package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/repository"
)

type fakeBookRepo struct {
	CountAllFn    func(ctx context.Context) (int64, error)
	CountFn       func(ctx context.Context, filter repository.BookFilter) (int64, error)
	FindFn        func(ctx context.Context, filter repository.BookFilter, sort repository.BookSort, skip, limit int) ([]model.Book, error)
	GroupCountFn  func(ctx context.Context, field string) ([]repository.GroupCount, error)
	FindByIDFn    func(ctx context.Context, id uuid.UUID) (*model.Book, error)
	CreateFn      func(ctx context.Context, b *model.Book) error
	CreateBatchFn func(ctx context.Context, books []model.Book) error
	UpdateFn      func(ctx context.Context, b *model.Book) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) (*model.Book, error)
	DeleteManyFn  func(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteAllFn   func(ctx context.Context) (int64, error)
}

func (f *fakeBookRepo) CountAll(ctx context.Context) (int64, error) {
	if f.CountAllFn != nil {
		return f.CountAllFn(ctx)
	}
	return 0, nil
}

func (f *fakeBookRepo) Count(ctx context.Context, filter repository.BookFilter) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx, filter)
	}
	return 0, nil
}

func (f *fakeBookRepo) Find(ctx context.Context, filter repository.BookFilter, sort repository.BookSort, skip, limit int) ([]model.Book, error) {
	if f.FindFn != nil {
		return f.FindFn(ctx, filter, sort, skip, limit)
	}
	return []model.Book{}, nil
}

func (f *fakeBookRepo) GroupCount(ctx context.Context, field string) ([]repository.GroupCount, error) {
	if f.GroupCountFn != nil {
		return f.GroupCountFn(ctx, field)
	}
	return nil, nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) Create(ctx context.Context, b *model.Book) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) CreateBatch(ctx context.Context, books []model.Book) error {
	if f.CreateBatchFn != nil {
		return f.CreateBatchFn(ctx, books)
	}
	return nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *model.Book) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, b)
	}
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeBookRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if f.DeleteManyFn != nil {
		return f.DeleteManyFn(ctx, ids)
	}
	return int64(len(ids)), nil
}

func (f *fakeBookRepo) DeleteAll(ctx context.Context) (int64, error) {
	if f.DeleteAllFn != nil {
		return f.DeleteAllFn(ctx)
	}
	return 0, nil
}
