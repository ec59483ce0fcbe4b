package repository

import (
	"context"

	"gorm.io/gorm"
)

// GormLookupRepository is a GORM implementation of LookupRepository
type GormLookupRepository[T any] struct {
	db *gorm.DB
}

// NewLookupRepository creates a new LookupRepository for the table of T
func NewLookupRepository[T any](db *gorm.DB) LookupRepository[T] {
	return &GormLookupRepository[T]{db: db}
}

// ListAll returns every row ordered by title
func (r *GormLookupRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	items := []T{}
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByIDs returns the rows whose id is in ids
func (r *GormLookupRepository[T]) ListByIDs(ctx context.Context, ids []string) ([]T, error) {
	items := []T{}
	if len(ids) == 0 {
		return items, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("title ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByIDs counts how many of the given ids exist
func (r *GormLookupRepository[T]) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	if len(ids) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Model(new(T)).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// Insert creates a new row
func (r *GormLookupRepository[T]) Insert(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}
