package repository

import (
	"context"

	"github.com/yukikurage/volunteer-directory-api/internal/database"
	"gorm.io/gorm"
)

// GormEntryRepository is a GORM implementation of EntryRepository. T must
// embed models.Tombstone so tombstoned rows never come back.
type GormEntryRepository[T any] struct {
	db *gorm.DB
}

// NewEntryRepository creates a new EntryRepository for the table of T
func NewEntryRepository[T any](db *gorm.DB) EntryRepository[T] {
	return &GormEntryRepository[T]{db: db}
}

// ListByOwners lists live entries of the given volunteers, oldest first
func (r *GormEntryRepository[T]) ListByOwners(ctx context.Context, volunteerIDs []string) ([]T, error) {
	entries := []T{}
	if len(volunteerIDs) == 0 {
		return entries, nil
	}
	if err := r.db.WithContext(ctx).
		Scopes(database.OwnedBy(volunteerIDs)).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListHistory lists live and tombstoned entries of one volunteer, oldest first
func (r *GormEntryRepository[T]) ListHistory(ctx context.Context, volunteerID string) ([]T, error) {
	entries := []T{}
	if err := r.db.WithContext(ctx).
		Unscoped().
		Scopes(database.OwnedBy([]string{volunteerID})).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
