package repository

import (
	"context"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"gorm.io/gorm"
)

// GormModeratorRepository is a GORM implementation of ModeratorRepository
type GormModeratorRepository struct {
	db *gorm.DB
}

// NewModeratorRepository creates a new ModeratorRepository
func NewModeratorRepository(db *gorm.DB) ModeratorRepository {
	return &GormModeratorRepository{db: db}
}

// Create creates a new moderator
func (r *GormModeratorRepository) Create(ctx context.Context, moderator *models.Moderator) error {
	return r.db.WithContext(ctx).Create(moderator).Error
}

// FindByID finds a moderator by ID
func (r *GormModeratorRepository) FindByID(ctx context.Context, id uint64) (*models.Moderator, error) {
	var moderator models.Moderator
	if err := r.db.WithContext(ctx).First(&moderator, id).Error; err != nil {
		return nil, err
	}
	return &moderator, nil
}

// FindByUsername finds a moderator by username
func (r *GormModeratorRepository) FindByUsername(ctx context.Context, username string) (*models.Moderator, error) {
	var moderator models.Moderator
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&moderator).Error; err != nil {
		return nil, err
	}
	return &moderator, nil
}
