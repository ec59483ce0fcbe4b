package database

import (
	"gorm.io/gorm"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
)

// WithStatus restricts a volunteer query to one verification status
func WithStatus(status models.VerificationStatus) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("volunteers.verification_status = ?", status)
	}
}

// OwnedBy restricts a sub-entity query to the given volunteers
func OwnedBy(volunteerIDs []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("volunteer_id IN ?", volunteerIDs)
	}
}
