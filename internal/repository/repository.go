package repository

import (
	"context"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/relsync"
)

// LookupRepository defines data access for a flat id/title lookup table
type LookupRepository[T any] interface {
	// ListAll returns every row ordered by title
	ListAll(ctx context.Context) ([]T, error)

	// ListByIDs returns the rows whose id is in ids
	ListByIDs(ctx context.Context, ids []string) ([]T, error)

	// CountByIDs counts how many of the given ids exist
	CountByIDs(ctx context.Context, ids []string) (int64, error)

	// Insert creates a new row
	Insert(ctx context.Context, item *T) error
}

// SortDirection orders volunteers by creation time
type SortDirection int

const (
	SortAscending SortDirection = iota
	SortDescending
)

// VolunteerFilter holds the supported search predicates
type VolunteerFilter struct {
	Status models.VerificationStatus
	// CityIDs, when non-empty, requires membership in at least one of them
	CityIDs []string
	// ActivityIDs, when non-empty, requires membership in at least one of them
	ActivityIDs []string
	Sort        SortDirection
	// After is the exclusive cursor row; nil starts from the beginning
	After *models.Volunteer
	Limit int
}

// ProfilePlanner computes an update plan from the locked current row
type ProfilePlanner func(current models.Volunteer) (relsync.UpdatePlan, error)

// VolunteerRepository defines the interface for volunteer data access
type VolunteerRepository interface {
	// Find runs a filtered, cursor-paginated scan
	Find(ctx context.Context, filter VolunteerFilter) ([]models.Volunteer, error)

	// Count counts volunteers in the given status
	Count(ctx context.Context, status models.VerificationStatus) (int64, error)

	// ListByStatus lists every volunteer in the given status, oldest first
	ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.Volunteer, error)

	// FindByID finds a volunteer by ID
	FindByID(ctx context.Context, id string) (*models.Volunteer, error)

	// FindByAuthID finds a volunteer by external identity
	FindByAuthID(ctx context.Context, authID string) (*models.Volunteer, error)

	// FindByIDs finds every volunteer whose id is in ids
	FindByIDs(ctx context.Context, ids []string) ([]models.Volunteer, error)

	// CreateProfile inserts a volunteer and all its relations in a transaction
	CreateProfile(ctx context.Context, plan relsync.CreatePlan) (*models.Volunteer, error)

	// UpdateProfile locks the volunteer, plans against it and applies the plan
	// in a single transaction
	UpdateProfile(ctx context.Context, id string, planner ProfilePlanner) (*models.Volunteer, error)

	// SetStatus changes the verification status of a volunteer
	SetStatus(ctx context.Context, id string, status models.VerificationStatus) (*models.Volunteer, error)
}

// EntryRepository reads one kind of tombstoned volunteer sub-entity
type EntryRepository[T any] interface {
	// ListByOwners lists live entries of the given volunteers
	ListByOwners(ctx context.Context, volunteerIDs []string) ([]T, error)

	// ListHistory lists every entry of one volunteer, tombstoned ones included
	ListHistory(ctx context.Context, volunteerID string) ([]T, error)
}

// ModeratorRepository defines the interface for moderator data access
type ModeratorRepository interface {
	// Create creates a new moderator
	Create(ctx context.Context, moderator *models.Moderator) error

	// FindByID finds a moderator by ID
	FindByID(ctx context.Context, id uint64) (*models.Moderator, error)

	// FindByUsername finds a moderator by username
	FindByUsername(ctx context.Context, username string) (*models.Moderator, error)
}
