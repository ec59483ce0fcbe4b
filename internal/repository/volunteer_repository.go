package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/volunteer-directory-api/internal/database"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/relsync"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCreateVolunteer is returned when inserting the volunteer row fails inside the profile transaction.
	ErrCreateVolunteer = errors.New("volunteer repository: create volunteer failed")
	// ErrDuplicateAuthID is returned when another profile already holds the auth id.
	ErrDuplicateAuthID = errors.New("volunteer repository: auth id already taken")
	// ErrSyncMemberships is returned when inserting or deleting city/activity rows fails.
	ErrSyncMemberships = errors.New("volunteer repository: sync memberships failed")
	// ErrSyncEntries is returned when creating or tombstoning social/contact/payment rows fails.
	ErrSyncEntries = errors.New("volunteer repository: sync entries failed")
	// ErrEntryNotFound is returned when a tombstone targets a row the volunteer does not own.
	ErrEntryNotFound = errors.New("volunteer repository: entry not found")
)

// profileColumns are the columns an update plan overwrites on the volunteer row
var profileColumns = []string{
	"first_name",
	"last_name",
	"description",
	"avatar_url",
	"organization",
	"city_ids",
	"activity_ids",
	"updated_at",
}

// GormVolunteerRepository is a GORM implementation of VolunteerRepository
type GormVolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new VolunteerRepository
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &GormVolunteerRepository{db: db}
}

// Find runs a filtered, cursor-paginated scan
func (r *GormVolunteerRepository) Find(ctx context.Context, filter VolunteerFilter) ([]models.Volunteer, error) {
	volunteers := []models.Volunteer{}

	query := r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Scopes(database.WithStatus(filter.Status))

	if len(filter.CityIDs) > 0 {
		citySubQuery := r.db.Model(&models.VolunteerCity{}).
			Select("1").
			Where("volunteer_cities.volunteer_id = volunteers.id").
			Where("volunteer_cities.city_id IN ?", filter.CityIDs)
		query = query.Where("EXISTS (?)", citySubQuery)
	}
	if len(filter.ActivityIDs) > 0 {
		activitySubQuery := r.db.Model(&models.VolunteerActivity{}).
			Select("1").
			Where("volunteer_activities.volunteer_id = volunteers.id").
			Where("volunteer_activities.activity_id IN ?", filter.ActivityIDs)
		query = query.Where("EXISTS (?)", activitySubQuery)
	}

	op, dir := ">", "ASC"
	if filter.Sort == SortDescending {
		op, dir = "<", "DESC"
	}

	// Keyset continuation on (created_at, id); id breaks created_at ties
	if filter.After != nil {
		query = query.Where(
			fmt.Sprintf("(volunteers.created_at %s ? OR (volunteers.created_at = ? AND volunteers.id %s ?))", op, op),
			filter.After.CreatedAt, filter.After.CreatedAt, filter.After.ID,
		)
	}

	query = query.Order(fmt.Sprintf("volunteers.created_at %s, volunteers.id %s", dir, dir))

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&volunteers).Error; err != nil {
		return nil, err
	}

	return volunteers, nil
}

// Count counts volunteers in the given status
func (r *GormVolunteerRepository) Count(ctx context.Context, status models.VerificationStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Scopes(database.WithStatus(status)).
		Count(&count).Error
	return count, err
}

// ListByStatus lists every volunteer in the given status, oldest first
func (r *GormVolunteerRepository) ListByStatus(ctx context.Context, status models.VerificationStatus) ([]models.Volunteer, error) {
	volunteers := []models.Volunteer{}
	if err := r.db.WithContext(ctx).
		Scopes(database.WithStatus(status)).
		Order("volunteers.created_at ASC, volunteers.id ASC").
		Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

// FindByID finds a volunteer by ID
func (r *GormVolunteerRepository) FindByID(ctx context.Context, id string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&volunteer).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// FindByAuthID finds a volunteer by external identity
func (r *GormVolunteerRepository) FindByAuthID(ctx context.Context, authID string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := r.db.WithContext(ctx).Where("auth_id = ?", authID).First(&volunteer).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// FindByIDs finds every volunteer whose id is in ids
func (r *GormVolunteerRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Volunteer, error) {
	volunteers := []models.Volunteer{}
	if len(ids) == 0 {
		return volunteers, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

// CreateProfile inserts a volunteer and all its relations in a transaction
func (r *GormVolunteerRepository) CreateProfile(ctx context.Context, plan relsync.CreatePlan) (*models.Volunteer, error) {
	volunteer := plan.Volunteer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&volunteer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %v", ErrDuplicateAuthID, err)
			}
			return fmt.Errorf("%w: %v", ErrCreateVolunteer, err)
		}

		if err := createRows(tx, plan.Cities); err != nil {
			return fmt.Errorf("%w: %v", ErrSyncMemberships, err)
		}
		if err := createRows(tx, plan.Activities); err != nil {
			return fmt.Errorf("%w: %v", ErrSyncMemberships, err)
		}

		if err := createRows(tx, plan.Social); err != nil {
			return fmt.Errorf("%w: %v", ErrSyncEntries, err)
		}
		if err := createRows(tx, plan.Contacts); err != nil {
			return fmt.Errorf("%w: %v", ErrSyncEntries, err)
		}
		if err := createRows(tx, plan.PaymentOptions); err != nil {
			return fmt.Errorf("%w: %v", ErrSyncEntries, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &volunteer, nil
}

// UpdateProfile locks the volunteer, plans against it and applies the plan in
// a single transaction. The lock is a no-op on SQLite.
func (r *GormVolunteerRepository) UpdateProfile(ctx context.Context, id string, planner ProfilePlanner) (*models.Volunteer, error) {
	var updated models.Volunteer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Volunteer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&current).Error; err != nil {
			return err
		}

		plan, err := planner(current)
		if err != nil {
			return err
		}

		if err := applyMemberships(tx, id, plan); err != nil {
			return fmt.Errorf("%w: %v", ErrSyncMemberships, err)
		}

		if err := tx.Model(&plan.Volunteer).Select(profileColumns).Updates(&plan.Volunteer).Error; err != nil {
			return err
		}

		if err := applyEntries(tx, id, plan); err != nil {
			return err
		}

		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// SetStatus changes the verification status of a volunteer
func (r *GormVolunteerRepository) SetStatus(ctx context.Context, id string, status models.VerificationStatus) (*models.Volunteer, error) {
	var updated models.Volunteer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Volunteer
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&current).Error; err != nil {
			return err
		}

		if err := tx.Model(&current).Update("verification_status", status).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).First(&updated).Error
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func applyMemberships(tx *gorm.DB, volunteerID string, plan relsync.UpdatePlan) error {
	if len(plan.Cities.ToDelete) > 0 {
		if err := tx.Where("volunteer_id = ? AND city_id IN ?", volunteerID, plan.Cities.ToDelete).
			Delete(&models.VolunteerCity{}).Error; err != nil {
			return err
		}
	}
	if len(plan.Activities.ToDelete) > 0 {
		if err := tx.Where("volunteer_id = ? AND activity_id IN ?", volunteerID, plan.Activities.ToDelete).
			Delete(&models.VolunteerActivity{}).Error; err != nil {
			return err
		}
	}

	cities := make([]models.VolunteerCity, 0, len(plan.Cities.ToCreate))
	for _, cityID := range plan.Cities.ToCreate {
		cities = append(cities, models.VolunteerCity{VolunteerID: volunteerID, CityID: cityID})
	}
	if err := createRows(tx, cities); err != nil {
		return err
	}

	activities := make([]models.VolunteerActivity, 0, len(plan.Activities.ToCreate))
	for _, activityID := range plan.Activities.ToCreate {
		activities = append(activities, models.VolunteerActivity{VolunteerID: volunteerID, ActivityID: activityID})
	}
	return createRows(tx, activities)
}

func applyEntries(tx *gorm.DB, volunteerID string, plan relsync.UpdatePlan) error {
	if err := createRows(tx, plan.CreateSocial); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncEntries, err)
	}
	if err := createRows(tx, plan.CreateContacts); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncEntries, err)
	}
	if err := createRows(tx, plan.CreatePaymentOptions); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncEntries, err)
	}

	if err := tombstone(tx, &models.VolunteerSocial{}, volunteerID, plan.DeleteSocial); err != nil {
		return err
	}
	if err := tombstone(tx, &models.VolunteerContact{}, volunteerID, plan.DeleteContacts); err != nil {
		return err
	}
	return tombstone(tx, &models.VolunteerPaymentOption{}, volunteerID, plan.DeletePaymentOptions)
}

// tombstone sets deleted_at on live rows of model owned by volunteerID. Every
// id must match one such row.
func tombstone(tx *gorm.DB, model any, volunteerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	result := tx.Where("volunteer_id = ? AND id IN ?", volunteerID, ids).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrSyncEntries, result.Error)
	}
	if result.RowsAffected != int64(len(ids)) {
		return fmt.Errorf("%w: %d of %d ids matched", ErrEntryNotFound, result.RowsAffected, len(ids))
	}
	return nil
}

func createRows[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
