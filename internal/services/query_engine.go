package services

import (
	"context"
	"errors"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"gorm.io/gorm"
)

// SearchInput holds the parameters of a volunteer search
type SearchInput struct {
	// Offset is the page size; one extra row is fetched to detect a next page
	Offset      int
	CityIDs     []string
	ActivityIDs []string
	// StartCursor is the id of the last row of the previous page
	StartCursor string
}

// SearchPage is one page of verified volunteers
type SearchPage struct {
	Volunteers  []models.Volunteer
	HasNextPage bool
	EndCursor   *string
}

// QueryEngine pages through verified volunteers with keyset cursors
type QueryEngine struct {
	volunteers    repository.VolunteerRepository
	trimOverfetch bool
}

// NewQueryEngine creates a new QueryEngine. With trimOverfetch the probe row
// used to detect a next page is dropped from the page.
func NewQueryEngine(volunteers repository.VolunteerRepository, trimOverfetch bool) *QueryEngine {
	return &QueryEngine{
		volunteers:    volunteers,
		trimOverfetch: trimOverfetch,
	}
}

// Search returns up to Offset+1 verified volunteers after the cursor.
// Unfiltered searches list newest first; filtered searches list oldest first.
// A cursor that names no volunteer is ignored.
func (q *QueryEngine) Search(ctx context.Context, input SearchInput) (*SearchPage, error) {
	if input.Offset < 0 {
		return nil, ErrInvalidOffset
	}

	filter := repository.VolunteerFilter{
		Status: models.StatusVerified,
		Sort:   repository.SortDescending,
		Limit:  input.Offset + 1,
	}
	if len(input.CityIDs) > 0 || len(input.ActivityIDs) > 0 {
		filter.Sort = repository.SortAscending
		filter.CityIDs = input.CityIDs
		filter.ActivityIDs = input.ActivityIDs
	}

	if input.StartCursor != "" {
		after, err := q.volunteers.FindByID(ctx, input.StartCursor)
		switch {
		case err == nil:
			filter.After = after
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, err
		}
	}

	volunteers, err := q.volunteers.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &SearchPage{
		Volunteers:  volunteers,
		HasNextPage: len(volunteers) == filter.Limit,
	}
	if q.trimOverfetch && page.HasNextPage {
		page.Volunteers = volunteers[:len(volunteers)-1]
	}
	if n := len(page.Volunteers); n > 0 {
		endCursor := page.Volunteers[n-1].ID
		page.EndCursor = &endCursor
	}

	return page, nil
}

// Count counts every verified volunteer, ignoring filters
func (q *QueryEngine) Count(ctx context.Context) (int64, error) {
	return q.volunteers.Count(ctx, models.StatusVerified)
}
