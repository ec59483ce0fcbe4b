package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/relsync"
	"github.com/yukikurage/volunteer-directory-api/internal/testutil"
	"gorm.io/gorm"
)

// VolunteerRepositoryTestSuite exercises the GORM volunteer repository on SQLite
type VolunteerRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo VolunteerRepository
	ctx  context.Context
}

func (suite *VolunteerRepositoryTestSuite) SetupTest() {
	suite.db = testutil.NewTestDB(suite.T())
	suite.repo = NewVolunteerRepository(suite.db)
	suite.ctx = context.Background()
}

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func (suite *VolunteerRepositoryTestSuite) createVolunteer(authID string, status models.VerificationStatus, minute int, cityIDs ...string) *models.Volunteer {
	volunteer := &models.Volunteer{
		AuthID:             authID,
		FirstName:          authID,
		LastName:           "Test",
		VerificationStatus: status,
		CityIDs:            cityIDs,
		CreatedAt:          baseTime.Add(time.Duration(minute) * time.Minute),
	}
	suite.Require().NoError(suite.db.Create(volunteer).Error)
	for _, cityID := range cityIDs {
		suite.Require().NoError(suite.db.Create(&models.VolunteerCity{VolunteerID: volunteer.ID, CityID: cityID}).Error)
	}
	return volunteer
}

func ids(volunteers []models.Volunteer) []string {
	out := make([]string, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, v.AuthID)
	}
	return out
}

func (suite *VolunteerRepositoryTestSuite) TestFind_OrdersAndFiltersByStatus() {
	suite.createVolunteer("a", models.StatusVerified, 1)
	suite.createVolunteer("b", models.StatusVerified, 2)
	suite.createVolunteer("c", models.StatusRequested, 3)
	suite.createVolunteer("d", models.StatusVerified, 4)

	desc, err := suite.repo.Find(suite.ctx, VolunteerFilter{Status: models.StatusVerified, Sort: SortDescending})
	suite.Require().NoError(err)
	suite.Equal([]string{"d", "b", "a"}, ids(desc))

	asc, err := suite.repo.Find(suite.ctx, VolunteerFilter{Status: models.StatusVerified, Sort: SortAscending, Limit: 2})
	suite.Require().NoError(err)
	suite.Equal([]string{"a", "b"}, ids(asc))
}

func (suite *VolunteerRepositoryTestSuite) TestFind_CursorIsExclusive() {
	suite.createVolunteer("a", models.StatusVerified, 1)
	b := suite.createVolunteer("b", models.StatusVerified, 2)
	suite.createVolunteer("c", models.StatusVerified, 3)

	asc, err := suite.repo.Find(suite.ctx, VolunteerFilter{Status: models.StatusVerified, Sort: SortAscending, After: b})
	suite.Require().NoError(err)
	suite.Equal([]string{"c"}, ids(asc))

	desc, err := suite.repo.Find(suite.ctx, VolunteerFilter{Status: models.StatusVerified, Sort: SortDescending, After: b})
	suite.Require().NoError(err)
	suite.Equal([]string{"a"}, ids(desc))
}

func (suite *VolunteerRepositoryTestSuite) TestFind_MembershipFilter() {
	suite.createVolunteer("kyiv", models.StatusVerified, 1, "city-kyiv")
	suite.createVolunteer("lviv", models.StatusVerified, 2, "city-lviv")
	suite.createVolunteer("both", models.StatusVerified, 3, "city-kyiv", "city-lviv")
	suite.createVolunteer("hidden", models.StatusHidden, 4, "city-kyiv")

	found, err := suite.repo.Find(suite.ctx, VolunteerFilter{
		Status:  models.StatusVerified,
		CityIDs: []string{"city-kyiv"},
		Sort:    SortAscending,
	})
	suite.Require().NoError(err)
	suite.Equal([]string{"kyiv", "both"}, ids(found))
}

func (suite *VolunteerRepositoryTestSuite) TestFind_CityAndActivityFilter() {
	withActivity := func(v *models.Volunteer, activityID string) {
		suite.Require().NoError(suite.db.Create(&models.VolunteerActivity{VolunteerID: v.ID, ActivityID: activityID}).Error)
	}
	withActivity(suite.createVolunteer("a", models.StatusVerified, 1, "city-kyiv"), "act-medicine")
	withActivity(suite.createVolunteer("b", models.StatusVerified, 2, "city-kyiv"), "act-logistics")
	withActivity(suite.createVolunteer("c", models.StatusVerified, 3, "city-lviv"), "act-medicine")

	cases := []struct {
		name        string
		cityIDs     []string
		activityIDs []string
		want        []string
	}{
		{"activity only", nil, []string{"act-medicine"}, []string{"a", "c"}},
		{"city and activity", []string{"city-kyiv", "city-lviv"}, []string{"act-medicine"}, []string{"a", "c"}},
		{"city narrows activity", []string{"city-kyiv"}, []string{"act-medicine"}, []string{"a"}},
		{"no overlap", []string{"city-lviv"}, []string{"act-logistics"}, []string{}},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			found, err := suite.repo.Find(suite.ctx, VolunteerFilter{
				Status:      models.StatusVerified,
				CityIDs:     tc.cityIDs,
				ActivityIDs: tc.activityIDs,
				Sort:        SortAscending,
			})
			suite.Require().NoError(err)
			suite.Equal(tc.want, ids(found))
		})
	}
}

func (suite *VolunteerRepositoryTestSuite) TestFind_CursorBreaksTimestampTies() {
	for _, authID := range []string{"a", "b", "c", "d", "e"} {
		suite.createVolunteer(authID, models.StatusVerified, 0)
	}

	for _, sort := range []SortDirection{SortAscending, SortDescending} {
		var visited []string
		var after *models.Volunteer
		for page := 0; page < 10; page++ {
			found, err := suite.repo.Find(suite.ctx, VolunteerFilter{
				Status: models.StatusVerified,
				Sort:   sort,
				Limit:  2,
				After:  after,
			})
			suite.Require().NoError(err)
			if len(found) == 0 {
				break
			}
			visited = append(visited, ids(found)...)
			after = &found[len(found)-1]
		}

		suite.ElementsMatch([]string{"a", "b", "c", "d", "e"}, visited, "sort=%v", sort)
	}
}

func (suite *VolunteerRepositoryTestSuite) TestCreateProfile_DuplicateAuthID() {
	request := relsync.CreateRequest{
		AuthID: "auth-1",
		Fields: relsync.ProfileFields{FirstName: "Olena", LastName: "K"},
	}
	_, err := suite.repo.CreateProfile(suite.ctx, relsync.PlanCreate(request))
	suite.Require().NoError(err)

	_, err = suite.repo.CreateProfile(suite.ctx, relsync.PlanCreate(request))
	suite.True(errors.Is(err, ErrDuplicateAuthID))
}

func (suite *VolunteerRepositoryTestSuite) TestCount() {
	suite.createVolunteer("a", models.StatusVerified, 1)
	suite.createVolunteer("b", models.StatusRequested, 2)
	suite.createVolunteer("c", models.StatusVerified, 3)

	count, err := suite.repo.Count(suite.ctx, models.StatusVerified)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *VolunteerRepositoryTestSuite) TestCreateProfile_WritesRelations() {
	plan := relsync.PlanCreate(relsync.CreateRequest{
		AuthID:  "auth-1",
		Fields:  relsync.ProfileFields{FirstName: "Olena", LastName: "K"},
		CityIDs: []string{"city-kyiv", "city-lviv"},
		Social:  []relsync.NewSocial{{ProviderID: "prov-1", URL: "https://example.com/olena"}},
	})

	created, err := suite.repo.CreateProfile(suite.ctx, plan)
	suite.Require().NoError(err)
	suite.Equal(models.StatusRequested, created.VerificationStatus)

	var cityCount int64
	suite.db.Model(&models.VolunteerCity{}).Where("volunteer_id = ?", created.ID).Count(&cityCount)
	suite.Equal(int64(2), cityCount)

	var socialCount int64
	suite.db.Model(&models.VolunteerSocial{}).Where("volunteer_id = ?", created.ID).Count(&socialCount)
	suite.Equal(int64(1), socialCount)
}

func (suite *VolunteerRepositoryTestSuite) TestUpdateProfile_TombstonesEntries() {
	volunteer := suite.createVolunteer("a", models.StatusVerified, 1)
	social := models.VolunteerSocial{VolunteerID: volunteer.ID, ProviderID: "prov-1", URL: "https://example.com"}
	suite.Require().NoError(suite.db.Create(&social).Error)

	_, err := suite.repo.UpdateProfile(suite.ctx, volunteer.ID, func(current models.Volunteer) (relsync.UpdatePlan, error) {
		return relsync.PlanUpdate(current, relsync.UpdateRequest{
			Fields: relsync.ProfileFields{FirstName: "A", LastName: "B"},
			Social: &relsync.EntryChanges[relsync.NewSocial]{Delete: []string{social.ID}},
		}), nil
	})
	suite.Require().NoError(err)

	entries := NewEntryRepository[models.VolunteerSocial](suite.db)
	live, err := entries.ListByOwners(suite.ctx, []string{volunteer.ID})
	suite.Require().NoError(err)
	suite.Empty(live)

	history, err := entries.ListHistory(suite.ctx, volunteer.ID)
	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	suite.Equal(social.ID, history[0].ID)
	suite.Equal(models.LifecycleDeleted, history[0].Lifecycle().State)
}

func (suite *VolunteerRepositoryTestSuite) TestUpdateProfile_ForeignEntryIsRejected() {
	owner := suite.createVolunteer("owner", models.StatusVerified, 1)
	other := suite.createVolunteer("other", models.StatusVerified, 2)
	social := models.VolunteerSocial{VolunteerID: owner.ID, ProviderID: "prov-1", URL: "https://example.com/owner"}
	suite.Require().NoError(suite.db.Create(&social).Error)

	_, err := suite.repo.UpdateProfile(suite.ctx, other.ID, func(current models.Volunteer) (relsync.UpdatePlan, error) {
		return relsync.PlanUpdate(current, relsync.UpdateRequest{
			Fields: relsync.ProfileFields{FirstName: "other", LastName: "Test"},
			Social: &relsync.EntryChanges[relsync.NewSocial]{Delete: []string{social.ID}},
		}), nil
	})
	suite.True(errors.Is(err, ErrEntryNotFound))

	live, err := NewEntryRepository[models.VolunteerSocial](suite.db).ListByOwners(suite.ctx, []string{owner.ID})
	suite.Require().NoError(err)
	suite.Require().Len(live, 1)
	suite.Equal(social.ID, live[0].ID)
	suite.Equal(models.LifecycleActive, live[0].Lifecycle().State)
}

func (suite *VolunteerRepositoryTestSuite) TestUpdateProfile_UnknownEntryRollsBack() {
	volunteer := suite.createVolunteer("a", models.StatusVerified, 1)

	_, err := suite.repo.UpdateProfile(suite.ctx, volunteer.ID, func(current models.Volunteer) (relsync.UpdatePlan, error) {
		return relsync.PlanUpdate(current, relsync.UpdateRequest{
			Fields:  relsync.ProfileFields{FirstName: "Changed", LastName: "B"},
			CityIDs: []string{"city-odesa"},
			Social:  &relsync.EntryChanges[relsync.NewSocial]{Delete: []string{"missing"}},
		}), nil
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, ErrEntryNotFound))

	reloaded, err := suite.repo.FindByID(suite.ctx, volunteer.ID)
	suite.Require().NoError(err)
	suite.Equal("a", reloaded.FirstName)
	suite.Empty(reloaded.CityIDs)

	var cityCount int64
	suite.db.Model(&models.VolunteerCity{}).Where("volunteer_id = ?", volunteer.ID).Count(&cityCount)
	suite.Zero(cityCount)
}

func (suite *VolunteerRepositoryTestSuite) TestSetStatus() {
	volunteer := suite.createVolunteer("a", models.StatusRequested, 1)

	updated, err := suite.repo.SetStatus(suite.ctx, volunteer.ID, models.StatusVerified)
	suite.Require().NoError(err)
	suite.Equal(models.StatusVerified, updated.VerificationStatus)

	_, err = suite.repo.SetStatus(suite.ctx, "missing", models.StatusVerified)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func TestVolunteerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VolunteerRepositoryTestSuite))
}
