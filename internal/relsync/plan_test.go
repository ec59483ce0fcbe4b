package relsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestPlanCreate(t *testing.T) {
	plan := PlanCreate(CreateRequest{
		AuthID:      "auth-1",
		Fields:      ProfileFields{FirstName: "Olena", LastName: "Koval", Organization: strPtr("Red Cross")},
		CityIDs:     []string{"kyiv", "lviv", "kyiv"},
		ActivityIDs: []string{"food"},
		Social:      []NewSocial{{ProviderID: "instagram", URL: "https://instagram.com/olena"}},
		Contacts:    []NewContact{{ProviderID: "phone", Metadata: models.Metadata(`{"phoneNumber":"+380"}`)}},
	})

	v := plan.Volunteer
	require.NotEmpty(t, v.ID)
	assert.Equal(t, models.StatusRequested, v.VerificationStatus)
	assert.Equal(t, "Olena", v.FirstName)
	assert.Equal(t, []string{"kyiv", "lviv"}, v.CityIDs)
	assert.Equal(t, []string{"food"}, v.ActivityIDs)

	require.Len(t, plan.Cities, 2)
	for _, row := range plan.Cities {
		assert.Equal(t, v.ID, row.VolunteerID)
	}
	require.Len(t, plan.Activities, 1)
	require.Len(t, plan.Social, 1)
	assert.Equal(t, v.ID, plan.Social[0].VolunteerID)
	require.Len(t, plan.Contacts, 1)
	assert.Equal(t, `{"phoneNumber":"+380"}`, plan.Contacts[0].Metadata.String())
	assert.Empty(t, plan.PaymentOptions)
}

func TestPlanUpdate(t *testing.T) {
	current := models.Volunteer{
		Identity:    models.Identity{ID: "v1"},
		FirstName:   "Old",
		LastName:    "Name",
		Description: strPtr("before"),
		CityIDs:     []string{"kyiv", "lviv"},
		ActivityIDs: []string{"food"},
	}

	t.Run("diffs memberships and overwrites fields", func(t *testing.T) {
		plan := PlanUpdate(current, UpdateRequest{
			Fields:  ProfileFields{FirstName: "New", LastName: "Name"},
			CityIDs: []string{"lviv", "odesa"},
		})

		assert.Equal(t, []string{"odesa"}, plan.Cities.ToCreate)
		assert.Equal(t, []string{"kyiv"}, plan.Cities.ToDelete)
		assert.Equal(t, []string{"lviv", "odesa"}, plan.Volunteer.CityIDs)

		assert.False(t, plan.Activities.Changed)
		assert.Equal(t, []string{"food"}, plan.Volunteer.ActivityIDs)

		assert.Equal(t, "New", plan.Volunteer.FirstName)
		assert.Nil(t, plan.Volunteer.Description)

		// input is left untouched
		assert.Equal(t, "Old", current.FirstName)
		assert.Equal(t, []string{"kyiv", "lviv"}, current.CityIDs)
	})

	t.Run("absent and empty entry changes are no-ops", func(t *testing.T) {
		plan := PlanUpdate(current, UpdateRequest{
			Fields:   ProfileFields{FirstName: "Old", LastName: "Name"},
			Social:   nil,
			Contacts: &EntryChanges[NewContact]{},
		})

		assert.Empty(t, plan.CreateSocial)
		assert.Empty(t, plan.DeleteSocial)
		assert.Empty(t, plan.CreateContacts)
		assert.Empty(t, plan.DeleteContacts)
	})

	t.Run("entry creates are owned by the volunteer", func(t *testing.T) {
		plan := PlanUpdate(current, UpdateRequest{
			Social: &EntryChanges[NewSocial]{
				Create: []NewSocial{{ProviderID: "p1", URL: "https://instagram.com/x"}},
				Delete: []string{"s1", "s1"},
			},
		})

		require.Len(t, plan.CreateSocial, 1)
		assert.Equal(t, "v1", plan.CreateSocial[0].VolunteerID)
		assert.Equal(t, "https://instagram.com/x", plan.CreateSocial[0].URL)
		assert.Equal(t, []string{"s1"}, plan.DeleteSocial)
	})
}
