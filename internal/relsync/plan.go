package relsync

import (
	"github.com/google/uuid"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
)

// ProfileFields are the scalar columns of a profile. They are overwritten as a
// whole on every update.
type ProfileFields struct {
	FirstName    string
	LastName     string
	Description  *string
	AvatarURL    *string
	Organization *string
}

type NewSocial struct {
	ProviderID string
	URL        string
}

type NewContact struct {
	ProviderID string
	Metadata   models.Metadata
}

type NewPaymentOption struct {
	ProviderID string
	Metadata   models.Metadata
}

// EntryChanges is an additive request against a tombstoned sub-collection. A
// nil *EntryChanges and one with empty lists are both no-ops.
type EntryChanges[T any] struct {
	Create []T
	Delete []string
}

// CreateRequest describes a brand-new profile.
type CreateRequest struct {
	AuthID         string
	Fields         ProfileFields
	CityIDs        []string
	ActivityIDs    []string
	Social         []NewSocial
	Contacts       []NewContact
	PaymentOptions []NewPaymentOption
}

// UpdateRequest describes the requested final state of a profile.
type UpdateRequest struct {
	Fields         ProfileFields
	CityIDs        []string
	ActivityIDs    []string
	Social         *EntryChanges[NewSocial]
	Contacts       *EntryChanges[NewContact]
	PaymentOptions *EntryChanges[NewPaymentOption]
}

// CreatePlan holds every row a profile creation inserts.
type CreatePlan struct {
	Volunteer      models.Volunteer
	Cities         []models.VolunteerCity
	Activities     []models.VolunteerActivity
	Social         []models.VolunteerSocial
	Contacts       []models.VolunteerContact
	PaymentOptions []models.VolunteerPaymentOption
}

// UpdatePlan holds every mutation a profile update performs.
type UpdatePlan struct {
	// Volunteer is the current row with fields and id caches already applied.
	Volunteer models.Volunteer

	Cities     MembershipDiff
	Activities MembershipDiff

	CreateSocial         []models.VolunteerSocial
	DeleteSocial         []string
	CreateContacts       []models.VolunteerContact
	DeleteContacts       []string
	CreatePaymentOptions []models.VolunteerPaymentOption
	DeletePaymentOptions []string
}

// PlanCreate builds the rows for a new profile. Memberships are inserted
// unconditionally since there is no prior state to diff against.
func PlanCreate(req CreateRequest) CreatePlan {
	cityIDs := unique(req.CityIDs)
	activityIDs := unique(req.ActivityIDs)

	volunteer := models.Volunteer{
		Identity:           models.Identity{ID: uuid.NewString()},
		AuthID:             req.AuthID,
		VerificationStatus: models.StatusRequested,
		CityIDs:            cityIDs,
		ActivityIDs:        activityIDs,
	}
	applyFields(&volunteer, req.Fields)

	return CreatePlan{
		Volunteer:      volunteer,
		Cities:         cityRows(volunteer.ID, cityIDs),
		Activities:     activityRows(volunteer.ID, activityIDs),
		Social:         socialRows(volunteer.ID, req.Social),
		Contacts:       contactRows(volunteer.ID, req.Contacts),
		PaymentOptions: paymentOptionRows(volunteer.ID, req.PaymentOptions),
	}
}

// PlanUpdate diffs req against current. current is not modified.
func PlanUpdate(current models.Volunteer, req UpdateRequest) UpdatePlan {
	plan := UpdatePlan{
		Volunteer:  current,
		Cities:     Diff(current.CityIDs, req.CityIDs),
		Activities: Diff(current.ActivityIDs, req.ActivityIDs),
	}

	applyFields(&plan.Volunteer, req.Fields)
	if plan.Cities.Changed {
		plan.Volunteer.CityIDs = plan.Cities.Result
	}
	if plan.Activities.Changed {
		plan.Volunteer.ActivityIDs = plan.Activities.Result
	}

	if req.Social != nil {
		plan.CreateSocial = socialRows(current.ID, req.Social.Create)
		plan.DeleteSocial = unique(req.Social.Delete)
	}
	if req.Contacts != nil {
		plan.CreateContacts = contactRows(current.ID, req.Contacts.Create)
		plan.DeleteContacts = unique(req.Contacts.Delete)
	}
	if req.PaymentOptions != nil {
		plan.CreatePaymentOptions = paymentOptionRows(current.ID, req.PaymentOptions.Create)
		plan.DeletePaymentOptions = unique(req.PaymentOptions.Delete)
	}

	return plan
}

func applyFields(v *models.Volunteer, f ProfileFields) {
	v.FirstName = f.FirstName
	v.LastName = f.LastName
	v.Description = f.Description
	v.AvatarURL = f.AvatarURL
	v.Organization = f.Organization
}

func cityRows(volunteerID string, ids []string) []models.VolunteerCity {
	rows := make([]models.VolunteerCity, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.VolunteerCity{VolunteerID: volunteerID, CityID: id})
	}
	return rows
}

func activityRows(volunteerID string, ids []string) []models.VolunteerActivity {
	rows := make([]models.VolunteerActivity, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.VolunteerActivity{VolunteerID: volunteerID, ActivityID: id})
	}
	return rows
}

func socialRows(volunteerID string, in []NewSocial) []models.VolunteerSocial {
	rows := make([]models.VolunteerSocial, 0, len(in))
	for _, s := range in {
		rows = append(rows, models.VolunteerSocial{VolunteerID: volunteerID, ProviderID: s.ProviderID, URL: s.URL})
	}
	return rows
}

func contactRows(volunteerID string, in []NewContact) []models.VolunteerContact {
	rows := make([]models.VolunteerContact, 0, len(in))
	for _, c := range in {
		rows = append(rows, models.VolunteerContact{VolunteerID: volunteerID, ProviderID: c.ProviderID, Metadata: c.Metadata})
	}
	return rows
}

func paymentOptionRows(volunteerID string, in []NewPaymentOption) []models.VolunteerPaymentOption {
	rows := make([]models.VolunteerPaymentOption, 0, len(in))
	for _, p := range in {
		rows = append(rows, models.VolunteerPaymentOption{VolunteerID: volunteerID, ProviderID: p.ProviderID, Metadata: p.Metadata})
	}
	return rows
}
