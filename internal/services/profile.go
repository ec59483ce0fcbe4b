package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/relsync"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileInput holds the editable fields of a volunteer profile
type ProfileInput struct {
	FirstName    string
	LastName     string
	Description  *string
	AvatarURL    *string
	Organization *string
	CityIDs      []string
	ActivityIDs  []string
}

type SocialInput struct {
	ProviderID string
	URL        string
}

// ContactInput carries metadata as a JSON document in string form
type ContactInput struct {
	ProviderID string
	Metadata   string
}

// PaymentOptionInput carries metadata as a JSON document in string form
type PaymentOptionInput struct {
	ProviderID string
	Metadata   string
}

// EntryChangesInput adds and tombstones entries of one sub-collection
type EntryChangesInput[T any] struct {
	Create []T
	Delete []string
}

// CreateProfileInput holds everything needed to register a volunteer
type CreateProfileInput struct {
	AuthID         string
	Profile        ProfileInput
	Social         []SocialInput
	Contacts       []ContactInput
	PaymentOptions []PaymentOptionInput
}

// UpdateProfileInput holds the requested final state of a profile. A nil
// entry change leaves that sub-collection untouched; an empty city or
// activity list leaves those memberships untouched.
type UpdateProfileInput struct {
	Profile        ProfileInput
	Social         *EntryChangesInput[SocialInput]
	Contacts       *EntryChangesInput[ContactInput]
	PaymentOptions *EntryChangesInput[PaymentOptionInput]
}

// CreateProfile registers a new volunteer in the requested state
func (s *DirectoryService) CreateProfile(ctx context.Context, input CreateProfileInput) (*models.Volunteer, error) {
	authID := strings.TrimSpace(input.AuthID)
	if authID == "" {
		return nil, ErrAuthIDRequired
	}
	fields, err := profileFields(input.Profile)
	if err != nil {
		return nil, err
	}

	if _, err := s.volunteers.FindByAuthID(ctx, authID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeFailure(s.log, s.metrics, "create_profile", err)
	}

	contacts, err := newContacts(input.Contacts)
	if err != nil {
		return nil, err
	}
	paymentOptions, err := newPaymentOptions(input.PaymentOptions)
	if err != nil {
		return nil, err
	}
	social := newSocial(input.Social)

	if err := s.ensureReferences(ctx, input.Profile, social, contacts, paymentOptions); err != nil {
		return nil, err
	}

	plan := relsync.PlanCreate(relsync.CreateRequest{
		AuthID:         authID,
		Fields:         fields,
		CityIDs:        input.Profile.CityIDs,
		ActivityIDs:    input.Profile.ActivityIDs,
		Social:         social,
		Contacts:       contacts,
		PaymentOptions: paymentOptions,
	})

	volunteer, err := s.volunteers.CreateProfile(ctx, plan)
	if errors.Is(err, repository.ErrDuplicateAuthID) {
		// lost a race with a concurrent create for the same auth id
		return nil, ErrProfileExists
	}
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "create_profile", err)
	}

	s.metrics.ProfilesCreated.Inc()
	s.log.Info("volunteer profile created", zap.String("volunteer_id", volunteer.ID))
	return volunteer, nil
}

// UpdateProfile applies input to the profile owned by authID
func (s *DirectoryService) UpdateProfile(ctx context.Context, authID string, input UpdateProfileInput) (*models.Volunteer, error) {
	current, err := s.volunteers.FindByAuthID(ctx, authID)
	if err != nil {
		return nil, s.volunteerLookupError("update_profile", err)
	}
	return s.applyUpdate(ctx, current.ID, input)
}

// PatchVolunteer applies input to the volunteer with the given id on behalf
// of a moderator
func (s *DirectoryService) PatchVolunteer(ctx context.Context, id string, input UpdateProfileInput) (*models.Volunteer, error) {
	return s.applyUpdate(ctx, id, input)
}

func (s *DirectoryService) applyUpdate(ctx context.Context, id string, input UpdateProfileInput) (*models.Volunteer, error) {
	req, err := updateRequest(input)
	if err != nil {
		return nil, err
	}

	var (
		social         []relsync.NewSocial
		contacts       []relsync.NewContact
		paymentOptions []relsync.NewPaymentOption
	)
	if req.Social != nil {
		social = req.Social.Create
	}
	if req.Contacts != nil {
		contacts = req.Contacts.Create
	}
	if req.PaymentOptions != nil {
		paymentOptions = req.PaymentOptions.Create
	}
	if err := s.ensureReferences(ctx, input.Profile, social, contacts, paymentOptions); err != nil {
		return nil, err
	}

	volunteer, err := s.volunteers.UpdateProfile(ctx, id, func(current models.Volunteer) (relsync.UpdatePlan, error) {
		return relsync.PlanUpdate(current, req), nil
	})
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrEntryNotFound):
		return nil, fmt.Errorf("%w: %v", ErrEntryNotFound, err)
	default:
		return nil, s.volunteerLookupError("update_profile", err)
	}

	s.metrics.ProfilesUpdated.Inc()
	s.log.Info("volunteer profile updated", zap.String("volunteer_id", volunteer.ID))
	return volunteer, nil
}

// ensureReferences checks every referenced lookup id before anything is written
func (s *DirectoryService) ensureReferences(
	ctx context.Context,
	profile ProfileInput,
	social []relsync.NewSocial,
	contacts []relsync.NewContact,
	paymentOptions []relsync.NewPaymentOption,
) error {
	if err := s.Cities.ensureExist(ctx, profile.CityIDs); err != nil {
		return err
	}
	if err := s.Activities.ensureExist(ctx, profile.ActivityIDs); err != nil {
		return err
	}

	providerIDs := make([]string, 0, len(social))
	for _, entry := range social {
		providerIDs = append(providerIDs, entry.ProviderID)
	}
	if err := s.SocialProviders.ensureExist(ctx, providerIDs); err != nil {
		return err
	}

	providerIDs = providerIDs[:0]
	for _, entry := range contacts {
		providerIDs = append(providerIDs, entry.ProviderID)
	}
	if err := s.ContactProviders.ensureExist(ctx, providerIDs); err != nil {
		return err
	}

	providerIDs = providerIDs[:0]
	for _, entry := range paymentOptions {
		providerIDs = append(providerIDs, entry.ProviderID)
	}
	return s.PaymentProviders.ensureExist(ctx, providerIDs)
}

func profileFields(in ProfileInput) (relsync.ProfileFields, error) {
	fields := relsync.ProfileFields{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Description:  in.Description,
		AvatarURL:    in.AvatarURL,
		Organization: in.Organization,
	}
	if fields.FirstName == "" || fields.LastName == "" {
		return relsync.ProfileFields{}, ErrNameRequired
	}
	return fields, nil
}

func updateRequest(input UpdateProfileInput) (relsync.UpdateRequest, error) {
	fields, err := profileFields(input.Profile)
	if err != nil {
		return relsync.UpdateRequest{}, err
	}

	req := relsync.UpdateRequest{
		Fields:      fields,
		CityIDs:     input.Profile.CityIDs,
		ActivityIDs: input.Profile.ActivityIDs,
	}

	if input.Social != nil {
		req.Social = &relsync.EntryChanges[relsync.NewSocial]{
			Create: newSocial(input.Social.Create),
			Delete: input.Social.Delete,
		}
	}
	if input.Contacts != nil {
		contacts, err := newContacts(input.Contacts.Create)
		if err != nil {
			return relsync.UpdateRequest{}, err
		}
		req.Contacts = &relsync.EntryChanges[relsync.NewContact]{Create: contacts, Delete: input.Contacts.Delete}
	}
	if input.PaymentOptions != nil {
		paymentOptions, err := newPaymentOptions(input.PaymentOptions.Create)
		if err != nil {
			return relsync.UpdateRequest{}, err
		}
		req.PaymentOptions = &relsync.EntryChanges[relsync.NewPaymentOption]{Create: paymentOptions, Delete: input.PaymentOptions.Delete}
	}

	return req, nil
}

func newSocial(in []SocialInput) []relsync.NewSocial {
	out := make([]relsync.NewSocial, 0, len(in))
	for _, s := range in {
		out = append(out, relsync.NewSocial{ProviderID: s.ProviderID, URL: s.URL})
	}
	return out
}

func newContacts(in []ContactInput) ([]relsync.NewContact, error) {
	out := make([]relsync.NewContact, 0, len(in))
	for _, c := range in {
		metadata, err := models.ParseMetadata(c.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: contact %s: %v", ErrInvalidMetadata, c.ProviderID, err)
		}
		out = append(out, relsync.NewContact{ProviderID: c.ProviderID, Metadata: metadata})
	}
	return out, nil
}

func newPaymentOptions(in []PaymentOptionInput) ([]relsync.NewPaymentOption, error) {
	out := make([]relsync.NewPaymentOption, 0, len(in))
	for _, p := range in {
		metadata, err := models.ParseMetadata(p.Metadata)
		if err != nil {
			return nil, fmt.Errorf("%w: payment option %s: %v", ErrInvalidMetadata, p.ProviderID, err)
		}
		out = append(out, relsync.NewPaymentOption{ProviderID: p.ProviderID, Metadata: metadata})
	}
	return out, nil
}
