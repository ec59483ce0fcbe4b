package dto

import (
	"time"

	"github.com/yukikurage/volunteer-directory-api/internal/models"
)

// VolunteerDTO represents a volunteer in API responses
type VolunteerDTO struct {
	ID                 string                    `json:"id"`
	AuthID             string                    `json:"auth_id"`
	FirstName          string                    `json:"first_name"`
	LastName           string                    `json:"last_name"`
	Description        *string                   `json:"description"`
	AvatarURL          *string                   `json:"avatar_url"`
	Organization       *string                   `json:"organization"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	CityIDs            []string                  `json:"city_ids"`
	ActivityIDs        []string                  `json:"activity_ids"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// SearchRequest is the body of a volunteer search
type SearchRequest struct {
	Offset      int      `json:"offset" binding:"min=0"`
	CityIDs     []string `json:"city_ids"`
	ActivityIDs []string `json:"activity_ids"`
	StartCursor string   `json:"start_cursor"`
}

// SearchResponse represents one page of search results
type SearchResponse struct {
	TotalCount  int64          `json:"total_count"`
	Volunteers  []VolunteerDTO `json:"volunteers"`
	StartCursor *string        `json:"start_cursor"`
	EndCursor   *string        `json:"end_cursor"`
	HasNextPage bool           `json:"has_next_page"`
}

// CountResponse represents a volunteer count
type CountResponse struct {
	Count int64 `json:"count"`
}

// ProfileRequest holds the editable profile fields
type ProfileRequest struct {
	FirstName    string   `json:"first_name" binding:"required,max=255"`
	LastName     string   `json:"last_name" binding:"required,max=255"`
	Description  *string  `json:"description"`
	AvatarURL    *string  `json:"avatar_url" binding:"omitempty,url,max=1024"`
	Organization *string  `json:"organization" binding:"omitempty,max=255"`
	CityIDs      []string `json:"city_ids"`
	ActivityIDs  []string `json:"activity_ids"`
}

// SocialRequest adds a social link
type SocialRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	URL        string `json:"url" binding:"required,url,max=1024"`
}

// MetadataEntryRequest adds a contact or payment option; Metadata is a JSON
// document encoded as a string
type MetadataEntryRequest struct {
	ProviderID string `json:"provider_id" binding:"required"`
	Metadata   string `json:"metadata" binding:"required"`
}

// EntryChangesRequest adds and removes entries of one sub-collection
type EntryChangesRequest[T any] struct {
	Create []T      `json:"create" binding:"dive"`
	Delete []string `json:"delete" binding:"dive,required"`
}

// CreateProfileRequest is the body of a profile registration
type CreateProfileRequest struct {
	AuthID string `json:"auth_id" binding:"required,max=255"`
	ProfileRequest
	Social         []SocialRequest        `json:"social" binding:"dive"`
	Contacts       []MetadataEntryRequest `json:"contacts" binding:"dive"`
	PaymentOptions []MetadataEntryRequest `json:"payment_options" binding:"dive"`
}

// UpdateProfileRequest is the body of a profile update. Omitted entry
// changes leave that sub-collection untouched.
type UpdateProfileRequest struct {
	ProfileRequest
	Social         *EntryChangesRequest[SocialRequest]        `json:"social"`
	Contacts       *EntryChangesRequest[MetadataEntryRequest] `json:"contacts"`
	PaymentOptions *EntryChangesRequest[MetadataEntryRequest] `json:"payment_options"`
}

// ChangeStatusRequest is the body of a moderation decision
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SocialDTO represents a social link in API responses
type SocialDTO struct {
	ID          string       `json:"id"`
	VolunteerID string       `json:"volunteer_id"`
	ProviderID  string       `json:"provider_id"`
	URL         string       `json:"url"`
	CreatedAt   time.Time    `json:"created_at"`
	Lifecycle   LifecycleDTO `json:"lifecycle"`
}

// MetadataEntryDTO represents a contact or payment option in API responses
type MetadataEntryDTO struct {
	ID          string       `json:"id"`
	VolunteerID string       `json:"volunteer_id"`
	ProviderID  string       `json:"provider_id"`
	Metadata    string       `json:"metadata"`
	CreatedAt   time.Time    `json:"created_at"`
	Lifecycle   LifecycleDTO `json:"lifecycle"`
}

// LifecycleDTO is "active", or "deleted" with the tombstone time
type LifecycleDTO struct {
	State     models.LifecycleState `json:"state"`
	DeletedAt *time.Time            `json:"deleted_at,omitempty"`
}

// EntryHistoryResponse lists every entry of a volunteer, tombstoned ones included
type EntryHistoryResponse struct {
	Social         []SocialDTO        `json:"social"`
	Contacts       []MetadataEntryDTO `json:"contacts"`
	PaymentOptions []MetadataEntryDTO `json:"payment_options"`
}

// Conversion functions

// ToVolunteerDTO converts a Volunteer model to VolunteerDTO
func ToVolunteerDTO(v models.Volunteer) VolunteerDTO {
	return VolunteerDTO{
		ID:                 v.ID,
		AuthID:             v.AuthID,
		FirstName:          v.FirstName,
		LastName:           v.LastName,
		Description:        v.Description,
		AvatarURL:          v.AvatarURL,
		Organization:       v.Organization,
		VerificationStatus: v.VerificationStatus,
		CityIDs:            nonNil(v.CityIDs),
		ActivityIDs:        nonNil(v.ActivityIDs),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// ToVolunteerDTOs converts a slice of Volunteer models
func ToVolunteerDTOs(volunteers []models.Volunteer) []VolunteerDTO {
	out := make([]VolunteerDTO, len(volunteers))
	for i, v := range volunteers {
		out[i] = ToVolunteerDTO(v)
	}
	return out
}

// ToSocialDTOs converts social link models
func ToSocialDTOs(entries []models.VolunteerSocial) []SocialDTO {
	out := make([]SocialDTO, len(entries))
	for i, e := range entries {
		out[i] = SocialDTO{
			ID:          e.ID,
			VolunteerID: e.VolunteerID,
			ProviderID:  e.ProviderID,
			URL:         e.URL,
			CreatedAt:   e.CreatedAt,
			Lifecycle:   toLifecycleDTO(e.Lifecycle()),
		}
	}
	return out
}

// ToContactDTOs converts contact models
func ToContactDTOs(entries []models.VolunteerContact) []MetadataEntryDTO {
	out := make([]MetadataEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = MetadataEntryDTO{
			ID:          e.ID,
			VolunteerID: e.VolunteerID,
			ProviderID:  e.ProviderID,
			Metadata:    e.Metadata.String(),
			CreatedAt:   e.CreatedAt,
			Lifecycle:   toLifecycleDTO(e.Lifecycle()),
		}
	}
	return out
}

// ToPaymentOptionDTOs converts payment option models
func ToPaymentOptionDTOs(entries []models.VolunteerPaymentOption) []MetadataEntryDTO {
	out := make([]MetadataEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = MetadataEntryDTO{
			ID:          e.ID,
			VolunteerID: e.VolunteerID,
			ProviderID:  e.ProviderID,
			Metadata:    e.Metadata.String(),
			CreatedAt:   e.CreatedAt,
			Lifecycle:   toLifecycleDTO(e.Lifecycle()),
		}
	}
	return out
}

func toLifecycleDTO(l models.Lifecycle) LifecycleDTO {
	return LifecycleDTO{State: l.State, DeletedAt: l.DeletedAt}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
