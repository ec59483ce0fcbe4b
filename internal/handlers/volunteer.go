package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
	"github.com/yukikurage/volunteer-directory-api/internal/dto"
	apierrors "github.com/yukikurage/volunteer-directory-api/internal/errors"
	"github.com/yukikurage/volunteer-directory-api/internal/services"
	"github.com/yukikurage/volunteer-directory-api/internal/utils"
)

// VolunteerHandler serves the public directory and self-service profile routes.
type VolunteerHandler struct {
	directory *services.DirectoryService
}

// NewVolunteerHandler creates a new VolunteerHandler.
func NewVolunteerHandler(directory *services.DirectoryService) *VolunteerHandler {
	return &VolunteerHandler{
		directory: directory,
	}
}

// Search returns a page of verified volunteers
func (h *VolunteerHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	if req.Offset > constants.MaxSearchPageSize {
		apierrors.BadRequest(c, fmt.Sprintf("offset must be at most %d", constants.MaxSearchPageSize))
		return
	}

	result, err := h.directory.Search(c.Request.Context(), services.SearchInput{
		Offset:      req.Offset,
		CityIDs:     req.CityIDs,
		ActivityIDs: req.ActivityIDs,
		StartCursor: req.StartCursor,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		TotalCount:  result.TotalCount,
		Volunteers:  dto.ToVolunteerDTOs(result.Volunteers),
		StartCursor: result.StartCursor,
		EndCursor:   result.EndCursor,
		HasNextPage: result.HasNextPage,
	})
}

// Count returns the number of verified volunteers
func (h *VolunteerHandler) Count(c *gin.Context) {
	count, err := h.directory.GetVolunteersCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetByIDs returns the volunteers listed in ?ids=
func (h *VolunteerHandler) GetByIDs(c *gin.Context) {
	ids := utils.GetIDList(c, "ids")
	if len(ids) == 0 {
		apierrors.BadRequest(c, "ids is required")
		return
	}

	volunteers, err := h.directory.GetVolunteersByIDs(c.Request.Context(), ids)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteers": dto.ToVolunteerDTOs(volunteers)})
}

// GetByAuthID returns the profile owned by an external identity
func (h *VolunteerHandler) GetByAuthID(c *gin.Context) {
	volunteer, err := h.directory.GetVolunteerByAuthID(c.Request.Context(), c.Param("auth_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerDTO(*volunteer))
}

// GetSocial returns live social links of the volunteers in ?volunteer_ids=
func (h *VolunteerHandler) GetSocial(c *gin.Context) {
	entries, err := h.directory.GetVolunteerSocial(c.Request.Context(), utils.GetIDList(c, "volunteer_ids"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"social": dto.ToSocialDTOs(entries)})
}

// GetContacts returns live contacts of the volunteers in ?volunteer_ids=
func (h *VolunteerHandler) GetContacts(c *gin.Context) {
	entries, err := h.directory.GetVolunteerContacts(c.Request.Context(), utils.GetIDList(c, "volunteer_ids"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": dto.ToContactDTOs(entries)})
}

// GetPaymentOptions returns live payment options of the volunteers in ?volunteer_ids=
func (h *VolunteerHandler) GetPaymentOptions(c *gin.Context) {
	entries, err := h.directory.GetVolunteerPaymentOptions(c.Request.Context(), utils.GetIDList(c, "volunteer_ids"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_options": dto.ToPaymentOptionDTOs(entries)})
}

// CreateProfile registers a new volunteer
func (h *VolunteerHandler) CreateProfile(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	input := services.CreateProfileInput{
		AuthID:  req.AuthID,
		Profile: toProfileInput(req.ProfileRequest),
	}
	for _, s := range req.Social {
		input.Social = append(input.Social, services.SocialInput{ProviderID: s.ProviderID, URL: s.URL})
	}
	for _, e := range req.Contacts {
		input.Contacts = append(input.Contacts, services.ContactInput{ProviderID: e.ProviderID, Metadata: e.Metadata})
	}
	for _, e := range req.PaymentOptions {
		input.PaymentOptions = append(input.PaymentOptions, services.PaymentOptionInput{ProviderID: e.ProviderID, Metadata: e.Metadata})
	}

	volunteer, err := h.directory.CreateProfile(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVolunteerDTO(*volunteer))
}

// UpdateProfile applies a profile update for the volunteer owning :auth_id
func (h *VolunteerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	volunteer, err := h.directory.UpdateProfile(c.Request.Context(), c.Param("auth_id"), toUpdateInput(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerDTO(*volunteer))
}

// HideProfile hides the profile owned by :auth_id
func (h *VolunteerHandler) HideProfile(c *gin.Context) {
	volunteer, err := h.directory.HideVolunteerProfile(c.Request.Context(), c.Param("auth_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerDTO(*volunteer))
}

func toProfileInput(req dto.ProfileRequest) services.ProfileInput {
	return services.ProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Description:  req.Description,
		AvatarURL:    req.AvatarURL,
		Organization: req.Organization,
		CityIDs:      req.CityIDs,
		ActivityIDs:  req.ActivityIDs,
	}
}

func toUpdateInput(req dto.UpdateProfileRequest) services.UpdateProfileInput {
	input := services.UpdateProfileInput{
		Profile: toProfileInput(req.ProfileRequest),
	}

	if req.Social != nil {
		changes := &services.EntryChangesInput[services.SocialInput]{Delete: req.Social.Delete}
		for _, s := range req.Social.Create {
			changes.Create = append(changes.Create, services.SocialInput{ProviderID: s.ProviderID, URL: s.URL})
		}
		input.Social = changes
	}
	if req.Contacts != nil {
		changes := &services.EntryChangesInput[services.ContactInput]{Delete: req.Contacts.Delete}
		for _, e := range req.Contacts.Create {
			changes.Create = append(changes.Create, services.ContactInput{ProviderID: e.ProviderID, Metadata: e.Metadata})
		}
		input.Contacts = changes
	}
	if req.PaymentOptions != nil {
		changes := &services.EntryChangesInput[services.PaymentOptionInput]{Delete: req.PaymentOptions.Delete}
		for _, e := range req.PaymentOptions.Create {
			changes.Create = append(changes.Create, services.PaymentOptionInput{ProviderID: e.ProviderID, Metadata: e.Metadata})
		}
		input.PaymentOptions = changes
	}

	return input
}
