package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/volunteer-directory-api/internal/dto"
	apierrors "github.com/yukikurage/volunteer-directory-api/internal/errors"
	"github.com/yukikurage/volunteer-directory-api/internal/services"
)

// ModerationHandler serves the moderator-only volunteer routes.
type ModerationHandler struct {
	directory *services.DirectoryService
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(directory *services.DirectoryService) *ModerationHandler {
	return &ModerationHandler{
		directory: directory,
	}
}

// ListRequested returns volunteers awaiting verification
func (h *ModerationHandler) ListRequested(c *gin.Context) {
	volunteers, err := h.directory.GetRequestedVolunteers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"volunteers": dto.ToVolunteerDTOs(volunteers)})
}

// ChangeStatus verifies or rejects the volunteer :id
func (h *ModerationHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	volunteer, err := h.directory.ChangeVolunteerStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerDTO(*volunteer))
}

// PatchVolunteer edits the volunteer :id on a moderator's behalf
func (h *ModerationHandler) PatchVolunteer(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	volunteer, err := h.directory.PatchVolunteer(c.Request.Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerDTO(*volunteer))
}

// GetEntryHistory returns every social link, contact and payment option of
// the volunteer :id, tombstoned ones included
func (h *ModerationHandler) GetEntryHistory(c *gin.Context) {
	history, err := h.directory.GetVolunteerEntryHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EntryHistoryResponse{
		Social:         dto.ToSocialDTOs(history.Social),
		Contacts:       dto.ToContactDTOs(history.Contacts),
		PaymentOptions: dto.ToPaymentOptionDTOs(history.PaymentOptions),
	})
}
