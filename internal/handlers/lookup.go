package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/volunteer-directory-api/internal/dto"
	apierrors "github.com/yukikurage/volunteer-directory-api/internal/errors"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/services"
	"github.com/yukikurage/volunteer-directory-api/internal/utils"
)

// LookupHandler serves the city, activity and provider tables.
type LookupHandler struct {
	directory *services.DirectoryService
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(directory *services.DirectoryService) *LookupHandler {
	return &LookupHandler{
		directory: directory,
	}
}

// listLookup lists every row of a table, or only those in ?ids= when given
func listLookup[T, D any](c *gin.Context, svc *services.LookupService[T], key string, convert func(T) D) {
	items, err := svc.List(c.Request.Context(), utils.GetIDList(c, "ids"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]D, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	c.JSON(http.StatusOK, gin.H{key: out})
}

func addLookup[T, D any](c *gin.Context, svc *services.LookupService[T], item *T, convert func(T) D) {
	if err := svc.Add(c.Request.Context(), item); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, convert(*item))
}

func (h *LookupHandler) ListCities(c *gin.Context) {
	listLookup(c, h.directory.Cities, "cities", dto.ToCityDTO)
}

func (h *LookupHandler) ListActivities(c *gin.Context) {
	listLookup(c, h.directory.Activities, "activities", dto.ToActivityDTO)
}

func (h *LookupHandler) ListSocialProviders(c *gin.Context) {
	listLookup(c, h.directory.SocialProviders, "social_providers", dto.ToSocialProviderDTO)
}

func (h *LookupHandler) ListPaymentProviders(c *gin.Context) {
	listLookup(c, h.directory.PaymentProviders, "payment_providers", dto.ToPaymentProviderDTO)
}

func (h *LookupHandler) ListContactProviders(c *gin.Context) {
	listLookup(c, h.directory.ContactProviders, "contact_providers", dto.ToContactProviderDTO)
}

// AddCity creates a city (moderators only)
func (h *LookupHandler) AddCity(c *gin.Context) {
	var req dto.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	addLookup(c, h.directory.Cities, &models.City{Title: req.Title, AdminName: req.AdminName}, dto.ToCityDTO)
}

// AddActivity creates an activity (moderators only)
func (h *LookupHandler) AddActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	addLookup(c, h.directory.Activities, &models.Activity{Title: req.Title, Description: req.Description}, dto.ToActivityDTO)
}

// AddSocialProvider creates a social provider (moderators only)
func (h *LookupHandler) AddSocialProvider(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	addLookup(c, h.directory.SocialProviders, &models.SocialProvider{Title: req.Title}, dto.ToSocialProviderDTO)
}

// AddPaymentProvider creates a payment provider (moderators only)
func (h *LookupHandler) AddPaymentProvider(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	addLookup(c, h.directory.PaymentProviders, &models.PaymentProvider{Title: req.Title}, dto.ToPaymentProviderDTO)
}

// AddContactProvider creates a contact provider (moderators only)
func (h *LookupHandler) AddContactProvider(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	addLookup(c, h.directory.ContactProviders, &models.ContactProvider{Title: req.Title}, dto.ToContactProviderDTO)
}
