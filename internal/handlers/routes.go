package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/volunteer-directory-api/internal/middleware"
)

// Handlers groups every handler mounted by RegisterRoutes.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Volunteers *VolunteerHandler
	Lookups    *LookupHandler
	Moderation *ModerationHandler
}

// RegisterRoutes mounts the API on r. Session middleware must already be installed.
func RegisterRoutes(r *gin.Engine, h Handlers, metrics http.Handler) {
	// Health check endpoint
	r.GET("/health", h.Health.Check)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireModerator(), h.Auth.GetCurrentModerator)
		}

		// Directory routes (public)
		volunteers := api.Group("/volunteers")
		{
			volunteers.POST("/search", h.Volunteers.Search)
			volunteers.GET("/count", h.Volunteers.Count)
			volunteers.GET("", h.Volunteers.GetByIDs)
			volunteers.GET("/by-auth/:auth_id", h.Volunteers.GetByAuthID)
			volunteers.GET("/social", h.Volunteers.GetSocial)
			volunteers.GET("/contacts", h.Volunteers.GetContacts)
			volunteers.GET("/payment-options", h.Volunteers.GetPaymentOptions)
		}

		// Profile routes (public, keyed by external identity)
		profiles := api.Group("/profiles")
		{
			profiles.POST("", h.Volunteers.CreateProfile)
			profiles.PUT("/:auth_id", h.Volunteers.UpdateProfile)
			profiles.POST("/:auth_id/hide", h.Volunteers.HideProfile)
		}

		// Lookup tables (public)
		api.GET("/cities", h.Lookups.ListCities)
		api.GET("/activities", h.Lookups.ListActivities)
		api.GET("/social-providers", h.Lookups.ListSocialProviders)
		api.GET("/payment-providers", h.Lookups.ListPaymentProviders)
		api.GET("/contact-providers", h.Lookups.ListContactProviders)

		// Moderation routes (protected)
		moderation := api.Group("/moderation")
		moderation.Use(middleware.RequireModerator())
		{
			moderation.POST("/cities", h.Lookups.AddCity)
			moderation.POST("/activities", h.Lookups.AddActivity)
			moderation.POST("/social-providers", h.Lookups.AddSocialProvider)
			moderation.POST("/payment-providers", h.Lookups.AddPaymentProvider)
			moderation.POST("/contact-providers", h.Lookups.AddContactProvider)
			moderation.GET("/requested", h.Moderation.ListRequested)
			moderation.POST("/volunteers/:id/status", h.Moderation.ChangeStatus)
			moderation.PATCH("/volunteers/:id", h.Moderation.PatchVolunteer)
			moderation.GET("/volunteers/:id/entries", h.Moderation.GetEntryHistory)
		}
	}
}
