package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
	"github.com/yukikurage/volunteer-directory-api/internal/dto"
	apierrors "github.com/yukikurage/volunteer-directory-api/internal/errors"
	"github.com/yukikurage/volunteer-directory-api/internal/middleware"
	"github.com/yukikurage/volunteer-directory-api/internal/services"
)

// AuthHandler coordinates moderator session handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a moderator and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	moderator, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyModeratorID, moderator.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, dto.ToModeratorDTO(*moderator))
}

// Logout removes the moderator session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentModerator returns the logged-in moderator.
func (h *AuthHandler) GetCurrentModerator(c *gin.Context) {
	moderatorID, exists := middleware.GetModeratorID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	moderator, err := h.authService.GetModerator(c.Request.Context(), moderatorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModeratorDTO(*moderator))
}
