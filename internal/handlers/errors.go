package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/volunteer-directory-api/internal/errors"
	"github.com/yukikurage/volunteer-directory-api/internal/services"
)

// respondServiceError maps a service error category onto an HTTP response.
// Store failures never leak their cause to the client.
func respondServiceError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, services.ErrValidation):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	default:
		apierrors.InternalError(c, "")
	}
}
