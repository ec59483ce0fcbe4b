package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/volunteer-directory-api/internal/constants"
	apierrors "github.com/yukikurage/volunteer-directory-api/internal/errors"
)

// RequireModerator checks that a moderator is logged in via session
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		moderatorID := session.Get(constants.ContextKeyModeratorID)

		if moderatorID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyModeratorID, moderatorID)
		c.Next()
	}
}

// GetModeratorID retrieves the current moderator ID from context
func GetModeratorID(c *gin.Context) (uint64, bool) {
	moderatorID, exists := c.Get(constants.ContextKeyModeratorID)
	if !exists {
		return 0, false
	}

	switch v := moderatorID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
