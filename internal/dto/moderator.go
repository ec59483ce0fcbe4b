package dto

import "github.com/yukikurage/volunteer-directory-api/internal/models"

// ModeratorDTO represents a moderator in API responses
type ModeratorDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// LoginRequest holds moderator credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToModeratorDTO converts a Moderator model to ModeratorDTO
func ToModeratorDTO(m models.Moderator) ModeratorDTO {
	return ModeratorDTO{
		ID:       m.ID,
		Username: m.Username,
	}
}
