package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/volunteer-directory-api/internal/constants"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles moderator authentication.
type AuthService struct {
	moderatorRepo repository.ModeratorRepository
	log           *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(moderatorRepo repository.ModeratorRepository, log *zap.Logger) *AuthService {
	return &AuthService{
		moderatorRepo: moderatorRepo,
		log:           log.Named("auth"),
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated moderator.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*models.Moderator, error) {
	moderator, err := s.moderatorRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: failed to find moderator: %v", ErrStoreFailure, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(moderator.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return moderator, nil
}

// EnsureModerator creates the moderator account if it does not exist yet.
// An existing account keeps its password.
func (s *AuthService) EnsureModerator(ctx context.Context, input LoginInput) (*models.Moderator, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.moderatorRepo.FindByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: failed to find moderator: %v", ErrStoreFailure, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	moderator := &models.Moderator{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	if err := s.moderatorRepo.Create(ctx, moderator); err != nil {
		return nil, fmt.Errorf("%w: failed to create moderator: %v", ErrStoreFailure, err)
	}

	s.log.Info("moderator account created", zap.String("username", username))
	return moderator, nil
}

// GetModerator retrieves a moderator by ID.
func (s *AuthService) GetModerator(ctx context.Context, id uint64) (*models.Moderator, error) {
	moderator, err := s.moderatorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModeratorNotFound
		}
		return nil, fmt.Errorf("%w: failed to find moderator: %v", ErrStoreFailure, err)
	}

	return moderator, nil
}
