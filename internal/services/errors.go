package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/volunteer-directory-api/internal/metrics"
	"go.uber.org/zap"
)

// Error categories. Every error returned by this package matches exactly one
// of them with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrStoreFailure = errors.New("store failure")
)

var (
	ErrVolunteerNotFound  = categorized(ErrNotFound, "volunteer not found")
	ErrEntryNotFound      = categorized(ErrNotFound, "entry not found")
	ErrModeratorNotFound  = categorized(ErrNotFound, "moderator not found")
	ErrInvalidStatus      = categorized(ErrValidation, "status must be verified or rejected")
	ErrInvalidOffset      = categorized(ErrValidation, "offset must not be negative")
	ErrInvalidMetadata    = categorized(ErrValidation, "metadata must be valid JSON")
	ErrUnknownReference   = categorized(ErrValidation, "unknown reference")
	ErrTitleRequired      = categorized(ErrValidation, "title is required")
	ErrNameRequired       = categorized(ErrValidation, "first and last name are required")
	ErrAuthIDRequired     = categorized(ErrValidation, "auth id is required")
	ErrPasswordTooShort   = categorized(ErrValidation, "password too short")
	ErrProfileExists      = categorized(ErrConflict, "profile already exists for this auth id")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type categorizedError struct {
	category error
	msg      string
}

func categorized(category error, msg string) error {
	return &categorizedError{category: category, msg: msg}
}

func (e *categorizedError) Error() string { return e.msg }

func (e *categorizedError) Unwrap() error { return e.category }

// storeFailure logs and counts a failed storage call and wraps it in
// ErrStoreFailure.
func storeFailure(log *zap.Logger, m *metrics.Metrics, operation string, err error) error {
	m.IncrementStoreFailure(operation)
	log.Error("store operation failed", zap.String("operation", operation), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrStoreFailure, operation, err)
}
