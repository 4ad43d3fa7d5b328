package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/quiz-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrConflict         = errors.New("resource conflict")

	// Test/catalog specific errors
	ErrTestNotFound       = errors.New("test not found")
	ErrTestHasNoQuestions = errors.New("no questions found for test")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrOptionNotFound     = errors.New("option not found")

	// Session specific errors
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionCompleted        = errors.New("session already completed")
	ErrQuestionAlreadyAnswered = errors.New("question already answered in this session")
	ErrSessionConflict         = errors.New("session was modified concurrently")
)

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrTestNotFound) ||
		errors.Is(err, ErrTestHasNoQuestions) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrOptionNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}

// IsConflict checks if error represents a duplicate submission or a lost
// optimistic-concurrency race
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrQuestionAlreadyAnswered) ||
		errors.Is(err, ErrSessionConflict)
}

// IsInvalidState checks if error represents a mutation of a finalized session
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrSessionCompleted)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}
