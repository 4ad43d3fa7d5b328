package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrVersionConflict is returned by SessionRepository.Replace when the stored
// session has a newer version than the one being written.
var ErrVersionConflict = errors.New("session version conflict")

// IsNotFoundError checks whether a repository error means the record is absent.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsVersionConflictError checks whether a replace lost an optimistic race.
func IsVersionConflictError(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}
