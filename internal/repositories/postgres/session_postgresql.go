package postgres

import (
	"context"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type SessionPostgreSQL struct {
	db *gorm.DB
}

func NewSessionPostgreSQL(db *gorm.DB) repositories.SessionRepository {
	return &SessionPostgreSQL{db: db}
}

func (r SessionPostgreSQL) Create(ctx context.Context, session *models.UserSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r SessionPostgreSQL) GetByID(ctx context.Context, id string) (*models.UserSession, error) {
	var session models.UserSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// Replace writes the whole session back, conditional on the version it was
// read at. A concurrent writer that got there first leaves zero rows matched
// and the caller sees ErrVersionConflict with nothing applied.
func (r SessionPostgreSQL) Replace(ctx context.Context, session *models.UserSession) error {
	readVersion := session.Version
	session.Version = readVersion + 1

	result := r.db.WithContext(ctx).
		Model(&models.UserSession{}).
		Where("id = ? AND version = ?", session.ID, readVersion).
		Select("user_name", "test_id", "start_time", "end_time", "score", "answers", "version", "updated_at").
		Updates(session)
	if result.Error != nil {
		session.Version = readVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		session.Version = readVersion
		return repositories.ErrVersionConflict
	}

	return nil
}
