package repositories

import (
	"context"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// CatalogRepository reads the test/question reference data, which is
// immutable for the lifetime of any session.
//
// GetQuestionsByTestID returns the test's questions in ascending question id
// order. That ordering is the canonical one: every component that needs "the
// next question" derives it from this sequence and never re-sorts it.
type CatalogRepository interface {
	GetTestByID(ctx context.Context, id uint) (*models.Test, error)
	GetAllTests(ctx context.Context) ([]*models.Test, error)
	GetQuestionsByTestID(ctx context.Context, testID uint) ([]*models.Question, error)
	GetQuestionByID(ctx context.Context, id uint) (*models.Question, error)
	CountQuestionsByTestID(ctx context.Context, testID uint) (int64, error)

	CreateTest(ctx context.Context, test *models.Test) error
	CreateQuestions(ctx context.Context, questions []*models.Question) error
}

// SessionRepository persists user sessions. Replace is a full-document
// replace conditional on the session's current version; a stale write
// surfaces ErrVersionConflict and applies nothing.
type SessionRepository interface {
	Create(ctx context.Context, session *models.UserSession) error
	GetByID(ctx context.Context, id string) (*models.UserSession, error)
	Replace(ctx context.Context, session *models.UserSession) error
}

// Repository aggregates the per-entity repositories.
type Repository interface {
	Catalog() CatalogRepository
	Session() SessionRepository
}
