package services

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
)

// CatalogService exposes the read side of the test catalog.
type CatalogService interface {
	ListTests(ctx context.Context) ([]*models.Test, error)
	GetTest(ctx context.Context, id uint) (*models.Test, error)
}

type catalogService struct {
	repo   repositories.Repository
	logger utils.Logger
}

func NewCatalogService(repo repositories.Repository, logger utils.Logger) CatalogService {
	return &catalogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *catalogService) ListTests(ctx context.Context) ([]*models.Test, error) {
	tests, err := s.repo.Catalog().GetAllTests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tests: %w", err)
	}
	return tests, nil
}

func (s *catalogService) GetTest(ctx context.Context, id uint) (*models.Test, error) {
	test, err := s.repo.Catalog().GetTestByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("failed to get test: %w", err)
	}
	return test, nil
}
