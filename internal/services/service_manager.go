package services

import (
	"github.com/SAP-F-2025/quiz-service/internal/cache"
	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
)

// ServiceManager aggregates the service layer for handler wiring.
type ServiceManager interface {
	Quiz() QuizService
	Catalog() CatalogService
	Import() ImportService
}

type serviceManager struct {
	quiz    QuizService
	catalog CatalogService
	importS ImportService
}

func NewServiceManager(
	repo repositories.Repository,
	questionCache cache.QuestionCache,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
) ServiceManager {
	return &serviceManager{
		quiz:    NewQuizService(repo, questionCache, publisher, logger, validator),
		catalog: NewCatalogService(repo, logger),
		importS: NewImportService(repo, logger, validator),
	}
}

func (m *serviceManager) Quiz() QuizService       { return m.quiz }
func (m *serviceManager) Catalog() CatalogService { return m.catalog }
func (m *serviceManager) Import() ImportService   { return m.importS }
