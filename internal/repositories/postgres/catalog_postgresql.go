package postgres

import (
	"context"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type CatalogPostgreSQL struct {
	db *gorm.DB
}

func NewCatalogPostgreSQL(db *gorm.DB) repositories.CatalogRepository {
	return &CatalogPostgreSQL{db: db}
}

func (r CatalogPostgreSQL) GetTestByID(ctx context.Context, id uint) (*models.Test, error) {
	var test models.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("test_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	test.QuestionsCount = int(count)

	return &test, nil
}

func (r CatalogPostgreSQL) GetAllTests(ctx context.Context) ([]*models.Test, error) {
	var tests []*models.Test
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tests).Error; err != nil {
		return nil, err
	}

	for _, test := range tests {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Question{}).
			Where("test_id = ?", test.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		test.QuestionsCount = int(count)
	}

	return tests, nil
}

// GetQuestionsByTestID returns questions ordered by ascending id. This is the
// canonical session ordering; callers must not re-sort the result.
func (r CatalogPostgreSQL) GetQuestionsByTestID(ctx context.Context, testID uint) ([]*models.Question, error) {
	var questions []*models.Question
	if err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.id asc")
		}).
		Where("test_id = ?", testID).
		Order("id asc").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r CatalogPostgreSQL) GetQuestionByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_options.id asc")
		}).
		First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r CatalogPostgreSQL) CountQuestionsByTestID(ctx context.Context, testID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("test_id = ?", testID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r CatalogPostgreSQL) CreateTest(ctx context.Context, test *models.Test) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r CatalogPostgreSQL) CreateQuestions(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(questions).Error
}
