package postgres

import (
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	catalog repositories.CatalogRepository
	session repositories.SessionRepository
}

// NewRepository builds the aggregate repository backed by postgres.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		catalog: NewCatalogPostgreSQL(db),
		session: NewSessionPostgreSQL(db),
	}
}

func (r *repository) Catalog() repositories.CatalogRepository {
	return r.catalog
}

func (r *repository) Session() repositories.SessionRepository {
	return r.session
}
