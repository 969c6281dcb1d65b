package integrity

import (
	"autoscan/feature/endpoints/models"
	"autoscan/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		logger: logger,
	}
}

// CheckSchema compares the endpoints table with the columns the store writes.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.Endpoint{})
}
