package repository

import (
	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll(db *gorm.DB) ([]entity.Category, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Category, error)
}
