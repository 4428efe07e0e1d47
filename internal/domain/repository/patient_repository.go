package repository

import (
	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	FindAll(db *gorm.DB, activeOnly bool) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error)
}
