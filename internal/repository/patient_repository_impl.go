package repository

import (
	"errors"

	"care-scheduler/internal/domain/entity"
	domainRepo "care-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindAll(db *gorm.DB, activeOnly bool) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.Order("lastname ASC, firstname ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
