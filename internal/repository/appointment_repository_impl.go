package repository

import (
	"errors"
	"time"

	"care-scheduler/internal/domain/entity"
	domainRepo "care-scheduler/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Category").Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Category").Preload("Patient").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindUpcoming(db *gorm.DB, from time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Category").Preload("Patient").
		Where("start_at >= ?", from).
		Order("start_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindPast(db *gorm.DB, before time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Category").Preload("Patient").
		Where("start_at < ?", before).
		Order("start_at DESC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Category").Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return affected.RowsAffected, affected.Error
}
