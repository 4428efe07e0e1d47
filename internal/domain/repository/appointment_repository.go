package repository

import (
	"time"

	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindUpcoming returns appointments starting at or after from,
	// ascending by start, with category and patient expanded.
	FindUpcoming(db *gorm.DB, from time.Time) ([]entity.Appointment, error)
	// FindPast returns up to limit appointments starting strictly before
	// before, descending by start, with category and patient expanded.
	FindPast(db *gorm.DB, before time.Time, limit int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
