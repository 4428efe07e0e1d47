package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// CreateAppointmentRequest carries local wall-clock timestamps; the usecase
// binds them to the configured display timezone.
type CreateAppointmentRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Start       string    `json:"start" validate:"required,datetime=2006-01-02T15:04"`
	End         string    `json:"end" validate:"required,datetime=2006-01-02T15:04"`
	Location    string    `json:"location" validate:"required,max=200"`
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Notes       string    `json:"notes" validate:"omitempty,max=2000"`
	Attachments []string  `json:"attachments" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Start       *string    `json:"start" validate:"omitempty,datetime=2006-01-02T15:04"`
	End         *string    `json:"end" validate:"omitempty,datetime=2006-01-02T15:04"`
	Location    *string    `json:"location" validate:"omitempty,max=200"`
	PatientID   *uuid.UUID `json:"patient_id" validate:"omitempty"`
	CategoryID  *uuid.UUID `json:"category_id" validate:"omitempty"`
	Notes       *string    `json:"notes" validate:"omitempty,max=2000"`
	Attachments *[]string  `json:"attachments" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID         `json:"id"`
	Title            string            `json:"title"`
	Start            time.Time         `json:"start"`
	End              time.Time         `json:"end"`
	Location         string            `json:"location"`
	Notes            string            `json:"notes,omitempty"`
	Attachments      []string          `json:"attachments,omitempty"`
	InvalidTimeRange bool              `json:"invalid_time_range"`
	Category         *CategoryResponse `json:"category,omitempty"`
	Patient          *PatientResponse  `json:"patient,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
