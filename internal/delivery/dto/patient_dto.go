package dto

import (
	"time"

	"github.com/google/uuid"
)

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Pronoun     string    `json:"pronoun,omitempty"`
	Email       string    `json:"email,omitempty"`
	BirthDate   string    `json:"birth_date,omitempty"` // YYYY-MM-DD
	CareLevel   int       `json:"care_level"`
	Active      bool      `json:"active"`
	ActiveSince string    `json:"active_since,omitempty"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
