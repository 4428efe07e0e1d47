package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a person receiving care.
type Patient struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Firstname   string    `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname    string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Pronoun     string    `gorm:"type:varchar(30)" json:"pronoun,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	BirthDate   time.Time `gorm:"type:date" json:"birth_date"`
	CareLevel   int       `gorm:"not null;default:0" json:"care_level"`
	Active      bool      `gorm:"not null;default:true;index" json:"active"`
	ActiveSince time.Time `gorm:"type:date" json:"active_since"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// FullName returns "firstname lastname", the form used for search matching.
func (p *Patient) FullName() string {
	return p.Firstname + " " + p.Lastname
}
