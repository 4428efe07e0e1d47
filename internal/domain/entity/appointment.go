package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Appointment represents a single scheduled patient appointment.
// Start and End are absolute instants; the display timezone is applied by
// the schedule package, never stored here.
type Appointment struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string      `gorm:"type:varchar(200);not null" json:"title"`
	Start       time.Time   `gorm:"column:start_at;not null;index" json:"start"`
	End         time.Time   `gorm:"column:end_at;not null" json:"end"`
	Location    string      `gorm:"type:varchar(200);not null" json:"location"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	PatientID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"patient_id"`
	CategoryID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"category_id"`
	Attachments StringSlice `gorm:"type:jsonb" json:"attachments,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// InvalidTimeRange reports whether the appointment ends before it starts.
// Inverted spans are tolerated throughout; the delivery layer flags them.
func (a *Appointment) InvalidTimeRange() bool {
	return a.End.Before(a.Start)
}

// StringSlice stores a list of strings as a JSONB column.
type StringSlice []string

// Value returns json value, implements driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan scans a JSONB value, implements sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*s = StringSlice(result)
	return nil
}
