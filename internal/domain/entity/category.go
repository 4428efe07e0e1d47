package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies appointments for filtering and display.
// It is referenced, never owned, by appointments.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Label       string    `gorm:"type:varchar(100);not null" json:"label"`
	Icon        string    `gorm:"type:varchar(16);not null" json:"icon"`
	Color       string    `gorm:"type:varchar(16);not null" json:"color"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
