package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentFilter is a domain-level filter applied to in-memory appointment
// lists. All criteria are AND-combined; zero values impose no restriction.
type AppointmentFilter struct {
	CategoryIDs []uuid.UUID // empty = all categories
	From        *time.Time  // inclusive, calendar-day granularity
	To          *time.Time  // inclusive, calendar-day granularity
	Term        string      // case-insensitive substring search
}

// Empty reports whether the filter imposes no restriction at all.
func (f AppointmentFilter) Empty() bool {
	return len(f.CategoryIDs) == 0 && f.From == nil && f.To == nil && f.Term == ""
}
