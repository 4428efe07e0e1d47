package schedule

import (
	"sort"
	"strings"
	"time"

	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
)

// Filter applies the category, date-range and search criteria to the given
// appointments. The three predicates are AND-combined and the input order is
// preserved. Day boundaries are resolved in loc: the From day starts at
// 00:00:00 and the To day ends at 23:59:59.999999999.
func Filter(appointments []entity.Appointment, filter entity.AppointmentFilter, loc *time.Location) []entity.Appointment {
	if filter.Empty() {
		return appointments
	}

	result := make([]entity.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		if !matchesCategory(&appointment, filter.CategoryIDs) {
			continue
		}
		if !matchesDateRange(&appointment, filter.From, filter.To, loc) {
			continue
		}
		if !matchesTerm(&appointment, filter.Term) {
			continue
		}
		result = append(result, appointment)
	}
	return result
}

func matchesCategory(appointment *entity.Appointment, categoryIDs []uuid.UUID) bool {
	if len(categoryIDs) == 0 {
		return true
	}
	for _, id := range categoryIDs {
		if appointment.CategoryID == id {
			return true
		}
	}
	return false
}

func matchesDateRange(appointment *entity.Appointment, from, to *time.Time, loc *time.Location) bool {
	if from != nil {
		dayStart := DayStart(*from, loc)
		if appointment.Start.Before(dayStart) {
			return false
		}
	}
	if to != nil {
		dayEnd := DayEnd(*to, loc)
		if appointment.Start.After(dayEnd) {
			return false
		}
	}
	return true
}

func matchesTerm(appointment *entity.Appointment, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	haystacks := []string{
		appointment.Title,
		appointment.Notes,
		appointment.Location,
		appointment.Patient.Firstname,
		appointment.Patient.Lastname,
		appointment.Patient.FullName(),
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// DayStart returns 00:00:00 of t's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayEnd returns the last nanosecond of t's calendar day in loc.
func DayEnd(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// SameDay reports whether both instants fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	return al.Year() == bl.Year() && al.Month() == bl.Month() && al.Day() == bl.Day()
}

// DayGroup is one calendar day and the appointments starting on it.
type DayGroup struct {
	Day          time.Time
	Appointments []entity.Appointment
}

// GroupByDay partitions appointments by their local calendar day in loc.
// Every appointment lands in exactly one group, groups are sorted ascending
// by day and the input order is kept within each group.
func GroupByDay(appointments []entity.Appointment, loc *time.Location) []DayGroup {
	index := make(map[time.Time]int)
	groups := make([]DayGroup, 0)

	for _, appointment := range appointments {
		day := DayStart(appointment.Start, loc)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DayGroup{Day: day})
		}
		groups[i].Appointments = append(groups[i].Appointments, appointment)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.Before(groups[j].Day)
	})
	return groups
}

// ByDay returns the appointments starting on the given calendar day in loc,
// preserving input order. Used for the per-cell buckets of both grids.
func ByDay(appointments []entity.Appointment, day time.Time, loc *time.Location) []entity.Appointment {
	var result []entity.Appointment
	for _, appointment := range appointments {
		if SameDay(appointment.Start, day, loc) {
			result = append(result, appointment)
		}
	}
	return result
}

// AvailableCategories deduplicates the categories referenced by the given
// appointments. The first occurrence of each id wins.
func AvailableCategories(appointments []entity.Appointment) []entity.Category {
	seen := make(map[uuid.UUID]bool)
	var categories []entity.Category
	for _, appointment := range appointments {
		if seen[appointment.CategoryID] {
			continue
		}
		seen[appointment.CategoryID] = true
		categories = append(categories, appointment.Category)
	}
	return categories
}
