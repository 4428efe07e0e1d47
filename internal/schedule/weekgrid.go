package schedule

import (
	"fmt"
	"time"

	"care-scheduler/internal/domain/entity"
)

// Layout constants for the week grid. One hour occupies HourHeight layout
// units; the visible day runs from DayStartHour to DayEndHour.
const (
	DayStartHour   = 6
	DayEndHour     = 20
	HourHeight     = 6.0
	MinEventHeight = 0.5
	DaysPerWeek    = 7
)

// WeekStart returns midnight of the Monday starting the week of anchor,
// resolved in loc. A Sunday anchor maps to the previous Monday.
func WeekStart(anchor time.Time, loc *time.Location) time.Time {
	day := DayStart(anchor, loc)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekDays returns the seven consecutive dates of anchor's week,
// starting on Monday.
func WeekDays(anchor time.Time, loc *time.Location) []time.Time {
	start := WeekStart(anchor, loc)
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// TimeSlots returns the hourly slot labels "06:00" through "20:00".
func TimeSlots() []string {
	slots := make([]string, 0, DayEndHour-DayStartHour+1)
	for hour := DayStartHour; hour <= DayEndHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

// EventPosition is the vertical placement of an appointment in the week
// grid, in layout units from the top of the 06:00 row.
type EventPosition struct {
	Top    float64
	Height float64
}

// PositionEvent computes the placement of an appointment from its time span,
// resolved in loc. Height is clamped to a visible minimum; a negative
// duration (inverted span) clamps the same way.
func PositionEvent(appointment *entity.Appointment, loc *time.Location) EventPosition {
	start := appointment.Start.In(loc)
	startHour := float64(start.Hour()) + float64(start.Minute())/60

	duration := appointment.End.Sub(appointment.Start).Hours()
	height := duration * HourHeight
	if height < MinEventHeight {
		height = MinEventHeight
	}

	return EventPosition{
		Top:    (startHour - DayStartHour) * HourHeight,
		Height: height,
	}
}

// NowOffset computes the vertical placement of the current-time indicator.
// ok is false when now falls outside the visible 06:00-20:00 window.
func NowOffset(now time.Time, loc *time.Location) (offset float64, ok bool) {
	local := now.In(loc)
	hour := float64(local.Hour()) + float64(local.Minute())/60
	if hour < DayStartHour || hour > DayEndHour {
		return 0, false
	}
	return (hour - DayStartHour) * HourHeight, true
}
