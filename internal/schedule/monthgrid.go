package schedule

import "time"

// MonthGridCells is always 6 full weeks, so month boundaries never change
// the grid shape.
const MonthGridCells = 42

// MonthCell is a single day cell in the month grid.
type MonthCell struct {
	Date    time.Time
	Day     int
	InMonth bool
	Today   bool
}

// MonthGrid returns the 42 cells covering anchor's month, starting on the
// Monday of the week containing the first of the month. today drives the
// Today flag; both dates are resolved in loc.
func MonthGrid(anchor, today time.Time, loc *time.Location) []MonthCell {
	anchorLocal := anchor.In(loc)
	firstOfMonth := time.Date(anchorLocal.Year(), anchorLocal.Month(), 1, 0, 0, 0, 0, loc)

	offset := (int(firstOfMonth.Weekday()) + 6) % 7 // Monday = 0
	gridStart := firstOfMonth.AddDate(0, 0, -offset)

	cells := make([]MonthCell, MonthGridCells)
	for i := range cells {
		date := gridStart.AddDate(0, 0, i)
		cells[i] = MonthCell{
			Date:    date,
			Day:     date.Day(),
			InMonth: date.Month() == firstOfMonth.Month(),
			Today:   SameDay(date, today, loc),
		}
	}
	return cells
}
