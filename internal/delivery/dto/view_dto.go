package dto

// View projections. Dates are YYYY-MM-DD strings in the configured display
// timezone; layout offsets are in the week grid's layout units (6 per hour).

type DayGroupResponse struct {
	Date         string                `json:"date"`
	Today        bool                  `json:"today"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type ListViewResponse struct {
	Days  []DayGroupResponse `json:"days"`
	Total int                `json:"total"`
}

type PositionedAppointmentResponse struct {
	AppointmentResponse
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

type WeekDayResponse struct {
	Date         string                          `json:"date"`
	Today        bool                            `json:"today"`
	Appointments []PositionedAppointmentResponse `json:"appointments"`
}

type WeekViewResponse struct {
	WeekStart string            `json:"week_start"`
	TimeSlots []string          `json:"time_slots"`
	NowOffset *float64          `json:"now_offset,omitempty"`
	Days      []WeekDayResponse `json:"days"`
}

type MonthCellResponse struct {
	Date         string                `json:"date"`
	Day          int                   `json:"day"`
	InMonth      bool                  `json:"in_month"`
	Today        bool                  `json:"today"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type MonthViewResponse struct {
	Month       string              `json:"month"` // YYYY-MM
	Cells       []MonthCellResponse `json:"cells"`
	SelectedDay *DayGroupResponse   `json:"selected_day,omitempty"`
}
