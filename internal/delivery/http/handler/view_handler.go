package handler

import (
	"net/http"
	"strings"
	"time"

	"care-scheduler/internal/converter"
	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/domain/entity"
	"care-scheduler/internal/schedule"
	"care-scheduler/internal/store"
	"care-scheduler/pkg/response"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ViewHandler serves the three read projections of the shared appointment
// list: the day-grouped list, the week grid and the month grid. Each request
// works on a snapshot; the store is never mutated here.
type ViewHandler struct {
	appointments *store.Store
	clock        store.Clock
	loc          *time.Location
}

func NewViewHandler(appointments *store.Store, clock store.Clock, loc *time.Location) *ViewHandler {
	return &ViewHandler{
		appointments: appointments,
		clock:        clock,
		loc:          loc,
	}
}

func (h *ViewHandler) GetListView(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	now := h.clock.Now()
	filtered := schedule.Filter(h.appointments.Snapshot(), filter, h.loc)
	groups := schedule.GroupByDay(filtered, h.loc)

	days := make([]dto.DayGroupResponse, len(groups))
	for i, group := range groups {
		days[i] = dto.DayGroupResponse{
			Date:         group.Day.Format(dateLayout),
			Today:        schedule.SameDay(group.Day, now, h.loc),
			Appointments: converter.AppointmentsToResponses(group.Appointments),
		}
	}

	view := &dto.ListViewResponse{
		Days:  days,
		Total: len(filtered),
	}
	response.Success(w, http.StatusOK, "List view computed successfully", view)
}

func (h *ViewHandler) GetWeekView(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	anchor, ok := h.parseAnchor(w, r)
	if !ok {
		return
	}

	now := h.clock.Now()
	filtered := schedule.Filter(h.appointments.Snapshot(), filter, h.loc)
	weekDays := schedule.WeekDays(anchor, h.loc)

	days := make([]dto.WeekDayResponse, len(weekDays))
	todayInWeek := false
	for i, day := range weekDays {
		today := schedule.SameDay(day, now, h.loc)
		if today {
			todayInWeek = true
		}

		bucket := schedule.ByDay(filtered, day, h.loc)
		positioned := make([]dto.PositionedAppointmentResponse, len(bucket))
		for j := range bucket {
			position := schedule.PositionEvent(&bucket[j], h.loc)
			positioned[j] = dto.PositionedAppointmentResponse{
				AppointmentResponse: *converter.AppointmentToResponse(&bucket[j]),
				Top:                 position.Top,
				Height:              position.Height,
			}
		}

		days[i] = dto.WeekDayResponse{
			Date:         day.Format(dateLayout),
			Today:        today,
			Appointments: positioned,
		}
	}

	view := &dto.WeekViewResponse{
		WeekStart: weekDays[0].Format(dateLayout),
		TimeSlots: schedule.TimeSlots(),
		Days:      days,
	}
	// The indicator is only meaningful when today is part of the shown
	// week and the current time falls inside the visible hours.
	if todayInWeek {
		if offset, visible := schedule.NowOffset(now, h.loc); visible {
			view.NowOffset = &offset
		}
	}

	response.Success(w, http.StatusOK, "Week view computed successfully", view)
}

func (h *ViewHandler) GetMonthView(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	anchor, ok := h.parseAnchor(w, r)
	if !ok {
		return
	}

	now := h.clock.Now()
	filtered := schedule.Filter(h.appointments.Snapshot(), filter, h.loc)
	grid := schedule.MonthGrid(anchor, now, h.loc)

	cells := make([]dto.MonthCellResponse, len(grid))
	for i, cell := range grid {
		cells[i] = dto.MonthCellResponse{
			Date:         cell.Date.Format(dateLayout),
			Day:          cell.Day,
			InMonth:      cell.InMonth,
			Today:        cell.Today,
			Appointments: converter.AppointmentsToResponses(schedule.ByDay(filtered, cell.Date, h.loc)),
		}
	}

	view := &dto.MonthViewResponse{
		Month: anchor.In(h.loc).Format("2006-01"),
		Cells: cells,
	}

	// Sidebar bucket for the selected day, defaulting to today.
	selectedDay := now
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, h.loc)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid day, use YYYY-MM-DD", nil)
			return
		}
		selectedDay = parsed
	}
	view.SelectedDay = &dto.DayGroupResponse{
		Date:         schedule.DayStart(selectedDay, h.loc).Format(dateLayout),
		Today:        schedule.SameDay(selectedDay, now, h.loc),
		Appointments: converter.AppointmentsToResponses(schedule.ByDay(filtered, selectedDay, h.loc)),
	}

	response.Success(w, http.StatusOK, "Month view computed successfully", view)
}

// parseFilter reads the shared filter query parameters. It writes the error
// response itself and reports success through ok.
func (h *ViewHandler) parseFilter(w http.ResponseWriter, r *http.Request) (filter entity.AppointmentFilter, ok bool) {
	query := r.URL.Query()

	if raw := query.Get("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				response.Error(w, http.StatusBadRequest, "Invalid category ID in categories", nil)
				return filter, false
			}
			filter.CategoryIDs = append(filter.CategoryIDs, id)
		}
	}

	if raw := query.Get("from"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, h.loc)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid from date, use YYYY-MM-DD", nil)
			return filter, false
		}
		filter.From = &parsed
	}
	if raw := query.Get("to"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, h.loc)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid to date, use YYYY-MM-DD", nil)
			return filter, false
		}
		filter.To = &parsed
	}

	filter.Term = query.Get("q")
	return filter, true
}

// parseAnchor reads the anchor date driving week/month grid computation,
// defaulting to today.
func (h *ViewHandler) parseAnchor(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("anchor")
	if raw == "" {
		return h.clock.Now(), true
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, h.loc)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid anchor date, use YYYY-MM-DD", nil)
		return time.Time{}, false
	}
	return parsed, true
}
