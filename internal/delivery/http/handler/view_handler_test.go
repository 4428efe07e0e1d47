package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/delivery/http/handler"
	"care-scheduler/internal/domain/entity"
	"care-scheduler/internal/store"
	"care-scheduler/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock pins time for deterministic view output.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type staticSource struct {
	appointments []entity.Appointment
}

func (s staticSource) FetchUpcoming(ctx context.Context) ([]entity.Appointment, error) {
	return s.appointments, nil
}

func (s staticSource) FetchPast(ctx context.Context, before time.Time, limit int) ([]entity.Appointment, error) {
	return nil, nil
}

func seededHandler(t *testing.T, now time.Time, appointments []entity.Appointment) *handler.ViewHandler {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	s := store.New(staticSource{appointments: appointments}, log, 5)
	require.NoError(t, s.LoadInitial(context.Background()))

	return handler.NewViewHandler(s, fixedClock{now: now}, time.UTC)
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder, view interface{}) {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success)

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, view))
}

func fixtureAppointments(loc *time.Location) []entity.Appointment {
	category := entity.Category{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Label: "Doctor"}
	patient := entity.Patient{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Firstname: "Anna", Lastname: "Mueller"}

	morning := entity.Appointment{
		ID:         uuid.New(),
		Title:      "Morning checkup",
		Start:      time.Date(2025, 3, 12, 9, 0, 0, 0, loc), // Wednesday
		End:        time.Date(2025, 3, 12, 10, 0, 0, 0, loc),
		CategoryID: category.ID,
		Category:   category,
		PatientID:  patient.ID,
		Patient:    patient,
	}
	afternoon := entity.Appointment{
		ID:         uuid.New(),
		Title:      "Physio session",
		Start:      time.Date(2025, 3, 13, 14, 30, 0, 0, loc), // Thursday
		End:        time.Date(2025, 3, 13, 16, 0, 0, 0, loc),
		CategoryID: category.ID,
		Category:   category,
		PatientID:  patient.ID,
		Patient:    patient,
	}
	return []entity.Appointment{morning, afternoon}
}

func TestGetListView_GroupsByDayAndFlagsToday(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/list", nil)
	rec := httptest.NewRecorder()
	h.GetListView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.ListViewResponse
	decodeView(t, rec, &view)

	assert.Equal(t, 2, view.Total)
	require.Len(t, view.Days, 2)
	assert.Equal(t, "2025-03-12", view.Days[0].Date)
	assert.True(t, view.Days[0].Today)
	assert.Equal(t, "2025-03-13", view.Days[1].Date)
	assert.False(t, view.Days[1].Today)
	require.Len(t, view.Days[0].Appointments, 1)
	assert.Equal(t, "Morning checkup", view.Days[0].Appointments[0].Title)
}

func TestGetListView_AppliesSearchFilter(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/list?q=physio", nil)
	rec := httptest.NewRecorder()
	h.GetListView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.ListViewResponse
	decodeView(t, rec, &view)

	assert.Equal(t, 1, view.Total)
	require.Len(t, view.Days, 1)
	assert.Equal(t, "2025-03-13", view.Days[0].Date)
}

func TestGetListView_RejectsMalformedCategoryID(t *testing.T) {
	now := time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC)
	h := seededHandler(t, now, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/list?categories=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	h.GetListView(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWeekView_PositionsEventsAndIndicator(t *testing.T) {
	// Wednesday morning, inside the visible window.
	now := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/week", nil)
	rec := httptest.NewRecorder()
	h.GetWeekView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.WeekViewResponse
	decodeView(t, rec, &view)

	assert.Equal(t, "2025-03-10", view.WeekStart)
	require.Len(t, view.Days, 7)
	require.Len(t, view.TimeSlots, 15)
	assert.Equal(t, "06:00", view.TimeSlots[0])

	// 09:30 is 3.5 hours into the visible window.
	require.NotNil(t, view.NowOffset)
	assert.InDelta(t, 21, *view.NowOffset, 1e-9)

	wednesday := view.Days[2]
	assert.Equal(t, "2025-03-12", wednesday.Date)
	assert.True(t, wednesday.Today)
	require.Len(t, wednesday.Appointments, 1)
	assert.InDelta(t, 18, wednesday.Appointments[0].Top, 1e-9)
	assert.InDelta(t, 6, wednesday.Appointments[0].Height, 1e-9)

	thursday := view.Days[3]
	require.Len(t, thursday.Appointments, 1)
	assert.InDelta(t, 51, thursday.Appointments[0].Top, 1e-9)
	assert.InDelta(t, 9, thursday.Appointments[0].Height, 1e-9)
}

func TestGetWeekView_NoIndicatorOutsideVisibleHours(t *testing.T) {
	now := time.Date(2025, 3, 12, 22, 0, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/week", nil)
	rec := httptest.NewRecorder()
	h.GetWeekView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.WeekViewResponse
	decodeView(t, rec, &view)

	assert.Nil(t, view.NowOffset)
}

func TestGetWeekView_NoIndicatorWhenTodayOutsideAnchoredWeek(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/week?anchor=2025-03-20", nil)
	rec := httptest.NewRecorder()
	h.GetWeekView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.WeekViewResponse
	decodeView(t, rec, &view)

	assert.Equal(t, "2025-03-17", view.WeekStart)
	assert.Nil(t, view.NowOffset)
}

func TestGetMonthView_GridAndSelectedDay(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/month?day=2025-03-13", nil)
	rec := httptest.NewRecorder()
	h.GetMonthView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.MonthViewResponse
	decodeView(t, rec, &view)

	assert.Equal(t, "2025-03", view.Month)
	require.Len(t, view.Cells, 42)
	// March 1st 2025 is a Saturday, so the grid starts Monday February 24th.
	assert.Equal(t, "2025-02-24", view.Cells[0].Date)
	assert.False(t, view.Cells[0].InMonth)

	require.NotNil(t, view.SelectedDay)
	assert.Equal(t, "2025-03-13", view.SelectedDay.Date)
	assert.False(t, view.SelectedDay.Today)
	require.Len(t, view.SelectedDay.Appointments, 1)
	assert.Equal(t, "Physio session", view.SelectedDay.Appointments[0].Title)
}

func TestGetMonthView_DefaultsSelectedDayToToday(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	h := seededHandler(t, now, fixtureAppointments(time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/month", nil)
	rec := httptest.NewRecorder()
	h.GetMonthView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var view dto.MonthViewResponse
	decodeView(t, rec, &view)

	require.NotNil(t, view.SelectedDay)
	assert.Equal(t, "2025-03-12", view.SelectedDay.Date)
	assert.True(t, view.SelectedDay.Today)
}

func TestGetMonthView_RejectsMalformedAnchor(t *testing.T) {
	now := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	h := seededHandler(t, now, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/month?anchor=march", nil)
	rec := httptest.NewRecorder()
	h.GetMonthView(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
