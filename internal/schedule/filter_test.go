package schedule_test

import (
	"testing"
	"time"

	"care-scheduler/internal/domain/entity"
	"care-scheduler/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	doctorCategory  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	therapyCategory = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func newAppointment(title string, start time.Time, categoryID uuid.UUID, patient entity.Patient) entity.Appointment {
	return entity.Appointment{
		ID:         uuid.New(),
		Title:      title,
		Start:      start,
		End:        start.Add(time.Hour),
		CategoryID: categoryID,
		Category:   entity.Category{ID: categoryID},
		Patient:    patient,
	}
}

func TestFilter_EmptyFilterReturnsInputUnchanged(t *testing.T) {
	loc := time.UTC
	appointments := []entity.Appointment{
		newAppointment("Checkup", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		newAppointment("Physio", time.Date(2025, 3, 11, 14, 0, 0, 0, loc), therapyCategory, entity.Patient{}),
	}

	result := schedule.Filter(appointments, entity.AppointmentFilter{}, loc)

	assert.Equal(t, appointments, result)
}

func TestFilter_ByCategory(t *testing.T) {
	loc := time.UTC
	appointments := []entity.Appointment{
		newAppointment("Checkup", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		newAppointment("Physio", time.Date(2025, 3, 11, 14, 0, 0, 0, loc), therapyCategory, entity.Patient{}),
		newAppointment("Follow-up", time.Date(2025, 3, 12, 10, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
	}

	filter := entity.AppointmentFilter{CategoryIDs: []uuid.UUID{doctorCategory}}
	result := schedule.Filter(appointments, filter, loc)

	require.Len(t, result, 2)
	assert.Equal(t, "Checkup", result[0].Title)
	assert.Equal(t, "Follow-up", result[1].Title)
}

func TestFilter_DateRangeBoundaries(t *testing.T) {
	loc := time.UTC
	from := time.Date(2025, 3, 10, 15, 30, 0, 0, loc) // time-of-day must not matter
	to := time.Date(2025, 3, 12, 8, 0, 0, 0, loc)

	tests := []struct {
		name    string
		start   time.Time
		matches bool
	}{
		{"midnight on from day is included", time.Date(2025, 3, 10, 0, 0, 0, 0, loc), true},
		{"just before from day is excluded", time.Date(2025, 3, 9, 23, 59, 59, 0, loc), false},
		{"late on to day is included", time.Date(2025, 3, 12, 23, 59, 0, 0, loc), true},
		{"midnight after to day is excluded", time.Date(2025, 3, 13, 0, 0, 0, 0, loc), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			appointments := []entity.Appointment{
				newAppointment("Visit", tc.start, doctorCategory, entity.Patient{}),
			}
			filter := entity.AppointmentFilter{From: &from, To: &to}
			result := schedule.Filter(appointments, filter, loc)

			if tc.matches {
				assert.Len(t, result, 1)
			} else {
				assert.Empty(t, result)
			}
		})
	}
}

func TestFilter_SearchTerm(t *testing.T) {
	loc := time.UTC
	mueller := entity.Patient{Firstname: "Anna", Lastname: "Mueller"}
	schmidt := entity.Patient{Firstname: "Karl", Lastname: "Schmidt"}

	appointments := []entity.Appointment{
		newAppointment("Dental checkup", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), doctorCategory, mueller),
		newAppointment("Physio", time.Date(2025, 3, 11, 14, 0, 0, 0, loc), therapyCategory, schmidt),
	}
	appointments[1].Notes = "bring referral letter"
	appointments[1].Location = "Praxis Nord"

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"title match is case-insensitive", "DENTAL", []string{"Dental checkup"}},
		{"notes match", "referral", []string{"Physio"}},
		{"location match", "praxis", []string{"Physio"}},
		{"lastname match", "mueller", []string{"Dental checkup"}},
		{"full name match", "anna mueller", []string{"Dental checkup"}},
		{"no match", "x-ray", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := schedule.Filter(appointments, entity.AppointmentFilter{Term: tc.term}, loc)

			var titles []string
			for _, a := range result {
				titles = append(titles, a.Title)
			}
			assert.Equal(t, tc.want, titles)
		})
	}
}

func TestFilter_CombinesPredicatesWithAnd(t *testing.T) {
	loc := time.UTC
	from := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)

	appointments := []entity.Appointment{
		// Right category, wrong date.
		newAppointment("Checkup", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		// Right category and date.
		newAppointment("Checkup", time.Date(2025, 3, 12, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		// Right date, wrong category.
		newAppointment("Checkup", time.Date(2025, 3, 12, 10, 0, 0, 0, loc), therapyCategory, entity.Patient{}),
	}

	filter := entity.AppointmentFilter{
		CategoryIDs: []uuid.UUID{doctorCategory},
		From:        &from,
		Term:        "checkup",
	}
	result := schedule.Filter(appointments, filter, loc)

	require.Len(t, result, 1)
	assert.Equal(t, time.Date(2025, 3, 12, 9, 0, 0, 0, loc), result[0].Start)
}

func TestFilter_InvertedRangePassesThrough(t *testing.T) {
	loc := time.UTC
	inverted := newAppointment("Backwards", time.Date(2025, 3, 10, 14, 0, 0, 0, loc), doctorCategory, entity.Patient{})
	inverted.End = inverted.Start.Add(-time.Hour)
	require.True(t, inverted.InvalidTimeRange())

	result := schedule.Filter([]entity.Appointment{inverted}, entity.AppointmentFilter{Term: "backwards"}, loc)

	assert.Len(t, result, 1)
}

func TestGroupByDay_ExhaustiveDisjointAndOrdered(t *testing.T) {
	loc := time.UTC
	appointments := []entity.Appointment{
		newAppointment("B", time.Date(2025, 3, 11, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		newAppointment("A", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		newAppointment("C", time.Date(2025, 3, 11, 14, 0, 0, 0, loc), therapyCategory, entity.Patient{}),
	}

	groups := schedule.GroupByDay(appointments, loc)

	require.Len(t, groups, 2)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), groups[0].Day)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, loc), groups[1].Day)

	// Every appointment lands in exactly one group.
	total := 0
	for _, group := range groups {
		total += len(group.Appointments)
		for _, a := range group.Appointments {
			assert.True(t, schedule.SameDay(a.Start, group.Day, loc))
		}
	}
	assert.Equal(t, len(appointments), total)

	// Input order is kept within a group.
	require.Len(t, groups[1].Appointments, 2)
	assert.Equal(t, "B", groups[1].Appointments[0].Title)
	assert.Equal(t, "C", groups[1].Appointments[1].Title)
}

func TestGroupByDay_UsesDisplayTimezoneForDayKeys(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 23:30 UTC on March 10 is already March 11 in Berlin.
	lateEvening := newAppointment("Late", time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC), doctorCategory, entity.Patient{})

	groups := schedule.GroupByDay([]entity.Appointment{lateEvening}, berlin)

	require.Len(t, groups, 1)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, berlin), groups[0].Day)
}

func TestByDay_PreservesInputOrder(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, loc)
	appointments := []entity.Appointment{
		newAppointment("Second", time.Date(2025, 3, 11, 14, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		newAppointment("Other day", time.Date(2025, 3, 12, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
		newAppointment("First", time.Date(2025, 3, 11, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{}),
	}

	bucket := schedule.ByDay(appointments, day, loc)

	require.Len(t, bucket, 2)
	assert.Equal(t, "Second", bucket[0].Title)
	assert.Equal(t, "First", bucket[1].Title)
}

func TestAvailableCategories_DeduplicatesByFirstOccurrence(t *testing.T) {
	loc := time.UTC
	first := newAppointment("A", time.Date(2025, 3, 10, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{})
	first.Category.Label = "Doctor"
	duplicate := newAppointment("B", time.Date(2025, 3, 11, 9, 0, 0, 0, loc), doctorCategory, entity.Patient{})
	duplicate.Category.Label = "Doctor (stale)"
	other := newAppointment("C", time.Date(2025, 3, 12, 9, 0, 0, 0, loc), therapyCategory, entity.Patient{})
	other.Category.Label = "Therapy"

	categories := schedule.AvailableCategories([]entity.Appointment{first, duplicate, other})

	require.Len(t, categories, 2)
	assert.Equal(t, "Doctor", categories[0].Label)
	assert.Equal(t, "Therapy", categories[1].Label)
}
