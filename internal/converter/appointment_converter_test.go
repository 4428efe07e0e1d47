package converter_test

import (
	"testing"
	"time"

	"care-scheduler/internal/converter"
	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse_FlagsInvertedTimeRange(t *testing.T) {
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:    uuid.New(),
		Title: "Backwards",
		Start: start,
		End:   start.Add(-time.Hour),
	}

	response := converter.AppointmentToResponse(appointment)

	require.NotNil(t, response)
	assert.True(t, response.InvalidTimeRange)
}

func TestAppointmentToResponse_OmitsUnloadedRelations(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	bare := &entity.Appointment{ID: uuid.New(), Title: "Bare", Start: start, End: start.Add(time.Hour)}

	response := converter.AppointmentToResponse(bare)

	require.NotNil(t, response)
	assert.False(t, response.InvalidTimeRange)
	assert.Nil(t, response.Category)
	assert.Nil(t, response.Patient)
}

func TestAppointmentToResponse_ExpandsLoadedRelations(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	appointment := &entity.Appointment{
		ID:       uuid.New(),
		Title:    "Expanded",
		Start:    start,
		End:      start.Add(time.Hour),
		Category: entity.Category{ID: uuid.New(), Label: "Doctor"},
		Patient:  entity.Patient{ID: uuid.New(), Firstname: "Anna", Lastname: "Mueller"},
	}

	response := converter.AppointmentToResponse(appointment)

	require.NotNil(t, response.Category)
	assert.Equal(t, "Doctor", response.Category.Label)
	require.NotNil(t, response.Patient)
	assert.Equal(t, "Mueller", response.Patient.Lastname)
}
