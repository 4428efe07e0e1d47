package converter

import (
	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// The inverted-time-range flag is computed here: the data layer tolerates
// end < start, the presentation layer surfaces it.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:               appointment.ID,
		Title:            appointment.Title,
		Start:            appointment.Start,
		End:              appointment.End,
		Location:         appointment.Location,
		Notes:            appointment.Notes,
		Attachments:      appointment.Attachments,
		InvalidTimeRange: appointment.InvalidTimeRange(),
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}

	if appointment.Category.ID != uuid.Nil {
		response.Category = CategoryToResponse(&appointment.Category)
	}
	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToResponse(&appointment.Patient)
	}

	return response
}

// AppointmentsToResponses converts a slice of entities, preserving order.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
