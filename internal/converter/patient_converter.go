package converter

import (
	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:        patient.ID,
		Firstname: patient.Firstname,
		Lastname:  patient.Lastname,
		Pronoun:   patient.Pronoun,
		Email:     patient.Email,
		CareLevel: patient.CareLevel,
		Active:    patient.Active,
		CreatedAt: patient.CreatedAt,
	}
	if !patient.BirthDate.IsZero() {
		response.BirthDate = patient.BirthDate.Format("2006-01-02")
	}
	if !patient.ActiveSince.IsZero() {
		response.ActiveSince = patient.ActiveSince.Format("2006-01-02")
	}

	return response
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
