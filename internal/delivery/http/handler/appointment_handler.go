package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"care-scheduler/internal/delivery/dto"
	"care-scheduler/internal/usecase"
	"care-scheduler/pkg/response"
	"care-scheduler/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp format, use YYYY-MM-DDTHH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), appointmentID, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		case usecase.ErrInvalidTimestamp:
			response.Error(w, http.StatusBadRequest, "Invalid timestamp format, use YYYY-MM-DDTHH:MM", nil)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), appointmentID); err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}

func (h *AppointmentHandler) GetUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetUpcoming(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) GetPastAppointments(w http.ResponseWriter, r *http.Request) {
	before := r.URL.Query().Get("before")
	if before == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter before is required, use YYYY-MM-DD", nil)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	appointments, err := h.appointmentUsecase.GetPast(r.Context(), before, limit)
	if err != nil {
		if err == usecase.ErrInvalidDate {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// LoadPastAppointments extends the shared list one page into the past.
// While another page is already loading this is a silent no-op.
func (h *AppointmentHandler) LoadPastAppointments(w http.ResponseWriter, r *http.Request) {
	if err := h.appointmentUsecase.LoadPast(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to load past appointments")
		return
	}

	response.Success(w, http.StatusOK, "Past appointments loaded", nil)
}

func (h *AppointmentHandler) RefreshAppointments(w http.ResponseWriter, r *http.Request) {
	if err := h.appointmentUsecase.Refresh(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to refresh appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments refreshed", nil)
}
