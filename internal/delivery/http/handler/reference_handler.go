package handler

import (
	"net/http"

	"care-scheduler/internal/usecase"
	"care-scheduler/pkg/response"
)

type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
	}
}

func (h *ReferenceHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.referenceUsecase.GetCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *ReferenceHandler) GetPatients(w http.ResponseWriter, r *http.Request) {
	// The creation form only offers active patients; active=false widens
	// the result to everyone.
	activeOnly := r.URL.Query().Get("active") != "false"

	patients, err := h.referenceUsecase.GetPatients(r.Context(), activeOnly)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}
