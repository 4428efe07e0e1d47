package http

import (
	"net/http"

	"care-scheduler/internal/delivery/http/handler"
	"care-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	referenceHandler   *handler.ReferenceHandler
	viewHandler        *handler.ViewHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	referenceHandler *handler.ReferenceHandler,
	viewHandler *handler.ViewHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		referenceHandler:   referenceHandler,
		viewHandler:        viewHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointment management
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/upcoming", r.appointmentHandler.GetUpcomingAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/past", r.appointmentHandler.GetPastAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/load-past", r.appointmentHandler.LoadPastAppointments).Methods(http.MethodPost)
	api.HandleFunc("/appointments/refresh", r.appointmentHandler.RefreshAppointments).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Reference data for the creation form
	api.HandleFunc("/categories", r.referenceHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.referenceHandler.GetPatients).Methods(http.MethodGet)

	// View projections
	api.HandleFunc("/views/list", r.viewHandler.GetListView).Methods(http.MethodGet)
	api.HandleFunc("/views/week", r.viewHandler.GetWeekView).Methods(http.MethodGet)
	api.HandleFunc("/views/month", r.viewHandler.GetMonthView).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
