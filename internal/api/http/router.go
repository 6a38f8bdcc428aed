// Package http exposes the application over a JSON REST API under /v1.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"usespace-backend/internal/service"
)

// NewRouter assembles the full route table. Catalog browsing, search
// and availability are public; everything else requires a Bearer
// access token.
func NewRouter(
	authSvc service.AuthService,
	userSvc service.UserService,
	catalogSvc service.CatalogService,
	availabilitySvc service.AvailabilityService,
	appointmentSvc service.AppointmentService,
	imageHandler *ImageHandler,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc, userSvc)
	propertyHandler := NewPropertyHandler(catalogSvc, availabilitySvc)
	appointmentHandler := NewAppointmentHandler(appointmentSvc)
	adminHandler := NewAdminHandler(appointmentSvc, userSvc)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public auth endpoints
	v1.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	v1.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	v1.HandleFunc("/auth/firebase/register", authHandler.FirebaseRegister).Methods(http.MethodPost)
	v1.HandleFunc("/auth/firebase/login", authHandler.FirebaseLogin).Methods(http.MethodPost)
	v1.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Public catalog browsing
	v1.HandleFunc("/properties", propertyHandler.List).Methods(http.MethodGet)
	v1.HandleFunc("/properties/{id}", propertyHandler.Get).Methods(http.MethodGet)
	v1.HandleFunc("/properties/{id}/availability", propertyHandler.Availability).Methods(http.MethodGet)
	if imageHandler != nil {
		v1.HandleFunc("/images/{key}", imageHandler.Download).Methods(http.MethodGet)
	}

	// Authenticated endpoints
	protected := v1.NewRoute().Subrouter()
	protected.Use(authMiddleware(authSvc))
	protected.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/my/properties", propertyHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/properties", propertyHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/properties/{id}", propertyHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/properties/{id}", propertyHandler.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments", appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", appointmentHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", appointmentHandler.SetStatus).Methods(http.MethodPatch)
	if imageHandler != nil {
		protected.HandleFunc("/images", imageHandler.Upload).Methods(http.MethodPost)
	}
	protected.HandleFunc("/admin/appointments", adminHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/admin/users", adminHandler.ListUsers).Methods(http.MethodGet)

	return r
}
