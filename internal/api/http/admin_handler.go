package http

import (
	"net/http"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/service"
)

// AdminHandler serves the master oversight views.
type AdminHandler struct {
	appointmentSvc service.AppointmentService
	userSvc        service.UserService
}

func NewAdminHandler(appointmentSvc service.AppointmentService, userSvc service.UserService) *AdminHandler {
	return &AdminHandler{appointmentSvc: appointmentSvc, userSvc: userSvc}
}

func (h *AdminHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	appointments, err := h.appointmentSvc.ListAll(r.Context(), *principal)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, appointments)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	users, err := h.userSvc.ListUsers(r.Context(), *principal)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}
