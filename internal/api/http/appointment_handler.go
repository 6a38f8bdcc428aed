package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/service"
)

type AppointmentHandler struct {
	appointmentSvc service.AppointmentService
}

func NewAppointmentHandler(appointmentSvc service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentSvc: appointmentSvc}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	var req struct {
		PropertyID string `json:"property_id"`
		Date       string `json:"date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	appointment, err := h.appointmentSvc.RequestBooking(r.Context(), *principal, req.PropertyID, req.Date)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	appointments, err := h.appointmentSvc.ListMine(r.Context(), *principal)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	appointment, err := h.appointmentSvc.Get(r.Context(), *principal, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	appointment, err := h.appointmentSvc.SetStatus(r.Context(), *principal, mux.Vars(r)["id"], domain.AppointmentStatus(req.Status))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, appointment)
}
