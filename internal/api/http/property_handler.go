package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/service"
	"usespace-backend/internal/utils"
)

type PropertyHandler struct {
	catalogSvc      service.CatalogService
	availabilitySvc service.AvailabilityService
}

func NewPropertyHandler(catalogSvc service.CatalogService, availabilitySvc service.AvailabilityService) *PropertyHandler {
	return &PropertyHandler{catalogSvc: catalogSvc, availabilitySvc: availabilitySvc}
}

type propertyRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Dimensions   string `json:"dimensions"`
	PropertyType string `json:"property_type"`
	Value        string `json:"value"`
	ImageURL     string `json:"image_url"`
	IsAvailable  bool   `json:"is_available"`
}

func (r propertyRequest) toInput() service.PropertyInput {
	return service.PropertyInput{
		Title:        r.Title,
		Description:  r.Description,
		Location:     r.Location,
		Dimensions:   r.Dimensions,
		PropertyType: r.PropertyType,
		Value:        r.Value,
		ImageURL:     r.ImageURL,
		IsAvailable:  r.IsAvailable,
	}
}

// List serves the browse screen; an optional q parameter switches to
// search.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		properties []domain.Property
		err        error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		properties, err = h.catalogSvc.Search(r.Context(), q)
	} else {
		properties, err = h.catalogSvc.ListAll(r.Context())
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	properties, err := h.catalogSvc.ListMine(r.Context(), *principal)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.catalogSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Availability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if _, err := utils.ParseDate(date); err != nil {
		respondError(w, domain.NewValidationError("date", "must be yyyy-mm-dd"))
		return
	}
	available := h.availabilitySvc.IsAvailable(r.Context(), mux.Vars(r)["id"], date)
	respondJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	property, err := h.catalogSvc.Create(r.Context(), *principal, req.toInput())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, property)
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	var req propertyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	property, err := h.catalogSvc.Update(r.Context(), *principal, mux.Vars(r)["id"], req.toInput())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(r.Context())
	if !ok {
		respondError(w, domain.ErrPermissionDenied)
		return
	}
	if err := h.catalogSvc.Delete(r.Context(), *principal, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
