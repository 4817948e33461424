package httpx

import (
	"errors"
	"net/http"

	"github.com/gencertify/gencertify/internal/domain/model"
	"github.com/gencertify/gencertify/internal/service"
)

// OrganizationHandlers provides HTTP handlers for organization profile data
// and the certification catalog.
type OrganizationHandlers struct {
	Svc *service.OrganizationService
}

// Submit handles organization profile submissions.
func (h *OrganizationHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitOrganizationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	org, err := h.Svc.Submit(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, "submit_failed")
		return
	}

	WriteJSON(w, http.StatusOK, org)
}

// Get handles organization profile fetches.
func (h *OrganizationHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id is required"),
		})
		return
	}

	org, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		WriteServiceError(w, err, "get_failed")
		return
	}

	WriteJSON(w, http.StatusOK, org)
}

// Certifications lists the supported certification and document types.
func (h *OrganizationHandlers) Certifications(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Catalog())
}

func registerOrganizationRoutes(mux *http.ServeMux, h *OrganizationHandlers) {
	mux.HandleFunc("POST /api/static-input/organization", h.Submit)
	mux.HandleFunc("GET /api/static-input/organization/{id}", h.Get)
	mux.HandleFunc("GET /api/static-input/certifications", h.Certifications)
}
