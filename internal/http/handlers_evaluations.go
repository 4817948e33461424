// Package httpx provides the HTTP handlers and utilities for the gencertify API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gencertify/gencertify/internal/domain/model"
	"github.com/gencertify/gencertify/internal/service"
)

// EvaluationHandlers provides HTTP handlers for evaluation runs.
type EvaluationHandlers struct {
	Svc *service.EvaluationService
}

// Start handles requests to start a new certification evaluation. The run
// executes in the background; the response carries the id to poll with.
func (h *EvaluationHandlers) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartEvaluationRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.Svc.Start(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, "start_failed")
		return
	}

	WriteJSON(w, http.StatusAccepted, map[string]string{
		"status":        "success",
		"message":       "evaluation started",
		"evaluation_id": id,
	})
}

// GetStatus handles evaluation status polls.
func (h *EvaluationHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	orgID, evalID := r.PathValue("organization_id"), r.PathValue("evaluation_id")
	if orgID == "" || evalID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id and evaluation id are required"),
		})
		return
	}

	status, err := h.Svc.GetStatus(r.Context(), orgID, evalID)
	if err != nil {
		WriteServiceError(w, err, "status_failed")
		return
	}

	WriteJSON(w, http.StatusOK, status)
}

// GetResults handles evaluation result fetches. A run that has not completed
// yields a status envelope instead of results.
func (h *EvaluationHandlers) GetResults(w http.ResponseWriter, r *http.Request) {
	orgID, evalID := r.PathValue("organization_id"), r.PathValue("evaluation_id")
	if orgID == "" || evalID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id and evaluation id are required"),
		})
		return
	}

	result, envelope, err := h.Svc.GetResults(r.Context(), orgID, evalID)
	if err != nil {
		WriteServiceError(w, err, "results_failed")
		return
	}
	if envelope != nil {
		WriteJSON(w, http.StatusOK, envelope)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

func registerEvaluationRoutes(mux *http.ServeMux, h *EvaluationHandlers) {
	mux.HandleFunc("POST /api/evaluation/start", h.Start)
	mux.HandleFunc("GET /api/evaluation/status/{organization_id}/{evaluation_id}", h.GetStatus)
	mux.HandleFunc("GET /api/evaluation/results/{organization_id}/{evaluation_id}", h.GetResults)
}
