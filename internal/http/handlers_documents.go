package httpx

import (
	"errors"
	"net/http"

	"github.com/gencertify/gencertify/internal/domain/model"
	"github.com/gencertify/gencertify/internal/service"
)

// DocumentHandlers provides HTTP handlers for document-generation runs.
type DocumentHandlers struct {
	Svc *service.DocumentService
}

// Generate handles requests to start a document-generation run.
func (h *DocumentHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateDocumentsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.Svc.Start(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, "generate_failed")
		return
	}

	WriteJSON(w, http.StatusAccepted, map[string]string{
		"status":      "success",
		"message":     "document generation started",
		"document_id": id,
	})
}

// GetStatus handles document-generation status polls.
func (h *DocumentHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	orgID, docID := r.PathValue("organization_id"), r.PathValue("document_id")
	if orgID == "" || docID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id and document id are required"),
		})
		return
	}

	status, err := h.Svc.GetStatus(r.Context(), orgID, docID)
	if err != nil {
		WriteServiceError(w, err, "status_failed")
		return
	}

	WriteJSON(w, http.StatusOK, status)
}

// GetResults handles document-generation result fetches.
func (h *DocumentHandlers) GetResults(w http.ResponseWriter, r *http.Request) {
	orgID, docID := r.PathValue("organization_id"), r.PathValue("document_id")
	if orgID == "" || docID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id and document id are required"),
		})
		return
	}

	result, envelope, err := h.Svc.GetResults(r.Context(), orgID, docID)
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

// List handles requests for all generation records of one organization.
func (h *DocumentHandlers) List(w http.ResponseWriter, r *http.Request) {
	orgID := r.PathValue("organization_id")
	if orgID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id is required"),
		})
		return
	}

	gens, err := h.Svc.List(r.Context(), orgID)
	if err != nil {
		WriteServiceError(w, err, "list_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"documents": gens})
}

// Download redirects to the stored file of a generated document.
func (h *DocumentHandlers) Download(w http.ResponseWriter, r *http.Request) {
	orgID, fileName := r.PathValue("organization_id"), r.PathValue("file_name")
	if orgID == "" || fileName == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id and file name are required"),
		})
		return
	}

	url, err := h.Svc.DownloadURL(r.Context(), orgID, fileName)
	if err != nil {
		WriteServiceError(w, err, "download_failed")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func registerDocumentRoutes(mux *http.ServeMux, h *DocumentHandlers) {
	mux.HandleFunc("POST /api/documents/generate", h.Generate)
	mux.HandleFunc("GET /api/documents/status/{organization_id}/{document_id}", h.GetStatus)
	mux.HandleFunc("GET /api/documents/results/{organization_id}/{document_id}", h.GetResults)
	mux.HandleFunc("GET /api/documents/list/{organization_id}", h.List)
	mux.HandleFunc("GET /api/documents/download/{organization_id}/{file_name}", h.Download)
}
