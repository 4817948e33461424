package httpx

import (
	"errors"
	"net/http"

	"github.com/gencertify/gencertify/internal/domain/model"
	"github.com/gencertify/gencertify/internal/service"
)

// ChatHandlers provides HTTP handlers for the certification assistant.
type ChatHandlers struct {
	Svc *service.ChatService
}

// SendMessage handles one chat turn.
func (h *ChatHandlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req model.SendChatMessageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.SendMessage(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err, "chat_failed")
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// History handles chat history fetches.
func (h *ChatHandlers) History(w http.ResponseWriter, r *http.Request) {
	orgID, sessionID := r.PathValue("organization_id"), r.PathValue("session_id")
	if orgID == "" || sessionID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_path",
			Err:     errors.New("organization id and session id are required"),
		})
		return
	}

	messages, err := h.Svc.History(r.Context(), orgID, sessionID)
	if err != nil {
		WriteServiceError(w, err, "history_failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"messages":   messages,
	})
}

func registerChatRoutes(mux *http.ServeMux, h *ChatHandlers) {
	mux.HandleFunc("POST /api/chat/message", h.SendMessage)
	mux.HandleFunc("GET /api/chat/history/{organization_id}/{session_id}", h.History)
}
