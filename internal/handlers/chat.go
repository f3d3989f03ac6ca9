package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"axiom-backend/internal/models"
)

// apologyPrefix opens the response text when the backend cannot be reached;
// the underlying error is appended so the user sees what went wrong.
const apologyPrefix = "Sorry, something went wrong while contacting the Axiom engine."

// chatBackend is the slice of the Ollama service the relay needs.
type chatBackend interface {
	TextModel() string
	VisionModel() string
	Chat(ctx context.Context, model string, messages []models.Turn) (models.Turn, error)
}

type ChatHandler struct {
	backend chatBackend
}

func NewChatHandler(backend chatBackend) *ChatHandler {
	return &ChatHandler{backend: backend}
}

// Chat relays one user message (plus the caller-owned history) to the
// inference backend and echoes the history back extended with the new turns.
// Backend failures are reported in-band: the browser still gets a 200, the
// response text carries the error, and the history keeps the user turn but
// no assistant turn.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Text is required", r))
		return
	}

	model := h.backend.TextModel()
	turn := models.NewUserTurn(req.Text)
	if req.Image != "" {
		// An attached image switches the request to the vision model.
		model = h.backend.VisionModel()
		turn.AttachImage(req.Image)
		log.Printf("Image detected, routing to vision model %s", model)
	}

	history := append(req.History, turn)

	log.Printf("Relaying chat to backend with model %s (%d turns)", model, len(history))

	assistant, err := h.backend.Chat(r.Context(), model, history)
	if err != nil {
		log.Printf("Backend communication error: %v", err)
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Response: fmt.Sprintf("%s Details: %v", apologyPrefix, err),
			History:  history,
		})
		return
	}

	history = append(history, assistant)
	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: assistant.Content(),
		History:  history,
	})
}
