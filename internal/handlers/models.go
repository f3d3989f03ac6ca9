package handlers

import (
	"net/http"

	"axiom-backend/internal/models"
)

// ModelsHandler reports which backend models the relay routes to, so the
// front end can display them.
type ModelsHandler struct {
	textModel   string
	visionModel string
}

func NewModelsHandler(textModel, visionModel string) *ModelsHandler {
	return &ModelsHandler{textModel: textModel, visionModel: visionModel}
}

func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ModelsResponse{
		TextModel:   h.textModel,
		VisionModel: h.visionModel,
	})
}
