package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"axiom-backend/internal/models"
)

// OllamaService talks to a local Ollama server over its JSON chat API.
type OllamaService struct {
	url         string
	textModel   string
	visionModel string
	client      *http.Client
}

func NewOllamaService(url, textModel, visionModel string, timeout time.Duration) *OllamaService {
	return &OllamaService{
		url:         url,
		textModel:   textModel,
		visionModel: visionModel,
		client:      &http.Client{Timeout: timeout},
	}
}

func (s *OllamaService) TextModel() string   { return s.textModel }
func (s *OllamaService) VisionModel() string { return s.visionModel }

// Chat sends the full conversation to the backend and returns the assistant
// turn. One blocking call bounded by the client timeout, no retries. A reply
// without a message field decodes to an empty turn rather than an error.
func (s *OllamaService) Chat(ctx context.Context, model string, messages []models.Turn) (models.Turn, error) {
	payload := struct {
		Model    string        `json:"model"`
		Messages []models.Turn `json:"messages"`
		Stream   bool          `json:"stream"`
	}{
		Model:    model,
		Messages: messages,
		Stream:   false,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("backend returned %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	var out struct {
		Message models.Turn `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}
	if out.Message == nil {
		out.Message = models.Turn{}
	}
	return out.Message, nil
}
