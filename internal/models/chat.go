package models

// Turn is a single message in a conversation. It is kept as a raw JSON map
// rather than a struct so that fields the relay does not understand (whatever
// the browser or the backend attaches to a message) survive the round trip
// unchanged. The relay only ever appends turns and reads "content".
type Turn map[string]any

// NewUserTurn builds a user-role turn carrying the given text.
func NewUserTurn(text string) Turn {
	return Turn{"role": "user", "content": text}
}

// Content returns the turn's content field, or "" when absent or non-string.
func (t Turn) Content() string {
	s, _ := t["content"].(string)
	return s
}

// AttachImage sets a single-element images list on the turn, the shape the
// vision model expects.
func (t Turn) AttachImage(b64 string) {
	t["images"] = []string{b64}
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Text    string `json:"text"`
	Image   string `json:"image,omitempty"` // base64, optional
	History []Turn `json:"history"`
}

// ChatResponse is the reply returned to the browser. History is the caller's
// history extended by the new user turn and, on success, the assistant turn.
type ChatResponse struct {
	Response string `json:"response"`
	History  []Turn `json:"history"`
}

// ModelsResponse reports which backend models the relay routes to.
type ModelsResponse struct {
	TextModel   string `json:"text_model"`
	VisionModel string `json:"vision_model"`
}

// API Error response
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
