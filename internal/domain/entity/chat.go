package entity

import "strings"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the inbound body of POST /chat.
// Optional fields are pointers so an explicit 0 is distinguishable from "not sent".
type ChatRequest struct {
	Message     string   `json:"message"`
	Temperature *float64 `json:"temperature,omitempty"`
	Model       string   `json:"model,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// Validate trims the message in place and checks the optional sampling parameters.
func (r *ChatRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return ErrMessageRequired
	}
	if r.Temperature != nil && (*r.Temperature < 0 || *r.Temperature > 2) {
		return ErrInvalidTemperature
	}
	if r.MaxTokens != nil && *r.MaxTokens <= 0 {
		return ErrInvalidMaxTokens
	}
	return nil
}

type ChatResponse struct {
	Message string `json:"message"`
	Intent  string `json:"intent,omitempty"` // diagnostic, absent for profiles that don't report it
}

// Completion is one remote model call.
type Completion struct {
	Messages    []Message
	Temperature float64
	Model       string
	MaxTokens   int // 0 leaves the provider default
}
