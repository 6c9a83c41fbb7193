package client

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"intent-relay/internal/domain/entity"
)

const ProviderGemini = "gemini"

type GeminiConfig struct {
	APIKey   string // Gemini API
	Project  string // Vertex AI, used when APIKey is empty
	Location string
}

func (c GeminiConfig) configured() bool {
	return c.APIKey != "" || (c.Project != "" && c.Location != "")
}

type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient builds a client when credentials are present. With no credentials it
// returns a client whose calls fail with a ConfigurationError.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if !cfg.configured() {
		return &GeminiClient{}, nil
	}
	cc := &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	if cfg.APIKey == "" {
		cc = &genai.ClientConfig{
			Project:  cfg.Project,
			Location: cfg.Location,
			Backend:  genai.BackendVertexAI,
		}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client}, nil
}

func NewGeminiClientFromClient(c *genai.Client) *GeminiClient {
	return &GeminiClient{client: c}
}

func (g *GeminiClient) Complete(ctx context.Context, req entity.Completion) (string, error) {
	if g.client == nil {
		return "", &entity.ConfigurationError{
			Provider: ProviderGemini,
			Missing:  []string{"GEMINI_API_KEY or GOOGLE_CLOUD_PROJECT/GOOGLE_CLOUD_LOCATION"},
		}
	}

	system, contents := toGeminiContents(req.Messages)
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := g.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return "", geminiError(err)
	}
	return strings.TrimSpace(result.Text()), nil
}

// geminiError keeps the HTTP status and server message of an APIError.
func geminiError(err error) *entity.UpstreamError {
	upstream := &entity.UpstreamError{Provider: ProviderGemini, Err: err}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		upstream.Status = apiErr.Code
		upstream.Body = apiErr.Message
	}
	return upstream
}

// toGeminiContents folds system turns into one instruction and maps assistant turns to the model role.
func toGeminiContents(msgs []entity.Message) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case entity.RoleSystem:
			system = append(system, m.Content)
		case entity.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}
