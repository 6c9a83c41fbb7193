package client

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"intent-relay/internal/domain/entity"
)

const ProviderOpenAI = "openai"

type OpenAIConfig struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible gateways
	Model   string // default model when a call doesn't name one
}

// OpenAIClient talks to the OpenAI chat API through langchaingo. The model is chosen per call.
type OpenAIClient struct {
	llm llms.Model
}

func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return &OpenAIClient{}, nil
	}
	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}
	return &OpenAIClient{llm: llm}, nil
}

func NewOpenAIClientFromModel(m llms.Model) *OpenAIClient {
	return &OpenAIClient{llm: m}
}

func (o *OpenAIClient) Complete(ctx context.Context, req entity.Completion) (string, error) {
	if o.llm == nil {
		return "", &entity.ConfigurationError{Provider: ProviderOpenAI, Missing: []string{"OPENAI_API_KEY"}}
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := o.llm.GenerateContent(ctx, toLangchainMessages(req.Messages), opts...)
	if isEmptyResponse(err) {
		return "", nil
	}
	if err != nil {
		return "", openAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func toLangchainMessages(msgs []entity.Message) []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(msgs))
	for _, m := range msgs {
		role := llms.ChatMessageTypeHuman
		switch m.Role {
		case entity.RoleSystem:
			role = llms.ChatMessageTypeSystem
		case entity.RoleAssistant:
			role = llms.ChatMessageTypeAI
		}
		out = append(out, llms.TextParts(role, m.Content))
	}
	return out
}

// isEmptyResponse matches both the exported sentinel and the unexported one
// langchaingo's HTTP client returns for a reply without choices.
func isEmptyResponse(err error) bool {
	return err != nil && (errors.Is(err, openai.ErrEmptyResponse) || err.Error() == "empty response")
}

// langchaingo reports non-2xx replies only as text: "API returned unexpected status code: 429[: detail]".
var openAIStatusPattern = regexp.MustCompile(`unexpected status code: (\d{3})(?::\s*(.*))?`)

func openAIError(err error) *entity.UpstreamError {
	upstream := &entity.UpstreamError{Provider: ProviderOpenAI, Err: err}
	if m := openAIStatusPattern.FindStringSubmatch(err.Error()); m != nil {
		upstream.Status, _ = strconv.Atoi(m[1])
		upstream.Body = m[2]
	}
	return upstream
}
