package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"intent-relay/internal/domain/entity"
)

const ProviderAzure = "azure"

type AzureConfig struct {
	APIKey     string
	Endpoint   string // normalised to end with "/"
	Deployment string
	APIVersion string
}

// AzureClient calls an Azure OpenAI chat-completions deployment over REST.
type AzureClient struct {
	http *resty.Client
	cfg  AzureConfig
}

func NewAzureClient(cfg AzureConfig) *AzureClient {
	return NewAzureClientFromClient(resty.New(), cfg)
}

func NewAzureClientFromClient(c *resty.Client, cfg AzureConfig) *AzureClient {
	if cfg.Endpoint != "" && !strings.HasSuffix(cfg.Endpoint, "/") {
		cfg.Endpoint += "/"
	}
	return &AzureClient{http: c, cfg: cfg}
}

type azureChatRequest struct {
	Messages    []entity.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens,omitempty"`
}

type azureChatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (a *AzureClient) missing() []string {
	var missing []string
	if a.cfg.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if a.cfg.Endpoint == "" {
		missing = append(missing, "ENDPOINT_URL")
	}
	if a.cfg.Deployment == "" {
		missing = append(missing, "DEPLOYMENT_NAME")
	}
	if a.cfg.APIVersion == "" {
		missing = append(missing, "API_VERSION")
	}
	return missing
}

// Complete ignores req.Model: the deployment decides which model answers.
func (a *AzureClient) Complete(ctx context.Context, req entity.Completion) (string, error) {
	if missing := a.missing(); len(missing) > 0 {
		return "", &entity.ConfigurationError{Provider: ProviderAzure, Missing: missing}
	}

	url := fmt.Sprintf("%sopenai/deployments/%s/chat/completions", a.cfg.Endpoint, a.cfg.Deployment)
	resp, err := a.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("api-key", a.cfg.APIKey).
		SetQueryParam("api-version", a.cfg.APIVersion).
		SetBody(azureChatRequest{
			Messages:    req.Messages,
			Temperature: req.Temperature,
			MaxTokens:   req.MaxTokens,
		}).
		Post(url)
	if err != nil {
		return "", &entity.UpstreamError{Provider: ProviderAzure, Err: err}
	}
	if !resp.IsSuccess() {
		return "", &entity.UpstreamError{
			Provider: ProviderAzure,
			Status:   resp.StatusCode(),
			Body:     resp.String(),
		}
	}

	var out azureChatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", &entity.UpstreamError{Provider: ProviderAzure, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == nil {
		return "", nil
	}
	return strings.TrimSpace(*out.Choices[0].Message.Content), nil
}
