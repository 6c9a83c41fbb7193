package client

import (
	"context"
	"fmt"

	"intent-relay/internal/domain/repository"
)

// Providers lists the accepted MODEL_PROVIDER values.
var Providers = []string{ProviderAzure, ProviderOpenAI, ProviderGemini, ProviderEcho}

type Settings struct {
	Azure  AzureConfig
	OpenAI OpenAIConfig
	Gemini GeminiConfig
}

// New builds the ChatModel for provider. Missing credentials do not fail here; they surface
// as a ConfigurationError on the first call.
func New(ctx context.Context, provider string, s Settings) (repository.ChatModel, error) {
	switch provider {
	case ProviderAzure:
		return NewAzureClient(s.Azure), nil
	case ProviderOpenAI:
		return NewOpenAIClient(s.OpenAI)
	case ProviderGemini:
		return NewGeminiClient(ctx, s.Gemini)
	case ProviderEcho:
		return NewEchoClient(), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", provider)
	}
}
