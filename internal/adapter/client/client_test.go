package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"google.golang.org/genai"

	"intent-relay/internal/domain/entity"
)

var conversation = []entity.Message{
	{Role: entity.RoleSystem, Content: "You are a programming professor."},
	{Role: entity.RoleUser, Content: "what is a goroutine?"},
	{Role: entity.RoleAssistant, Content: "A lightweight thread."},
	{Role: entity.RoleUser, Content: " and a channel? "},
}

func TestEchoClient_Complete(t *testing.T) {
	req := require.New(t)

	out, err := NewEchoClient().Complete(context.Background(), entity.Completion{Messages: conversation})
	req.NoError(err)
	req.Equal("and a channel?", out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewEchoClient().Complete(ctx, entity.Completion{Messages: conversation})
	req.ErrorIs(err, entity.ErrUpstream)
}

func TestToGeminiContents(t *testing.T) {
	req := require.New(t)

	system, contents := toGeminiContents(conversation)

	req.Equal("You are a programming professor.", system)
	req.Len(contents, 3)
	req.Equal(string(genai.RoleUser), contents[0].Role)
	req.Equal(string(genai.RoleModel), contents[1].Role)
	req.Equal("A lightweight thread.", contents[1].Parts[0].Text)
}

func TestToLangchainMessages(t *testing.T) {
	req := require.New(t)

	msgs := toLangchainMessages(conversation)

	req.Len(msgs, 4)
	req.Equal(llms.ChatMessageTypeSystem, msgs[0].Role)
	req.Equal(llms.ChatMessageTypeHuman, msgs[1].Role)
	req.Equal(llms.ChatMessageTypeAI, msgs[2].Role)
	req.Equal(llms.TextContent{Text: " and a channel? "}, msgs[3].Parts[0])
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("should report missing credentials at call time, not construction", func(t *testing.T) {
		for _, provider := range []string{ProviderAzure, ProviderOpenAI, ProviderGemini} {
			req := require.New(t)
			model, err := New(ctx, provider, Settings{})
			req.NoError(err, provider)

			_, err = model.Complete(ctx, entity.Completion{Messages: conversation})
			req.ErrorIs(err, entity.ErrMissingConfiguration, provider)
		}
	})

	t.Run("should reject unknown providers", func(t *testing.T) {
		_, err := New(ctx, "bard", Settings{})
		require.Error(t, err)
	})
}
