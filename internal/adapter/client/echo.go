package client

import (
	"context"
	"strings"

	"intent-relay/internal/domain/entity"
)

const ProviderEcho = "echo"

// EchoClient answers with the last user turn. Useful for running the relay without credentials.
type EchoClient struct{}

func NewEchoClient() *EchoClient { return &EchoClient{} }

func (EchoClient) Complete(ctx context.Context, req entity.Completion) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &entity.UpstreamError{Provider: ProviderEcho, Err: err}
	}
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == entity.RoleUser {
			return strings.TrimSpace(req.Messages[i].Content), nil
		}
	}
	return "", nil
}
