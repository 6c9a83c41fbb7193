//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../../mocks/mock_chat_model.go -package=mocks
package repository

import (
	"context"
	"intent-relay/internal/domain/entity"
)

// ChatModel is a hosted completion service. One call, one attempt.
type ChatModel interface {
	Complete(ctx context.Context, req entity.Completion) (string, error)
}
