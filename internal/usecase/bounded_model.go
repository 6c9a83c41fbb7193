package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"intent-relay/internal/domain/entity"
	"intent-relay/internal/domain/repository"
)

const DefaultModelTimeout = 25 * time.Second

// BoundedModel caps every call to the wrapped model with a timeout. It never retries.
type BoundedModel struct {
	inner    repository.ChatModel
	provider string
	timeout  time.Duration
	log      *slog.Logger
}

func NewBoundedModel(inner repository.ChatModel, provider string, timeout time.Duration, log *slog.Logger) *BoundedModel {
	if timeout <= 0 {
		timeout = DefaultModelTimeout
	}
	return &BoundedModel{inner: inner, provider: provider, timeout: timeout, log: log}
}

func (b *BoundedModel) Complete(ctx context.Context, req entity.Completion) (string, error) {
	// Scoped context so one slow upstream doesn't hang the request
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	start := time.Now()
	out, err := b.inner.Complete(callCtx, req)
	latency := time.Since(start)

	if err != nil {
		var cfgErr *entity.ConfigurationError
		var upErr *entity.UpstreamError
		if !errors.As(err, &cfgErr) && !errors.As(err, &upErr) {
			err = &entity.UpstreamError{Provider: b.provider, Err: err}
		}
		b.log.Error("model call failed",
			slog.String("provider", b.provider),
			slog.Duration("latency", latency),
			slog.Any("error", err))
		return "", err
	}

	b.log.Debug("model call complete",
		slog.String("provider", b.provider),
		slog.String("model", req.Model),
		slog.Duration("latency", latency))
	return out, nil
}
