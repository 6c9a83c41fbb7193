package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"intent-relay/internal/domain/entity"
	"intent-relay/internal/domain/repository"
)

const classifyTemplate = `Your job is to classify intent.

Choose one of the following intents:
%s

User: %s
Intent:`

type Classifier struct {
	model     repository.ChatModel
	modelName string
	log       *slog.Logger
}

func NewClassifier(model repository.ChatModel, modelName string, log *slog.Logger) *Classifier {
	return &Classifier{model: model, modelName: modelName, log: log}
}

// Classify never fails: model errors and unknown labels both resolve to entity.FallbackIntent.
func (c *Classifier) Classify(ctx context.Context, message string) entity.Intent {
	raw, err := c.model.Complete(ctx, entity.Completion{
		Messages:    []entity.Message{{Role: entity.RoleUser, Content: classifyPrompt(message)}},
		Temperature: 0,
		Model:       c.modelName,
	})
	if err != nil {
		c.log.Warn("intent classification failed, using fallback",
			slog.String("fallback", entity.FallbackIntent.String()),
			slog.Any("error", err))
		return entity.FallbackIntent
	}

	token := firstToken(raw)
	intent, ok := entity.ParseIntent(token)
	if !ok {
		c.log.Debug("unrecognised intent label", slog.String("label", token))
		return entity.ResolveIntent(token)
	}
	return intent
}

func classifyPrompt(message string) string {
	options := make([]string, len(entity.KnownIntents))
	for i, intent := range entity.KnownIntents {
		options[i] = "- " + intent.String()
	}
	return fmt.Sprintf(classifyTemplate, strings.Join(options, "\n"), message)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
