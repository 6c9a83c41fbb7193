package usecase

import (
	"context"
	"fmt"

	"intent-relay/internal/domain/entity"
	"intent-relay/internal/domain/repository"
)

const (
	MajorSupportReply       = "Here is Department Support number: 1234567890"
	ScholarshipSupportReply = "Here is Scholarship Support number: 0987654321"
)

// Turn is the per-request input to Dispatch.
type Turn struct {
	Message     string
	Temperature float64
	Model       string
	MaxTokens   int
}

type Dispatcher struct {
	model        repository.ChatModel
	systemPrompt string
}

func NewDispatcher(model repository.ChatModel, systemPrompt string) *Dispatcher {
	return &Dispatcher{model: model, systemPrompt: systemPrompt}
}

// Dispatch answers one turn for the given intent. Only the lecture branch calls the model.
func (d *Dispatcher) Dispatch(ctx context.Context, intent entity.Intent, turn Turn) (entity.ChatResponse, error) {
	switch intent {
	case entity.IntentProfessorLecture:
		reply, err := d.model.Complete(ctx, entity.Completion{
			Messages: []entity.Message{
				{Role: entity.RoleSystem, Content: d.systemPrompt},
				{Role: entity.RoleUser, Content: turn.Message},
			},
			Temperature: turn.Temperature,
			Model:       turn.Model,
			MaxTokens:   turn.MaxTokens,
		})
		if err != nil {
			return entity.ChatResponse{}, err
		}
		return entity.ChatResponse{Message: reply, Intent: intent.String()}, nil
	case entity.IntentMajorSupport:
		return entity.ChatResponse{Message: MajorSupportReply, Intent: intent.String()}, nil
	case entity.IntentScholarshipSupport:
		return entity.ChatResponse{Message: ScholarshipSupportReply, Intent: intent.String()}, nil
	default:
		return entity.ChatResponse{
			Message: fmt.Sprintf("[fallback] intent=%s", intent),
			Intent:  intent.String(),
		}, nil
	}
}
