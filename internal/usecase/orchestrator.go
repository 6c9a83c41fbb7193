package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"intent-relay/internal/domain/entity"
	"intent-relay/internal/domain/repository"
)

type Orchestrator struct {
	profile    entity.Profile
	model      string
	classifier *Classifier
	dispatcher *Dispatcher
	log        *slog.Logger
}

// NewOrchestrator wires a classifier and dispatcher for profile over a single model backend.
// modelName overrides the profile's default model when non-empty.
func NewOrchestrator(profile entity.Profile, chatModel repository.ChatModel, modelName string, log *slog.Logger) *Orchestrator {
	model := lo.Ternary(modelName != "", modelName, profile.DefaultModel)
	return &Orchestrator{
		profile:    profile,
		model:      model,
		classifier: NewClassifier(chatModel, model, log),
		dispatcher: NewDispatcher(chatModel, profile.SystemPrompt),
		log:        log,
	}
}

func (u *Orchestrator) Profile() entity.Profile { return u.profile }

func (u *Orchestrator) Classify(ctx context.Context, message string) entity.Intent {
	return u.classifier.Classify(ctx, message)
}

func (u *Orchestrator) Execute(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	// 1. Validate before any remote call
	if err := req.Validate(); err != nil {
		return nil, err
	}

	turn := Turn{
		Message:     req.Message,
		Temperature: lo.FromPtrOr(req.Temperature, u.profile.DefaultTemperature),
		Model:       lo.Ternary(req.Model != "", req.Model, u.model),
		MaxTokens:   lo.FromPtrOr(req.MaxTokens, u.profile.MaxTokens),
	}

	// 2. Classify, unless this profile answers everything with the model
	intent := entity.IntentProfessorLecture
	if u.profile.Routed {
		intent = u.classifier.Classify(ctx, req.Message)
	}
	u.log.Info("routing chat message", slog.String("intent", intent.String()), slog.String("profile", u.profile.Name))

	// 3. Dispatch
	resp, err := u.dispatcher.Dispatch(ctx, intent, turn)
	if err != nil {
		return nil, err
	}
	if !u.profile.ReportIntent {
		resp.Intent = ""
	}
	return &resp, nil
}
