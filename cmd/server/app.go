package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mama165/sdk-go/logs"

	"intent-relay/internal/adapter/client"
	"intent-relay/internal/config"
	"intent-relay/internal/domain/entity"
	"intent-relay/internal/usecase"
)

// setup loads configuration and builds the relay. Missing backend credentials are logged
// here and only fail when a request needs the model.
func setup(ctx context.Context, g *Globals) (*config.Config, *usecase.Orchestrator, *slog.Logger, error) {
	envErr := config.LoadEnvFile(g.EnvFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)
	if envErr != nil {
		log.Debug("env file not loaded, using process environment", slog.String("path", g.EnvFile))
	}

	profile, err := entity.LookupProfile(cfg.Profile)
	if err != nil {
		return nil, nil, nil, err
	}

	if missing := cfg.Missing(); len(missing) > 0 {
		log.Warn("model backend is not fully configured; model calls will fail",
			slog.String("provider", cfg.Provider),
			slog.String("missing", strings.Join(missing, ",")))
	}

	chatModel, err := client.New(ctx, cfg.Provider, cfg.ClientSettings())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to init %s client: %w", cfg.Provider, err)
	}
	bounded := usecase.NewBoundedModel(chatModel, cfg.Provider, cfg.ModelTimeout, log)

	return cfg, usecase.NewOrchestrator(profile, bounded, cfg.ModelName(), log), log, nil
}
