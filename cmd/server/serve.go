package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"intent-relay/internal/adapter/api"
)

type ServeCommand struct {
	Port string `help:"Port to listen on. Overrides PORT." default:""`
}

func (c ServeCommand) Run(ctx context.Context, g *Globals) error {
	cfg, orchestrator, log, err := setup(ctx, g)
	if err != nil {
		return err
	}
	port := cfg.Port
	if c.Port != "" {
		port = c.Port
	}

	app := fiber.New(fiber.Config{
		AppName:               "Intent Relay",
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          cfg.ModelTimeout*2 + 5*time.Second,
	})

	handler := api.NewChatHandler(orchestrator, log)
	api.SetupRouter(app, handler, api.HealthInfo{
		Version:  cfg.AppVersion,
		Env:      cfg.Env,
		Profile:  cfg.Profile,
		Provider: cfg.Provider,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Error("shutdown failed", slog.Any("error", err))
		}
	}()

	log.Info("intent relay listening",
		slog.String("port", port),
		slog.String("profile", cfg.Profile),
		slog.String("provider", cfg.Provider))
	return app.Listen(":" + port)
}
