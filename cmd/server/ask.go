package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"intent-relay/internal/domain/entity"
)

type AskCommand struct {
	Message     []string `arg:"" help:"The message to send."`
	Temperature *float64 `help:"Sampling temperature. Defaults to the profile's."`
	Model       string   `help:"Model override for this message."`
	MaxTokens   *int     `name:"max-tokens" help:"Completion token limit."`
}

func (c AskCommand) Run(ctx context.Context, g *Globals) error {
	_, orchestrator, _, err := setup(ctx, g)
	if err != nil {
		return err
	}
	resp, err := orchestrator.Execute(ctx, entity.ChatRequest{
		Message:     strings.Join(c.Message, " "),
		Temperature: c.Temperature,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return err
	}
	if resp.Intent != "" {
		fmt.Fprintf(os.Stderr, "intent: %s\n", resp.Intent)
	}
	fmt.Println(resp.Message)
	return nil
}

type ClassifyCommand struct {
	Message []string `arg:"" help:"The message to classify."`
}

func (c ClassifyCommand) Run(ctx context.Context, g *Globals) error {
	_, orchestrator, _, err := setup(ctx, g)
	if err != nil {
		return err
	}
	message := strings.TrimSpace(strings.Join(c.Message, " "))
	if message == "" {
		return entity.ErrMessageRequired
	}
	fmt.Println(orchestrator.Classify(ctx, message))
	return nil
}
