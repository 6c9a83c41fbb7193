package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"intent-relay/internal/domain/entity"
)

type ProfilesCommand struct{}

func (c ProfilesCommand) Run(ctx context.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Model", "Temperature", "Max Tokens", "Routed", "Intent", "System Prompt"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, p := range entity.Profiles() {
		maxTokens := "default"
		if p.MaxTokens > 0 {
			maxTokens = strconv.Itoa(p.MaxTokens)
		}
		table.Append([]string{
			p.Name,
			p.DefaultModel,
			fmt.Sprintf("%.1f", p.DefaultTemperature),
			maxTokens,
			strconv.FormatBool(p.Routed),
			strconv.FormatBool(p.ReportIntent),
			p.SystemPrompt,
		})
	}
	table.Render()
	return nil
}

type VersionCommand struct{}

func (c VersionCommand) Run(ctx context.Context) error {
	fmt.Println(Version)
	return nil
}
