package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mama165/sdk-go/logs"
)

// Version is stamped at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type Globals struct {
	EnvFile string `help:"Optional .env file merged into the environment." default:".env" name:"env-file"`
}

type CLI struct {
	Globals

	Serve    ServeCommand    `cmd:"serve" default:"1" help:"Start the chat relay HTTP server."`
	Ask      AskCommand      `cmd:"ask" help:"Relay a single message and print the reply."`
	Classify ClassifyCommand `cmd:"classify" help:"Print the intent a message routes to."`
	Profiles ProfilesCommand `cmd:"profiles" help:"List the built-in relay profiles."`
	Version  VersionCommand  `cmd:"version" help:"Print the relay version."`
}

func main() {
	var cli CLI
	ctx := context.Background()
	kctx := kong.Parse(&cli,
		kong.Name("intent-relay"),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
		kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := logs.GetLoggerFromString("ERROR")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}
