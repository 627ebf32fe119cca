package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/mrmovin/relochat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Loader relochat.DatasetLoader
	Bot    relochat.Responder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data  string `help:"Path to the rent dataset CSV." env:"RELOCHAT_DATA"`
	Debug bool   `help:"Enable verbose logging."`

	Chat   ChatCmd   `cmd:"" help:"Start an interactive chat session"`
	Ask    AskCmd    `cmd:"" help:"Answer a single question"`
	States StatesCmd `cmd:"" help:"List state codes present in the dataset"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Polish bool `short:"p" help:"Rewrite answers with Gemini (requires GEMINI_API_KEY)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Message string `arg:"" help:"Question to answer"`
	Polish  bool   `short:"p" help:"Rewrite the answer with Gemini (requires GEMINI_API_KEY)"`
}

// StatesCmd is the "states" subcommand.
type StatesCmd struct{}
