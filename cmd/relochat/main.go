package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mrmovin/relochat"
	"github.com/mrmovin/relochat/chat"
	"github.com/mrmovin/relochat/csv"
	"github.com/mrmovin/relochat/gemini"
	reloslog "github.com/mrmovin/relochat/slog"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Loader and Bot are exposed for end-to-end testing.
	Loader relochat.DatasetLoader
	Bot    *chat.Bot
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Environment variables may come from a .env file; a missing file is fine.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("relochat"),
		kong.Description("Answer questions about US metro rental prices."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'relochat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Wire the dataset loader. The dataset itself is read lazily on the
	// first data question.
	m.Loader = reloslog.NewLoggingLoader(csv.NewLoader(cli.Data), logger)
	deps.Loader = m.Loader

	m.Bot = &chat.Bot{Loader: m.Loader}

	// Polishing is opt-in and requires a Gemini API key.
	if polishRequested(cli, cmd) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; answers will not be polished.")
		} else {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				// Polishing is best-effort; a bad client never blocks answers.
				fmt.Fprintf(stderr, "failed to connect to Gemini API: %s\n", err)
			} else {
				m.Bot.Polisher = reloslog.NewLoggingPolisher(gemini.NewPolisher(client, ""), logger)
			}
		}
	}

	deps.Bot = m.Bot

	return kongCtx.Run(deps)
}

func polishRequested(cli *CLI, cmd string) bool {
	switch cmd {
	case "chat":
		return cli.Chat.Polish
	case "ask":
		return cli.Ask.Polish
	}
	return false
}
