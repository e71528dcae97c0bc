package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nxask"
	"github.com/fwojciec/nxask/assist"
	"github.com/fwojciec/nxask/gemini"
	nxgoquery "github.com/fwojciec/nxask/goquery"
	nxhttp "github.com/fwojciec/nxask/http"
	"github.com/fwojciec/nxask/openai"
	nxslog "github.com/fwojciec/nxask/slog"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine; the environment is used as is.
	_ = godotenv.Load()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up credentials. Defaults to os.Getenv.
	Getenv func(string) string

	// Assistant answers messages. When nil, Run wires one from the flags.
	Assistant nxask.Assistant

	fetcher nxask.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Close releases the resources opened by Run.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nxask"),
		kong.Description("Answer questions about Cisco NX-OS show commands."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nxask --help' to see available commands")
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

	deps.Logger, err = newLogger(cli.LogLevel, stderr)
	if err != nil {
		return err
	}

	if m.Assistant == nil {
		if m.Assistant, err = m.wire(ctx, cli, stderr, deps.Logger); err != nil {
			return err
		}
	}
	deps.Assistant = m.Assistant

	return kongCtx.Run(deps)
}

// wire builds the pipeline for the configured provider.
func (m *Main) wire(ctx context.Context, cli *CLI, stderr io.Writer, logger *slog.Logger) (nxask.Assistant, error) {
	generator, err := m.newGenerator(ctx, cli, stderr)
	if err != nil {
		return nil, err
	}

	m.fetcher = nxslog.NewLoggingFetcher(
		nxhttp.NewFetcher(
			nxhttp.WithTimeout(cli.FetchTimeout),
			nxhttp.WithRateLimit(cli.FetchRPS),
		),
		logger,
	)

	a := &assist.Assistant{
		Fetcher:   m.fetcher,
		Cleaner:   nxgoquery.NewCleaner(),
		Splitter:  nxask.NewRecursiveSplitter(nxask.DefaultChunkSize, nxask.DefaultChunkOverlap),
		Generator: nxslog.NewLoggingGenerator(generator, logger),
		Logger:    logger,
	}

	if cli.CountTokens {
		if cli.Provider != providerGemini {
			logger.Warn("token counting is only available for gemini models", "provider", cli.Provider)
		} else {
			tokenCounter, err := gemini.NewTokenCounter(cli.Model)
			if err != nil {
				return nil, fmt.Errorf("failed to create token counter: %w", err)
			}
			a.TokenCounter = tokenCounter
		}
	}

	return a, nil
}

func (m *Main) newGenerator(ctx context.Context, cli *CLI, stderr io.Writer) (nxask.Generator, error) {
	switch cli.Provider {
	case providerOpenAI:
		apiKey := m.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set. Create a key at https://platform.openai.com/api-keys")
			return nil, nxask.Errorf(nxask.EINVALID, "OPENAI_API_KEY not set")
		}
		client := openai.NewClient(apiKey, m.Getenv("OPENAI_BASE_URL"))
		return openai.NewGenerator(client, cli.Model), nil

	default:
		apiKey := m.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, nxask.Errorf(nxask.EINVALID, "GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewGenerator(client, cli.Model), nil
	}
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nxask.Errorf(nxask.EINVALID, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
