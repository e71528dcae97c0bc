package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/nxask"
)

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Assistant nxask.Assistant
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider     string        `enum:"gemini,openai" default:"gemini" env:"NXASK_PROVIDER" help:"Completion provider (gemini, openai)"`
	Model        string        `env:"NXASK_MODEL" help:"Model name (provider default when empty)"`
	LogLevel     string        `default:"info" env:"LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
	FetchTimeout time.Duration `default:"0s" env:"NXASK_FETCH_TIMEOUT" help:"Documentation fetch timeout (0 uses the transport default)"`
	FetchRPS     float64       `name:"fetch-rps" default:"0" env:"NXASK_FETCH_RPS" help:"Maximum documentation fetches per second (0 is unlimited)"`
	CountTokens  bool          `env:"NXASK_COUNT_TOKENS" help:"Log the token size of the documentation context"`

	Serve ServeCmd `cmd:"" help:"Serve the chat API over HTTP"`
	Ask   AskCmd   `cmd:"" help:"Answer a single message and print the reply"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string   `default:":8080" env:"NXASK_ADDR" help:"Listen address"`
	CORSOrigin []string `name:"cors-origin" env:"NXASK_CORS_ORIGINS" help:"Allowed CORS origin (repeatable; all origins when unset)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Message string `arg:"" help:"Message or show command to answer"`
	JSON    bool   `help:"Print the reply as the API's JSON envelope"`
}
