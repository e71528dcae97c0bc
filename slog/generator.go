package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/nxask"
)

// Ensure LoggingGenerator implements nxask.Generator.
var _ nxask.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator and logs every completion call.
type LoggingGenerator struct {
	next   nxask.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next nxask.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// GenerateGeneral delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) GenerateGeneral(ctx context.Context, message string) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"mode", nxask.ModeGeneral,
			"bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateGeneral(ctx, message)
}

// GenerateGrounded delegates to the wrapped generator and logs the call.
func (g *LoggingGenerator) GenerateGrounded(ctx context.Context, chunks []*nxask.Chunk, question string) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"mode", nxask.ModeGrounded,
			"chunks", len(chunks),
			"bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateGrounded(ctx, chunks, question)
}
