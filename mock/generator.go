package mock

import (
	"context"

	"github.com/fwojciec/nxask"
)

var _ nxask.Generator = (*Generator)(nil)

// Generator is a mock implementation of nxask.Generator.
type Generator struct {
	GenerateGeneralFn  func(ctx context.Context, message string) (string, error)
	GenerateGroundedFn func(ctx context.Context, chunks []*nxask.Chunk, question string) (string, error)
}

func (g *Generator) GenerateGeneral(ctx context.Context, message string) (string, error) {
	return g.GenerateGeneralFn(ctx, message)
}

func (g *Generator) GenerateGrounded(ctx context.Context, chunks []*nxask.Chunk, question string) (string, error) {
	return g.GenerateGroundedFn(ctx, chunks, question)
}
