package nxask

import "context"

// Generator produces answers with a hosted completion model.
type Generator interface {
	// GenerateGeneral answers a chat message that is not about a Cisco command.
	GenerateGeneral(ctx context.Context, message string) (string, error)

	// GenerateGrounded answers a command question using every chunk, in order,
	// as context. Chunks are not ranked or truncated.
	GenerateGrounded(ctx context.Context, chunks []*Chunk, question string) (string, error)
}
