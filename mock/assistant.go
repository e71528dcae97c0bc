package mock

import (
	"context"

	"github.com/fwojciec/nxask"
)

var _ nxask.Assistant = (*Assistant)(nil)

// Assistant is a mock implementation of nxask.Assistant.
type Assistant struct {
	ReplyFn func(ctx context.Context, message string) (*nxask.Reply, error)
}

func (a *Assistant) Reply(ctx context.Context, message string) (*nxask.Reply, error) {
	return a.ReplyFn(ctx, message)
}
