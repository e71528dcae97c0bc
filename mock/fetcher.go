package mock

import (
	"context"

	"github.com/fwojciec/nxask"
)

var _ nxask.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of nxask.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
