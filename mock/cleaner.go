package mock

import "github.com/fwojciec/nxask"

var _ nxask.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of nxask.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (string, error)
}

func (c *Cleaner) Clean(html string) (string, error) {
	return c.CleanFn(html)
}
