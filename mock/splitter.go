package mock

import "github.com/fwojciec/nxask"

var _ nxask.Splitter = (*Splitter)(nil)

// Splitter is a mock implementation of nxask.Splitter.
type Splitter struct {
	SplitFn func(doc *nxask.Document) []*nxask.Chunk
}

func (s *Splitter) Split(doc *nxask.Document) []*nxask.Chunk {
	return s.SplitFn(doc)
}
