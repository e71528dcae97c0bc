package main

import (
	"fmt"

	nxgin "github.com/fwojciec/nxask/gin"
)

// version is set at build time.
var version = "dev"

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []nxgin.Option{nxgin.WithVersion("nxask", version)}
	if len(c.CORSOrigin) > 0 {
		opts = append(opts, nxgin.WithAllowedOrigins(c.CORSOrigin...))
	}

	s := nxgin.NewServer(deps.Assistant, deps.Logger, opts...)
	s.Addr = c.Addr
	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()
	return s.Close()
}
