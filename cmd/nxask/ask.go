package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/nxask"
)

// envelope mirrors the success body of POST /api/ai.
type envelope struct {
	Success bool   `json:"success"`
	Type    string `json:"type"`
	Data    any    `json:"data"`
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	reply, err := deps.Assistant.Reply(deps.Ctx, c.Message)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nxask.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(envelope{Success: true, Type: reply.Kind.String(), Data: reply.Data()})
	}

	if reply.Kind == nxask.CommandQuery {
		fmt.Fprint(deps.Stdout, nxask.FormatStructuredAnswer(reply.Command))
		return nil
	}
	fmt.Fprintln(deps.Stdout, reply.General.Answer)
	return nil
}
