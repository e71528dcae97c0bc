package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/nxask"
	main "github.com/fwojciec/nxask/cmd/nxask"
	"github.com/fwojciec/nxask/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"serve", "ask"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "--provider")
	assert.Contains(t, helpOutput, "--fetch-rps")
}

func TestMain_Run_NoCommand(t *testing.T) {
	t.Parallel()

	err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_MissingCredentials(t *testing.T) {
	t.Parallel()

	t.Run("gemini", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Getenv = noEnv
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--provider=gemini", "ask", "show vlan brief"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, nxask.EINVALID, nxask.ErrorCode(err))
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
		assert.Contains(t, stderr.String(), "aistudio.google.com")
	})

	t.Run("openai", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Getenv = noEnv
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--provider=openai", "ask", "hello"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
		assert.Contains(t, stderr.String(), "OPENAI_API_KEY")
	})
}

func TestMain_Run_InvalidFlags(t *testing.T) {
	t.Parallel()

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Assistant = &mock.Assistant{}

		err := m.Run(context.Background(), []string{"--provider=claude", "ask", "hi"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Assistant = &mock.Assistant{}

		err := m.Run(context.Background(), []string{"--log-level=loud", "ask", "hi"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Equal(t, nxask.EINVALID, nxask.ErrorCode(err))
	})
}

func TestMain_Run_Ask(t *testing.T) {
	t.Parallel()

	t.Run("prints a formatted command answer", func(t *testing.T) {
		t.Parallel()

		answer := nxask.Structure("Summarizes VLANs.\nSyntax:\nshow vlan brief", "show vlan brief")
		answer.Metadata.SourceURL = "https://example.test/v.html"
		answer.Metadata.DocumentCount = 2

		m := main.NewMain()
		m.Assistant = &mock.Assistant{
			ReplyFn: func(ctx context.Context, message string) (*nxask.Reply, error) {
				assert.Equal(t, "show vlan brief", message)
				return &nxask.Reply{Kind: nxask.CommandQuery, Command: answer}, nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "show vlan brief"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, nxask.FormatStructuredAnswer(answer), stdout.String())
		assert.Contains(t, stdout.String(), "Summarizes VLANs.")
	})

	t.Run("prints the JSON envelope", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Assistant = &mock.Assistant{
			ReplyFn: func(ctx context.Context, message string) (*nxask.Reply, error) {
				return &nxask.Reply{
					Kind: nxask.GeneralQuery,
					General: &nxask.GeneralAnswer{
						Answer:   "Hello!",
						Metadata: nxask.GeneralMetadata{Timestamp: "2026-03-14T09:26:53.589Z", QueryType: "general"},
					},
				}, nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "--json", "hello"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "general", body["type"])
		assert.Equal(t, "Hello!", body["data"].(map[string]any)["answer"])
	})

	t.Run("prints general answers as plain text", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Assistant = &mock.Assistant{
			ReplyFn: func(ctx context.Context, message string) (*nxask.Reply, error) {
				return &nxask.Reply{Kind: nxask.GeneralQuery, General: &nxask.GeneralAnswer{Answer: "Hello!"}}, nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "hello"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Hello!\n", stdout.String())
	})

	t.Run("reports pipeline failures", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Assistant = &mock.Assistant{
			ReplyFn: func(ctx context.Context, message string) (*nxask.Reply, error) {
				return nil, &nxask.FetchError{URL: "https://example.test/v.html", Err: errors.New("HTTP 500 for https://example.test/v.html")}
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "show vlan brief"}, stdout, stderr)

		require.Error(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "error: fetch https://example.test/v.html")
	})
}

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stdout := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    &bytes.Buffer{},
		Assistant: &mock.Assistant{},
	}

	cmd := &main.ServeCmd{Addr: "127.0.0.1:0"}
	err := cmd.Run(deps)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Listening on http://127.0.0.1:")
}
