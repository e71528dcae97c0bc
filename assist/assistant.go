// Package assist wires the classifier, fetcher, splitter and generator into
// the request pipeline.
package assist

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/nxask"
)

// Ensure Assistant implements the domain interfaces.
var (
	_ nxask.Assistant       = (*Assistant)(nil)
	_ nxask.DocumentFetcher = (*Assistant)(nil)
)

// Assistant answers one chat message per call. It holds no per-request state
// and is safe for concurrent use when its dependencies are.
type Assistant struct {
	Fetcher   nxask.Fetcher
	Cleaner   nxask.Cleaner
	Splitter  nxask.Splitter
	Generator nxask.Generator

	// TokenCounter, when set, measures the stuffed context before the
	// grounded call. The count is only logged.
	TokenCounter nxask.TokenCounter

	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Reply classifies message and answers it on the matching branch.
func (a *Assistant) Reply(ctx context.Context, message string) (*nxask.Reply, error) {
	kind := nxask.Classify(message)
	a.logger().Debug("classify", "kind", kind.String())
	if kind == nxask.CommandQuery {
		return a.replyCommand(ctx, message)
	}
	return a.replyGeneral(ctx, message)
}

func (a *Assistant) replyGeneral(ctx context.Context, message string) (*nxask.Reply, error) {
	answer, err := a.Generator.GenerateGeneral(ctx, message)
	if err != nil {
		return nil, &nxask.GenerationError{Mode: nxask.ModeGeneral, Err: err}
	}

	return &nxask.Reply{
		Kind: nxask.GeneralQuery,
		General: &nxask.GeneralAnswer{
			Answer: answer,
			Metadata: nxask.GeneralMetadata{
				Timestamp: nxask.FormatTimestamp(a.now()),
				QueryType: nxask.GeneralQuery.String(),
			},
		},
	}, nil
}

func (a *Assistant) replyCommand(ctx context.Context, message string) (*nxask.Reply, error) {
	src := nxask.ResolveSource(message)
	a.logger().Debug("resolve source", "url", src.URL, "category", src.Category)

	doc, err := a.FetchDocument(ctx, src)
	if err != nil {
		return nil, err
	}

	chunks := a.Splitter.Split(doc)
	a.logContextSize(ctx, src, chunks)

	raw, err := a.Generator.GenerateGrounded(ctx, chunks, message)
	if err != nil {
		return nil, &nxask.GenerationError{Mode: nxask.ModeGrounded, Err: err}
	}

	answer := nxask.Structure(raw, message)
	answer.Metadata = nxask.AnswerMetadata{
		SourceURL:       src.URL,
		DocumentCount:   len(chunks),
		CommandCategory: src.Category,
		Timestamp:       nxask.FormatTimestamp(a.now()),
		QueryType:       nxask.CommandQuery.String(),
	}

	return &nxask.Reply{Kind: nxask.CommandQuery, Command: answer}, nil
}

// FetchDocument retrieves the page at src.URL and cleans it to plain text.
// An unreachable page, a non-2xx status or an empty body yields a
// *nxask.FetchError; there is no partial-content fallback.
func (a *Assistant) FetchDocument(ctx context.Context, src nxask.Source) (*nxask.Document, error) {
	html, err := a.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return nil, &nxask.FetchError{URL: src.URL, Err: err}
	}
	if strings.TrimSpace(html) == "" {
		return nil, &nxask.FetchError{URL: src.URL, Err: errors.New("empty response body")}
	}

	content, err := a.Cleaner.Clean(html)
	if err != nil {
		return nil, &nxask.FetchError{URL: src.URL, Err: err}
	}

	return &nxask.Document{
		URL:      src.URL,
		Content:  content,
		Category: src.Category,
	}, nil
}

func (a *Assistant) logContextSize(ctx context.Context, src nxask.Source, chunks []*nxask.Chunk) {
	if a.TokenCounter == nil {
		return
	}
	tokens, err := a.TokenCounter.CountTokens(ctx, nxask.StuffChunks(chunks))
	if err != nil {
		a.logger().Warn("count context tokens", "url", src.URL, "err", err)
		return
	}
	a.logger().Info("grounded context", "url", src.URL, "chunks", len(chunks), "tokens", tokens)
}

func (a *Assistant) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Assistant) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}
