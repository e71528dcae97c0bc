package nxask

import (
	"context"
	"time"
)

// TimestampFormat is ISO 8601 with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in UTC using TimestampFormat.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// GeneralAnswer is the reply to a general chat message.
type GeneralAnswer struct {
	Answer   string          `json:"answer"`
	Metadata GeneralMetadata `json:"metadata"`
}

// GeneralMetadata describes a general reply.
type GeneralMetadata struct {
	Timestamp string `json:"timestamp"`
	QueryType string `json:"queryType"`
}

// Reply is the outcome of one message. Exactly one of General and Command
// is set, matching Kind.
type Reply struct {
	Kind    QueryKind
	General *GeneralAnswer
	Command *StructuredAnswer
}

// Data returns the payload for the set branch.
func (r *Reply) Data() any {
	if r.Kind == CommandQuery {
		return r.Command
	}
	return r.General
}

// Assistant answers chat messages.
type Assistant interface {
	// Reply classifies the message and answers it.
	// Returns a *FetchError when the documentation page cannot be retrieved
	// and a *GenerationError when the completion call fails.
	Reply(ctx context.Context, message string) (*Reply, error)
}
