package nxask

import "strings"

// Limits on structured answer lists.
const (
	MaxParameters = 5
	MaxExamples   = 3
	MaxNotes      = 2
)

// StructuredAnswer is a command answer split into labeled parts for display.
type StructuredAnswer struct {
	Command      string         `json:"command"`
	Syntax       string         `json:"syntax"`
	Description  string         `json:"description"`
	Parameters   []string       `json:"parameters"`
	Examples     []string       `json:"examples"`
	Notes        []string       `json:"notes"`
	FullResponse string         `json:"fullResponse"`
	Metadata     AnswerMetadata `json:"metadata"`
}

// AnswerMetadata describes where a command answer came from.
type AnswerMetadata struct {
	SourceURL       string `json:"sourceUrl"`
	DocumentCount   int    `json:"documentCount"`
	CommandCategory string `json:"commandCategory"`
	Timestamp       string `json:"timestamp"`
	QueryType       string `json:"queryType"`
}

// section is the part of an answer the structurer is currently reading.
type section int

const (
	sectionDescription section = iota
	sectionSyntax
	sectionParameters
	sectionExamples
	sectionNotes
)

// sectionHeaders lists header keywords in match order.
var sectionHeaders = []struct {
	section  section
	keywords []string
}{
	{sectionSyntax, []string{"Syntax:", "Command:"}},
	{sectionParameters, []string{"Parameter", "Option"}},
	{sectionExamples, []string{"Example", "Usage:"}},
	{sectionNotes, []string{"Note", "Important"}},
}

// headerSection reports the section a header line opens.
// It returns false for content lines.
func headerSection(line string) (section, bool) {
	for _, h := range sectionHeaders {
		for _, kw := range h.keywords {
			if strings.Contains(line, kw) {
				return h.section, true
			}
		}
	}
	return sectionDescription, false
}

// Structure parses a free-text model answer into a StructuredAnswer.
// It never fails; anything it cannot place falls back to defaults:
// syntax to the command itself and description to the whole answer.
func Structure(raw, command string) *StructuredAnswer {
	var (
		syntax      string
		description strings.Builder
		parameters  = []string{}
		examples    = []string{}
		notes       = []string{}
	)

	current := sectionDescription
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if next, ok := headerSection(line); ok {
			current = next
			continue
		}

		switch current {
		case sectionSyntax:
			if syntax == "" && (strings.Contains(line, "show ") || strings.Contains(line, "(config)")) {
				syntax = line
			}
		case sectionParameters:
			if strings.ContainsAny(line, "•-|") {
				parameters = append(parameters, line)
			}
		case sectionExamples:
			if strings.Contains(line, "show ") || strings.ContainsAny(line, "#$") {
				examples = append(examples, line)
			}
		case sectionNotes:
			notes = append(notes, line)
		default:
			description.WriteString(line)
			description.WriteString(" ")
		}
	}

	if syntax == "" {
		syntax = command
	}
	desc := strings.TrimSpace(description.String())
	if desc == "" {
		desc = raw
	}

	return &StructuredAnswer{
		Command:      command,
		Syntax:       syntax,
		Description:  desc,
		Parameters:   truncate(parameters, MaxParameters),
		Examples:     truncate(examples, MaxExamples),
		Notes:        truncate(notes, MaxNotes),
		FullResponse: raw,
	}
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
