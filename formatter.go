package nxask

import (
	"fmt"
	"strings"
)

// FormatStructuredAnswer renders a structured answer as plain text for
// terminal output. Empty sections are omitted.
func FormatStructuredAnswer(a *StructuredAnswer) string {
	if a == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Command: %s\n", a.Command)
	fmt.Fprintf(&sb, "Syntax:  %s\n", a.Syntax)
	if a.Description != "" {
		fmt.Fprintf(&sb, "\n%s\n", a.Description)
	}
	writeList(&sb, "Parameters", a.Parameters)
	writeList(&sb, "Examples", a.Examples)
	writeList(&sb, "Notes", a.Notes)
	if a.Metadata.SourceURL != "" {
		fmt.Fprintf(&sb, "\nSource: %s (%d chunks)\n", a.Metadata.SourceURL, a.Metadata.DocumentCount)
	}
	return sb.String()
}

func writeList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(sb, "  %s\n", item)
	}
}
