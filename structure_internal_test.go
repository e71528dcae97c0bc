package nxask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line    string
		want    section
		isTitle bool
	}{
		{"Syntax:", sectionSyntax, true},
		{"2. Command: show version", sectionSyntax, true},
		{"Key Parameters", sectionParameters, true},
		{"Options", sectionParameters, true},
		{"**Examples**", sectionExamples, true},
		{"Usage:", sectionExamples, true},
		{"Notes or warnings", sectionNotes, true},
		{"Important", sectionNotes, true},
		{"Syntax: see the Example below", sectionSyntax, true},
		{"switch# show vlan", sectionDescription, false},
		{"syntax: lowercase is content", sectionDescription, false},
	}

	for _, tt := range tests {
		got, ok := headerSection(tt.line)
		assert.Equal(t, tt.isTitle, ok, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}
