package nxask

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ShowCommandsBaseURL is the Nexus 9000 "Using Show Commands" guide that
// every documentation page lives under.
const ShowCommandsBaseURL = "https://www.cisco.com/c/en/us/td/docs/switches/datacenter/nexus9000/sw/7-x/command_references/show_commands/b_Using_Show_Commands/"

// FallbackCategory is used when a command starts with a letter that has no
// chapter of its own.
const FallbackCategory = 'a'

// sourceChapters maps a command's first letter to its chapter page.
// The guide has no chapters for j, y and z.
var sourceChapters = map[rune]string{
	'a': "b_Using_Show_Commands_chapter_011000.html",
	'b': "b_Using_Show_Commands_chapter_010.html",
	'c': "b_Using_Show_Commands_chapter_011.html",
	'd': "b_Using_Show_Commands_chapter_0100.html",
	'e': "b_Using_Show_Commands_chapter_0101.html",
	'f': "b_Using_Show_Commands_chapter_0110.html",
	'g': "b_Using_Show_Commands_chapter_0111.html",
	'h': "b_Using_Show_Commands_chapter_01000.html",
	'i': "b_Using_Show_Commands_chapter_01001.html",
	'k': "b_Using_Show_Commands_chapter_01010.html",
	'l': "b_Using_Show_Commands_chapter_01011.html",
	'm': "b_Using_Show_Commands_chapter_01100.html",
	'n': "b_Using_Show_Commands_chapter_01101.html",
	'o': "b_Using_Show_Commands_chapter_01110.html",
	'p': "b_Using_Show_Commands_chapter_01111.html",
	'q': "b_Using_Show_Commands_chapter_010000.html",
	'r': "b_Using_Show_Commands_chapter_010001.html",
	's': "b_Using_Show_Commands_chapter_010010.html",
	't': "b_Using_Show_Commands_chapter_010011.html",
	'u': "b_Using_Show_Commands_chapter_010100.html",
	'v': "b_Using_Show_Commands_chapter_010101.html",
	'w': "b_Using_Show_Commands_chapter_010110.html",
	'x': "b_Using_Show_Commands_chapter_010111.html",
}

// Source identifies the documentation page for a command query.
type Source struct {
	URL string `json:"url"`

	// Category is the letter extracted from the command, kept even when the
	// lookup fell back to FallbackCategory. Empty for empty input.
	Category string `json:"category"`
}

// SourceURL returns the chapter URL for a letter. The lookup ignores case.
func SourceURL(letter rune) (string, bool) {
	chapter, ok := sourceChapters[unicode.ToLower(letter)]
	if !ok {
		return "", false
	}
	return ShowCommandsBaseURL + chapter, true
}

// ResolveSource picks the documentation page for a command query.
// "show " is skipped so that "show vlan brief" resolves by 'v'.
// It never fails: unknown letters resolve to the FallbackCategory page.
func ResolveSource(text string) Source {
	category := CategoryOf(text)

	r, _ := utf8.DecodeRuneInString(category)
	url, ok := SourceURL(r)
	if !ok {
		url, _ = SourceURL(FallbackCategory)
	}

	return Source{URL: url, Category: category}
}

// CategoryOf extracts the lowercase letter that classifies a command.
func CategoryOf(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if rest, ok := strings.CutPrefix(lower, "show "); ok {
		lower = strings.TrimSpace(rest)
	}
	if lower == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(lower)
	return string(r)
}
