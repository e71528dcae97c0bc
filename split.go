package nxask

import (
	"strings"
	"unicode/utf8"
)

// Default chunking parameters, in characters.
const (
	DefaultChunkSize    = 1500
	DefaultChunkOverlap = 300
)

// defaultSeparators go from coarse to fine: paragraph, line, sentence, word,
// and finally a hard cut between characters.
var defaultSeparators = []string{"\n\n", "\n", ". ", " ", ""}

var _ Splitter = (*RecursiveSplitter)(nil)

// RecursiveSplitter splits text at the coarsest boundary that keeps chunks
// within the size budget. Consecutive chunks share up to overlap characters.
type RecursiveSplitter struct {
	size       int
	overlap    int
	separators []string
}

// NewRecursiveSplitter creates a splitter. Non-positive size falls back to
// DefaultChunkSize; overlap is clamped to [0, size).
func NewRecursiveSplitter(size, overlap int) *RecursiveSplitter {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	return &RecursiveSplitter{
		size:       size,
		overlap:    overlap,
		separators: defaultSeparators,
	}
}

// Split divides a document into ordered chunks that inherit its URL and
// category.
func (s *RecursiveSplitter) Split(doc *Document) []*Chunk {
	if doc == nil {
		return nil
	}
	texts := s.SplitText(doc.Content)
	chunks := make([]*Chunk, 0, len(texts))
	for i, text := range texts {
		chunks = append(chunks, &Chunk{
			Index:     i,
			Content:   text,
			SourceURL: doc.URL,
			Category:  doc.Category,
		})
	}
	return chunks
}

// SplitText divides text into trimmed, non-empty chunks of at most size
// characters.
func (s *RecursiveSplitter) SplitText(text string) []string {
	return s.split(text, s.separators)
}

func (s *RecursiveSplitter) split(text string, separators []string) []string {
	// Pick the coarsest separator present in the text.
	separator := separators[len(separators)-1]
	var finer []string
	for i, sep := range separators {
		if sep == "" {
			separator = ""
			break
		}
		if strings.Contains(text, sep) {
			separator = sep
			finer = separators[i+1:]
			break
		}
	}

	var pieces []string
	if separator == "" {
		pieces = splitRunes(text)
	} else {
		pieces = strings.Split(text, separator)
	}

	var chunks, fitting []string
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		if length(piece) < s.size {
			fitting = append(fitting, piece)
			continue
		}
		if len(fitting) > 0 {
			chunks = append(chunks, s.merge(fitting, separator)...)
			fitting = nil
		}
		if len(finer) == 0 {
			if trimmed := strings.TrimSpace(piece); trimmed != "" {
				chunks = append(chunks, trimmed)
			}
		} else {
			chunks = append(chunks, s.split(piece, finer)...)
		}
	}
	if len(fitting) > 0 {
		chunks = append(chunks, s.merge(fitting, separator)...)
	}
	return chunks
}

// merge joins pieces into chunks no longer than size. When a chunk is
// emitted, pieces are dropped from the front of the window until at most
// overlap characters remain; those carry into the next chunk.
func (s *RecursiveSplitter) merge(pieces []string, separator string) []string {
	sepLen := length(separator)

	var chunks []string
	var window []string
	total := 0

	for _, piece := range pieces {
		n := length(piece)
		if total+n+joinCost(window, sepLen) > s.size && len(window) > 0 {
			if chunk := strings.TrimSpace(strings.Join(window, separator)); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > s.overlap || (total > 0 && total+n+joinCost(window, sepLen) > s.size) {
				total -= length(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}
		total += n + joinCost(window, sepLen)
		window = append(window, piece)
	}

	if chunk := strings.TrimSpace(strings.Join(window, separator)); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// joinCost is the separator length added by appending to window.
func joinCost(window []string, sepLen int) int {
	if len(window) == 0 {
		return 0
	}
	return sepLen
}

func splitRunes(text string) []string {
	out := make([]string, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
