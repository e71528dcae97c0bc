package nxask

// Chunk is a bounded slice of a document used as model context.
// Chunks keep document order; Index is the position within the document.
type Chunk struct {
	Index     int    `json:"index"`
	Content   string `json:"content"`
	SourceURL string `json:"sourceUrl"`
	Category  string `json:"category"`
}

// Splitter divides a document into ordered, overlapping chunks.
type Splitter interface {
	Split(doc *Document) []*Chunk
}
