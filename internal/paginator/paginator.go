package paginator

import (
	"annotext/internal/document"
)

// DefaultPageSize is the characters-per-page default when the upload does
// not specify one.
const DefaultPageSize = 1000

// Page is one fixed-size window into the document text. Start and End are
// absolute character offsets into the document.
type Page struct {
	Index int
	Start int
	End   int
	Text  string
}

// Pager slices a document into fixed-size character pages. Out-of-range
// page indexes clamp to the nearest valid page rather than failing; this is
// a UI control, not an integrity check.
type Pager struct {
	doc  *document.Document
	size int
}

// New builds a Pager. A non-positive size falls back to DefaultPageSize.
func New(doc *document.Document, size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{doc: doc, size: size}
}

// Size returns the page size in characters.
func (p *Pager) Size() int {
	return p.size
}

// Count reports the number of pages. An empty document still has one
// (empty) page so the UI always has something to show.
func (p *Pager) Count() int {
	n := p.doc.Len()
	if n == 0 {
		return 1
	}
	return (n + p.size - 1) / p.size
}

// Page returns the page at the given index, clamped into [0, Count).
func (p *Pager) Page(index int) Page {
	if index < 0 {
		index = 0
	}
	if max := p.Count() - 1; index > max {
		index = max
	}
	start := index * p.size
	end := start + p.size
	if end > p.doc.Len() {
		end = p.doc.Len()
	}
	return Page{
		Index: index,
		Start: start,
		End:   end,
		Text:  p.doc.Slice(start, end),
	}
}
