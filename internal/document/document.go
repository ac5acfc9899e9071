package document

import (
	"fmt"
	"unicode/utf8"
)

// Document is the decoded text of one uploaded file. It is immutable for the
// lifetime of a session: a new upload replaces it wholesale.
type Document struct {
	Filename string
	Text     string

	runes []rune
}

// DecodeError reports a file whose bytes could not be decoded into text.
type DecodeError struct {
	Filename string
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %s", e.Filename, e.Reason)
}

// New builds a Document from already-extracted text. The text must be valid
// UTF-8; raw uploads go through Decode instead.
func New(filename, text string) *Document {
	return &Document{
		Filename: filename,
		Text:     text,
		runes:    []rune(text),
	}
}

// Decode validates raw bytes as UTF-8 text and builds a Document.
func Decode(filename string, data []byte) (*Document, error) {
	if !utf8.Valid(data) {
		return nil, &DecodeError{Filename: filename, Reason: "invalid UTF-8"}
	}
	return New(filename, string(data)), nil
}

// Len is the document length in characters (runes), the unit all span
// offsets are expressed in.
func (d *Document) Len() int {
	return len(d.runes)
}

// Slice returns the text between two character offsets. Offsets are clamped
// to the document bounds.
func (d *Document) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.runes) {
		end = len(d.runes)
	}
	if start >= end {
		return ""
	}
	return string(d.runes[start:end])
}
