package parser

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"annotext/internal/document"
)

// TextExtractor handles plain text files. The file content is the document
// text, byte for byte, so offsets in the annotation UI line up with the
// original file.
type TextExtractor struct{}

func (p *TextExtractor) Extract(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", &document.DecodeError{Filename: filename, Reason: "invalid UTF-8"}
	}
	return string(data), nil
}

// normalizeBlocks collapses runs of blank lines into single paragraph breaks.
// Extractors for structured formats use it so the annotated text has no
// format-specific whitespace artifacts.
func normalizeBlocks(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out strings.Builder
	blank := true
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			blank = true
			continue
		}
		if out.Len() > 0 {
			if blank {
				out.WriteString("\n\n")
			} else {
				out.WriteString("\n")
			}
		}
		out.WriteString(line)
		blank = false
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return out.String(), nil
}
