package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVExtractor handles CSV files. Each data row becomes one "header: value"
// line so cell contents can be annotated in context.
type CSVExtractor struct{}

func (p *CSVExtractor) Extract(r io.Reader, filename string) (string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return "", nil
	}

	headers := records[0]
	var out strings.Builder
	for _, row := range records[1:] {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		for j, cell := range row {
			if j > 0 {
				out.WriteString(", ")
			}
			if j < len(headers) {
				out.WriteString(headers[j] + ": " + cell)
			} else {
				out.WriteString(cell)
			}
		}
	}
	return out.String(), nil
}
