package export

import (
	"encoding/json"
	"fmt"

	"annotext/internal/annotation"
	"annotext/internal/document"
)

// Record is one exported annotation in the interchange schema.
type Record struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

// Records serializes the annotation set as a JSON array of records in
// creation order. An empty set exports as [].
func Records(set *annotation.Set) ([]byte, error) {
	records := make([]Record, 0, set.Len())
	for _, a := range set.All() {
		records = append(records, Record{Start: a.Start, End: a.End, Label: a.Label})
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal annotations: %w", err)
	}
	return data, nil
}

// Envelope is the full export: the source text and filename alongside the
// annotations, fragments included.
type Envelope struct {
	Filename    string                  `json:"filename"`
	Text        string                  `json:"text"`
	Annotations []annotation.Annotation `json:"annotations"`
}

// Full serializes the document together with its annotations.
func Full(doc *document.Document, set *annotation.Set) ([]byte, error) {
	env := Envelope{
		Filename:    doc.Filename,
		Text:        doc.Text,
		Annotations: set.All(),
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}
