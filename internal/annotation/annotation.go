package annotation

import (
	"fmt"
	"sort"

	"annotext/internal/document"
)

// Annotation is one labeled span over the document text. Offsets are
// character offsets, start inclusive, end exclusive. Records are never
// mutated after creation.
type Annotation struct {
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Label    string `json:"label"`
	Fragment string `json:"fragment,omitempty"`
}

// RangeError reports a span that does not fit the current document.
type RangeError struct {
	Start  int
	End    int
	DocLen int
}

func (e *RangeError) Error() string {
	if e.Start >= e.End {
		return fmt.Sprintf("invalid span [%d, %d): start must be less than end", e.Start, e.End)
	}
	return fmt.Sprintf("span [%d, %d) outside document bounds [0, %d]", e.Start, e.End, e.DocLen)
}

// Set is the insertion-ordered annotation list for one session. Overlapping
// spans are allowed and kept as-is; there is no deduplication or merging.
type Set struct {
	anns []Annotation
}

// NewSet returns an empty annotation set.
func NewSet() *Set {
	return &Set{}
}

// Add validates a span against the document and appends the annotation.
// On a RangeError the set is left unchanged.
func (s *Set) Add(doc *document.Document, start, end int, label string) (Annotation, error) {
	if start < 0 || start >= end || end > doc.Len() {
		return Annotation{}, &RangeError{Start: start, End: end, DocLen: doc.Len()}
	}
	ann := Annotation{
		Start:    start,
		End:      end,
		Label:    label,
		Fragment: doc.Slice(start, end),
	}
	s.anns = append(s.anns, ann)
	return ann, nil
}

// Remove deletes the annotation at the given creation-order index.
func (s *Set) Remove(index int) error {
	if index < 0 || index >= len(s.anns) {
		return fmt.Errorf("no annotation at index %d", index)
	}
	s.anns = append(s.anns[:index], s.anns[index+1:]...)
	return nil
}

// Clear empties the set. Called when a new document replaces the old one.
func (s *Set) Clear() {
	s.anns = nil
}

// Len reports the number of annotations.
func (s *Set) Len() int {
	return len(s.anns)
}

// All returns the annotations in creation order. The returned slice is a
// copy; callers may not mutate stored records through it.
func (s *Set) All() []Annotation {
	out := make([]Annotation, len(s.anns))
	copy(out, s.anns)
	return out
}

// Overlapping returns the annotations whose span intersects [start, end),
// ordered by start offset with creation order breaking ties.
func (s *Set) Overlapping(start, end int) []Annotation {
	var out []Annotation
	for _, a := range s.anns {
		if a.Start < end && a.End > start {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}
