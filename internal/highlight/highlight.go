package highlight

import (
	"html/template"
	"strings"

	"annotext/internal/annotation"
	"annotext/internal/paginator"
)

// Fragment is one run of page text, either plain or covered by a single
// annotation. The fragment list mirrors the page text left to right; with
// overlapping annotations the shared text appears once per annotation.
type Fragment struct {
	Text      string `json:"text"`
	Label     string `json:"label,omitempty"`
	Annotated bool   `json:"annotated"`
}

// Render splits a page into fragments for the annotations intersecting it.
// Each intersecting annotation contributes its full intersection with the
// page, in stable start-offset order; overlaps are rendered independently,
// never merged.
func Render(page paginator.Page, set *annotation.Set) []Fragment {
	runes := []rune(page.Text)
	var frags []Fragment
	cursor := 0 // page-relative

	for _, ann := range set.Overlapping(page.Start, page.End) {
		start := ann.Start - page.Start
		end := ann.End - page.Start
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start > cursor {
			frags = append(frags, Fragment{Text: string(runes[cursor:start])})
		}
		frags = append(frags, Fragment{
			Text:      string(runes[start:end]),
			Label:     ann.Label,
			Annotated: true,
		})
		if end > cursor {
			cursor = end
		}
	}
	if cursor < len(runes) {
		frags = append(frags, Fragment{Text: string(runes[cursor:])})
	}
	return frags
}

// HTML renders fragments as an escaped HTML preview. Annotated runs are
// wrapped in <mark> with the label shown inline.
func HTML(frags []Fragment) template.HTML {
	var buf strings.Builder
	for _, f := range frags {
		if f.Annotated {
			buf.WriteString(`<mark class="ann">`)
			buf.WriteString(template.HTMLEscapeString(f.Text))
			buf.WriteString(`<span class="ann-label">`)
			buf.WriteString(template.HTMLEscapeString(f.Label))
			buf.WriteString(`</span></mark>`)
		} else {
			buf.WriteString(template.HTMLEscapeString(f.Text))
		}
	}
	return template.HTML(buf.String())
}
