package parser

import (
	"errors"
	"strings"
	"testing"

	"annotext/internal/document"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"notes.txt", false},
		{"readme.md", false},
		{"notes.markdown", false},
		{"data.csv", false},
		{"page.html", false},
		{"page.HTM", false},
		{"paper.pdf", false},
		{"report.docx", false},
		{"image.png", true},
		{"noext", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
		if got := IsSupportedExtension(tt.filename); got == tt.wantErr {
			t.Errorf("IsSupportedExtension(%q) = %v", tt.filename, got)
		}
	}
}

func TestTextExtractor_PassesContentThrough(t *testing.T) {
	input := "Line one.\n\nLine two with trailing spaces.  \n"
	p := &TextExtractor{}
	got, err := p.Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != input {
		t.Errorf("text files must pass through unmodified, got %q", got)
	}
}

func TestTextExtractor_InvalidUTF8(t *testing.T) {
	p := &TextExtractor{}
	_, err := p.Extract(strings.NewReader("ok\xff\xfe"), "bad.txt")
	var decErr *document.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestMarkdownExtractor_StripsMarkup(t *testing.T) {
	input := "# Title\n\nSome *emphasized* text with a [link](https://example.com).\n\n## Section\n\nMore text.\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Title", "emphasized", "link", "Section", "More text."} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got %q", want, got)
		}
	}
	for _, markup := range []string{"#", "*", "](", "https://example.com"} {
		if strings.Contains(got, markup) {
			t.Errorf("markup %q must be stripped, got %q", markup, got)
		}
	}
}

func TestMarkdownExtractor_CodeBlockContentKept(t *testing.T) {
	input := "Intro.\n\n```\nGET /api/users\n```\n"
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "GET /api/users") {
		t.Errorf("expected code block content, got %q", got)
	}
}

func TestMarkdownExtractor_EmptyInput(t *testing.T) {
	p := &MarkdownExtractor{}
	got, err := p.Extract(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestHTMLExtractor_BlocksInOrder(t *testing.T) {
	input := `<html><head><title>T</title><style>p{color:red}</style></head>
<body><h1>Heading</h1><p>First paragraph.</p><script>alert(1)</script><p>Second.</p></body></html>`
	p := &HTMLExtractor{}
	got, err := p.Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := strings.Split(got, "\n\n")
	want := []string{"Heading", "First paragraph.", "Second."}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %q", len(want), len(blocks), got)
	}
	for i := range want {
		if blocks[i] != want[i] {
			t.Errorf("block[%d] = %q, want %q", i, blocks[i], want[i])
		}
	}
	if strings.Contains(got, "alert") || strings.Contains(got, "color:red") {
		t.Errorf("script/style content must be dropped, got %q", got)
	}
}

func TestHTMLExtractor_BareText(t *testing.T) {
	p := &HTMLExtractor{}
	got, err := p.Extract(strings.NewReader("just text, no markup"), "frag.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "just text, no markup") {
		t.Errorf("expected bare text to survive, got %q", got)
	}
}

func TestCSVExtractor_RowsToLines(t *testing.T) {
	input := "name,city\nAda,London\nLinus,Helsinki\n"
	p := &CSVExtractor{}
	got, err := p.Extract(strings.NewReader(input), "people.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "name: Ada, city: London" {
		t.Errorf("line[0] = %q", lines[0])
	}
	if lines[1] != "name: Linus, city: Helsinki" {
		t.Errorf("line[1] = %q", lines[1])
	}
}

func TestCSVExtractor_Empty(t *testing.T) {
	p := &CSVExtractor{}
	got, err := p.Extract(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestNormalizeBlocks(t *testing.T) {
	input := "Para one.\n\n\n\nPara two.\n   \nPara three."
	got, err := normalizeBlocks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Para one.\n\nPara two.\n\nPara three."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
