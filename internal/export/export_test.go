package export

import (
	"encoding/json"
	"testing"

	"annotext/internal/annotation"
	"annotext/internal/document"
)

func TestRecords_EmptySetYieldsEmptyArray(t *testing.T) {
	data, err := Records(annotation.NewSet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("expected literal [], got %s", data)
	}
}

func TestRecords_RoundTrip(t *testing.T) {
	doc := document.New("fox.txt", "The quick brown fox")
	set := annotation.NewSet()
	if _, err := set.Add(doc, 4, 9, "animal-part"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Records(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := Record{Start: 4, End: 9, Label: "animal-part"}
	if records[0] != want {
		t.Errorf("record = %+v, want %+v", records[0], want)
	}
}

func TestRecords_PreservesCreationOrder(t *testing.T) {
	doc := document.New("a.txt", "abcdefghij")
	set := annotation.NewSet()
	set.Add(doc, 5, 8, "b")
	set.Add(doc, 0, 2, "a")

	data, err := Records(set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if records[0].Label != "b" || records[1].Label != "a" {
		t.Errorf("expected creation order, got %v", records)
	}
}

func TestFull_IncludesTextAndFragments(t *testing.T) {
	doc := document.New("fox.txt", "The quick brown fox")
	set := annotation.NewSet()
	set.Add(doc, 4, 9, "animal-part")

	data, err := Full(doc, set)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Filename != "fox.txt" {
		t.Errorf("filename = %q", env.Filename)
	}
	if env.Text != "The quick brown fox" {
		t.Errorf("text = %q", env.Text)
	}
	if len(env.Annotations) != 1 || env.Annotations[0].Fragment != "quick" {
		t.Errorf("annotations = %v", env.Annotations)
	}
}
