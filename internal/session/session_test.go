package session

import (
	"testing"
	"time"

	"annotext/internal/document"
)

func TestStore_CreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create()

	if sess.ID == "" {
		t.Fatal("expected non-empty session ID")
	}
	if got := store.Get(sess.ID); got != sess {
		t.Errorf("Get returned %v, want the created session", got)
	}
	if store.Get("unknown") != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestStore_ULIDsAreUnique(t *testing.T) {
	store := NewStore(time.Hour)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := store.Create().ID
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate session ID %q", id)
		}
		seen[id] = true
	}
}

func TestSession_StartsWithoutDocument(t *testing.T) {
	sess := NewStore(time.Hour).Create()
	if sess.Document() != nil || sess.Pager() != nil || sess.Annotations() != nil {
		t.Error("fresh session must have no document state")
	}
}

func TestSession_SetDocumentReplacesAndClears(t *testing.T) {
	sess := NewStore(time.Hour).Create()

	first := document.New("first.txt", "The quick brown fox")
	sess.SetDocument(first, "doc-1", 100)
	if _, err := sess.Annotations().Add(first, 4, 9, "animal-part"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.Annotations().Len() != 1 {
		t.Fatalf("expected 1 annotation before re-upload")
	}

	second := document.New("second.txt", "Lorem ipsum")
	sess.SetDocument(second, "doc-2", 100)

	if sess.Document() != second {
		t.Error("expected second document to be loaded")
	}
	if sess.DocID() != "doc-2" {
		t.Errorf("doc ID = %q, want doc-2", sess.DocID())
	}
	if sess.Annotations().Len() != 0 {
		t.Errorf("re-upload must clear annotations, got %d", sess.Annotations().Len())
	}
}

func TestStore_CleanupEvictsIdleSessions(t *testing.T) {
	store := NewStore(50 * time.Millisecond)
	idle := store.Create()
	active := store.Create()

	time.Sleep(80 * time.Millisecond)
	active.Touch()
	store.Cleanup()

	if store.Get(idle.ID) != nil {
		t.Error("idle session should have been evicted")
	}
	if store.Get(active.ID) == nil {
		t.Error("recently touched session must survive cleanup")
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 live session, got %d", store.Len())
	}
}

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("hello"))
	b := ContentHashHex([]byte("hello"))
	c := ContentHashHex([]byte("world"))

	if a != b {
		t.Error("hash must be deterministic")
	}
	if a == c {
		t.Error("different content must hash differently")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
