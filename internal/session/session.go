package session

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"annotext/internal/annotation"
	"annotext/internal/document"
	"annotext/internal/paginator"
)

// Session is one user's isolated editing state: at most one document, its
// pager and its annotation set. The zero state ("no document loaded") holds
// until the first upload; a later upload replaces everything at once.
type Session struct {
	mu sync.Mutex

	ID        string
	UpdatedAt time.Time

	doc   *document.Document
	docID string
	pager *paginator.Pager
	anns  *annotation.Set
}

// SetDocument installs a freshly decoded document, replacing any prior one
// and clearing the annotation set.
func (s *Session) SetDocument(doc *document.Document, docID string, pageSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.docID = docID
	s.pager = paginator.New(doc, pageSize)
	s.anns = annotation.NewSet()
	s.UpdatedAt = time.Now()
}

// Document returns the loaded document, or nil before the first upload.
func (s *Session) Document() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// DocID returns the content-derived identifier of the loaded document.
func (s *Session) DocID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docID
}

// Pager returns the pager for the loaded document, or nil before upload.
func (s *Session) Pager() *paginator.Pager {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pager
}

// Annotations returns the session's annotation set, or nil before upload.
func (s *Session) Annotations() *annotation.Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anns
}

// Touch refreshes the session's activity timestamp.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdatedAt = time.Now()
}

// Store is a thread-safe in-memory session registry with TTL eviction.
// Sessions never outlive the process; there is no cross-restart state.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore builds a Store evicting sessions idle longer than ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Get returns the session for an ID, or nil if unknown or expired.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sessions[id]
}

// Create registers a new session with a fresh ULID.
func (st *Store) Create() *Session {
	s := &Session{
		ID:        generateULID(),
		UpdatedAt: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Cleanup removes sessions idle longer than the TTL.
func (st *Store) Cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := time.Now()
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := now.Sub(s.UpdatedAt)
		s.mu.Unlock()
		if idle > st.ttl {
			delete(st.sessions, id)
		}
	}
}

// StartCleanup runs Cleanup periodically until ctx is cancelled.
func (st *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				st.Cleanup()
			}
		}
	}()
}

// ContentHashHex computes SHA-256 of content and returns the hex string.
// Used to derive stable document IDs from uploaded bytes.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
