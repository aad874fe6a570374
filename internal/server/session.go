package server

import (
	"log"
	"sync"

	"github.com/jonathan/resume-architect/internal/store"
	"github.com/jonathan/resume-architect/internal/types"
)

// Session holds the live document and serializes all edits through a single
// mutex. Every successful mutation is written back to the store so the
// document survives restarts.
type Session struct {
	mu    sync.Mutex
	doc   types.ResumeData
	store store.Store
}

// NewSession loads the persisted document (or the seed document when none
// exists) and returns a session around it.
func NewSession(s store.Store) (*Session, error) {
	doc, err := store.LoadDocument(s)
	if err != nil {
		return nil, err
	}
	return &Session{doc: doc, store: s}, nil
}

// Document returns a deep copy of the current document. Callers may mutate
// the copy freely.
func (s *Session) Document() types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Update applies a pure mutation to the current document and persists the
// result. The mutation runs under the session lock and must not block.
func (s *Session) Update(mutate func(types.ResumeData) types.ResumeData) types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = mutate(s.doc)
	s.persistLocked()
	return s.doc.Clone()
}

// Replace swaps in a whole new document and persists it.
func (s *Session) Replace(doc types.ResumeData) types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = doc.Clone()
	s.persistLocked()
	return s.doc.Clone()
}

// persistLocked saves the current document. Persistence failures are logged
// rather than surfaced; the in-memory document stays authoritative.
func (s *Session) persistLocked() {
	if err := store.SaveDocument(s.store, s.doc); err != nil {
		log.Printf("[session] Failed to persist document: %v", err)
	}
}
