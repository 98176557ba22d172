// Package memory implements the word store as an in-process slice.
// Used by tests and as a zero-dependency backend for the server.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/lexicon"
)

// Store is an in-memory word store, safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	words []domain.Word
}

// NewStore creates a store seeded with the given words. Each word gets an
// ID and recomputed masks if missing.
func NewStore(words ...domain.Word) *Store {
	s := &Store{}
	s.Add(words...)
	return s
}

// Add appends words to the store, assigning IDs and masks as needed.
func (s *Store) Add(words ...domain.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range words {
		if w.ID == uuid.Nil {
			w.ID = uuid.New()
		}
		if w.Masks == (domain.FeatureMasks{}) {
			w.RecomputeMasks()
		}
		s.words = append(s.words, w)
	}
}

// FindCandidates returns every word of the given part of speech.
func (s *Store) FindCandidates(_ context.Context, pos domain.PartOfSpeech) ([]domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Word{}
	for _, w := range s.words {
		if w.POS == pos {
			out = append(out, w)
		}
	}
	return out, nil
}

// FindMatching narrows candidates with the engine's own predicate.
func (s *Store) FindMatching(_ context.Context, pos domain.PartOfSpeech, features map[domain.FeatureCategory]string) ([]domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Word{}
	for _, w := range s.words {
		if w.POS == pos && lexicon.Matches(w, features) {
			out = append(out, w)
		}
	}
	return out, nil
}

// Count returns the number of stored words.
func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words), nil
}
