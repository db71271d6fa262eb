// Package vocab holds the authoritative term→translation mapping and category
// membership, and builds word pools for quiz sessions.
package vocab

import (
	"errors"
	"strings"
	"sync"

	"github.com/Olgakatash/polish-trainer-bot/internal/models"
)

var ErrUnknownTerm = errors.New("unknown term")

// Store is read-heavy after startup. The RWMutex keeps a quiz in progress
// from observing a half-applied import.
type Store struct {
	mu         sync.RWMutex
	entries    map[string]string
	categories map[string][]string
	catOrder   []string
}

func NewStore() *Store {
	return &Store{
		entries:    make(map[string]string),
		categories: make(map[string][]string),
	}
}

// AddOrUpdate inserts or overwrites an entry. Duplicate terms follow last
// write wins. Empty or whitespace-only terms and translations are silently
// skipped.
func (s *Store) AddOrUpdate(term, translation string) {
	term = strings.TrimSpace(term)
	translation = strings.TrimSpace(translation)
	if term == "" || translation == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[term] = translation
}

// AddCategoryTerm appends a term to a category, keeping insertion order and
// skipping terms the category already lists.
func (s *Store) AddCategoryTerm(category, term string) {
	category = strings.TrimSpace(category)
	term = strings.TrimSpace(term)
	if category == "" || term == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	terms, known := s.categories[category]
	for _, t := range terms {
		if t == term {
			return
		}
	}
	if !known {
		s.catOrder = append(s.catOrder, category)
	}
	s.categories[category] = append(terms, term)
}

// Translation resolves a term, returning ErrUnknownTerm when absent.
func (s *Store) Translation(term string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	translation, ok := s.entries[term]
	if !ok {
		return "", ErrUnknownTerm
	}
	return translation, nil
}

// CategoryTerms returns the category's terms in insertion order. An unknown
// category yields an empty slice.
func (s *Store) CategoryTerms(category string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	terms := s.categories[category]
	out := make([]string, len(terms))
	copy(out, terms)
	return out
}

// Categories returns category names in insertion order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.catOrder))
	copy(out, s.catOrder)
	return out
}

// AllPairs returns a snapshot containing every loaded entry exactly once.
// Order is unspecified.
func (s *Store) AllPairs() []models.VocabPair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.VocabPair, 0, len(s.entries))
	for term, translation := range s.entries {
		out = append(out, models.VocabPair{Term: term, Translation: translation})
	}
	return out
}

// Pool builds the word pool for a quiz. With no categories it is AllPairs;
// otherwise the deduplicated union of the named categories. Terms a category
// references but the mapping lacks are silently excluded.
func (s *Store) Pool(categories ...string) []models.VocabPair {
	if len(categories) == 0 {
		return s.AllPairs()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []models.VocabPair
	for _, category := range categories {
		for _, term := range s.categories[category] {
			if _, dup := seen[term]; dup {
				continue
			}
			translation, ok := s.entries[term]
			if !ok {
				continue
			}
			seen[term] = struct{}{}
			out = append(out, models.VocabPair{Term: term, Translation: translation})
		}
	}
	return out
}

// Len is the number of loaded entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
