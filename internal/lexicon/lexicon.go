// Package lexicon selects words matching a concrete feature assignment,
// uniformly at random among qualifying candidates. Availability checks go
// through the precomputed per-word FeatureMasks instead of walking the
// nested form tables.
package lexicon

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ellinika/syntaxis/internal/domain"
)

// Store lists candidate words for a part of speech. Implementations are
// read-only from this package's perspective.
type Store interface {
	FindCandidates(ctx context.Context, pos domain.PartOfSpeech) ([]domain.Word, error)
}

// FilteredStore is an optional capability: stores that can push the mask
// predicates into the query return a pre-narrowed candidate list. The
// engine still applies the full match locally, so a store may filter on
// any subset of the assignment.
type FilteredStore interface {
	Store
	FindMatching(ctx context.Context, pos domain.PartOfSpeech, features map[domain.FeatureCategory]string) ([]domain.Word, error)
}

// NotFoundError reports that no stored word satisfies the assignment.
type NotFoundError struct {
	POS      domain.PartOfSpeech
	Features map[domain.FeatureCategory]string
}

func (e *NotFoundError) Error() string {
	pairs := make([]string, 0, len(e.Features))
	for _, cat := range domain.FeatureCategories {
		if v, ok := e.Features[cat]; ok {
			pairs = append(pairs, fmt.Sprintf("%s=%s", cat, v))
		}
	}
	return fmt.Sprintf("lexicon: no %s matching {%s}", e.POS, strings.Join(pairs, " "))
}

func (e *NotFoundError) Unwrap() error { return domain.ErrNotFound }

// Engine implements the selection semantics on top of a Store.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// QueryRandom returns one word of the given part of speech supporting the
// fully concrete feature assignment, chosen uniformly among all
// qualifying candidates with the caller's random source.
func (e *Engine) QueryRandom(ctx context.Context, pos domain.PartOfSpeech, features map[domain.FeatureCategory]string, rng *rand.Rand) (domain.Word, error) {
	var (
		candidates []domain.Word
		err        error
	)
	if fs, ok := e.store.(FilteredStore); ok {
		candidates, err = fs.FindMatching(ctx, pos, features)
	} else {
		candidates, err = e.store.FindCandidates(ctx, pos)
	}
	if err != nil {
		return domain.Word{}, fmt.Errorf("find candidates for %s: %w", pos, err)
	}

	matching := candidates[:0:0]
	for _, w := range candidates {
		if Matches(w, features) {
			matching = append(matching, w)
		}
	}
	if len(matching) == 0 {
		return domain.Word{}, &NotFoundError{POS: pos, Features: features}
	}
	return matching[rng.IntN(len(matching))], nil
}

// Matches reports whether the word supports every requested feature its
// part-of-speech schema knows. Categories outside the schema (inherited
// from a mixed group) do not constrain the word. Pronoun type and person
// are word attributes rather than mask bits.
func Matches(w domain.Word, features map[domain.FeatureCategory]string) bool {
	schema := domain.SchemaFor(w.POS)
	for _, cat := range schema.Categories() {
		want, ok := features[cat]
		if !ok {
			continue
		}
		switch {
		case cat == domain.CategoryType:
			if w.PronounType == nil || string(*w.PronounType) != want {
				return false
			}
		case cat == domain.CategoryPerson && w.POS == domain.PartOfSpeechPronoun:
			if w.PronounPerson == nil || string(*w.PronounPerson) != want {
				return false
			}
		default:
			if !w.Masks.Supports(cat, want) {
				return false
			}
		}
	}
	return true
}
