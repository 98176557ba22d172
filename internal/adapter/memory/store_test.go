package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/ellinika/syntaxis/internal/domain"
)

func noun(lemma, gender string) domain.Word {
	return domain.Word{
		Lemma: lemma,
		POS:   domain.PartOfSpeechNoun,
		Forms: domain.Branch(map[string]*domain.FormNode{
			gender: domain.Branch(map[string]*domain.FormNode{
				"singular": domain.Branch(map[string]*domain.FormNode{
					"nominative": domain.Leaf(lemma),
				}),
			}),
		}),
	}
}

func TestStore_FindCandidates(t *testing.T) {
	t.Parallel()

	s := NewStore(
		noun("άνθρωπος", "masculine"),
		noun("θάλασσα", "feminine"),
		domain.Word{Lemma: "καλά", POS: domain.PartOfSpeechAdverb, Forms: domain.Leaf("καλά")},
	)

	nouns, err := s.FindCandidates(context.Background(), domain.PartOfSpeechNoun)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(nouns) != 2 {
		t.Errorf("nouns: %d", len(nouns))
	}
	for _, w := range nouns {
		if w.ID == uuid.Nil {
			t.Error("store must assign IDs")
		}
		if w.Masks == (domain.FeatureMasks{}) {
			t.Error("store must compute masks")
		}
	}

	verbs, err := s.FindCandidates(context.Background(), domain.PartOfSpeechVerb)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	if len(verbs) != 0 {
		t.Errorf("verbs: %v", verbs)
	}
}

func TestStore_FindMatching(t *testing.T) {
	t.Parallel()

	s := NewStore(noun("άνθρωπος", "masculine"), noun("θάλασσα", "feminine"))

	got, err := s.FindMatching(context.Background(), domain.PartOfSpeechNoun, map[domain.FeatureCategory]string{
		domain.CategoryGender: "feminine",
	})
	if err != nil {
		t.Fatalf("FindMatching: %v", err)
	}
	if len(got) != 1 || got[0].Lemma != "θάλασσα" {
		t.Errorf("matching: %+v", got)
	}
}

func TestStore_CountAndAdd(t *testing.T) {
	t.Parallel()

	s := NewStore(noun("άνθρωπος", "masculine"))
	if n, _ := s.Count(context.Background()); n != 1 {
		t.Errorf("count: %d", n)
	}
	s.Add(noun("παιδί", "neuter"))
	if n, _ := s.Count(context.Background()); n != 2 {
		t.Errorf("count after add: %d", n)
	}
}
