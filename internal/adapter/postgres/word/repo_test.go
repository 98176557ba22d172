package word_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	postgres "github.com/ellinika/syntaxis/internal/adapter/postgres"
	"github.com/ellinika/syntaxis/internal/adapter/postgres/testhelper"
	"github.com/ellinika/syntaxis/internal/adapter/postgres/word"
	"github.com/ellinika/syntaxis/internal/domain"
)

func newRepo(t *testing.T) *word.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return word.New(pool, postgres.NewTxManager(pool))
}

// uniqueLemma keeps parallel tests out of each other's (lemma, pos) space.
func uniqueLemma(base string) string {
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}

func buildNoun(lemma, gender string) *domain.Word {
	return &domain.Word{
		Lemma:        lemma,
		POS:          domain.PartOfSpeechNoun,
		Translations: []string{"test translation"},
		Forms: domain.Branch(map[string]*domain.FormNode{
			gender: domain.Branch(map[string]*domain.FormNode{
				"singular": domain.Branch(map[string]*domain.FormNode{
					"nominative": domain.Leaf(lemma),
					"genitive":   domain.Leaf(lemma + "-gen"),
				}),
			}),
		}),
	}
}

func TestRepo_SaveAndGet(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	lemma := uniqueLemma("θάλασσα")
	in := buildNoun(lemma, "feminine")
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if in.ID == uuid.Nil {
		t.Fatal("Save must assign an ID")
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Lemma != lemma || got.POS != domain.PartOfSpeechNoun {
		t.Errorf("round trip: %+v", got)
	}
	if len(got.Translations) != 1 || got.Translations[0] != "test translation" {
		t.Errorf("translations: %v", got.Translations)
	}
	if !got.Masks.Supports(domain.CategoryGender, "feminine") {
		t.Error("masks must be recomputed on save")
	}
	if got.Masks.Supports(domain.CategoryGender, "masculine") {
		t.Error("unexpected gender bit")
	}
	if forms := got.FormsAt(map[domain.FeatureCategory]string{
		domain.CategoryGender: "feminine",
		domain.CategoryNumber: "singular",
		domain.CategoryCase:   "genitive",
	}); len(forms) != 1 || forms[0] != lemma+"-gen" {
		t.Errorf("stored forms: %v", forms)
	}
}

func TestRepo_SaveUpsertsOnLemmaPos(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	lemma := uniqueLemma("δρόμος")
	first := buildNoun(lemma, "masculine")
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := buildNoun(lemma, "masculine")
	second.Translations = []string{"road", "way"}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Translations) != 2 {
		t.Errorf("upsert must replace translations: %v", got.Translations)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("want domain.ErrNotFound, got %v", err)
	}
}

func TestRepo_FindCandidates_FiltersByPos(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	noun := buildNoun(uniqueLemma("βουνό"), "neuter")
	if err := repo.Save(ctx, noun); err != nil {
		t.Fatalf("save: %v", err)
	}

	words, err := repo.FindCandidates(ctx, domain.PartOfSpeechNoun)
	if err != nil {
		t.Fatalf("FindCandidates: %v", err)
	}
	found := false
	for _, w := range words {
		if w.POS != domain.PartOfSpeechNoun {
			t.Errorf("wrong pos in candidates: %+v", w)
		}
		if w.ID == noun.ID {
			found = true
		}
	}
	if !found {
		t.Error("saved noun missing from candidates")
	}
}

func TestRepo_FindMatching_PushesMaskPredicates(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	masc := buildNoun(uniqueLemma("ουρανός"), "masculine")
	fem := buildNoun(uniqueLemma("αυλή"), "feminine")
	for _, w := range []*domain.Word{masc, fem} {
		if err := repo.Save(ctx, w); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	words, err := repo.FindMatching(ctx, domain.PartOfSpeechNoun, map[domain.FeatureCategory]string{
		domain.CategoryCase:   "genitive",
		domain.CategoryGender: "feminine",
		domain.CategoryNumber: "singular",
	})
	if err != nil {
		t.Fatalf("FindMatching: %v", err)
	}

	var foundFem, foundMasc bool
	for _, w := range words {
		if w.ID == fem.ID {
			foundFem = true
		}
		if w.ID == masc.ID {
			foundMasc = true
		}
	}
	if !foundFem {
		t.Error("feminine noun must match")
	}
	if foundMasc {
		t.Error("masculine noun must be filtered out in SQL")
	}
}

func TestRepo_FindMatching_PronounAttributes(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	typ := domain.PronounPersonalStrong
	person := domain.PersonFirst
	pron := &domain.Word{
		Lemma:         uniqueLemma("εγώ"),
		POS:           domain.PartOfSpeechPronoun,
		PronounType:   &typ,
		PronounPerson: &person,
		Forms:         domain.Leaf("εγώ"),
	}
	if err := repo.Save(ctx, pron); err != nil {
		t.Fatalf("save: %v", err)
	}

	words, err := repo.FindMatching(ctx, domain.PartOfSpeechPronoun, map[domain.FeatureCategory]string{
		domain.CategoryType:   "personal_strong",
		domain.CategoryPerson: "first",
	})
	if err != nil {
		t.Fatalf("FindMatching: %v", err)
	}
	found := false
	for _, w := range words {
		if w.ID == pron.ID {
			found = true
		}
		if w.PronounType == nil || *w.PronounType != domain.PronounPersonalStrong {
			t.Errorf("pronoun type not filtered: %+v", w)
		}
	}
	if !found {
		t.Error("saved pronoun missing from matches")
	}

	none, err := repo.FindMatching(ctx, domain.PartOfSpeechPronoun, map[domain.FeatureCategory]string{
		domain.CategoryType:   "personal_strong",
		domain.CategoryPerson: "third",
	})
	if err != nil {
		t.Fatalf("FindMatching: %v", err)
	}
	for _, w := range none {
		if w.ID == pron.ID {
			t.Error("first-person pronoun matched a third-person query")
		}
	}
}

func TestRepo_UpdateMasks(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	w := buildNoun(uniqueLemma("πόλη"), "feminine")
	if err := repo.Save(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.UpdateMasks(ctx, w.ID, domain.FeatureMasks{}); err != nil {
		t.Fatalf("UpdateMasks: %v", err)
	}
	got, err := repo.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Masks != (domain.FeatureMasks{}) {
		t.Errorf("masks not cleared: %+v", got.Masks)
	}

	if err := repo.UpdateMasks(ctx, uuid.New(), domain.FeatureMasks{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing word: want domain.ErrNotFound, got %v", err)
	}
}

func TestRepo_RecomputeAllMasks(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	w := buildNoun(uniqueLemma("χωριό"), "neuter")
	if err := repo.Save(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.UpdateMasks(ctx, w.ID, domain.FeatureMasks{}); err != nil {
		t.Fatalf("clear masks: %v", err)
	}

	updated, err := repo.RecomputeAllMasks(ctx)
	if err != nil {
		t.Fatalf("RecomputeAllMasks: %v", err)
	}
	if updated < 1 {
		t.Errorf("expected at least the cleared word to be updated, got %d", updated)
	}

	got, err := repo.GetByID(ctx, w.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Masks.Supports(domain.CategoryGender, "neuter") {
		t.Errorf("masks not rebuilt from forms: %+v", got.Masks)
	}
}

func TestRepo_Count(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	before, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if err := repo.Save(ctx, buildNoun(uniqueLemma("ποτάμι"), "neuter")); err != nil {
		t.Fatalf("save: %v", err)
	}
	after, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if after <= before {
		t.Errorf("count did not grow: %d -> %d", before, after)
	}
}
