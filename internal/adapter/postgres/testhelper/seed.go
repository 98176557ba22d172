package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellinika/syntaxis/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord inserts an invariable adverb directly, bypassing the repository.
// Returns the filled domain.Word. Lemmas are suffixed so parallel tests
// never collide on (lemma, pos).
func SeedWord(t *testing.T, pool *pgxpool.Pool) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	w := domain.Word{
		ID:           uuid.New(),
		POS:          domain.PartOfSpeechAdverb,
		Lemma:        "γρήγορα-" + suffix,
		Translations: []string{"quickly"},
		Forms:        domain.Leaf("γρήγορα-" + suffix),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, lemma, pos, translations, forms)
		 VALUES ($1, $2, $3, $4, $5)`,
		w.ID, w.Lemma, string(w.POS), w.Translations, []byte(`["`+w.Lemma+`"]`),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return w
}
