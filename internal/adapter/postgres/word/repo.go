// Package word implements the lexicon word repository on PostgreSQL.
// Candidate filtering pushes the feature-availability bitmask predicates
// into SQL, so wildcard-heavy templates never pull the whole table.
package word

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ellinika/syntaxis/internal/adapter/postgres"
	"github.com/ellinika/syntaxis/internal/domain"
)

// qb builds queries with PostgreSQL placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const wordColumns = `id, lemma, pos, translations, forms,
case_mask, gender_mask, number_mask, tense_mask, voice_mask, mood_mask, person_mask,
pronoun_type, pronoun_person`

// maskColumns maps template-selectable categories to their mask columns.
var maskColumns = map[domain.FeatureCategory]string{
	domain.CategoryCase:   "case_mask",
	domain.CategoryGender: "gender_mask",
	domain.CategoryNumber: "number_mask",
	domain.CategoryTense:  "tense_mask",
	domain.CategoryVoice:  "voice_mask",
	domain.CategoryMood:   "mood_mask",
	domain.CategoryPerson: "person_mask",
}

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new word repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// FindCandidates returns every word of the given part of speech.
func (r *Repo) FindCandidates(ctx context.Context, pos domain.PartOfSpeech) ([]domain.Word, error) {
	query, args, err := qb.Select(wordColumns).
		From("words").
		Where(sq.Eq{"pos": string(pos)}).
		OrderBy("lemma").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidates query: %w", err)
	}

	return r.queryWords(ctx, query, args, "words by pos "+string(pos))
}

// FindMatching returns words of the given part of speech whose masks (and
// pronoun attributes) support the concrete feature assignment. Categories
// outside the part-of-speech schema are ignored, matching the engine's
// local predicate.
func (r *Repo) FindMatching(ctx context.Context, pos domain.PartOfSpeech, features map[domain.FeatureCategory]string) ([]domain.Word, error) {
	b := qb.Select(wordColumns).
		From("words").
		Where(sq.Eq{"pos": string(pos)})

	schema := domain.SchemaFor(pos)
	for _, cat := range schema.Categories() {
		value, ok := features[cat]
		if !ok {
			continue
		}
		switch {
		case cat == domain.CategoryType:
			b = b.Where(sq.Eq{"pronoun_type": value})
		case cat == domain.CategoryPerson && pos == domain.PartOfSpeechPronoun:
			b = b.Where(sq.Eq{"pronoun_person": value})
		default:
			bit, known := domain.BitOf(cat, value)
			if !known {
				continue
			}
			b = b.Where(sq.Expr(fmt.Sprintf("(%s & ?) <> 0", maskColumns[cat]), int16(bit)))
		}
	}

	query, args, err := b.OrderBy("lemma").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build matching query: %w", err)
	}

	return r.queryWords(ctx, query, args, "words matching "+string(pos))
}

// GetByID returns a single word.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	query, args, err := qb.Select(wordColumns).
		From("words").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	w, err := scanWord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word "+id.String())
	}
	return &w, nil
}

// Save upserts a word keyed on (lemma, pos), recomputing its masks from
// the form table first. A zero ID gets a fresh one.
func (r *Repo) Save(ctx context.Context, w *domain.Word) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.RecomputeMasks()

	forms, err := json.Marshal(w.Forms)
	if err != nil {
		return fmt.Errorf("marshal forms for %s: %w", w.Lemma, err)
	}

	query, args, err := qb.Insert("words").
		Columns("id", "lemma", "pos", "translations", "forms",
			"case_mask", "gender_mask", "number_mask", "tense_mask",
			"voice_mask", "mood_mask", "person_mask",
			"pronoun_type", "pronoun_person").
		Values(w.ID, w.Lemma, string(w.POS), w.Translations, forms,
			int16(w.Masks.Case), int16(w.Masks.Gender), int16(w.Masks.Number), int16(w.Masks.Tense),
			int16(w.Masks.Voice), int16(w.Masks.Mood), int16(w.Masks.Person),
			pronounTypeArg(w), pronounPersonArg(w)).
		Suffix(`ON CONFLICT (lemma, pos) DO UPDATE SET
translations = EXCLUDED.translations,
forms = EXCLUDED.forms,
case_mask = EXCLUDED.case_mask,
gender_mask = EXCLUDED.gender_mask,
number_mask = EXCLUDED.number_mask,
tense_mask = EXCLUDED.tense_mask,
voice_mask = EXCLUDED.voice_mask,
mood_mask = EXCLUDED.mood_mask,
person_mask = EXCLUDED.person_mask,
pronoun_type = EXCLUDED.pronoun_type,
pronoun_person = EXCLUDED.pronoun_person,
updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := querier.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "word "+w.Lemma)
	}
	return nil
}

// UpdateMasks rewrites only the cached mask columns of one word.
func (r *Repo) UpdateMasks(ctx context.Context, id uuid.UUID, masks domain.FeatureMasks) error {
	query, args, err := qb.Update("words").
		Set("case_mask", int16(masks.Case)).
		Set("gender_mask", int16(masks.Gender)).
		Set("number_mask", int16(masks.Number)).
		Set("tense_mask", int16(masks.Tense)).
		Set("voice_mask", int16(masks.Voice)).
		Set("mood_mask", int16(masks.Mood)).
		Set("person_mask", int16(masks.Person)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build masks update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RecomputeAllMasks recomputes every word's masks from its stored forms,
// atomically. Used by the maintenance tooling after bulk form edits.
func (r *Repo) RecomputeAllMasks(ctx context.Context) (int, error) {
	words, err := r.All(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	err = r.txm.RunInTx(ctx, func(txCtx context.Context) error {
		for _, w := range words {
			masks := domain.ComputeMasks(w.POS, w.Forms)
			if masks == w.Masks {
				continue
			}
			if err := r.UpdateMasks(txCtx, w.ID, masks); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// All returns every stored word.
func (r *Repo) All(ctx context.Context) ([]domain.Word, error) {
	query, args, err := qb.Select(wordColumns).
		From("words").
		OrderBy("pos", "lemma").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build all query: %w", err)
	}
	return r.queryWords(ctx, query, args, "all words")
}

// Count returns the number of stored words.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int64
	if err := querier.QueryRow(ctx, "SELECT count(*) FROM words").Scan(&n); err != nil {
		return 0, postgres.MapError(err, "count words")
	}
	return int(n), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryWords(ctx context.Context, query string, args []any, entity string) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, postgres.MapError(err, entity)
	}
	return words, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}

func scanWord(row pgx.Row) (domain.Word, error) {
	var (
		w             domain.Word
		pos           string
		forms         []byte
		caseMask      int16
		genderMask    int16
		numberMask    int16
		tenseMask     int16
		voiceMask     int16
		moodMask      int16
		personMask    int16
		pronounType   *string
		pronounPerson *string
	)

	if err := row.Scan(&w.ID, &w.Lemma, &pos, &w.Translations, &forms,
		&caseMask, &genderMask, &numberMask, &tenseMask, &voiceMask, &moodMask, &personMask,
		&pronounType, &pronounPerson); err != nil {
		return domain.Word{}, err
	}

	w.POS = domain.PartOfSpeech(pos)
	if err := json.Unmarshal(forms, &w.Forms); err != nil {
		return domain.Word{}, fmt.Errorf("unmarshal forms of %s: %w", w.Lemma, err)
	}
	w.Masks = domain.FeatureMasks{
		Case:   domain.Mask(caseMask),
		Gender: domain.Mask(genderMask),
		Number: domain.Mask(numberMask),
		Tense:  domain.Mask(tenseMask),
		Voice:  domain.Mask(voiceMask),
		Mood:   domain.Mask(moodMask),
		Person: domain.Mask(personMask),
	}
	if pronounType != nil {
		pt := domain.PronounType(*pronounType)
		w.PronounType = &pt
	}
	if pronounPerson != nil {
		pp := domain.Person(*pronounPerson)
		w.PronounPerson = &pp
	}
	return w, nil
}

func pronounTypeArg(w *domain.Word) any {
	if w.PronounType == nil {
		return nil
	}
	return string(*w.PronounType)
}

func pronounPersonArg(w *domain.Word) any {
	if w.PronounPerson == nil {
		return nil
	}
	return string(*w.PronounPerson)
}
