// Package sqlite implements the word store on an embedded SQLite file,
// the backend used by the CLI. The schema mirrors the PostgreSQL words
// table; the mask columns make store-side candidate filtering possible
// here too.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ellinika/syntaxis/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
    id             TEXT PRIMARY KEY,
    lemma          TEXT NOT NULL,
    pos            TEXT NOT NULL,
    translations   TEXT NOT NULL DEFAULT '[]',
    forms          TEXT NOT NULL,
    case_mask      INTEGER NOT NULL DEFAULT 0,
    gender_mask    INTEGER NOT NULL DEFAULT 0,
    number_mask    INTEGER NOT NULL DEFAULT 0,
    tense_mask     INTEGER NOT NULL DEFAULT 0,
    voice_mask     INTEGER NOT NULL DEFAULT 0,
    mood_mask      INTEGER NOT NULL DEFAULT 0,
    person_mask    INTEGER NOT NULL DEFAULT 0,
    pronoun_type   TEXT,
    pronoun_person TEXT,
    UNIQUE (lemma, pos)
);
CREATE INDEX IF NOT EXISTS idx_words_pos ON words (pos);
`

const wordColumns = `id, lemma, pos, translations, forms,
case_mask, gender_mask, number_mask, tense_mask, voice_mask, mood_mask, person_mask,
pronoun_type, pronoun_person`

var maskColumns = map[domain.FeatureCategory]string{
	domain.CategoryCase:   "case_mask",
	domain.CategoryGender: "gender_mask",
	domain.CategoryNumber: "number_mask",
	domain.CategoryTense:  "tense_mask",
	domain.CategoryVoice:  "voice_mask",
	domain.CategoryMood:   "mood_mask",
	domain.CategoryPerson: "person_mask",
}

// Store is a SQLite-backed word store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database file is still reachable.
func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// FindCandidates returns every word of the given part of speech.
func (s *Store) FindCandidates(ctx context.Context, pos domain.PartOfSpeech) ([]domain.Word, error) {
	query, args, err := sq.Select(wordColumns).
		From("words").
		Where(sq.Eq{"pos": string(pos)}).
		OrderBy("lemma").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidates query: %w", err)
	}
	return s.queryWords(ctx, query, args)
}

// FindMatching returns words whose masks and pronoun attributes support
// the concrete feature assignment, filtered in SQL.
func (s *Store) FindMatching(ctx context.Context, pos domain.PartOfSpeech, features map[domain.FeatureCategory]string) ([]domain.Word, error) {
	b := sq.Select(wordColumns).
		From("words").
		Where(sq.Eq{"pos": string(pos)})

	schemaDef := domain.SchemaFor(pos)
	for _, cat := range schemaDef.Categories() {
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
			b = b.Where(sq.Expr(fmt.Sprintf("(%s & ?) <> 0", maskColumns[cat]), int64(bit)))
		}
	}

	query, args, err := b.OrderBy("lemma").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build matching query: %w", err)
	}
	return s.queryWords(ctx, query, args)
}

// Save upserts a word keyed on (lemma, pos), recomputing its masks.
func (s *Store) Save(ctx context.Context, w *domain.Word) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.RecomputeMasks()

	forms, err := json.Marshal(w.Forms)
	if err != nil {
		return fmt.Errorf("marshal forms for %s: %w", w.Lemma, err)
	}
	translations, err := json.Marshal(w.Translations)
	if err != nil {
		return fmt.Errorf("marshal translations for %s: %w", w.Lemma, err)
	}

	query, args, err := sq.Insert("words").
		Columns("id", "lemma", "pos", "translations", "forms",
			"case_mask", "gender_mask", "number_mask", "tense_mask",
			"voice_mask", "mood_mask", "person_mask",
			"pronoun_type", "pronoun_person").
		Values(w.ID.String(), w.Lemma, string(w.POS), string(translations), string(forms),
			int64(w.Masks.Case), int64(w.Masks.Gender), int64(w.Masks.Number), int64(w.Masks.Tense),
			int64(w.Masks.Voice), int64(w.Masks.Mood), int64(w.Masks.Person),
			pronounTypeArg(w), pronounPersonArg(w)).
		Suffix(`ON CONFLICT (lemma, pos) DO UPDATE SET
translations = excluded.translations,
forms = excluded.forms,
case_mask = excluded.case_mask,
gender_mask = excluded.gender_mask,
number_mask = excluded.number_mask,
tense_mask = excluded.tense_mask,
voice_mask = excluded.voice_mask,
mood_mask = excluded.mood_mask,
person_mask = excluded.person_mask,
pronoun_type = excluded.pronoun_type,
pronoun_person = excluded.pronoun_person`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save word %s: %w", w.Lemma, err)
	}
	return nil
}

// RecomputeAllMasks recomputes every word's masks from its stored forms.
// Returns the number of words whose masks changed.
func (s *Store) RecomputeAllMasks(ctx context.Context) (int, error) {
	words, err := s.All(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	updated := 0
	for _, w := range words {
		masks := domain.ComputeMasks(w.POS, w.Forms)
		if masks == w.Masks {
			continue
		}
		query, args, err := sq.Update("words").
			Set("case_mask", int64(masks.Case)).
			Set("gender_mask", int64(masks.Gender)).
			Set("number_mask", int64(masks.Number)).
			Set("tense_mask", int64(masks.Tense)).
			Set("voice_mask", int64(masks.Voice)).
			Set("mood_mask", int64(masks.Mood)).
			Set("person_mask", int64(masks.Person)).
			Where(sq.Eq{"id": w.ID.String()}).
			ToSql()
		if err != nil {
			return 0, fmt.Errorf("build masks update: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, fmt.Errorf("update masks of %s: %w", w.Lemma, err)
		}
		updated++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return updated, nil
}

// All returns every stored word.
func (s *Store) All(ctx context.Context) ([]domain.Word, error) {
	query, args, err := sq.Select(wordColumns).
		From("words").
		OrderBy("pos", "lemma").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build all query: %w", err)
	}
	return s.queryWords(ctx, query, args)
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM words").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

func (s *Store) queryWords(ctx context.Context, query string, args []any) ([]domain.Word, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}

func scanWord(rows *sql.Rows) (domain.Word, error) {
	var (
		w             domain.Word
		id            string
		pos           string
		translations  string
		forms         string
		caseMask      int64
		genderMask    int64
		numberMask    int64
		tenseMask     int64
		voiceMask     int64
		moodMask      int64
		personMask    int64
		pronounType   sql.NullString
		pronounPerson sql.NullString
	)

	if err := rows.Scan(&id, &w.Lemma, &pos, &translations, &forms,
		&caseMask, &genderMask, &numberMask, &tenseMask, &voiceMask, &moodMask, &personMask,
		&pronounType, &pronounPerson); err != nil {
		return domain.Word{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.Word{}, fmt.Errorf("parse word id %q: %w", id, err)
	}
	w.ID = parsed
	w.POS = domain.PartOfSpeech(pos)
	if err := json.Unmarshal([]byte(translations), &w.Translations); err != nil {
		return domain.Word{}, fmt.Errorf("unmarshal translations of %s: %w", w.Lemma, err)
	}
	if err := json.Unmarshal([]byte(forms), &w.Forms); err != nil {
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
	if pronounType.Valid {
		pt := domain.PronounType(pronounType.String)
		w.PronounType = &pt
	}
	if pronounPerson.Valid {
		pp := domain.Person(pronounPerson.String)
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
