// Package generator turns a resolved template into a sentence fragment:
// it draws concrete values for wildcard features, queries the lexicon
// once per slot and assembles the results in template order.
package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/lexicon"
	"github.com/ellinika/syntaxis/internal/resolver"
)

// GeneratedWord is one filled slot of the fragment.
type GeneratedWord struct {
	POS          domain.PartOfSpeech               `json:"pos"`
	Lemma        string                            `json:"lemma"`
	Surface      []string                          `json:"surface"`
	Translations []string                          `json:"translations,omitempty"`
	Features     map[domain.FeatureCategory]string `json:"features,omitempty"`
}

// Result is an ordered, fully assembled generation outcome. Fragment
// joins the primary surface form of every slot.
type Result struct {
	Fragment string          `json:"fragment"`
	Words    []GeneratedWord `json:"words"`
}

// GenerationError marks the slot whose lexicon query failed. The whole
// call fails; re-invoking with fresh wildcard draws is a valid recovery.
type GenerationError struct {
	Group   int
	Lexical int
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate: group %d lexical %d: %v", e.Group, e.Lexical, e.Err)
}

func (e *GenerationError) Unwrap() []error {
	return []error{e.Err, domain.ErrGeneration}
}

// Generator drives the lexicon query engine over a resolved template.
type Generator struct {
	engine *lexicon.Engine
}

func New(engine *lexicon.Engine) *Generator {
	return &Generator{engine: engine}
}

// Generate expands wildcards and fills every slot. Group-level wildcards
// are drawn once per group and shared by its slots and by groups that
// reference it; override wildcards are drawn independently per slot.
// Slots are processed in template order so a fixed seed replays exactly.
func (g *Generator) Generate(ctx context.Context, rt *resolver.ResolvedTemplate, rng *rand.Rand) (*Result, error) {
	res := &Result{Words: make([]GeneratedWord, 0, rt.Slots())}

	expandedBase := make([]map[domain.FeatureCategory]string, len(rt.Groups)+1)
	for _, grp := range rt.Groups {
		var base map[domain.FeatureCategory]string
		if grp.Ref > 0 {
			base = expandedBase[grp.Ref]
		} else {
			base = expand(grp.Base, rng)
		}
		expandedBase[grp.Index] = base

		for li, lex := range grp.Lexicals {
			concrete := make(map[domain.FeatureCategory]string, len(base)+len(lex.Overrides))
			for cat, v := range base {
				concrete[cat] = v
			}
			for _, cat := range domain.FeatureCategories {
				ovr, ok := lex.Overrides[cat]
				if !ok {
					continue
				}
				if ovr.Wildcard {
					concrete[cat] = draw(cat, rng)
				} else {
					concrete[cat] = ovr.Value
				}
			}

			word, err := g.engine.QueryRandom(ctx, lex.POS, concrete, rng)
			if err != nil {
				return nil, &GenerationError{Group: grp.Index, Lexical: li + 1, Err: err}
			}

			surface := word.FormsAt(concrete)
			if len(surface) == 0 {
				surface = []string{word.Lemma}
			}

			res.Words = append(res.Words, GeneratedWord{
				POS:          word.POS,
				Lemma:        word.Lemma,
				Surface:      surface,
				Translations: word.Translations,
				Features:     schemaFeatures(word.POS, concrete),
			})
		}
	}

	parts := make([]string, len(res.Words))
	for i, w := range res.Words {
		parts[i] = w.Surface[0]
	}
	res.Fragment = strings.Join(parts, " ")
	return res, nil
}

// expand draws concrete values for the wildcards of a group base, in
// canonical category order so draws replay under a fixed seed.
func expand(base domain.FeatureSet, rng *rand.Rand) map[domain.FeatureCategory]string {
	out := make(map[domain.FeatureCategory]string, len(base))
	for _, cat := range domain.FeatureCategories {
		v, ok := base[cat]
		if !ok {
			continue
		}
		if v.Wildcard {
			out[cat] = draw(cat, rng)
		} else {
			out[cat] = v.Value
		}
	}
	return out
}

func draw(cat domain.FeatureCategory, rng *rand.Rand) string {
	values := domain.CategoryValues(cat)
	return values[rng.IntN(len(values))]
}

// schemaFeatures trims the concrete assignment to the categories the
// part of speech actually selects on.
func schemaFeatures(pos domain.PartOfSpeech, concrete map[domain.FeatureCategory]string) map[domain.FeatureCategory]string {
	schema := domain.SchemaFor(pos)
	out := make(map[domain.FeatureCategory]string)
	for _, cat := range schema.Categories() {
		if v, ok := concrete[cat]; ok {
			out[cat] = v
		}
	}
	return out
}
