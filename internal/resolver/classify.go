package resolver

import (
	"strings"

	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/template"
)

// classified is one feature token resolved to a category and value.
type classified struct {
	category domain.FeatureCategory
	value    domain.FeatureValue
}

// aliases are accepted shorthands that bypass prefix matching.
var aliases = map[string]classified{
	"sg": {domain.CategoryNumber, domain.Concrete("singular")},
	"pl": {domain.CategoryNumber, domain.Concrete("plural")},
}

// templateCategories are the categories a template may select on. Mood
// exists only inside stored form tables.
var templateCategories = []domain.FeatureCategory{
	domain.CategoryCase,
	domain.CategoryGender,
	domain.CategoryNumber,
	domain.CategoryTense,
	domain.CategoryVoice,
	domain.CategoryPerson,
	domain.CategoryType,
}

func templateCategory(name string) (domain.FeatureCategory, bool) {
	for _, cat := range templateCategories {
		if string(cat) == name {
			return cat, true
		}
	}
	return "", false
}

// classifyValue maps a bare token to its category by matching it as a
// prefix of the canonical value names. An exact match wins outright; a
// prefix matching several values is ambiguous.
func classifyValue(token string) (classified, []string, bool) {
	var (
		hits  []classified
		names []string
	)
	for _, cat := range templateCategories {
		for _, v := range domain.CategoryValues(cat) {
			if v == token {
				return classified{cat, domain.Concrete(v)}, nil, true
			}
			if strings.HasPrefix(v, token) {
				hits = append(hits, classified{cat, domain.Concrete(v)})
				names = append(names, v)
			}
		}
	}
	if len(hits) == 1 {
		return hits[0], nil, true
	}
	return classified{}, names, false
}

// parseFeatureList turns an ordered raw token list into a FeatureSet.
// Tokens are classified by value, so declaration order never matters;
// a bare category name reads as that category's wildcard, unless the next
// token is one of its values, in which case the two tokens form an
// explicit category:value pair.
func parseFeatureList(tokens []template.RawFeature, group, lexical int) (domain.FeatureSet, *ResolveError) {
	out := domain.FeatureSet{}

	put := func(c classified, token string) *ResolveError {
		if _, dup := out[c.category]; dup {
			return &ResolveError{
				Kind: DuplicateFeature, Group: group, Lexical: lexical,
				Token: token, Detail: "category " + string(c.category) + " set twice",
			}
		}
		out[c.category] = c.value
		return nil
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i].Text

		// Starred wildcard: *gender*, *number*, *person*.
		if len(tok) > 2 && tok[0] == '*' && tok[len(tok)-1] == '*' {
			cat, ok := templateCategory(tok[1 : len(tok)-1])
			if !ok {
				return nil, &ResolveError{
					Kind: UnknownFeatureCategory, Group: group, Lexical: lexical,
					Token: tok, Detail: "unknown wildcard category",
				}
			}
			if !cat.SupportsWildcard() {
				return nil, &ResolveError{
					Kind: UnknownFeatureValue, Group: group, Lexical: lexical,
					Token: tok, Detail: "category " + string(cat) + " has no wildcard",
				}
			}
			if err := put(classified{cat, domain.WildcardValue}, tok); err != nil {
				return nil, err
			}
			continue
		}

		if alias, ok := aliases[tok]; ok {
			if err := put(alias, tok); err != nil {
				return nil, err
			}
			continue
		}

		// Bare category name: explicit pair when a value of that category
		// follows, wildcard otherwise.
		if cat, ok := templateCategory(tok); ok {
			if i+1 < len(tokens) && domain.IsCategoryValue(cat, tokens[i+1].Text) {
				i++
				if err := put(classified{cat, domain.Concrete(tokens[i].Text)}, tok); err != nil {
					return nil, err
				}
				continue
			}
			if !cat.SupportsWildcard() {
				return nil, &ResolveError{
					Kind: UnknownFeatureValue, Group: group, Lexical: lexical,
					Token: tok, Detail: "category " + string(cat) + " needs an explicit value",
				}
			}
			if err := put(classified{cat, domain.WildcardValue}, tok); err != nil {
				return nil, err
			}
			continue
		}

		c, candidates, ok := classifyValue(tok)
		if !ok {
			if len(candidates) > 1 {
				return nil, &ResolveError{
					Kind: AmbiguousFeature, Group: group, Lexical: lexical,
					Token: tok, Detail: "matches " + strings.Join(candidates, ", "),
				}
			}
			return nil, &ResolveError{
				Kind: UnknownFeatureValue, Group: group, Lexical: lexical,
				Token: tok, Detail: "no feature value with this prefix",
			}
		}
		if err := put(c, tok); err != nil {
			return nil, err
		}
	}
	return out, nil
}
