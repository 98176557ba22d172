package resolver

import (
	"strings"

	"github.com/ellinika/syntaxis/internal/domain"
)

// V1 renders the slot back into bracket notation: the part of speech
// followed by its effective features in canonical category order.
// Wildcards keep their starred spelling.
func (rl ResolvedLexical) V1() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(string(rl.POS))
	for _, cat := range domain.FeatureCategories {
		v, ok := rl.Features[cat]
		if !ok || v.IsZero() {
			continue
		}
		b.WriteByte(':')
		if v.Wildcard {
			b.WriteByte('*')
			b.WriteString(string(cat))
			b.WriteByte('*')
		} else {
			b.WriteString(v.Value)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// V1 flattens the template into bracket notation, one bracket per slot.
// Group structure and references do not survive, but the layered features
// do: re-parsing the result resolves to the same slots.
func (rt *ResolvedTemplate) V1() string {
	parts := make([]string, 0, rt.Slots())
	for _, g := range rt.Groups {
		for _, lex := range g.Lexicals {
			parts = append(parts, lex.V1())
		}
	}
	return strings.Join(parts, " ")
}
