// Package resolver computes the effective feature set of every lexical
// slot in a parsed template. Layering is per category: a referenced
// group's features first, the group's inline list next, the slot's direct
// overrides last. Wildcards stay symbolic; the generator draws them.
package resolver

import (
	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/template"
)

// ResolvedLexical is one slot with its validated part of speech, its
// direct overrides and the layered effective feature set.
type ResolvedLexical struct {
	POS       domain.PartOfSpeech
	Overrides domain.FeatureSet
	Features  domain.FeatureSet
}

// ResolvedGroup keeps the group's base feature set and its reference, if
// any. For a referencing group Base is a copy of the referenced group's
// base; the reference index is preserved so that generation can share
// wildcard draws along the chain.
type ResolvedGroup struct {
	Index    int
	Ref      int
	Base     domain.FeatureSet
	Lexicals []ResolvedLexical
}

// ResolvedTemplate is the output of Resolve: groups in template order plus
// any non-fatal override-conflict warnings.
type ResolvedTemplate struct {
	Notation template.Notation
	Groups   []ResolvedGroup
	Warnings []Warning
}

// Slots counts the lexical slots across all groups.
func (rt *ResolvedTemplate) Slots() int {
	n := 0
	for _, g := range rt.Groups {
		n += len(g.Lexicals)
	}
	return n
}

// Resolve validates and layers the features of every slot. It is a pure
// function of the parsed template and touches no lexicon.
func Resolve(tpl *template.Template) (*ResolvedTemplate, error) {
	rt := &ResolvedTemplate{Notation: tpl.Notation}

	for _, g := range tpl.Groups {
		rg := ResolvedGroup{Index: g.Index, Ref: g.Ref}

		if g.HasRef() {
			if g.Ref > len(tpl.Groups) {
				return nil, &ResolveError{
					Kind: ReferenceNotFound, Group: g.Index,
					Detail: "no such group",
				}
			}
			if g.Ref >= g.Index {
				return nil, &ResolveError{
					Kind: ReferenceForward, Group: g.Index,
					Detail: "references must point to an earlier group",
				}
			}
			rg.Base = rt.Groups[g.Ref-1].Base.Clone()
		} else {
			base, rerr := parseFeatureList(g.Features, g.Index, 0)
			if rerr != nil {
				return nil, rerr
			}
			rg.Base = base
		}

		for li, lex := range g.Lexicals {
			pos := domain.PartOfSpeech(lex.Name)
			if !pos.IsValid() {
				return nil, &ResolveError{
					Kind: UnknownPartOfSpeech, Group: g.Index, Lexical: li + 1,
					Token: lex.Name, Detail: "not a usable part of speech",
				}
			}

			overrides, rerr := parseFeatureList(lex.Overrides, g.Index, li+1)
			if rerr != nil {
				return nil, rerr
			}

			for _, cat := range domain.FeatureCategories {
				ovr, ok := overrides[cat]
				if !ok {
					continue
				}
				inherited, ok := rg.Base[cat]
				if !ok {
					continue
				}
				if !ovr.Wildcard && !inherited.Wildcard && ovr.Value != inherited.Value {
					rt.Warnings = append(rt.Warnings, Warning{
						Group:     g.Index,
						Lexical:   li + 1,
						Category:  cat,
						Inherited: inherited.Value,
						Override:  ovr.Value,
					})
				}
			}

			effective := rg.Base.Overlay(overrides)

			schema := domain.SchemaFor(pos)
			if missing := schema.MissingRequired(effective); len(missing) > 0 {
				return nil, &ResolveError{
					Kind: MissingRequiredFeature, Group: g.Index, Lexical: li + 1,
					Token: string(missing[0]), Detail: "required category has no value",
				}
			}

			rg.Lexicals = append(rg.Lexicals, ResolvedLexical{
				POS:       pos,
				Overrides: overrides,
				Features:  effective,
			})
		}

		rt.Groups = append(rt.Groups, rg)
	}

	return rt, nil
}
