package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FeatureValue is the value of one feature category on a lexical slot.
// It is either a concrete enumerated value or the wildcard sentinel
// ("choose uniformly at random at generation time").
type FeatureValue struct {
	Value    string
	Wildcard bool
}

// Concrete builds a concrete feature value.
func Concrete(value string) FeatureValue {
	return FeatureValue{Value: value}
}

// WildcardValue is the wildcard sentinel.
var WildcardValue = FeatureValue{Wildcard: true}

func (v FeatureValue) IsZero() bool { return !v.Wildcard && v.Value == "" }

func (v FeatureValue) String() string {
	if v.Wildcard {
		return "*"
	}
	return v.Value
}

// FeatureSet maps feature categories to their values. Absent categories
// are unconstrained. Iteration over a FeatureSet must go through
// FeatureCategories for a stable order.
type FeatureSet map[FeatureCategory]FeatureValue

// Clone returns an independent copy of the set.
func (fs FeatureSet) Clone() FeatureSet {
	out := make(FeatureSet, len(fs))
	for k, v := range fs {
		out[k] = v
	}
	return out
}

// Overlay returns a copy of fs with the entries of over applied on top.
// Categories present in both take over's value; layering is per category,
// never whole-set replacement.
func (fs FeatureSet) Overlay(over FeatureSet) FeatureSet {
	out := fs.Clone()
	for k, v := range over {
		out[k] = v
	}
	return out
}

// HasWildcards reports whether any category still carries the wildcard
// sentinel.
func (fs FeatureSet) HasWildcards() bool {
	for _, v := range fs {
		if v.Wildcard {
			return true
		}
	}
	return false
}

// Concrete returns the plain category→value map of the set. It panics if
// any value is still a wildcard; callers expand wildcards first.
func (fs FeatureSet) Concrete() map[FeatureCategory]string {
	out := make(map[FeatureCategory]string, len(fs))
	for k, v := range fs {
		if v.Wildcard {
			panic(fmt.Sprintf("feature set still has wildcard for %s", k))
		}
		out[k] = v.Value
	}
	return out
}

// String renders the set as "case=nominative gender=* ..." with categories
// sorted, for error messages and logs.
func (fs FeatureSet) String() string {
	parts := make([]string, 0, len(fs))
	for k, v := range fs {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
