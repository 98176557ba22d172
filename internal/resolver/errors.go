package resolver

import (
	"fmt"

	"github.com/ellinika/syntaxis/internal/domain"
)

// ResolveErrorKind classifies resolution failures.
type ResolveErrorKind string

const (
	UnknownPartOfSpeech    ResolveErrorKind = "unknown_part_of_speech"
	UnknownFeatureCategory ResolveErrorKind = "unknown_feature_category"
	UnknownFeatureValue    ResolveErrorKind = "unknown_feature_value"
	DuplicateFeature       ResolveErrorKind = "duplicate_feature"
	AmbiguousFeature       ResolveErrorKind = "ambiguous_feature"
	MissingRequiredFeature ResolveErrorKind = "missing_required_feature"
	ReferenceNotFound      ResolveErrorKind = "reference_not_found"
	ReferenceForward       ResolveErrorKind = "reference_forward"
)

// ResolveError is a fatal resolution failure. Group is the 1-based group
// index; Lexical is the 1-based slot index within the group, or 0 when the
// failure belongs to the group itself.
type ResolveError struct {
	Kind    ResolveErrorKind
	Group   int
	Lexical int
	Token   string
	Detail  string
}

func (e *ResolveError) Error() string {
	where := fmt.Sprintf("group %d", e.Group)
	if e.Lexical > 0 {
		where = fmt.Sprintf("group %d lexical %d", e.Group, e.Lexical)
	}
	if e.Token != "" {
		return fmt.Sprintf("resolver: %s in %s: %q: %s", e.Kind, where, e.Token, e.Detail)
	}
	return fmt.Sprintf("resolver: %s in %s: %s", e.Kind, where, e.Detail)
}

func (e *ResolveError) Unwrap() error { return domain.ErrResolve }

// Warning is a non-fatal diagnostic: a direct override replaced an
// inherited value for the same category. The override wins.
type Warning struct {
	Group     int                    `json:"group"`
	Lexical   int                    `json:"lexical"`
	Category  domain.FeatureCategory `json:"category"`
	Inherited string                 `json:"inherited"`
	Override  string                 `json:"override"`
}

func (w Warning) String() string {
	return fmt.Sprintf("group %d lexical %d: override %s=%s replaces inherited %s",
		w.Group, w.Lexical, w.Category, w.Override, w.Inherited)
}
