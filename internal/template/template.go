// Package template parses sentence templates in the bracket (V1) and
// group (V2) notations into an ordered sequence of groups of lexical
// slots. Parsing is purely syntactic: part-of-speech names and feature
// tokens are carried through raw and validated by the resolver.
package template

import (
	"strings"
)

// Notation identifies the template syntax variant, detected from the
// first significant character of the input.
type Notation int

const (
	// NotationV1 is the bracket syntax: [pos:feat:feat:...] ...
	NotationV1 Notation = 1
	// NotationV2 is the group syntax: (pos pos{ovr}...)@{feat:...} or (...)@$N
	NotationV2 Notation = 2
)

func (n Notation) String() string {
	switch n {
	case NotationV1:
		return "v1"
	case NotationV2:
		return "v2"
	}
	return "unknown"
}

// RawFeature is one unvalidated feature token with its byte offset in the
// raw template, kept for error reporting.
type RawFeature struct {
	Text   string
	Offset int
}

// LexicalSpec is one part-of-speech occurrence within a group, with its
// optional direct overrides.
type LexicalSpec struct {
	Name      string // raw part-of-speech token
	Offset    int
	Overrides []RawFeature
}

// Group is an ordered collection of lexical slots sharing inherited
// features. Index is the 1-based appearance order and is stable for the
// lifetime of the parsed template. A group carries either an inline
// feature list or a back-reference, never both.
type Group struct {
	Index    int
	Lexicals []LexicalSpec
	Features []RawFeature
	Ref      int // referenced group index; 0 when the group has inline features
}

// HasRef reports whether the group inherits from an earlier group.
func (g Group) HasRef() bool { return g.Ref > 0 }

// Template is a parsed template. Immutable once parsed; resolution
// attaches derived data alongside rather than mutating it.
type Template struct {
	Raw      string
	Notation Notation
	Groups   []Group
}

// Parse tokenizes and parses a raw template string, detecting the
// notation from the first non-whitespace character.
func Parse(raw string) (*Template, error) {
	trimmed := strings.TrimLeft(raw, " \t\r\n")
	offset := len(raw) - len(trimmed)

	if trimmed == "" {
		return nil, &ParseError{Kind: UnexpectedToken, Offset: 0, Detail: "empty template"}
	}

	switch trimmed[0] {
	case '[':
		groups, err := parseV1(raw, offset)
		if err != nil {
			return nil, err
		}
		return &Template{Raw: raw, Notation: NotationV1, Groups: groups}, nil
	case '(':
		groups, err := parseV2(raw, offset)
		if err != nil {
			return nil, err
		}
		return &Template{Raw: raw, Notation: NotationV2, Groups: groups}, nil
	default:
		return nil, &ParseError{
			Kind:   UnexpectedToken,
			Offset: offset,
			Detail: "template must start with '[' or '('",
		}
	}
}

// splitFeatures splits a colon-separated feature list into raw tokens,
// trimming whitespace and dropping empty entries. base is the byte offset
// of the list within the template.
func splitFeatures(list string, base int) []RawFeature {
	var out []RawFeature
	start := 0
	for i := 0; i <= len(list); i++ {
		if i == len(list) || list[i] == ':' {
			tok := list[start:i]
			trimmed := strings.TrimSpace(tok)
			if trimmed != "" {
				lead := strings.Index(tok, trimmed)
				out = append(out, RawFeature{Text: trimmed, Offset: base + start + lead})
			}
			start = i + 1
		}
	}
	return out
}
