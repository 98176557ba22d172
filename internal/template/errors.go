package template

import (
	"fmt"

	"github.com/ellinika/syntaxis/internal/domain"
)

// ParseErrorKind classifies syntax failures.
type ParseErrorKind string

const (
	UnclosedGroup   ParseErrorKind = "unclosed_group"
	UnclosedBrace   ParseErrorKind = "unclosed_brace"
	UnexpectedToken ParseErrorKind = "unexpected_token"
)

// ParseError reports a syntax failure with the byte offset of the
// offending token in the raw template.
type ParseError struct {
	Kind   ParseErrorKind
	Offset int
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

func (e *ParseError) Unwrap() error { return domain.ErrParse }
