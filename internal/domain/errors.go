package domain

import (
	"errors"
)

// Sentinel errors used across all layers. Typed errors in the template,
// resolver, and lexicon packages unwrap to these so callers can classify
// failures with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrParse         = errors.New("parse error")
	ErrResolve       = errors.New("resolve error")
	ErrGeneration    = errors.New("generation error")
	ErrValidation    = errors.New("validation error")
)
