// Package generate is the use-case layer: it runs the parse, resolve,
// expand pipeline for one template string and handles seeding and
// wildcard-miss retries.
package generate

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	mathrand "math/rand/v2"

	"github.com/ellinika/syntaxis/internal/config"
	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/generator"
	"github.com/ellinika/syntaxis/internal/resolver"
	"github.com/ellinika/syntaxis/internal/template"
)

// Input is one generation request. A nil Seed means "pick one": the
// chosen seed comes back in the Output so the run can be replayed.
type Input struct {
	Template string
	Seed     *uint64
}

// Output is the generation payload handed to transport.
type Output struct {
	Fragment string                    `json:"fragment"`
	Words    []generator.GeneratedWord `json:"words"`
	Warnings []resolver.Warning        `json:"warnings,omitempty"`
	Seed     uint64                    `json:"seed"`
}

// Service wires the pipeline together.
type Service struct {
	gen        *generator.Generator
	maxRetries int
	log        *slog.Logger
}

// NewService creates a new generation service.
func NewService(log *slog.Logger, gen *generator.Generator, cfg config.GenerationConfig) *Service {
	return &Service{
		gen:        gen,
		maxRetries: cfg.MaxRetries,
		log:        log.With("service", "generate"),
	}
}

// Generate parses, resolves and expands one template. A wildcard draw
// that finds no word is retried with fresh draws from the same stream, so
// replaying with the returned seed reproduces the whole run, retries
// included. Templates without wildcards never retry: the same features
// would miss again.
func (s *Service) Generate(ctx context.Context, in Input) (*Output, error) {
	tpl, err := template.Parse(in.Template)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	rt, err := resolver.Resolve(tpl)
	if err != nil {
		return nil, fmt.Errorf("resolve template: %w", err)
	}

	seed := pickSeed(in.Seed)
	rng := mathrand.New(mathrand.NewPCG(seed, 0))

	retries := 0
	if hasWildcards(rt) {
		retries = s.maxRetries
	}

	var res *generator.Result
	for attempt := 0; ; attempt++ {
		res, err = s.gen.Generate(ctx, rt, rng)
		if err == nil {
			break
		}
		if attempt >= retries || !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		s.log.Debug("retrying after wildcard miss",
			"template", in.Template, "attempt", attempt+1, "error", err)
	}

	s.log.Info("generated fragment",
		"notation", rt.Notation.String(),
		"slots", rt.Slots(),
		"warnings", len(rt.Warnings),
		"seed", seed)

	return &Output{
		Fragment: res.Fragment,
		Words:    res.Words,
		Warnings: rt.Warnings,
		Seed:     seed,
	}, nil
}

func pickSeed(explicit *uint64) uint64 {
	if explicit != nil {
		return *explicit
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("read random seed: %v", err))
	}
	return binary.BigEndian.Uint64(b[:])
}

func hasWildcards(rt *resolver.ResolvedTemplate) bool {
	for _, g := range rt.Groups {
		if g.Base.HasWildcards() {
			return true
		}
		for _, lex := range g.Lexicals {
			if lex.Overrides.HasWildcards() {
				return true
			}
		}
	}
	return false
}
