package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/generator"
	"github.com/ellinika/syntaxis/internal/service/generate"
)

type stubGenerateService struct {
	out  *generate.Output
	err  error
	last generate.Input
}

func (s *stubGenerateService) Generate(_ context.Context, input generate.Input) (*generate.Output, error) {
	s.last = input
	if s.err != nil {
		return nil, s.err
	}
	return s.out, nil
}

func newGenerateHandler(svc generateService) *GenerateHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGenerateHandler(svc, 5*time.Second, logger)
}

func TestGenerateOK(t *testing.T) {
	t.Parallel()

	svc := &stubGenerateService{out: &generate.Output{
		Fragment: "ο άνθρωπος",
		Seed:     42,
	}}
	h := newGenerateHandler(svc)

	body := strings.NewReader(`{"template": "[article:nom:masc:sg] [noun:nom:masc:sg]", "seed": 42}`)
	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/v1/generate", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp generate.Output
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Fragment != "ο άνθρωπος" {
		t.Errorf("fragment = %q", resp.Fragment)
	}
	if resp.Seed != 42 {
		t.Errorf("seed = %d", resp.Seed)
	}
	if svc.last.Seed == nil || *svc.last.Seed != 42 {
		t.Errorf("service input seed = %v", svc.last.Seed)
	}
}

func TestGenerateBadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "malformed json",
			body:       `{"template":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing template",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "parse error",
			body:       `{"template": "[noun"}`,
			svcErr:     fmt.Errorf("parse template: %w", domain.ErrParse),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "resolve error",
			body:       `{"template": "[xyzzy:nom]"}`,
			svcErr:     fmt.Errorf("resolve template: %w", domain.ErrResolve),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no matching word",
			body:       `{"template": "[noun:voc:masc:sg]"}`,
			svcErr:     &generator.GenerationError{Group: 1, Lexical: 1, Err: domain.ErrNotFound},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "store failure during generation",
			body:       `{"template": "[noun:nom:masc:sg]"}`,
			svcErr:     &generator.GenerationError{Group: 1, Lexical: 1, Err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "internal error",
			body:       `{"template": "[noun:nom]"}`,
			svcErr:     errors.New("store offline"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newGenerateHandler(&stubGenerateService{err: tt.svcErr})
			rec := httptest.NewRecorder()
			h.Generate(rec, httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(tt.body)))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
