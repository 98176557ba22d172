package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ellinika/syntaxis/internal/domain"
	"github.com/ellinika/syntaxis/internal/service/generate"
)

// generateService defines the minimal interface needed by GenerateHandler.
type generateService interface {
	Generate(ctx context.Context, input generate.Input) (*generate.Output, error)
}

// GenerateHandler serves the fragment generation endpoint.
type GenerateHandler struct {
	svc     generateService
	timeout time.Duration
	log     *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc generateService, timeout time.Duration, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		svc:     svc,
		timeout: timeout,
		log:     logger.With("handler", "generate"),
	}
}

type generateRequest struct {
	Template string  `json:"template"`
	Seed     *uint64 `json:"seed,omitempty"`
}

// Generate handles POST /v1/generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Template == "" {
		writeError(w, http.StatusBadRequest, "template is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	out, err := h.svc.Generate(ctx, generate.Input{
		Template: req.Template,
		Seed:     req.Seed,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *GenerateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrParse), errors.Is(err, domain.ErrResolve):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrGeneration) && errors.Is(err, domain.ErrNotFound):
		// No word satisfied the slot's features. Other generation-time
		// failures (store outages included) are server errors.
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
