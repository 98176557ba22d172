package ctxutil

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := RequestIDFromCtx(ctx); got != "" {
		t.Errorf("empty context: got %q", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := RequestIDFromCtx(ctx); got != "req-123" {
		t.Errorf("got %q, want req-123", got)
	}
}
