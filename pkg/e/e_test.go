package e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	goredis "github.com/redis/go-redis/v9"
)

func TestWrapError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", fmt.Errorf("x: %w", context.DeadlineExceeded), ErrDeadline},
		{"canceled", context.Canceled, ErrCanceled},
		{"redis nil", goredis.Nil, ErrNotFound},
		{"other", errors.New("conn reset"), ErrInternal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WrapError(ctx, "op", tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}

	if WrapError(ctx, "op", nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestTypedErrors(t *testing.T) {
	t.Parallel()

	verr := NewValidationError("allowedMinutes", "is required")
	if !errors.Is(Wrap("svc", verr), ErrInvalidInput) {
		t.Fatalf("validation error must unwrap to ErrInvalidInput")
	}
	if verr.Error() != "validation failed: allowedMinutes: is required" {
		t.Fatalf("unexpected message %q", verr.Error())
	}

	merr := &MalformedEventError{Field: "sign-in-time", Reason: "missing"}
	if !errors.Is(merr, ErrMalformedEvent) || merr.Error() != "sign-in-time is missing" {
		t.Fatalf("unexpected malformed event error %q", merr.Error())
	}
}
