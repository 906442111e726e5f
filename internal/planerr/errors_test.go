package planerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorUnwrapsToInvalidArgument(t *testing.T) {
	err := fmt.Errorf("generate: %w", NewValidation("days", "0", "must be positive"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("validation error must not match ErrNotFound")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "days" {
		t.Fatalf("expected ValidationError for days, got %#v", vErr)
	}
	if got := err.Error(); got != `generate: invalid days "0": must be positive` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNotFoundErrorMessages(t *testing.T) {
	tests := []struct {
		err  *NotFoundError
		want string
	}{
		{NewNotFound("fixed plan", "nope"), "fixed plan not found: nope"},
		{NewNotFound("preset", ""), "preset not found"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("Error() = %q, want %q", got, tt.want)
		}
		if !errors.Is(tt.err, ErrNotFound) {
			t.Fatalf("%v should match ErrNotFound", tt.err)
		}
	}
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := NewValidation("", "", "empty input")
	if got := err.Error(); got != "invalid argument: empty input" {
		t.Fatalf("unexpected message %q", got)
	}
}
