package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/worknow-dev/worknow/internal/apperrors"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Code
	}{
		{"nil", nil, ""},
		{"typed not found", apperrors.NotFound("missing"), apperrors.CodeNotFound},
		{"typed conflict", apperrors.Conflict("raced"), apperrors.CodeConflict},
		{"wrapped typed", fmt.Errorf("handler: %w", apperrors.Forbidden("nope")), apperrors.CodeForbidden},
		{"untyped", errors.New("boom"), apperrors.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apperrors.CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := apperrors.Duplicate("already applied")
	if !apperrors.Is(err, apperrors.CodeDuplicate) {
		t.Error("expected duplicate code to match")
	}
	if apperrors.Is(err, apperrors.CodeNotFound) {
		t.Error("duplicate must not match not_found")
	}
	if apperrors.Is(nil, apperrors.CodeInternal) {
		t.Error("nil error must not match any code")
	}
}

func TestInvalidTransitionMessage(t *testing.T) {
	err := apperrors.InvalidTransition("REJECTED", "ACCEPTED")
	want := "invalid_transition: cannot transition from REJECTED to ACCEPTED"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.Internal("query failed", cause)
	if !errors.Is(err, cause) {
		t.Error("Internal should wrap its cause")
	}
}
