package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrNotInstalled, ExitUser),
			want: "version not installed",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("resolving release: %w", ErrVersionNotFound), ExitUser),
			want: "resolving release: version not found",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	err := NewUserError(ErrVersionNotFound, "run 'gdvm list --available'")

	if !errors.Is(err, ErrVersionNotFound) {
		t.Error("errors.Is should find the wrapped sentinel")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("errors.As should find the ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion == "" {
		t.Error("Suggestion should be preserved")
	}
}

func TestNewSystemError(t *testing.T) {
	underlying := errors.New("disk full")
	err := NewSystemError(underlying, "free up disk space")

	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
	if !errors.Is(err, underlying) {
		t.Error("underlying error should be reachable via errors.Is")
	}
}
