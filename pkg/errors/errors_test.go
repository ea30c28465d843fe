package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidDataset, "language %q: missing type", "Go"), `INVALID_DATASET: language "Go": missing type`},
		{"wrapped", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "read %s", "a.yml"), "FILE_NOT_FOUND: read a.yml: no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := context.DeadlineExceeded
	err := Wrap(ErrCodeTimeout, cause, "fetch")
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
}

func TestGetCodeWalksChain(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"uncoded", errors.New("boom"), ""},
		{"direct", New(ErrCodeNotFound, "x"), ErrCodeNotFound},
		{"fmt wrapped", fmt.Errorf("load: %w", New(ErrCodeInvalidDataset, "x")), ErrCodeInvalidDataset},
		{"outermost wins", Wrap(ErrCodeNetwork, New(ErrCodeNotFound, "inner"), "outer"), ErrCodeNetwork},
		{"rate limited", fmt.Errorf("fetch: %w", &RateLimitedError{RetryAfter: 3}), ErrCodeRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
			if tt.want != "" && !Is(tt.err, tt.want) {
				t.Errorf("Is(err, %q) = false", tt.want)
			}
		})
	}
	if Is(nil, "") {
		t.Error("Is(nil, \"\") = true")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", New(ErrCodeNotFound, `no language for extension "foo"`), `no language for extension "foo"`},
		{"coded cause", Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidPath, "path cannot be empty"), "config"), "config: path cannot be empty"},
		{"plain cause", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "read x"), "read x: no such file"},
		{"uncoded", errors.New("boom"), "boom"},
		{"wrapped sentinel", fmt.Errorf("%w: status 503", New(ErrCodeNetwork, "network error")), "network error: status 503"},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	for _, code := range []Code{ErrCodeNotFound, ErrCodeFileNotFound} {
		if !IsNotFound(New(code, "x")) {
			t.Errorf("IsNotFound(%s) = false", code)
		}
	}
	for _, err := range []error{nil, errors.New("x"), New(ErrCodeInvalidInput, "x")} {
		if IsNotFound(err) {
			t.Errorf("IsNotFound(%v) = true", err)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"miss", New(ErrCodeNotFound, "x"), ExitFailure},
		{"uncoded", errors.New("x"), ExitFailure},
		{"missing file", New(ErrCodeFileNotFound, "x"), ExitFailure},
		{"bad input", New(ErrCodeInvalidInput, "x"), ExitUsage},
		{"bad path", fmt.Errorf("export: %w", New(ErrCodeInvalidPath, "x")), ExitUsage},
		{"bad format", New(ErrCodeInvalidFormat, "x"), ExitUsage},
		{"bad dataset", New(ErrCodeInvalidDataset, "x"), ExitDataset},
		{"network", New(ErrCodeNetwork, "x"), ExitNetwork},
		{"timeout", New(ErrCodeTimeout, "x"), ExitNetwork},
		{"rate limited", &RateLimitedError{}, ExitNetwork},
		{"deadline", fmt.Errorf("fetch: %w", context.DeadlineExceeded), ExitNetwork},
		{"canceled", fmt.Errorf("fetch: %w", context.Canceled), ExitCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRateLimitedError(t *testing.T) {
	if got := (&RateLimitedError{RetryAfter: 60}).Error(); got != "rate limited: retry after 60 seconds" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&RateLimitedError{}).Error(); got != "rate limited" {
		t.Errorf("Error() = %q", got)
	}
}
