package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "direct", err: Expired("late"), want: KindExpired},
		{name: "wrapped", err: fmt.Errorf("submit: %w", AlreadySubmitted("dup")), want: KindAlreadySubmitted},
		{name: "plain error", err: errors.New("boom"), want: KindStorageFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Forbidden("You are not assigned to take this exam."))
	if !errors.Is(err, &Error{Kind: KindForbidden}) {
		t.Fatal("expected errors.Is to match on kind")
	}
	if errors.Is(err, &Error{Kind: KindNotFound}) {
		t.Fatal("expected errors.Is not to match a different kind")
	}
}

func TestStorageFailureUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := StorageFailure("could not save result", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if got := MessageOf(err); got != "could not save result" {
		t.Errorf("MessageOf() = %q", got)
	}
	if got := MessageOf(cause); got != "Internal server error" {
		t.Errorf("MessageOf(plain) = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Kind]int{
		KindNotFound:         http.StatusNotFound,
		KindForbidden:        http.StatusForbidden,
		KindNotStarted:       http.StatusBadRequest,
		KindExpired:          http.StatusBadRequest,
		KindInvalidInput:     http.StatusBadRequest,
		KindAlreadySubmitted: http.StatusConflict,
		KindStorageFailure:   http.StatusInternalServerError,
	}
	for kind, want := range tests {
		if got := HTTPStatus(kind); got != want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", kind, got, want)
		}
	}
}
