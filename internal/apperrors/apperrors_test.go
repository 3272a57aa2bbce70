package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(NotFound, "post not found"))

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", New(Conflict, "duplicate"), Conflict},
		{"wrapped", wrapped, NotFound},
		{"plain error", errors.New("boom"), Internal},
		{"nil chain", fmt.Errorf("ctx: %w", errors.New("boom")), Internal},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Fatalf("%s: expected kind %d, got %d", c.name, c.want, got)
		}
	}
}

func TestToHTTPError(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Unauthenticated, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{InvalidOperation, http.StatusBadRequest},
		{Validation, http.StatusBadRequest},
		{Conflict, http.StatusConflict},
		{Internal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		httpErr := ToHTTPError(New(c.kind, "msg"))
		if httpErr.Code != c.want {
			t.Fatalf("kind %d: expected status %d, got %d", c.kind, c.want, httpErr.Code)
		}
	}

	// unclassified errors must not leak their message
	httpErr := ToHTTPError(errors.New("pq: connection refused"))
	if httpErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unclassified error, got %d", httpErr.Code)
	}
	if httpErr.Message == "pq: connection refused" {
		t.Fatalf("internal error detail leaked to client")
	}
}

func TestWrapPreservesChain(t *testing.T) {
	base := errors.New("record not found")
	err := Wrap(NotFound, "profile not found", base)
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to match base")
	}
	if !IsKind(err, NotFound) {
		t.Fatalf("expected NotFound kind")
	}
}
