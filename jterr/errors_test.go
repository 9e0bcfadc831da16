package jterr_test

import (
	"errors"
	"testing"

	"github.com/lattice-substrate/jsontree/jterr"
)

func TestErrorFormat(t *testing.T) {
	e := jterr.New(jterr.LeadingZero, 3, "illegal leading zero")
	if e.Error() != "jterr: LEADING_ZERO at byte 3: illegal leading zero" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
}

func TestErrorFormatNoOffset(t *testing.T) {
	e := jterr.New(jterr.WrongKind, -1, "value is number, not list")
	if e.Error() != "jterr: WRONG_KIND: value is number, not list" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	e := jterr.Wrap(jterr.NotFinite, -1, "cannot build number", cause)
	if !errors.Is(e, cause) {
		t.Fatal("Unwrap did not return cause")
	}
	if got := e.Error(); got != "jterr: NOT_FINITE: cannot build number: underlying" {
		t.Fatalf("unexpected wrapped error string: %s", got)
	}
}

func TestErrorAs(t *testing.T) {
	e := jterr.Newf(jterr.UnexpectedChar, 10, "unexpected character %q", "#")
	var target *jterr.Error
	if !errors.As(e, &target) {
		t.Fatal("errors.As failed")
	}
	if target.Class != jterr.UnexpectedChar {
		t.Fatalf("class = %s, want UNEXPECTED_CHAR", target.Class)
	}
	if target.Offset != 10 {
		t.Fatalf("offset = %d, want 10", target.Offset)
	}
}
