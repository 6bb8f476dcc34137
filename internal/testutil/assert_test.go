package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// recorder captures failures instead of failing the enclosing test.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Error(args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprint(args...))
}

func TestAssertionsPass(t *testing.T) {
	r := &recorder{TB: t}
	AssertEqual(r, []string{"e2e4", "e7e5"}, []string{"e2e4", "e7e5"})
	AssertNoError(r, nil)
	AssertError(r, errors.ErrIllegalMove)
	AssertErrorIs(r, fmt.Errorf("ply 3: %w", errors.ErrIllegalMove), errors.ErrIllegalMove)
	AssertContains(r, "1. e4 e5", "e5")
	AssertNotContains(r, "1. e4 e5", "Nf3")
	AssertTrue(r, true)
	AssertFalse(r, false)

	if len(r.failures) != 0 {
		t.Errorf("passing assertions reported %q", r.failures)
	}
}

func TestAssertionsFail(t *testing.T) {
	tests := []struct {
		name   string
		assert func(t testing.TB)
		want   string
	}{
		{"equal", func(t testing.TB) { AssertEqual(t, 1, 2) }, "mismatch (-want +got)"},
		{"no error", func(t testing.TB) { AssertNoError(t, errors.ErrGameOver) }, "unexpected error: game is over"},
		{"error", func(t testing.TB) { AssertError(t, nil) }, "expected error but got nil"},
		{"error is", func(t testing.TB) { AssertErrorIs(t, errors.ErrInvalidFEN, errors.ErrInvalidMove) }, "does not wrap invalid move text"},
		{"contains", func(t testing.TB) { AssertContains(t, "e4", "d4") }, `"e4" does not contain "d4"`},
		{"not contains", func(t testing.TB) { AssertNotContains(t, "e4", "e") }, `"e4" should not contain "e"`},
		{"true", func(t testing.TB) { AssertTrue(t, false) }, "expected true but got false"},
		{"false", func(t testing.TB) { AssertFalse(t, true) }, "expected false but got true"},
		{"message", func(t testing.TB) { AssertTrue(t, false, "after %d plies", 4) }, "after 4 plies: expected true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{TB: t}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("got %d failures; want 1", len(r.failures))
			}
			if !strings.Contains(r.failures[0], tt.want) {
				t.Errorf("failure %q does not contain %q", r.failures[0], tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"ply %d of %s", 3, "game"}, "ply 3 of game"},
		{"non-string format", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
