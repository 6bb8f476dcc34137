package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ParseMoves parses a space-separated list of UCI moves such as
// "e2e4 e7e5 g1f3". It returns nil if any move fails to parse.
func ParseMoves(moves string) []chess.Move {
	fields := strings.Fields(moves)
	parsed := make([]chess.Move, 0, len(fields))
	for _, f := range fields {
		m, err := chess.ParseMove(f)
		if err != nil {
			return nil
		}
		parsed = append(parsed, m)
	}
	return parsed
}

// MustParseMoves is ParseMoves that calls t.Fatal on a bad move.
func MustParseMoves(t testing.TB, moves string) []chess.Move {
	t.Helper()
	fields := strings.Fields(moves)
	parsed := make([]chess.Move, 0, len(fields))
	for _, f := range fields {
		m, err := chess.ParseMove(f)
		if err != nil {
			t.Fatalf("bad test move %q: %v", f, err)
		}
		parsed = append(parsed, m)
	}
	return parsed
}

// MustSquares parses a space-separated list of squares such as "e2 e4".
func MustSquares(t testing.TB, squares string) []chess.Square {
	t.Helper()
	fields := strings.Fields(squares)
	parsed := make([]chess.Square, 0, len(fields))
	for _, f := range fields {
		sq, err := chess.ParseSquare(f)
		if err != nil {
			t.Fatalf("bad test square %q: %v", f, err)
		}
		parsed = append(parsed, sq)
	}
	return parsed
}

// MoveStrings converts moves to their UCI strings, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// AssertSameMoves compares two move lists ignoring order.
func AssertSameMoves(t testing.TB, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Move) bool { return a.String() < b.String() }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		report(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSameSquares compares two square lists ignoring order.
func AssertSameSquares(t testing.TB, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Square) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		report(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}
