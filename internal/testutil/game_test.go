package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []chess.Move
		wantNil bool
	}{
		{
			name: "two moves",
			in:   "e2e4 e7e5",
			want: []chess.Move{chess.NewMove(chess.E2, chess.E4), chess.NewMove(chess.E7, chess.E5)},
		},
		{
			name: "promotion",
			in:   "a7a8n",
			want: []chess.Move{{From: chess.A7, To: chess.A8, Promotion: chess.Knight}},
		},
		{
			name: "empty",
			in:   "   ",
			want: []chess.Move{},
		},
		{
			name:    "bad move",
			in:      "e2e4 zz",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMoves(tt.in)
			if tt.wantNil {
				AssertTrue(t, got == nil)
				return
			}
			AssertEqual(t, got, tt.want)
		})
	}
}

func TestMustSquares(t *testing.T) {
	AssertEqual(t, MustSquares(t, "a1 h8 e4"), []chess.Square{chess.A1, chess.H8, chess.E4})
}

func TestMoveStrings(t *testing.T) {
	moves := MustParseMoves(t, "g1f3 e2e4 b1c3")
	AssertEqual(t, MoveStrings(moves), []string{"b1c3", "e2e4", "g1f3"})
}

func TestAssertSameMoves_Success(t *testing.T) {
	AssertSameMoves(t, MustParseMoves(t, "e2e4 d2d4"), MustParseMoves(t, "d2d4 e2e4"))
	AssertSameMoves(t, nil, []chess.Move{})
}

func TestAssertSameSquares_Success(t *testing.T) {
	AssertSameSquares(t, []chess.Square{chess.H8, chess.A1}, []chess.Square{chess.A1, chess.H8})
}
