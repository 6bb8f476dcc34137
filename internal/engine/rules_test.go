package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func TestHasInsufficientMaterial(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"king vs king", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop vs king", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and knight vs king", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", true},
		{"king vs king and knight", "1n2k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"same coloured bishops", "4kb2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"opposite coloured bishops", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false},
		{"knight vs knight", "4kn2/8/8/8/8/8/8/1N2K3 w - - 0 1", false},
		{"two knights", "4k3/8/8/8/8/8/8/1NN1K3 w - - 0 1", false},
		{"pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, e, tt.fen)
			if got := HasInsufficientMaterial(&pos); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIsStandardMaterial(t *testing.T) {
	e := New()
	start := chess.StartingPosition()
	if !IsStandardMaterial(&start) {
		t.Error("starting position reported as non-standard")
	}
	odds := mustPosition(t, e, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/R1BQKBNR w KQkq - 0 1")
	if IsStandardMaterial(&odds) {
		t.Error("knight odds reported as standard")
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		opts        []Option
		fen         string
		occurrences int
		wantStatus  chess.GameStatus
		wantReason  chess.DrawReason
	}{
		{
			name:        "running",
			fen:         InitialFEN,
			occurrences: 1,
			wantStatus:  chess.Running,
		},
		{
			name:        "checkmate",
			fen:         "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			occurrences: 1,
			wantStatus:  chess.Checkmate,
		},
		{
			name:        "stalemate",
			fen:         "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			occurrences: 1,
			wantStatus:  chess.Stalemate,
		},
		{
			name:        "insufficient material",
			fen:         "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			occurrences: 1,
			wantStatus:  chess.Draw,
			wantReason:  chess.InsufficientMaterial,
		},
		{
			name:        "insufficient material rule disabled",
			opts:        []Option{WithInsufficientMaterialDraw(false)},
			fen:         "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			occurrences: 1,
			wantStatus:  chess.Running,
		},
		{
			name:        "fifty-move rule",
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 100 80",
			occurrences: 1,
			wantStatus:  chess.Draw,
			wantReason:  chess.FiftyMoveRule,
		},
		{
			name:        "one half-move short of the limit",
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 99 80",
			occurrences: 1,
			wantStatus:  chess.Running,
		},
		{
			name:        "half-move rule disabled",
			opts:        []Option{WithHalfmoveLimit(0)},
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 150 80",
			occurrences: 1,
			wantStatus:  chess.Running,
		},
		{
			name:        "threefold repetition",
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 8 20",
			occurrences: 3,
			wantStatus:  chess.Draw,
			wantReason:  chess.Repetition,
		},
		{
			name:        "repetition disabled",
			opts:        []Option{WithRepetitionLimit(0)},
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 8 20",
			occurrences: 7,
			wantStatus:  chess.Running,
		},
		{
			name:        "fivefold limit",
			opts:        []Option{WithRepetitionLimit(5)},
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 8 20",
			occurrences: 3,
			wantStatus:  chess.Running,
		},
		{
			name:        "repetition limit of one ignored",
			opts:        []Option{WithRepetitionLimit(1)},
			fen:         "4k3/8/8/8/8/8/8/R3K3 w - - 8 20",
			occurrences: 1,
			wantStatus:  chess.Running,
		},
		{
			name:        "checkmate beats the fifty-move rule",
			fen:         "R5k1/5ppp/8/8/8/8/8/6K1 b - - 100 80",
			occurrences: 3,
			wantStatus:  chess.Checkmate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(tt.opts...)
			pos := mustPosition(t, e, tt.fen)
			status, reason := e.Evaluate(&pos, tt.occurrences)
			if status != tt.wantStatus || reason != tt.wantReason {
				t.Errorf("Evaluate() = (%v, %v); want (%v, %v)", status, reason, tt.wantStatus, tt.wantReason)
			}
		})
	}
}

func TestCheckmateAndStalemateHelpers(t *testing.T) {
	e := New()
	mate := mustPosition(t, e, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	stale := mustPosition(t, e, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	if !e.IsCheckmate(&mate) || e.IsStalemate(&mate) {
		t.Error("Fool's mate not classified as checkmate")
	}
	if e.IsCheckmate(&stale) || !e.IsStalemate(&stale) {
		t.Error("stalemate position not classified as stalemate")
	}
}

func TestEngineOptions(t *testing.T) {
	e := New()
	if e.RepetitionLimit() != DefaultRepetitionLimit || e.HalfmoveLimit() != DefaultHalfmoveLimit {
		t.Errorf("defaults = %d/%d; want %d/%d", e.RepetitionLimit(), e.HalfmoveLimit(), DefaultRepetitionLimit, DefaultHalfmoveLimit)
	}

	e = New(WithRepetitionLimit(5), WithHalfmoveLimit(150), WithHalfmoveLimit(-1))
	if e.RepetitionLimit() != 5 || e.HalfmoveLimit() != 150 {
		t.Errorf("configured = %d/%d; want 5/150", e.RepetitionLimit(), e.HalfmoveLimit())
	}
}
