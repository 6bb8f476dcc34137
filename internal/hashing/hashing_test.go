package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func TestZobristHashConsistency(t *testing.T) {
	keys := NewKeys()
	pos1 := chess.StartingPosition()
	pos2 := chess.StartingPosition()

	if keys.Hash(&pos1) != keys.Hash(&pos2) {
		t.Error("Identical positions produced different hashes")
	}
	if NewKeys().Hash(&pos1) != keys.Hash(&pos1) {
		t.Error("Key tables built separately disagree")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	keys := NewKeys()
	base := chess.StartingPosition()

	tests := []struct {
		name   string
		modify func(*chess.Position)
	}{
		{"pawn moved", func(p *chess.Position) {
			p.Board.Clear(chess.E2)
			p.Board.Put(chess.E4, chess.W(chess.Pawn))
		}},
		{"side to move", func(p *chess.Position) { p.ToMove = chess.Black }},
		{"castling rights", func(p *chess.Position) { p.Castling &^= chess.WhiteKingside }},
		{"en passant square", func(p *chess.Position) {
			p.EnPassant = true
			p.EPSquare = chess.E3
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := base
			tt.modify(&pos)
			if keys.Hash(&pos) == keys.Hash(&base) {
				t.Error("Different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashIgnoresClocks(t *testing.T) {
	keys := NewKeys()
	pos1 := chess.StartingPosition()
	pos2 := chess.StartingPosition()
	pos2.HalfmoveClock = 12
	pos2.FullmoveNumber = 40

	if keys.Hash(&pos1) != keys.Hash(&pos2) {
		t.Error("Move clocks should not affect the position hash")
	}
}

func TestRepetitionCounter(t *testing.T) {
	r := NewRepetitionCounter()
	if got := r.Add(42); got != 1 {
		t.Errorf("Add(42) = %d; want 1", got)
	}
	r.Add(7)
	if got := r.Add(42); got != 2 {
		t.Errorf("Add(42) = %d; want 2", got)
	}

	clone := r.Clone()
	clone.Add(42)
	if r.Count(42) != 2 {
		t.Errorf("Count(42) = %d after adding to clone; want 2", r.Count(42))
	}
	if clone.Count(42) != 3 {
		t.Errorf("clone.Count(42) = %d; want 3", clone.Count(42))
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d; want 2", r.Len())
	}
}
