package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move is a from/to square pair with an optional promotion piece.
// Moves are comparable; two moves are equal when all three fields match.
type Move struct {
	From      Square
	To        Square
	Promotion Piece // NoPiece unless the move promotes
}

// NewMove creates a non-promoting move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPiece
}

// String returns the move in UCI long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// ParseMove parses UCI long algebraic notation. A dash between the squares
// ("e2-e4") is also accepted.
func ParseMove(s string) (Move, error) {
	text := s
	if len(text) >= 5 && text[2] == '-' {
		text = text[:2] + text[3:]
	}
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidMove)
	}

	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidMove)
	}

	move := Move{From: from, To: to}
	if len(text) == 5 {
		move.Promotion = ParsePromotion(text[4])
		if move.Promotion == NoPiece {
			return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPromotion)
		}
	}
	return move, nil
}

// MarshalText encodes the move in UCI form.
func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes UCI form.
func (m *Move) UnmarshalText(text []byte) error {
	parsed, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
