package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Square is a board square index, a1=0, b1=1, ... h8=63.
// Values outside 0-63 are never produced by the constructors.
type Square uint8

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Named squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square with the given index, or ErrInvalidSquare.
func NewSquare(index int) (Square, error) {
	if index < 0 || index >= NumSquares {
		return 0, fmt.Errorf("index %d: %w", index, errors.ErrInvalidSquare)
	}
	return Square(index), nil
}

// SquareAt returns the square on the given 1-based file and rank.
func SquareAt(file, rank int) (Square, error) {
	if file < 1 || file > BoardSize || rank < 1 || rank > BoardSize {
		return 0, fmt.Errorf("file %d rank %d: %w", file, rank, errors.ErrInvalidSquare)
	}
	return Square((rank-1)*BoardSize + file - 1), nil
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return SquareAt(int(s[0]-'a')+1, int(s[1]-'0'))
}

// MustSquare is ParseSquare for compile-time constants; it panics on bad input.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// File returns the 1-based file (a=1 ... h=8).
func (sq Square) File() int {
	return int(sq)%BoardSize + 1
}

// Rank returns the 1-based rank.
func (sq Square) Rank() int {
	return int(sq)/BoardSize + 1
}

// Index returns the square as a plain int.
func (sq Square) Index() int {
	return int(sq)
}

// IsLight reports whether the square is a light square (h1 is light).
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// IsPromotionSquare reports whether a pawn of the given colour promotes on sq.
func (sq Square) IsPromotionSquare(c Colour) bool {
	if c == White {
		return sq.Rank() == BoardSize
	}
	return sq.Rank() == 1
}

// Offset returns the square df files and dr ranks away, if it is on the board.
func (sq Square) Offset(df, dr int) (Square, bool) {
	f := sq.File() + df
	r := sq.Rank() + dr
	if f < 1 || f > BoardSize || r < 1 || r > BoardSize {
		return 0, false
	}
	return Square((r-1)*BoardSize + f - 1), true
}

// String returns the algebraic name of the square.
func (sq Square) String() string {
	return string([]byte{byte('a' + sq.File() - 1), byte('0' + sq.Rank())})
}

// MarshalText encodes the square in algebraic notation.
func (sq Square) MarshalText() ([]byte, error) {
	return []byte(sq.String()), nil
}

// UnmarshalText decodes algebraic notation, rejecting off-board names.
func (sq *Square) UnmarshalText(text []byte) error {
	parsed, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*sq = parsed
	return nil
}

// SquaresTopToBottom returns all squares from a8 across to h1, the order a
// board is drawn from White's side.
func SquaresTopToBottom() []Square {
	squares := make([]Square, 0, NumSquares)
	for rank := BoardSize; rank >= 1; rank-- {
		for file := 1; file <= BoardSize; file++ {
			squares = append(squares, Square((rank-1)*BoardSize+file-1))
		}
	}
	return squares
}
