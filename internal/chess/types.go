// Package chess provides core chess types: squares, pieces, colours, boards,
// positions, moves, game status and PGN metadata.
package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, for sizing per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Index returns the colour ordinal for table lookups.
func (c Colour) Index() int {
	return int(c)
}

// FENChar returns the side-to-move character used in FEN.
func (c Colour) FENChar() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Forward returns +1 for White, -1 for Black (the pawn direction in ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// MarshalText encodes the colour as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	if c == White {
		return []byte("white"), nil
	}
	return []byte("black"), nil
}

// UnmarshalText decodes "white" or "black".
func (c *Colour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown colour %q", text)
	}
	return nil
}

// Piece represents a chess piece type.
type Piece int

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// NumPieceTypes is the number of real piece types (Pawn through King).
const NumPieceTypes = 6

// PromotionPieces lists the pieces a pawn may promote to, strongest first.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Index returns the 0-based ordinal of a real piece (Pawn=0 ... King=5),
// used for asset and table indexing. NoPiece returns -1.
func (p Piece) Index() int {
	return int(p) - 1
}

// IsPromotable reports whether a pawn may promote to p.
func (p Piece) IsPromotable() bool {
	switch p {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PieceFromLetter converts a letter (either case) to a piece type.
// Unknown letters return NoPiece.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPiece
	}
}

// ParsePromotion converts a promotion letter (either case) to a piece.
// Anything other than q, r, b or n returns NoPiece.
func ParsePromotion(c byte) Piece {
	if p := PieceFromLetter(c); p.IsPromotable() {
		return p
	}
	return NoPiece
}

// MarshalText encodes the piece by name.
func (p Piece) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a piece name as written by MarshalText.
func (p *Piece) UnmarshalText(text []byte) error {
	for candidate := NoPiece; candidate <= King; candidate++ {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown piece %q", text)
}

// ColouredPiece packs a piece type and its colour into one board cell value.
// The zero value is an empty square.
type ColouredPiece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// Empty is the ColouredPiece value of an unoccupied square.
const Empty ColouredPiece = 0

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	return ColouredPiece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// Colour extracts the colour from a coloured piece.
func (cp ColouredPiece) Colour() Colour {
	return Colour(cp & 0x01)
}

// Piece extracts the piece type from a coloured piece.
func (cp ColouredPiece) Piece() Piece {
	return Piece(cp >> PieceShift)
}

// IsEmpty reports whether the cell holds no piece.
func (cp ColouredPiece) IsEmpty() bool {
	return cp == Empty
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (cp ColouredPiece) FENLetter() byte {
	letter := cp.Piece().Letter()
	if cp.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// GameStatus is the state of a game. Every status other than Running is terminal.
type GameStatus int

const (
	Running GameStatus = iota
	Checkmate
	Stalemate
	Draw
)

var gameStatusNames = []string{"running", "checkmate", "stalemate", "draw"}

// String returns the lowercase name of the status.
func (s GameStatus) String() string {
	if s >= 0 && int(s) < len(gameStatusNames) {
		return gameStatusNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further moves may be played.
func (s GameStatus) IsTerminal() bool {
	return s != Running
}

// MarshalText encodes the status by name.
func (s GameStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *GameStatus) UnmarshalText(text []byte) error {
	for i, name := range gameStatusNames {
		if name == string(text) {
			*s = GameStatus(i)
			return nil
		}
	}
	return fmt.Errorf("unknown game status %q", text)
}

// DrawReason says which rule ended a drawn game.
type DrawReason int

const (
	NoDraw DrawReason = iota
	Repetition
	FiftyMoveRule
	InsufficientMaterial
)

var drawReasonNames = []string{"none", "repetition", "fifty-move rule", "insufficient material"}

// String returns a readable name, also used as the PGN Termination detail.
func (r DrawReason) String() string {
	if r >= 0 && int(r) < len(drawReasonNames) {
		return drawReasonNames[r]
	}
	return "unknown"
}

// MarshalText encodes the draw reason by name.
func (r DrawReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a draw reason name.
func (r *DrawReason) UnmarshalText(text []byte) error {
	for i, name := range drawReasonNames {
		if name == string(text) {
			*r = DrawReason(i)
			return nil
		}
	}
	return errors.Wrapf(errors.ErrCorruptState, "unknown draw reason %q", text)
}
