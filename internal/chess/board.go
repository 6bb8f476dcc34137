package chess

// PieceSource is anything that can report what stands on a square. Board,
// Position and the game types all satisfy it, so rendering code can accept
// whichever it is handed.
type PieceSource interface {
	PieceAt(sq Square) (Piece, Colour, bool)
}

// Board is the piece placement of a position. It is a value type: copying a
// Board copies all 64 cells.
type Board struct {
	squares [NumSquares]ColouredPiece
}

// PieceAt returns the piece and colour on sq, and false if sq is empty.
func (b *Board) PieceAt(sq Square) (Piece, Colour, bool) {
	cp := b.squares[sq]
	if cp == Empty {
		return NoPiece, White, false
	}
	return cp.Piece(), cp.Colour(), true
}

// Get returns the raw cell value on sq.
func (b *Board) Get(sq Square) ColouredPiece {
	return b.squares[sq]
}

// Put places a piece on sq, replacing whatever was there.
func (b *Board) Put(sq Square, cp ColouredPiece) {
	b.squares[sq] = cp
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.squares[sq] = Empty
}

// Find returns every square holding cp, in ascending order.
func (b *Board) Find(cp ColouredPiece) []Square {
	var found []Square
	for i, cell := range b.squares {
		if cell == cp {
			found = append(found, Square(i))
		}
	}
	return found
}

// Count returns the number of squares holding cp.
func (b *Board) Count(cp ColouredPiece) int {
	n := 0
	for _, cell := range b.squares {
		if cell == cp {
			n++
		}
	}
	return n
}

// CastlingRights is a bit set of the castling options still available.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Kingside returns the kingside right for colour.
func Kingside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside
	}
	return BlackKingside
}

// Queenside returns the queenside right for colour.
func Queenside(colour Colour) CastlingRights {
	if colour == White {
		return WhiteQueenside
	}
	return BlackQueenside
}

// Position is a board plus all the state needed to generate moves from it.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Is en passant capture possible? If so EPSquare is the square passed over.
	EnPassant bool
	EPSquare  Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock uint

	// Starts at 1 and increments after Black moves.
	FullmoveNumber uint

	// Kings holds each side's king square, indexed by Colour.
	Kings [NumColours]Square
}

// PieceAt returns the piece and colour on sq, and false if sq is empty.
func (p *Position) PieceAt(sq Square) (Piece, Colour, bool) {
	return p.Board.PieceAt(sq)
}

// KingSquare returns the king square of colour.
func (p *Position) KingSquare(colour Colour) Square {
	return p.Kings[colour]
}

// StartingPosition returns the standard initial position.
func StartingPosition() Position {
	var pos Position
	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		pos.Board.Put(Square(file), W(backRank[file]))
		pos.Board.Put(Square(BoardSize+file), W(Pawn))
		pos.Board.Put(Square(6*BoardSize+file), B(Pawn))
		pos.Board.Put(Square(7*BoardSize+file), B(backRank[file]))
	}
	pos.ToMove = White
	pos.Castling = AllCastling
	pos.FullmoveNumber = 1
	pos.Kings = [NumColours]Square{E1, E8}
	return pos
}
