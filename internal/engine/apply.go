package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Apply returns the position after m. The argument is taken by value and
// never modified. m must be pseudo-legal in pos; legality is the caller's
// concern. A promotion move without a piece promotes to a Queen.
func (e *Engine) Apply(pos chess.Position, m chess.Move) chess.Position {
	colour := pos.ToMove
	mover := pos.Board.Get(m.From)
	captured := pos.Board.Get(m.To)
	piece := mover.Piece()

	resetClock := piece == chess.Pawn || !captured.IsEmpty()

	pos.Board.Clear(m.From)
	switch piece {
	case chess.Pawn:
		if pos.EnPassant && m.To == pos.EPSquare && captured.IsEmpty() && m.From.File() != m.To.File() {
			// The captured pawn stands behind the passed-over square.
			pos.Board.Clear(fileSquare(m.To.File(), m.From.Rank()))
		}
		if m.To.IsPromotionSquare(colour) {
			promo := m.Promotion
			if promo == chess.NoPiece {
				promo = chess.Queen
			}
			mover = chess.MakeColouredPiece(colour, promo)
		}
	case chess.King:
		pos.Kings[colour] = m.To
		if df := m.To.File() - m.From.File(); df == 2 || df == -2 {
			applyCastleRook(&pos, m, df > 0)
		}
	}
	pos.Board.Put(m.To, mover)

	pos.Castling &^= castlingMask(m.From) | castlingMask(m.To)

	pos.EnPassant = false
	pos.EPSquare = 0
	if piece == chess.Pawn && (m.To.Rank()-m.From.Rank() == 2 || m.From.Rank()-m.To.Rank() == 2) {
		if hasAdjacentEnemyPawn(&pos, m.To, colour) {
			pos.EnPassant = true
			pos.EPSquare = fileSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		}
	}

	if resetClock {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.FullmoveNumber++
	}
	pos.ToMove = colour.Opposite()
	return pos
}

// applyCastleRook moves the rook that accompanies a castling king.
func applyCastleRook(pos *chess.Position, m chess.Move, kingside bool) {
	rank := m.From.Rank()
	rookFrom, rookTo := fileSquare(1, rank), fileSquare(4, rank)
	if kingside {
		rookFrom, rookTo = fileSquare(8, rank), fileSquare(6, rank)
	}
	rook := pos.Board.Get(rookFrom)
	pos.Board.Clear(rookFrom)
	pos.Board.Put(rookTo, rook)
}

// castlingMask returns the rights lost when a move starts or ends on sq.
func castlingMask(sq chess.Square) chess.CastlingRights {
	switch sq {
	case chess.E1:
		return chess.WhiteKingside | chess.WhiteQueenside
	case chess.H1:
		return chess.WhiteKingside
	case chess.A1:
		return chess.WhiteQueenside
	case chess.E8:
		return chess.BlackKingside | chess.BlackQueenside
	case chess.H8:
		return chess.BlackKingside
	case chess.A8:
		return chess.BlackQueenside
	default:
		return chess.NoCastling
	}
}

// hasAdjacentEnemyPawn reports whether an opposing pawn stands beside sq,
// i.e. whether a double push to sq can be captured en passant at all.
func hasAdjacentEnemyPawn(pos *chess.Position, sq chess.Square, colour chess.Colour) bool {
	enemy := chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	for _, df := range []int{-1, 1} {
		if side, ok := sq.Offset(df, 0); ok && pos.Board.Get(side) == enemy {
			return true
		}
	}
	return false
}
