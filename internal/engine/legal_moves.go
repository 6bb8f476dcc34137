package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// LegalMoves returns every legal move for the side to move. Promotions are
// listed once per promotion piece (Q, R, B, N). Moves are ordered by origin
// square, then by the order the piece's moves were generated.
func (e *Engine) LegalMoves(pos *chess.Position) []chess.Move {
	pseudo := e.PseudoLegalMoves(pos)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if e.tryMove(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (e *Engine) HasLegalMoves(pos *chess.Position) bool {
	for _, m := range e.PseudoLegalMoves(pos) {
		if e.tryMove(pos, m) {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is legal in pos. A promotion move must name its
// piece; use NormalizeMove first to apply the Queen default.
func (e *Engine) IsLegal(pos *chess.Position, m chess.Move) bool {
	for _, candidate := range e.LegalMoves(pos) {
		if candidate == m {
			return true
		}
	}
	return false
}

// NormalizeMove fills in the default promotion piece (Queen) when a pawn
// moves onto its last rank without one.
func NormalizeMove(pos *chess.Position, m chess.Move) chess.Move {
	if m.Promotion != chess.NoPiece {
		return m
	}
	piece, colour, ok := pos.PieceAt(m.From)
	if ok && piece == chess.Pawn && colour == pos.ToMove && m.To.IsPromotionSquare(colour) {
		m.Promotion = chess.Queen
	}
	return m
}

// LegalMoveSquares groups the legal destinations by origin square.
// Promotion variants share one destination; origins with no legal move are absent.
func (e *Engine) LegalMoveSquares(pos *chess.Position) map[chess.Square][]chess.Square {
	return GroupBySquare(e.LegalMoves(pos))
}

// GroupBySquare maps each origin square to its distinct destinations, in
// the order they appear in moves.
func GroupBySquare(moves []chess.Move) map[chess.Square][]chess.Square {
	squares := make(map[chess.Square][]chess.Square)
	for _, m := range moves {
		dests := squares[m.From]
		if n := len(dests); n > 0 && dests[n-1] == m.To {
			continue // Promotion variants are generated together
		}
		squares[m.From] = append(dests, m.To)
	}
	return squares
}

// tryMove makes a move on a copied position and checks if it leaves the
// mover's king in check.
func (e *Engine) tryMove(pos *chess.Position, m chess.Move) bool {
	next := e.Apply(*pos, m)
	return !e.InCheck(&next, pos.ToMove)
}

// PseudoLegalMoves returns the moves that follow piece movement rules
// without checking whether the mover's king is left in check. Castling is
// the exception: its check conditions are tested here.
func (e *Engine) PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := pos.ToMove
	for i := 0; i < chess.NumSquares; i++ {
		from := chess.Square(i)
		cp := pos.Board.Get(from)
		if cp.IsEmpty() || cp.Colour() != colour {
			continue
		}

		switch cp.Piece() {
		case chess.Pawn:
			moves = e.pawnMoves(pos, from, moves)
		case chess.Knight:
			moves = e.stepMoves(pos, from, e.knightAttacks[from], moves)
		case chess.Bishop:
			moves = e.slidingMoves(pos, from, diagonalDirs, moves)
		case chess.Rook:
			moves = e.slidingMoves(pos, from, straightDirs, moves)
		case chess.Queen:
			moves = e.slidingMoves(pos, from, allDirs, moves)
		case chess.King:
			moves = e.stepMoves(pos, from, e.kingAttacks[from], moves)
			moves = e.castlingMoves(pos, from, moves)
		}
	}
	return moves
}

// pawnMoves adds pushes, double pushes, captures, en passant and promotions.
func (e *Engine) pawnMoves(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	colour := pos.ToMove
	dir := colour.Forward()

	if to, ok := from.Offset(0, dir); ok && pos.Board.Get(to).IsEmpty() {
		moves = addPawnMove(moves, from, to, colour)

		startRank := 2
		if colour == chess.Black {
			startRank = 7
		}
		if from.Rank() == startRank {
			if to2, ok := to.Offset(0, dir); ok && pos.Board.Get(to2).IsEmpty() {
				moves = append(moves, chess.NewMove(from, to2))
			}
		}
	}

	for _, to := range e.pawnAttacks[colour][from] {
		target := pos.Board.Get(to)
		if !target.IsEmpty() && target.Colour() != colour {
			moves = addPawnMove(moves, from, to, colour)
		} else if pos.EnPassant && to == pos.EPSquare {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// addPawnMove adds one move, or all four promotions on the last rank.
func addPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if !to.IsPromotionSquare(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: promo})
	}
	return moves
}

// stepMoves adds knight or king moves from a precomputed target table.
func (e *Engine) stepMoves(pos *chess.Position, from chess.Square, targets []chess.Square, moves []chess.Move) []chess.Move {
	for _, to := range targets {
		target := pos.Board.Get(to)
		if target.IsEmpty() || target.Colour() != pos.ToMove {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

// slidingMoves adds bishop, rook or queen moves along the given rays.
func (e *Engine) slidingMoves(pos *chess.Position, from chess.Square, dirs []int, moves []chess.Move) []chess.Move {
	for _, d := range dirs {
		for _, to := range e.rays[d][from] {
			target := pos.Board.Get(to)
			if target.IsEmpty() {
				moves = append(moves, chess.NewMove(from, to))
				continue
			}
			if target.Colour() != pos.ToMove {
				moves = append(moves, chess.NewMove(from, to))
			}
			break // Blocked
		}
	}
	return moves
}

// castlingSide describes one castling option relative to the king's home square.
type castlingSide struct {
	rookFile int
	kingTo   int   // file the king lands on
	empty    []int // files that must be empty
	safe     []int // files the king passes through or lands on
}

var (
	kingsideCastle  = castlingSide{rookFile: 8, kingTo: 7, empty: []int{6, 7}, safe: []int{6, 7}}
	queensideCastle = castlingSide{rookFile: 1, kingTo: 3, empty: []int{2, 3, 4}, safe: []int{4, 3}}
)

// castlingMoves adds castling when the right is held, the rook is in place,
// the path is empty and the king neither starts in, passes through nor
// lands on an attacked square.
func (e *Engine) castlingMoves(pos *chess.Position, from chess.Square, moves []chess.Move) []chess.Move {
	colour := pos.ToMove
	homeRank := 1
	if colour == chess.Black {
		homeRank = 8
	}
	if from.File() != 5 || from.Rank() != homeRank {
		return moves
	}

	opponent := colour.Opposite()
	inCheck := false
	checked := false

	for _, side := range []struct {
		right chess.CastlingRights
		cs    castlingSide
	}{
		{chess.Kingside(colour), kingsideCastle},
		{chess.Queenside(colour), queensideCastle},
	} {
		if !pos.Castling.Has(side.right) {
			continue
		}
		rookSq := fileSquare(side.cs.rookFile, homeRank)
		if pos.Board.Get(rookSq) != chess.MakeColouredPiece(colour, chess.Rook) {
			continue
		}
		if !filesEmpty(pos, side.cs.empty, homeRank) {
			continue
		}
		if !checked {
			inCheck = e.IsSquareAttacked(pos, from, opponent)
			checked = true
		}
		if inCheck {
			return moves
		}
		if !e.filesSafe(pos, side.cs.safe, homeRank, opponent) {
			continue
		}
		moves = append(moves, chess.NewMove(from, fileSquare(side.cs.kingTo, homeRank)))
	}
	return moves
}

func filesEmpty(pos *chess.Position, files []int, rank int) bool {
	for _, f := range files {
		if !pos.Board.Get(fileSquare(f, rank)).IsEmpty() {
			return false
		}
	}
	return true
}

func (e *Engine) filesSafe(pos *chess.Position, files []int, rank int, opponent chess.Colour) bool {
	for _, f := range files {
		if e.IsSquareAttacked(pos, fileSquare(f, rank), opponent) {
			return false
		}
	}
	return true
}

// fileSquare converts an in-range 1-based file and rank to a Square.
func fileSquare(file, rank int) chess.Square {
	return chess.Square((rank-1)*chess.BoardSize + file - 1)
}
