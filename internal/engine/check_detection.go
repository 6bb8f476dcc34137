package engine

import (
	"sort"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// InCheck returns true if the given colour's king is attacked.
func (e *Engine) InCheck(pos *chess.Position, colour chess.Colour) bool {
	return e.IsSquareAttacked(pos, pos.KingSquare(colour), colour.Opposite())
}

// CheckThreats returns the squares of every piece giving check to the side
// to move, in ascending square order. It is empty when not in check and has
// two entries on a double check.
func (e *Engine) CheckThreats(pos *chess.Position) []chess.Square {
	return e.Attackers(pos, pos.KingSquare(pos.ToMove), pos.ToMove.Opposite())
}

// IsSquareAttacked returns true if sq is attacked by any piece of byColour.
func (e *Engine) IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	found := false
	e.visitAttackers(pos, sq, byColour, func(chess.Square) bool {
		found = true
		return false
	})
	return found
}

// Attackers returns every square holding a piece of byColour that attacks sq.
func (e *Engine) Attackers(pos *chess.Position, sq chess.Square, byColour chess.Colour) []chess.Square {
	attackers := []chess.Square{}
	e.visitAttackers(pos, sq, byColour, func(from chess.Square) bool {
		attackers = append(attackers, from)
		return true
	})
	sort.Slice(attackers, func(i, j int) bool { return attackers[i] < attackers[j] })
	return attackers
}

// visitAttackers calls visit for each attacker of sq until visit returns false.
func (e *Engine) visitAttackers(pos *chess.Position, sq chess.Square, byColour chess.Colour, visit func(chess.Square) bool) {
	board := &pos.Board

	// A pawn of byColour attacks sq from the squares a pawn of the other
	// colour standing on sq would attack.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	for _, from := range e.pawnAttacks[byColour.Opposite()][sq] {
		if board.Get(from) == pawn && !visit(from) {
			return
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, from := range e.knightAttacks[sq] {
		if board.Get(from) == knight && !visit(from) {
			return
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, from := range e.kingAttacks[sq] {
		if board.Get(from) == king && !visit(from) {
			return
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	rook := chess.MakeColouredPiece(byColour, chess.Rook)

	for _, d := range diagonalDirs {
		for _, from := range e.rays[d][sq] {
			piece := board.Get(from)
			if piece.IsEmpty() {
				continue
			}
			if (piece == bishop || piece == queen) && !visit(from) {
				return
			}
			break // Blocked
		}
	}

	for _, d := range straightDirs {
		for _, from := range e.rays[d][sq] {
			piece := board.Get(from)
			if piece.IsEmpty() {
				continue
			}
			if (piece == rook || piece == queen) && !visit(from) {
				return
			}
			break // Blocked
		}
	}
}
