package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func (e *Engine) IsCheckmate(pos *chess.Position) bool {
	return e.InCheck(pos, pos.ToMove) && !e.HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (e *Engine) IsStalemate(pos *chess.Position) bool {
	return !e.InCheck(pos, pos.ToMove) && !e.HasLegalMoves(pos)
}

// Evaluate classifies pos given how many times it has occurred so far
// (including now). Checkmate and stalemate are decided first, so a move
// that mates also ends the game as checkmate even if a draw rule fires.
func (e *Engine) Evaluate(pos *chess.Position, occurrences int) (chess.GameStatus, chess.DrawReason) {
	return e.Classify(pos, e.HasLegalMoves(pos), occurrences)
}

// Classify is Evaluate for callers that have already generated the legal
// moves of pos.
func (e *Engine) Classify(pos *chess.Position, hasLegalMoves bool, occurrences int) (chess.GameStatus, chess.DrawReason) {
	if !hasLegalMoves {
		if e.InCheck(pos, pos.ToMove) {
			return chess.Checkmate, chess.NoDraw
		}
		return chess.Stalemate, chess.NoDraw
	}
	if reason := e.DrawRule(pos, occurrences); reason != chess.NoDraw {
		return chess.Draw, reason
	}
	return chess.Running, chess.NoDraw
}

// DrawRule returns the first automatic draw rule that applies to pos under
// the engine's policy, or NoDraw.
func (e *Engine) DrawRule(pos *chess.Position, occurrences int) chess.DrawReason {
	switch {
	case e.insufficientMaterialDraw && HasInsufficientMaterial(pos):
		return chess.InsufficientMaterial
	case e.halfmoveLimit > 0 && pos.HalfmoveClock >= uint(e.halfmoveLimit):
		return chess.FiftyMoveRule
	case e.repetitionLimit > 0 && occurrences >= e.repetitionLimit:
		return chess.Repetition
	default:
		return chess.NoDraw
	}
}
