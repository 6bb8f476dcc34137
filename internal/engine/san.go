package engine

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// SAN returns the standard algebraic notation of m, which must be legal in
// pos: piece letter, disambiguation, "x" for captures, "=Q" for promotions
// and a "+" or "#" suffix.
func (e *Engine) SAN(pos *chess.Position, m chess.Move) string {
	m = NormalizeMove(pos, m)
	cp := pos.Board.Get(m.From)
	piece := cp.Piece()

	var sb strings.Builder
	if piece == chess.King && (m.To.File()-m.From.File() == 2 || m.From.File()-m.To.File() == 2) {
		if m.To.File() > m.From.File() {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		e.writeCheckSuffix(&sb, pos, m)
		return sb.String()
	}

	capture := !pos.Board.Get(m.To).IsEmpty()
	if piece == chess.Pawn {
		if m.From.File() != m.To.File() {
			capture = true // Includes en passant
			sb.WriteByte(fileLetter(m.From))
		}
	} else {
		sb.WriteByte(piece.Letter())
		sb.WriteString(e.disambiguation(pos, m, cp))
	}

	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}

	e.writeCheckSuffix(&sb, pos, m)
	return sb.String()
}

// disambiguation returns the file, rank or square needed to tell m apart
// from other legal moves of the same piece type to the same square.
func (e *Engine) disambiguation(pos *chess.Position, m chess.Move, cp chess.ColouredPiece) string {
	ambiguous := false
	sameFile, sameRank := false, false
	for _, other := range e.LegalMoves(pos) {
		if other.To != m.To || other.From == m.From || pos.Board.Get(other.From) != cp {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(fileLetter(m.From))
	case !sameRank:
		return string(rankDigit(m.From))
	default:
		return m.From.String()
	}
}

// writeCheckSuffix appends "+" or "#" if m gives check or mate.
func (e *Engine) writeCheckSuffix(sb *strings.Builder, pos *chess.Position, m chess.Move) {
	next := e.Apply(*pos, m)
	if !e.InCheck(&next, next.ToMove) {
		return
	}
	if e.HasLegalMoves(&next) {
		sb.WriteByte('+')
	} else {
		sb.WriteByte('#')
	}
}

func fileLetter(sq chess.Square) byte {
	return sq.String()[0]
}

func rankDigit(sq chess.Square) byte {
	return sq.String()[1]
}
