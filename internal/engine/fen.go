package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN creates a position from a FEN string. The move clocks may be
// omitted and default to "0 1". The position must be legal: one king per
// side, no pawns on the first or last rank, and the side not to move not in
// check. Castling rights whose king or rook is missing are dropped, as is an
// en passant square no pawn can capture onto.
func (e *Engine) ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 4 && len(parts) != 6 {
		return chess.Position{}, fmt.Errorf("%d fields in %q: %w", len(parts), fen, errors.ErrInvalidFEN)
	}

	var pos chess.Position
	if err := parsePiecePositions(&pos, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, parts[3]); err != nil {
		return chess.Position{}, err
	}
	pos.FullmoveNumber = 1
	if len(parts) == 6 {
		if err := parseClocks(&pos, parts[4], parts[5]); err != nil {
			return chess.Position{}, err
		}
	}

	if e.InCheck(&pos, pos.ToMove.Opposite()) {
		return chess.Position{}, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}
	return pos, nil
}

// MustParseFEN is ParseFEN for known-good constants; it panics on error.
func (e *Engine) MustParseFEN(fen string) chess.Position {
	pos, err := e.ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	var kings [chess.NumColours]int
	for i, row := range ranks {
		rank := chess.BoardSize - i
		file := 1
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			piece := chess.PieceFromLetter(c)
			if piece == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", rank, errors.ErrInvalidFEN)
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			if piece == chess.Pawn && (rank == 1 || rank == chess.BoardSize) {
				return fmt.Errorf("pawn on rank %d: %w", rank, errors.ErrInvalidFEN)
			}

			sq := fileSquare(file, rank)
			pos.Board.Put(sq, chess.MakeColouredPiece(colour, piece))
			if piece == chess.King {
				kings[colour]++
				pos.Kings[colour] = sq
			}
			file++
		}
		if file != chess.BoardSize+1 {
			return fmt.Errorf("rank %d has %d files: %w", rank, file-1, errors.ErrInvalidFEN)
		}
	}

	for c, n := range kings {
		if n != 1 {
			return fmt.Errorf("%d %v kings: %w", n, chess.Colour(c), errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("side to move %q: %w", field, errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling field, keeping only rights whose
// king and rook are still on their home squares.
func parseCastlingRights(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return fmt.Errorf("castling %q: %w", field, errors.ErrInvalidFEN)
		}
		if pos.Castling.Has(right) {
			return fmt.Errorf("castling %q repeats %c: %w", field, field[i], errors.ErrInvalidFEN)
		}
		pos.Castling |= right
	}

	for _, home := range []struct {
		right chess.CastlingRights
		king  chess.Square
		rook  chess.Square
		c     chess.Colour
	}{
		{chess.WhiteKingside, chess.E1, chess.H1, chess.White},
		{chess.WhiteQueenside, chess.E1, chess.A1, chess.White},
		{chess.BlackKingside, chess.E8, chess.H8, chess.Black},
		{chess.BlackQueenside, chess.E8, chess.A8, chess.Black},
	} {
		if pos.Board.Get(home.king) != chess.MakeColouredPiece(home.c, chess.King) ||
			pos.Board.Get(home.rook) != chess.MakeColouredPiece(home.c, chess.Rook) {
			pos.Castling &^= home.right
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square. The square must lie
// behind a pawn that has just made a double push.
func parseEnPassant(pos *chess.Position, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", field, errors.ErrInvalidFEN)
	}

	mover := pos.ToMove.Opposite()
	wantRank := 3
	if mover == chess.Black {
		wantRank = 6
	}
	pushed, _ := sq.Offset(0, mover.Forward())
	if sq.Rank() != wantRank || !pos.Board.Get(sq).IsEmpty() ||
		pos.Board.Get(pushed) != chess.MakeColouredPiece(mover, chess.Pawn) {
		return fmt.Errorf("en passant square %q: %w", field, errors.ErrInvalidFEN)
	}

	if hasAdjacentEnemyPawn(pos, pushed, mover) {
		pos.EnPassant = true
		pos.EPSquare = sq
	}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number.
func parseClocks(pos *chess.Position, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fmt.Errorf("halfmove clock %q: %w", halfmove, errors.ErrInvalidFEN)
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || fm == 0 {
		return fmt.Errorf("fullmove number %q: %w", fullmove, errors.ErrInvalidFEN)
	}
	pos.HalfmoveClock = uint(hm)
	pos.FullmoveNumber = uint(fm)
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	sb.WriteByte(pos.ToMove.FENChar())
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos.Castling)
	sb.WriteByte(' ')
	if pos.EnPassant {
		sb.WriteString(pos.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize; rank >= 1; rank-- {
		emptyCount := 0
		for file := 1; file <= chess.BoardSize; file++ {
			cp := board.Get(fileSquare(file, rank))
			if cp.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(cp.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, rights chess.CastlingRights) {
	if rights == chess.NoCastling {
		sb.WriteByte('-')
		return
	}
	for _, r := range []struct {
		right  chess.CastlingRights
		letter byte
	}{
		{chess.WhiteKingside, 'K'},
		{chess.WhiteQueenside, 'Q'},
		{chess.BlackKingside, 'k'},
		{chess.BlackQueenside, 'q'},
	} {
		if rights.Has(r.right) {
			sb.WriteByte(r.letter)
		}
	}
}
