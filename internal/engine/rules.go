package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		cp := pos.Board.Get(sq)
		if cp.IsEmpty() {
			continue
		}

		pieceType := cp.Piece()

		// Kings don't count for material
		if pieceType == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
			return false
		}

		if cp.Colour() == chess.White {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = sq.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = sq.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// IsStandardMaterial checks if the position has the standard starting
// material: 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side.
// PGN export uses it to flag odds games.
func IsStandardMaterial(pos *chess.Position) bool {
	expected := map[chess.Piece]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}
	for piece, n := range expected {
		if pos.Board.Count(chess.W(piece)) != n || pos.Board.Count(chess.B(piece)) != n {
			return false
		}
	}
	return true
}
