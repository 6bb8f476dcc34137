// Package persist saves and restores games and sessions as JSON documents.
//
// A document records the start position and the moves played, plus enough
// derived state (SAN, FEN after each move, final status) to detect a
// document that no longer agrees with the rules. Decoding replays the moves
// through the engine and rejects any disagreement.
package persist

import (
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// DocumentVersion is the document format written by this package.
const DocumentVersion = 1

// GameDocument is the JSON form of a game.
type GameDocument struct {
	Version    int              `json:"version"`
	Metadata   MetadataDocument `json:"metadata"`
	StartFEN   string           `json:"start_fen"`
	Moves      []MoveDocument   `json:"moves"`
	Status     chess.GameStatus `json:"status"`
	DrawReason chess.DrawReason `json:"draw_reason"`
	SideToMove chess.Colour     `json:"side_to_move"`
	FEN        string           `json:"fen"`
}

// MetadataDocument is the JSON form of PGN metadata.
type MetadataDocument struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Event       string            `json:"event"`
	Site        string            `json:"site"`
	Round       string            `json:"round"`
	White       string            `json:"white"`
	Black       string            `json:"black"`
	Result      string            `json:"result"`
	Termination string            `json:"termination,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// MoveDocument is one played move.
type MoveDocument struct {
	UCI string `json:"uci"`
	SAN string `json:"san"`
	FEN string `json:"fen"` // Position after the move
}

// SessionDocument is the JSON form of a session: its game plus host
// preferences.
type SessionDocument struct {
	Version         int           `json:"version"`
	Game            GameDocument  `json:"game"`
	PromotionPiece  chess.Piece   `json:"promotion_piece"`
	Perspective     chess.Colour  `json:"perspective"`
	PlayedColour    *chess.Colour `json:"played_colour,omitempty"`
	AutoPerspective bool          `json:"auto_perspective"`
}
