package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// SessionConfig holds the host preferences applied to a new session.
type SessionConfig struct {
	// PromotionPiece is used when a pawn reaches its last rank
	PromotionPiece chess.Piece

	// PlayedColour restricts input to one side when HasPlayedColour is set
	PlayedColour    chess.Colour
	HasPlayedColour bool

	// Flipped views the board from Black's side
	Flipped bool

	// AutoPerspective turns the board to the side to move
	AutoPerspective bool
}

// NewSessionConfig creates a SessionConfig with default values.
func NewSessionConfig() *SessionConfig {
	return &SessionConfig{
		PromotionPiece: chess.Queen,
	}
}

// Validate checks that the session configuration is valid.
func (s *SessionConfig) Validate() error {
	if !s.PromotionPiece.IsPromotable() {
		return fmt.Errorf("promotion piece %s: %w", s.PromotionPiece, errors.ErrInvalidConfig)
	}
	return nil
}
