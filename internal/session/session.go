// Package session wraps a Game with the preferences a playing host keeps
// alongside it: the piece pawns promote to, the side the board is viewed
// from and, optionally, the one colour the local player controls.
package session

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// Session is a game plus host preferences. Like Game it is not safe for
// concurrent use; see Locked.
type Session struct {
	game *game.Game

	promotion       chess.Piece
	perspective     chess.Colour
	playedColour    chess.Colour
	hasPlayedColour bool
	autoPerspective bool
}

// New starts a session on a fresh game from the initial position.
func New(e *engine.Engine, meta chess.PGNMetadata) *Session {
	return FromGame(game.New(e, meta))
}

// FromGame starts a session on an existing game. Preferences take their
// defaults: promotion to Queen, White's perspective, either colour may move.
func FromGame(g *game.Game) *Session {
	return &Session{
		game:        g,
		promotion:   chess.Queen,
		perspective: chess.White,
	}
}

// Game returns the wrapped game.
func (s *Session) Game() *game.Game {
	return s.game
}

// TryPlayMove plays from -> to for the side to move. The session's promotion
// piece is used only when a pawn reaches its last rank. It reports whether
// the move was played.
func (s *Session) TryPlayMove(e *engine.Engine, from, to chess.Square) bool {
	piece, colour, ok := s.game.PieceAt(from)
	if !ok {
		return false
	}

	promotion := chess.NoPiece
	if piece == chess.Pawn && to.IsPromotionSquare(colour) {
		promotion = s.promotion
	}

	if !s.game.PlayMoveFromTo(e, from, to, promotion) {
		return false
	}
	if s.autoPerspective {
		s.adjustPerspective()
	}
	return true
}

// CanColourMove reports whether the host should accept input for colour:
// the game must be running and colour must be the played colour, if one
// is set.
func (s *Session) CanColourMove(colour chess.Colour) bool {
	if s.game.Status() != chess.Running {
		return false
	}
	return !s.hasPlayedColour || s.playedColour == colour
}

// PromotionPiece returns the piece pawns promote to.
func (s *Session) PromotionPiece() chess.Piece {
	return s.promotion
}

// SetPromotionPiece sets the piece pawns promote to. Only Queen, Rook,
// Bishop and Knight are accepted.
func (s *Session) SetPromotionPiece(p chess.Piece) error {
	if !p.IsPromotable() {
		return errors.Wrapf(errors.ErrInvalidPromotion, "%s", p)
	}
	s.promotion = p
	return nil
}

// Perspective returns the colour the board is viewed from.
func (s *Session) Perspective() chess.Colour {
	return s.perspective
}

// SetPerspective sets the colour the board is viewed from.
func (s *Session) SetPerspective(c chess.Colour) {
	s.perspective = c
}

// PlayedColour returns the colour the local player controls, and false if
// the player controls both.
func (s *Session) PlayedColour() (chess.Colour, bool) {
	return s.playedColour, s.hasPlayedColour
}

// SetPlayedColour restricts local input to colour.
func (s *Session) SetPlayedColour(c chess.Colour) {
	s.playedColour = c
	s.hasPlayedColour = true
}

// ClearPlayedColour lets the local player move both colours.
func (s *Session) ClearPlayedColour() {
	s.playedColour = chess.White
	s.hasPlayedColour = false
}

// AutoPerspective reports whether the perspective follows the side to move.
func (s *Session) AutoPerspective() bool {
	return s.autoPerspective
}

// SetAutoPerspective turns perspective following on or off. Turning it on
// adjusts the perspective straight away.
func (s *Session) SetAutoPerspective(auto bool) {
	s.autoPerspective = auto
	if auto {
		s.adjustPerspective()
	}
}

func (s *Session) adjustPerspective() {
	s.perspective = s.game.SideToMove()
}

// PieceAt returns the piece and colour on sq, and false if sq is empty.
func (s *Session) PieceAt(sq chess.Square) (chess.Piece, chess.Colour, bool) {
	return s.game.PieceAt(sq)
}

// Clone returns a deep copy of the session and its game.
func (s *Session) Clone() *Session {
	clone := *s
	clone.game = s.game.Clone()
	return &clone
}
