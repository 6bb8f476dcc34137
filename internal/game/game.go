// Package game holds the Game aggregate: a position, its move history and
// the game status, advanced one legal move at a time.
//
// A Game is not safe for concurrent use. Hosts that touch one Game from
// several goroutines serialize access themselves (see session.Locked).
package game

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// HistoryEntry records one played move and the state it produced.
type HistoryEntry struct {
	Move   chess.Move
	SAN    string
	FEN    string // Position after the move
	Hash   uint64 // Zobrist hash of the position after the move
	Status chess.GameStatus
}

// Game is one game of chess from a start position to its current state.
type Game struct {
	pos      chess.Position
	startPos chess.Position
	history  []HistoryEntry

	status     chess.GameStatus
	drawReason chess.DrawReason
	inCheck    bool

	meta        chess.PGNMetadata
	hash        uint64 // Hash of pos
	repetitions *hashing.RepetitionCounter

	// Legal moves for the side to move; empty once the game is over.
	legal []chess.Move
}

// New starts a game from the standard initial position.
func New(e *engine.Engine, meta chess.PGNMetadata) *Game {
	return newGame(e, meta, chess.StartingPosition())
}

// NewFromFEN starts a game from the position described by fen.
func NewFromFEN(e *engine.Engine, meta chess.PGNMetadata, fen string) (*Game, error) {
	pos, err := e.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(e, meta, pos), nil
}

func newGame(e *engine.Engine, meta chess.PGNMetadata, pos chess.Position) *Game {
	g := &Game{
		pos:         pos,
		startPos:    pos,
		meta:        normalizeMetadata(meta),
		repetitions: hashing.NewRepetitionCounter(),
	}
	g.hash = e.Hash(&g.pos)
	g.refresh(e, g.repetitions.Add(g.hash))
	return g
}

// normalizeMetadata copies meta for a new game. Roster names found in Tags
// move to their fields, CreatedAt is stored in UTC, and Result and
// Termination are left for the game to set when it ends.
func normalizeMetadata(meta chess.PGNMetadata) chess.PGNMetadata {
	out := meta
	out.Tags = nil
	for name, value := range meta.Tags {
		out.SetTag(name, value)
	}
	if !out.CreatedAt.IsZero() {
		out.CreatedAt = out.CreatedAt.UTC()
	}
	out.Result = chess.ResultOngoing
	out.Termination = ""
	return out
}

// refresh recomputes the cached legal moves and the status for the current
// position, which has now occurred count times.
func (g *Game) refresh(e *engine.Engine, count int) {
	moves := e.LegalMoves(&g.pos)
	g.inCheck = e.InCheck(&g.pos, g.pos.ToMove)
	g.status, g.drawReason = e.Classify(&g.pos, len(moves) > 0, count)
	if g.status.IsTerminal() {
		g.legal = nil
		g.finish()
		return
	}
	g.legal = moves
}

// finish stamps the result into the metadata once the game has ended.
func (g *Game) finish() {
	switch g.status {
	case chess.Checkmate:
		if g.pos.ToMove == chess.Black {
			g.meta.Result = chess.ResultWhiteWins
		} else {
			g.meta.Result = chess.ResultBlackWins
		}
		g.meta.Termination = "checkmate"
	case chess.Stalemate:
		g.meta.Result = chess.ResultDraw
		g.meta.Termination = "stalemate"
	case chess.Draw:
		g.meta.Result = chess.ResultDraw
		g.meta.Termination = g.drawReason.String()
	}
}

// PlayMoveFromTo plays the move from -> to for the side to move. For a pawn
// reaching its last rank, promotion selects the new piece and NoPiece means
// Queen; on any other move promotion must be NoPiece. It returns false, with
// the game unchanged, if the move is illegal or the game is over.
func (g *Game) PlayMoveFromTo(e *engine.Engine, from, to chess.Square, promotion chess.Piece) bool {
	return g.PlayMove(e, chess.Move{From: from, To: to, Promotion: promotion}) == nil
}

// PlayMove is PlayMoveFromTo with a reason on failure: a *errors.MoveError
// wrapping errors.ErrGameOver or errors.ErrIllegalMove.
func (g *Game) PlayMove(e *engine.Engine, m chess.Move) error {
	if g.status.IsTerminal() {
		return g.moveError(errors.ErrGameOver, m)
	}

	m = engine.NormalizeMove(&g.pos, m)
	if !g.isLegal(m) {
		return g.moveError(errors.ErrIllegalMove, m)
	}

	san := e.SAN(&g.pos, m)
	g.pos = e.Apply(g.pos, m)
	g.hash = e.Hash(&g.pos)
	g.refresh(e, g.repetitions.Add(g.hash))

	g.history = append(g.history, HistoryEntry{
		Move:   m,
		SAN:    san,
		FEN:    engine.FEN(&g.pos),
		Hash:   g.hash,
		Status: g.status,
	})
	return nil
}

func (g *Game) isLegal(m chess.Move) bool {
	for _, legal := range g.legal {
		if legal == m {
			return true
		}
	}
	return false
}

func (g *Game) moveError(err error, m chess.Move) error {
	return &errors.MoveError{
		Err:      err,
		PlyNum:   len(g.history) + 1,
		MoveText: m.String(),
	}
}

// Status returns the current game status.
func (g *Game) Status() chess.GameStatus {
	return g.status
}

// DrawReason returns why the game was drawn, or NoDraw.
func (g *Game) DrawReason() chess.DrawReason {
	return g.drawReason
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.ToMove
}

// Winner returns the winning colour after checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	if g.status != chess.Checkmate {
		return chess.White, false
	}
	return g.pos.ToMove.Opposite(), true
}

// LatestMove returns the most recently played move.
func (g *Game) LatestMove() (chess.Move, bool) {
	if len(g.history) == 0 {
		return chess.Move{}, false
	}
	return g.history[len(g.history)-1].Move, true
}

// History returns a copy of the played moves, oldest first.
func (g *Game) History() []HistoryEntry {
	history := make([]HistoryEntry, len(g.history))
	copy(history, g.history)
	return history
}

// Moves returns the played moves, oldest first.
func (g *Game) Moves() []chess.Move {
	moves := make([]chess.Move, len(g.history))
	for i, entry := range g.history {
		moves[i] = entry.Move
	}
	return moves
}

// PlyCount returns the number of half-moves played.
func (g *Game) PlyCount() int {
	return len(g.history)
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.pos.Board
}

// Position returns a copy of the current position.
func (g *Game) Position() chess.Position {
	return g.pos
}

// StartPosition returns a copy of the position the game started from.
func (g *Game) StartPosition() chess.Position {
	return g.startPos
}

// PieceAt returns the piece and colour on sq, and false if sq is empty.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, chess.Colour, bool) {
	return g.pos.PieceAt(sq)
}

// LegalMoves returns the legal moves for the side to move, with each
// promotion listed once per piece. It is empty once the game is over.
func (g *Game) LegalMoves() []chess.Move {
	moves := make([]chess.Move, len(g.legal))
	copy(moves, g.legal)
	return moves
}

// LegalMoveSquares maps each square holding a movable piece of the side to
// move to its legal destinations. It is empty once the game is over.
func (g *Game) LegalMoveSquares() map[chess.Square][]chess.Square {
	return engine.GroupBySquare(g.legal)
}

// CheckThreats returns the squares of the pieces giving check, ascending.
func (g *Game) CheckThreats(e *engine.Engine) []chess.Square {
	return e.CheckThreats(&g.pos)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.inCheck
}

// Metadata returns a copy of the game's PGN metadata.
func (g *Game) Metadata() chess.PGNMetadata {
	return g.meta.Clone()
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return engine.FEN(&g.pos)
}

// StartFEN returns the start position in FEN.
func (g *Game) StartFEN() string {
	return engine.FEN(&g.startPos)
}

// IsStandardStart reports whether the game began from the initial position.
func (g *Game) IsStandardStart() bool {
	return g.startPos == chess.StartingPosition()
}

// Repetitions returns how many times the current position has occurred.
func (g *Game) Repetitions() int {
	return g.repetitions.Count(g.hash)
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	clone := *g
	clone.history = g.History()
	clone.legal = g.LegalMoves()
	clone.meta = g.meta.Clone()
	clone.repetitions = g.repetitions.Clone()
	return &clone
}

// String summarises the game for logs.
func (g *Game) String() string {
	return fmt.Sprintf("%s vs %s, ply %d, %s", g.meta.White, g.meta.Black, len(g.history), g.status)
}
