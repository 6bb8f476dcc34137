// Package engine implements the chess rules: attack detection, legal move
// generation, move application, game-end evaluation, FEN and SAN.
//
// An Engine holds precomputed move tables and the draw policy. It is built
// once with New and never modified afterwards, so a single Engine may be
// shared by any number of games on any number of goroutines.
package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// Default draw policy.
const (
	DefaultRepetitionLimit = 3
	DefaultHalfmoveLimit   = 100
)

// direction is a (file, rank) step.
type direction struct {
	df, dr int
}

// Ray directions. The first four are straight, the last four diagonal.
var directions = [8]direction{
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

var (
	straightDirs = []int{0, 1, 2, 3}
	diagonalDirs = []int{4, 5, 6, 7}
	allDirs      = []int{0, 1, 2, 3, 4, 5, 6, 7}
)

var knightOffsets = []direction{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Engine is the shared, read-only rule configuration.
type Engine struct {
	knightAttacks [chess.NumSquares][]chess.Square
	kingAttacks   [chess.NumSquares][]chess.Square
	// pawnAttacks[c][sq] lists the squares a pawn of colour c on sq attacks.
	pawnAttacks [chess.NumColours][chess.NumSquares][]chess.Square
	// rays[d][sq] lists the squares from sq outward in direction d.
	rays [len(directions)][chess.NumSquares][]chess.Square

	keys *hashing.Keys

	repetitionLimit          int
	halfmoveLimit            int
	insufficientMaterialDraw bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRepetitionLimit sets how many occurrences of a position end the game
// in a draw. 0 disables the rule; 1 is ignored since every position occurs once.
func WithRepetitionLimit(n int) Option {
	return func(e *Engine) {
		if n == 0 || n >= 2 {
			e.repetitionLimit = n
		}
	}
}

// WithHalfmoveLimit sets how many half-moves without a pawn move or capture
// end the game in a draw. 0 disables the rule.
func WithHalfmoveLimit(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.halfmoveLimit = n
		}
	}
}

// WithInsufficientMaterialDraw controls whether dead positions end the game.
func WithInsufficientMaterialDraw(enabled bool) Option {
	return func(e *Engine) {
		e.insufficientMaterialDraw = enabled
	}
}

// New builds an Engine. Without options it applies threefold repetition,
// the fifty-move rule and insufficient material.
func New(opts ...Option) *Engine {
	e := &Engine{
		keys:                     hashing.NewKeys(),
		repetitionLimit:          DefaultRepetitionLimit,
		halfmoveLimit:            DefaultHalfmoveLimit,
		insufficientMaterialDraw: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.buildTables()
	return e
}

// buildTables fills the per-square move tables.
func (e *Engine) buildTables() {
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)

		for _, off := range knightOffsets {
			if to, ok := sq.Offset(off.df, off.dr); ok {
				e.knightAttacks[i] = append(e.knightAttacks[i], to)
			}
		}

		for _, d := range allDirs {
			if to, ok := sq.Offset(directions[d].df, directions[d].dr); ok {
				e.kingAttacks[i] = append(e.kingAttacks[i], to)
			}
		}

		for c := chess.White; c <= chess.Black; c++ {
			for _, df := range []int{-1, 1} {
				if to, ok := sq.Offset(df, c.Forward()); ok {
					e.pawnAttacks[c][i] = append(e.pawnAttacks[c][i], to)
				}
			}
		}

		for d, dir := range directions {
			cur := sq
			for {
				next, ok := cur.Offset(dir.df, dir.dr)
				if !ok {
					break
				}
				e.rays[d][i] = append(e.rays[d][i], next)
				cur = next
			}
		}
	}
}

// Hash returns the Zobrist hash of pos.
func (e *Engine) Hash(pos *chess.Position) uint64 {
	return e.keys.Hash(pos)
}

// RepetitionLimit returns the configured repetition limit (0 = disabled).
func (e *Engine) RepetitionLimit() int {
	return e.repetitionLimit
}

// HalfmoveLimit returns the configured half-move limit (0 = disabled).
func (e *Engine) HalfmoveLimit() int {
	return e.halfmoveLimit
}
