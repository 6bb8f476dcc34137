// Package hashing provides Zobrist position keys and repetition counting.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs and can
// be stored alongside a game.
const zobristSeed = 0x5a0b715

// Keys is a Zobrist key table. It is built once and only read afterwards.
type Keys struct {
	pieces      [chess.NumColours][chess.NumPieceTypes][chess.NumSquares]uint64
	castling    [16]uint64
	epFile      [chess.BoardSize]uint64
	blackToMove uint64
}

// NewKeys builds the key table.
func NewKeys() *Keys {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: hashing keys, not secrets
	k := &Keys{}
	for c := 0; c < chess.NumColours; c++ {
		for p := 0; p < chess.NumPieceTypes; p++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				k.pieces[c][p][sq] = rng.Uint64()
			}
		}
	}
	for i := range k.castling {
		k.castling[i] = rng.Uint64()
	}
	for i := range k.epFile {
		k.epFile[i] = rng.Uint64()
	}
	k.blackToMove = rng.Uint64()
	return k
}

// Hash returns the Zobrist hash of a position. Two positions hash equal when
// they have the same placement, side to move, castling rights and en passant
// square, which is the identity used for repetition.
func (k *Keys) Hash(pos *chess.Position) uint64 {
	var hash uint64
	for i := 0; i < chess.NumSquares; i++ {
		cp := pos.Board.Get(chess.Square(i))
		if cp.IsEmpty() {
			continue
		}
		hash ^= k.pieces[cp.Colour()][cp.Piece().Index()][i]
	}
	hash ^= k.castling[pos.Castling&chess.AllCastling]
	if pos.EnPassant {
		hash ^= k.epFile[pos.EPSquare.File()-1]
	}
	if pos.ToMove == chess.Black {
		hash ^= k.blackToMove
	}
	return hash
}

// RepetitionCounter tracks how many times each position hash has occurred.
type RepetitionCounter struct {
	counts map[uint64]int
}

// NewRepetitionCounter creates an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of hash and returns its new count.
func (r *RepetitionCounter) Add(hash uint64) int {
	r.counts[hash]++
	return r.counts[hash]
}

// Count returns how many times hash has been recorded.
func (r *RepetitionCounter) Count(hash uint64) int {
	return r.counts[hash]
}

// Len returns the number of distinct positions recorded.
func (r *RepetitionCounter) Len() int {
	return len(r.counts)
}

// Clone returns an independent copy.
func (r *RepetitionCounter) Clone() *RepetitionCounter {
	clone := &RepetitionCounter{counts: make(map[uint64]int, len(r.counts))}
	for hash, n := range r.counts {
		clone.counts[hash] = n
	}
	return clone
}
