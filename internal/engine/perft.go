package engine

import (
	"context"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// perftContext is Perft that gives up with ctx.Err() once ctx is done.
// Interior nodes check ctx; leaf counts do not.
func (e *Engine) perftContext(ctx context.Context, pos *chess.Position, depth int) (uint64, error) {
	if depth <= 1 {
		return e.Perft(pos, depth), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var nodes uint64
	for _, m := range e.LegalMoves(pos) {
		next := e.Apply(*pos, m)
		n, err := e.perftContext(ctx, &next, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func (e *Engine) Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := e.LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		next := e.Apply(*pos, m)
		nodes += e.Perft(&next, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move, in move
// generation order.
func (e *Engine) PerftDivide(pos *chess.Position, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := e.LegalMoves(pos)
	entries := make([]DivideEntry, len(moves))
	for i, m := range moves {
		next := e.Apply(*pos, m)
		entries[i] = DivideEntry{Move: m, Nodes: e.Perft(&next, depth-1)}
	}
	return entries
}

// PerftParallel is PerftDivide with the root moves spread over a worker
// pool. The Engine is only read, and each worker gets its own position copy.
// Cancelling ctx stops searches already under way as well as queued ones.
func (e *Engine) PerftParallel(ctx context.Context, pos *chess.Position, depth int, opts ...worker.PoolOption) ([]DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := e.LegalMoves(pos)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{
			Position: e.Apply(*pos, m),
			Move:     m,
			Depth:    depth - 1,
			Index:    i,
		}
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		nodes, err := e.perftContext(ctx, &item.Position, item.Depth)
		return worker.ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: nodes,
			Error: err,
		}
	}, opts...)

	results, err := pool.Run(ctx, items)
	if err != nil {
		return nil, errors.Wrapf(err, "perft depth %d", depth)
	}

	entries := make([]DivideEntry, len(results))
	for i, res := range results {
		entries[i] = DivideEntry{Move: res.Move, Nodes: res.Nodes}
	}
	return entries, nil
}

// TotalNodes sums a divide listing.
func TotalNodes(entries []DivideEntry) uint64 {
	var total uint64
	for _, entry := range entries {
		total += entry.Nodes
	}
	return total
}
