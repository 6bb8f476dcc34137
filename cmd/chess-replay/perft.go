package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// runPerft counts move paths from pos and writes the total, preceded by
// the per-move counts when dividing.
func runPerft(ctx context.Context, cfg *config.Config, e *engine.Engine, pos chess.Position) error {
	start := time.Now()
	entries, err := e.PerftParallel(ctx, &pos, cfg.Perft.Depth, worker.WithWorkers(cfg.Perft.Workers))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	total := engine.TotalNodes(entries)

	if cfg.Perft.Divide {
		for _, entry := range entries {
			if _, err := fmt.Fprintf(cfg.OutputFile, "%s: %d\n", entry.Move, entry.Nodes); err != nil {
				return err
			}
		}
		fmt.Fprintln(cfg.OutputFile)
	}
	if _, err := fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", cfg.Perft.Depth, total); err != nil {
		return err
	}

	cfg.Logf(1, "perft(%d): %d nodes in %s with %d workers (%.0f nodes/s)",
		cfg.Perft.Depth, total, elapsed.Round(time.Millisecond), cfg.Perft.Workers,
		float64(total)/elapsed.Seconds())
	return nil
}
