package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/persist"
	"github.com/lgbarn/chesscore-go/internal/pgn"
	"github.com/lgbarn/chesscore-go/internal/session"
)

// run builds the session described by cfg, replays its moves and writes
// the requested output.
func run(ctx context.Context, cfg *config.Config) error {
	e := engine.New(cfg.Rules.EngineOptions()...)

	s, err := buildSession(e, cfg, time.Now())
	if err != nil {
		return err
	}
	if err := replayMoves(e, s, cfg); err != nil {
		return err
	}

	g := s.Game()
	cfg.Logf(1, "%s", g)

	if cfg.SaveFile != "" {
		if err := persist.SaveSession(cfg.SaveFile, s); err != nil {
			return err
		}
		cfg.Logf(1, "Saved session to %s", cfg.SaveFile)
	}

	if cfg.Perft.Depth > 0 {
		return runPerft(ctx, cfg, e, g.Position())
	}
	return writeGame(cfg, s)
}

// buildSession loads a saved session, imports a PGN game or starts a
// sandbox game.
func buildSession(e *engine.Engine, cfg *config.Config, now time.Time) (*session.Session, error) {
	if cfg.LoadFile != "" {
		s, err := persist.LoadSession(e, cfg.LoadFile)
		if err != nil {
			return nil, err
		}
		cfg.Logf(1, "Loaded %s (%d plies)", cfg.LoadFile, s.Game().PlyCount())
		return s, nil
	}

	var g *game.Game
	var err error
	switch {
	case cfg.PGNFile != "":
		if g, err = importGame(e, cfg); err != nil {
			return nil, err
		}
		cfg.Logf(1, "Imported game %d of %s (%d plies)", cfg.PGNGame, cfg.PGNFile, g.PlyCount())
	case cfg.StartFEN != "":
		if g, err = game.NewFromFEN(e, chess.SandboxPGNMetadata(now), cfg.StartFEN); err != nil {
			return nil, err
		}
	default:
		g = game.New(e, chess.SandboxPGNMetadata(now))
	}

	s := session.FromGame(g)
	if err := s.SetPromotionPiece(cfg.Session.PromotionPiece); err != nil {
		return nil, err
	}
	if cfg.Session.HasPlayedColour {
		s.SetPlayedColour(cfg.Session.PlayedColour)
	}
	if cfg.Session.Flipped {
		s.SetPerspective(chess.Black)
	}
	s.SetAutoPerspective(cfg.Session.AutoPerspective)
	return s, nil
}

// importGame replays game cfg.PGNGame (1-based) of cfg.PGNFile, which may be
// compressed with zstd or bzip2.
func importGame(e *engine.Engine, cfg *config.Config) (*game.Game, error) {
	src, err := pgn.Open(cfg.PGNFile)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	cfg.Logf(2, "Reading %s (%s)", cfg.PGNFile, src.Size)

	rd := pgn.NewReader(src)
	for i := 1; ; i++ {
		raw, err := rd.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("%s has %d games, wanted game %d: %w",
				cfg.PGNFile, i-1, cfg.PGNGame, errors.ErrInvalidConfig)
		}
		if err != nil {
			return nil, errors.Wrap(err, cfg.PGNFile)
		}
		if i == cfg.PGNGame {
			g, err := pgn.NewGame(e, raw)
			return g, errors.Wrapf(err, "%s game %d", cfg.PGNFile, i)
		}
	}
}

// replayMoves plays cfg.Moves in order. A move without a promotion suffix
// promotes to the session's piece.
func replayMoves(e *engine.Engine, s *session.Session, cfg *config.Config) error {
	for _, text := range strings.Fields(cfg.Moves) {
		m, err := chess.ParseMove(text)
		if err != nil {
			return &errors.MoveError{Err: err, PlyNum: s.Game().PlyCount() + 1, MoveText: text}
		}
		if err := playMove(e, s, m); err != nil {
			return err
		}
		if cfg.Verbosity >= 2 {
			history := s.Game().History()
			last := history[len(history)-1]
			cfg.Logf(2, "%d. %s %s", len(history), last.SAN, last.FEN)
		}
	}
	return nil
}

// playMove plays m through the session, falling back to the game for an
// explicit promotion piece or to learn why the move was refused.
func playMove(e *engine.Engine, s *session.Session, m chess.Move) error {
	if m.Promotion == chess.NoPiece && s.TryPlayMove(e, m.From, m.To) {
		return nil
	}
	return s.Game().PlayMove(e, m)
}

// writeGame writes the session in the configured output format.
func writeGame(cfg *config.Config, s *session.Session) error {
	g := s.Game()
	switch cfg.Output.Format {
	case config.FENFormat:
		_, err := fmt.Fprintln(cfg.OutputFile, g.FEN())
		return err
	case config.PGNFormat:
		return pgn.Write(cfg.OutputFile, g, pgnOptions(cfg.Output))
	case config.JSONFormat:
		data, err := persist.EncodeSession(s)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cfg.OutputFile, "%s\n", data)
		return err
	default:
		return writeBoard(cfg.OutputFile, s, cfg.Output.Colour)
	}
}

// pgnOptions maps output settings to PGN export options.
func pgnOptions(out *config.OutputConfig) pgn.Options {
	opts := pgn.Options{
		MaxLineLength: int(out.MaxLineLength),
		MoveNumbers:   out.KeepMoveNumbers,
	}
	switch out.TagFormat {
	case config.SevenTagRoster:
		opts.TagFormat = pgn.SevenTagRoster
	case config.NoTags:
		opts.TagFormat = pgn.NoTags
	default:
		opts.TagFormat = pgn.AllTags
	}
	if out.UCIMoves {
		opts.Notation = pgn.UCI
	}
	return opts
}
