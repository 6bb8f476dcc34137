// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

var (
	// Game source
	movesText = flag.String("moves", "", "Space separated UCI moves to replay (e.g. \"e2e4 e7e5\")")
	startFEN  = flag.String("fen", "", "Start position in FEN (default: initial position)")
	loadFile  = flag.String("load", "", "Load a saved game or session (JSON)")
	saveFile  = flag.String("save", "", "Save the session to this file after replaying")
	pgnFile   = flag.String("pgn", "", "Import a game from a PGN file; -moves continue it")
	pgnGame   = flag.Int("game", 1, "Which game of the -pgn file to import (1 = first)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "board", "Output format: board, fen, pgn, json")
	sevenTagOnly = flag.Bool("7", false, "PGN: output only the seven tag roster")
	noTags       = flag.Bool("notags", false, "PGN: don't output any tags")
	uciMoves     = flag.Bool("uci", false, "PGN: write moves in UCI instead of SAN")
	lineLength   = flag.Int("w", 80, "PGN: maximum line length")
	noColour     = flag.Bool("nocolor", false, "Board: disable ANSI colours")

	// Session preferences
	promotePiece    = flag.String("promote", "q", "Piece for promotions without a suffix: q, r, b, n")
	playAs          = flag.String("play", "", "Record the local player's colour in the saved session: white, black")
	flipBoard       = flag.Bool("flip", false, "Board: view from Black's side")
	autoPerspective = flag.Bool("auto", false, "Board: view from the side to move")

	// Draw rules
	repetitionLimit = flag.Int("repetition", 3, "Occurrences of a position that draw (0 = off)")
	halfmoveLimit   = flag.Int("halfmoves", 100, "Half-moves without capture or pawn move that draw (0 = off)")
	noMaterialDraw  = flag.Bool("nomaterialdraw", false, "Don't draw on insufficient material")

	// Perft
	perftDepth   = flag.Int("perft", 0, "Count move paths to this depth instead of printing the game")
	perftWorkers = flag.Int("workers", 0, "Perft worker goroutines (default: number of CPUs)")
	perftDivide  = flag.Bool("divide", false, "Perft: print the count below each root move")

	// Diagnostics
	logFile    = flag.String("log", "", "Write diagnostics to this file (default: stderr)")
	cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile into this directory")
	quiet      = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose    = flag.Bool("v", false, "Log every move played")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flags into cfg.
func applyFlags(cfg *config.Config) error {
	cfg.StartFEN = *startFEN
	cfg.Moves = *movesText
	cfg.LoadFile = *loadFile
	cfg.SaveFile = *saveFile
	cfg.PGNFile = *pgnFile
	cfg.PGNGame = *pgnGame
	cfg.CPUProfile = *cpuProfile

	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applySessionFlags(cfg); err != nil {
		return err
	}
	applyRulesFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.UCIMoves = *uciMoves
	cfg.Output.Colour = !*noColour
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}

	switch {
	case *noTags:
		cfg.Output.TagFormat = config.NoTags
	case *sevenTagOnly:
		cfg.Output.TagFormat = config.SevenTagRoster
	}
	return nil
}

// applySessionFlags configures the session preferences.
func applySessionFlags(cfg *config.Config) error {
	if len(*promotePiece) != 1 {
		return fmt.Errorf("promotion piece %q: %w", *promotePiece, errors.ErrInvalidConfig)
	}
	piece := chess.ParsePromotion((*promotePiece)[0])
	if piece == chess.NoPiece {
		return fmt.Errorf("promotion piece %q: %w", *promotePiece, errors.ErrInvalidConfig)
	}
	cfg.Session.PromotionPiece = piece

	if *playAs != "" {
		var c chess.Colour
		if err := c.UnmarshalText([]byte(*playAs)); err != nil {
			return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
		}
		cfg.Session.PlayedColour = c
		cfg.Session.HasPlayedColour = true
	}

	cfg.Session.AutoPerspective = *autoPerspective
	cfg.Session.Flipped = *flipBoard
	return nil
}

// applyRulesFlags configures the engine's draw policy.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.RepetitionLimit = *repetitionLimit
	cfg.Rules.HalfmoveLimit = *halfmoveLimit
	cfg.Rules.InsufficientMaterialDraw = !*noMaterialDraw
}

// applyPerftFlags configures perft.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *perftDivide
	if *perftWorkers > 0 {
		cfg.Perft.Workers = *perftWorkers
	}
}
