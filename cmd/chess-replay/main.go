// chess-replay replays chess moves, or a game imported from PGN, through the
// rules engine and prints the resulting game as a board, FEN, PGN or a
// saved-session document. It can also count move paths (perft) from any
// position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/profile"

	"github.com/lgbarn/chesscore-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(realMain())
}

// realMain runs the program and returns the exit status, so that deferred
// cleanup (profile, files) happens before os.Exit.
func realMain() int {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		return 2
	}

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	closeOutput, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	defer closeOutput()

	if cfg.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile), profile.NoShutdownHook).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) (func(), error) {
	if *logFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.SetLogFile(file)
	return func() { file.Close() }, nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) (func(), error) {
	if *outputFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.SetOutput(file)
	// ANSI codes are for terminals, not files.
	cfg.Output.Colour = false
	return func() { file.Close() }, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess moves or imports a PGN game and prints the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -moves \"f2f3 e7e5 g2g4 d8h4\" -format pgn\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -fen \"8/P3k3/8/8/8/8/8/K7 w - - 0 1\" -moves a7a8n\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -perft 5 -divide -workers 8\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -load save.json -format fen\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -pgn games.pgn.zst -game 3 -moves e1g1 -save game3.json\n")
}
