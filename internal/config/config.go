// Package config provides configuration for the chess-replay tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=every move

	// Game source: a start position and moves, a PGN game followed by
	// moves, or a saved document.
	StartFEN string
	Moves    string
	LoadFile string
	SaveFile string
	PGNFile  string
	PGNGame  int // 1-based index of the game to import from PGNFile

	// CPUProfile is a directory to write a CPU profile into, if set.
	CPUProfile string

	Output  *OutputConfig
	Rules   *RulesConfig
	Perft   *PerftConfig
	Session *SessionConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		PGNGame:    1,
		Output:     NewOutputConfig(),
		Rules:      NewRulesConfig(),
		Perft:      NewPerftConfig(),
		Session:    NewSessionConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the diagnostics stream.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration as a whole.
func (c *Config) Validate() error {
	if c.LoadFile != "" && (c.StartFEN != "" || c.Moves != "") {
		return fmt.Errorf("a saved game cannot be combined with a start position or moves: %w",
			errors.ErrInvalidConfig)
	}
	if c.PGNFile != "" && (c.LoadFile != "" || c.StartFEN != "") {
		return fmt.Errorf("a PGN import cannot be combined with a saved game or start position: %w",
			errors.ErrInvalidConfig)
	}
	if c.PGNGame < 1 {
		return fmt.Errorf("PGN game number %d must be at least 1: %w", c.PGNGame, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
