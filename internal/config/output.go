package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// OutputFormat selects what is printed for the final game state.
type OutputFormat int

const (
	BoardFormat OutputFormat = iota // Diagram of the board
	FENFormat                       // FEN of the current position
	PGNFormat                       // Full game in PGN
	JSONFormat                      // Persistence document
)

var outputFormatNames = []string{"board", "fen", "pgn", "json"}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat parses a flag value such as "pgn".
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range outputFormatNames {
		if name == s {
			return OutputFormat(i), nil
		}
	}
	return BoardFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// TagOutputForm specifies which tags to output.
type TagOutputForm int

const (
	AllTags        TagOutputForm = 0
	SevenTagRoster TagOutputForm = 1
	NoTags         TagOutputForm = 2
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects board, FEN, PGN or JSON output
	Format OutputFormat

	// MaxLineLength is the maximum line length for PGN output
	MaxLineLength uint

	// UCIMoves writes PGN movetext in UCI instead of SAN
	UCIMoves bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// TagFormat specifies which tags to output (AllTags, SevenTagRoster, NoTags)
	TagFormat TagOutputForm

	// Colour enables ANSI colour in board diagrams
	Colour bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          BoardFormat,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		TagFormat:       AllTags,
		Colour:          true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < BoardFormat || o.Format > JSONFormat {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.MaxLineLength != 0 && o.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is below 20: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
