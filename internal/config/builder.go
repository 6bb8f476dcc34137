package config

import (
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithColour enables or disables coloured board diagrams.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMoves sets the space separated UCI moves to replay.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithLoadFile sets the saved document to load.
func (b *ConfigBuilder) WithLoadFile(path string) *ConfigBuilder {
	b.cfg.LoadFile = path
	return b
}

// WithPGNFile sets the PGN file and the 1-based game within it to import.
func (b *ConfigBuilder) WithPGNFile(path string, game int) *ConfigBuilder {
	b.cfg.PGNFile = path
	b.cfg.PGNGame = game
	return b
}

// WithSaveFile sets where the session is saved after replay.
func (b *ConfigBuilder) WithSaveFile(path string) *ConfigBuilder {
	b.cfg.SaveFile = path
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithRepetitionLimit sets the repetition draw limit.
func (b *ConfigBuilder) WithRepetitionLimit(n int) *ConfigBuilder {
	b.cfg.Rules.RepetitionLimit = n
	return b
}

// WithHalfmoveLimit sets the half-move draw limit.
func (b *ConfigBuilder) WithHalfmoveLimit(n int) *ConfigBuilder {
	b.cfg.Rules.HalfmoveLimit = n
	return b
}

// WithPromotionPiece sets the session promotion piece.
func (b *ConfigBuilder) WithPromotionPiece(p chess.Piece) *ConfigBuilder {
	b.cfg.Session.PromotionPiece = p
	return b
}

// WithPlayedColour restricts the session to one colour.
func (b *ConfigBuilder) WithPlayedColour(c chess.Colour) *ConfigBuilder {
	b.cfg.Session.PlayedColour = c
	b.cfg.Session.HasPlayedColour = true
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
