package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// RulesConfig holds the draw policy handed to the engine.
type RulesConfig struct {
	// RepetitionLimit is the occurrence count that draws; 0 disables
	RepetitionLimit int

	// HalfmoveLimit is the half-move clock value that draws; 0 disables
	HalfmoveLimit int

	// InsufficientMaterialDraw ends dead positions as draws
	InsufficientMaterialDraw bool
}

// NewRulesConfig creates a RulesConfig with the standard draw rules.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		RepetitionLimit:          engine.DefaultRepetitionLimit,
		HalfmoveLimit:            engine.DefaultHalfmoveLimit,
		InsufficientMaterialDraw: true,
	}
}

// Validate checks that the rules configuration is valid.
func (r *RulesConfig) Validate() error {
	if r.RepetitionLimit == 1 || r.RepetitionLimit < 0 {
		return fmt.Errorf("repetition limit %d must be 0 or at least 2: %w",
			r.RepetitionLimit, errors.ErrInvalidConfig)
	}
	if r.HalfmoveLimit < 0 {
		return fmt.Errorf("half-move limit %d is negative: %w", r.HalfmoveLimit, errors.ErrInvalidConfig)
	}
	return nil
}

// EngineOptions returns the engine options for these rules.
func (r *RulesConfig) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithRepetitionLimit(r.RepetitionLimit),
		engine.WithHalfmoveLimit(r.HalfmoveLimit),
		engine.WithInsufficientMaterialDraw(r.InsufficientMaterialDraw),
	}
}
