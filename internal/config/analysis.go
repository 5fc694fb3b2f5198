package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds perft runs; the node count grows about thirtyfold
// per ply.
const MaxPerftDepth = 7

// AnalysisConfig holds settings for move counting.
type AnalysisConfig struct {
	// PerftDepth counts leaf nodes to this depth (0 = no perft)
	PerftDepth int `yaml:"perft_depth"`

	// Divide splits the perft count by root move
	Divide bool `yaml:"divide"`

	// Square lists the legal moves of one piece, e.g. "e2"
	Square string `yaml:"square"`
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
// All analyses are disabled by default.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.Divide && a.PerftDepth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
