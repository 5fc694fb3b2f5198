// Package config provides configuration for the chess-rules tool.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent  = 0 // Nothing on the log
	Summary = 1 // One line per run
	PerMove = 2 // Running commentary, one line per ply
)

// Config holds all program configuration.
// Sub-configs group settings by concern; streams are set by the caller and
// never read from a file.
type Config struct {
	Verbosity int `yaml:"verbosity"`
	Workers   int `yaml:"workers"`

	// Starting position and moves to play from it
	StartFEN string   `yaml:"fen"`
	Moves    []string `yaml:"moves"`

	Output   *OutputConfig   `yaml:"output"`
	Analysis *AnalysisConfig `yaml:"analysis"`
	Export   *ExportConfig   `yaml:"export"`

	// File handling
	LogFilename string `yaml:"log_file"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Summary,
		Workers:    runtime.NumCPU(),
		Output:     NewOutputConfig(),
		Analysis:   NewAnalysisConfig(),
		Export:     NewExportConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logger returns a logger over LogFile, discarding everything when the
// verbosity is Silent.
func (c *Config) Logger() *log.Logger {
	if c.Verbosity <= Silent || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "chess-rules: ", log.LstdFlags)
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > PerMove {
		return fmt.Errorf("verbosity %d outside %d..%d: %w", c.Verbosity, Silent, PerMove, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Output == nil || c.Analysis == nil || c.Export == nil {
		return fmt.Errorf("missing section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	return c.Export.Validate()
}
