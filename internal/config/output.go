package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human-readable report
	JSON                     // One JSON document per run
)

// String returns the format name used in flags and config files.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
	}
}

// UnmarshalYAML reads the format by name.
func (f *OutputFormat) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseOutputFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML writes the format by name.
func (f OutputFormat) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// OutputConfig holds settings related to report formatting.
type OutputConfig struct {
	// Format specifies text or JSON reports
	Format OutputFormat `yaml:"format"`

	// ShowBoard draws the final position as a grid
	ShowBoard bool `yaml:"show_board"`

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool `yaml:"show_legal_moves"`

	// ShowDrawRules adds the informational draw rule report
	ShowDrawRules bool `yaml:"show_draw_rules"`

	// ShowHistory lists every ply with the FEN it produced
	ShowHistory bool `yaml:"show_history"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        Text,
		ShowBoard:     true,
		ShowDrawRules: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
