package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Compression codecs accepted for parquet export.
var compressionCodecs = []string{"uncompressed", "snappy", "gzip", "zstd", "lz4"}

// ExportConfig holds settings for the parquet history export.
type ExportConfig struct {
	// Path of the parquet file to write (empty = no export)
	Path string `yaml:"path"`

	// Compression codec name
	Compression string `yaml:"compression"`

	// RowGroupSize is the parquet row group size in bytes
	RowGroupSize int64 `yaml:"row_group_size"`

	// Parallel is the number of goroutines the parquet writer uses
	Parallel int64 `yaml:"parallel"`
}

// NewExportConfig creates an ExportConfig with default values.
func NewExportConfig() *ExportConfig {
	return &ExportConfig{
		Compression:  "snappy",
		RowGroupSize: 128 * 1024 * 1024,
		Parallel:     4,
	}
}

// Enabled reports whether an export was requested.
func (e *ExportConfig) Enabled() bool {
	return e.Path != ""
}

// Validate checks that the export configuration is valid.
func (e *ExportConfig) Validate() error {
	if e.RowGroupSize <= 0 {
		return fmt.Errorf("row group size must be positive, got %d: %w", e.RowGroupSize, errors.ErrInvalidConfig)
	}
	if e.Parallel <= 0 {
		return fmt.Errorf("parallel must be positive, got %d: %w", e.Parallel, errors.ErrInvalidConfig)
	}
	for _, codec := range compressionCodecs {
		if strings.EqualFold(e.Compression, codec) {
			return nil
		}
	}
	return fmt.Errorf("unknown compression %q: %w", e.Compression, errors.ErrInvalidConfig)
}
