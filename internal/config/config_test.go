package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if !cfg.ShowDrawRules {
		t.Error("ShowDrawRules should be true by default")
	}
	if cfg.ShowLegalMoves || cfg.ShowHistory {
		t.Error("ShowLegalMoves and ShowHistory should be off by default")
	}
}

func TestAnalysisConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AnalysisConfig
		wantErr bool
	}{
		{"defaults", AnalysisConfig{}, false},
		{"perft only", AnalysisConfig{PerftDepth: 3}, false},
		{"divide", AnalysisConfig{PerftDepth: 2, Divide: true}, false},
		{"max depth", AnalysisConfig{PerftDepth: MaxPerftDepth}, false},
		{"negative depth", AnalysisConfig{PerftDepth: -1}, true},
		{"too deep", AnalysisConfig{PerftDepth: MaxPerftDepth + 1}, true},
		{"divide without depth", AnalysisConfig{Divide: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestExportConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*ExportConfig)
		wantErr bool
	}{
		{"defaults", func(*ExportConfig) {}, false},
		{"zstd", func(e *ExportConfig) { e.Compression = "zstd" }, false},
		{"case insensitive", func(e *ExportConfig) { e.Compression = "GZIP" }, false},
		{"unknown codec", func(e *ExportConfig) { e.Compression = "brotli9" }, true},
		{"zero row group", func(e *ExportConfig) { e.RowGroupSize = 0 }, true},
		{"zero parallel", func(e *ExportConfig) { e.Parallel = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewExportConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExportConfig_Enabled(t *testing.T) {
	cfg := NewExportConfig()
	if cfg.Enabled() {
		t.Error("export should be disabled by default")
	}
	cfg.Path = "history.parquet"
	if !cfg.Enabled() {
		t.Error("export should be enabled once a path is set")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", Text, false},
		{"", Text, false},
		{"JSON", JSON, false},
		{" json ", JSON, false},
		{"xml", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = Silent }, false},
		{"verbosity too high", func(c *Config) { c.Verbosity = PerMove + 1 }, true},
		{"no workers", func(c *Config) { c.Workers = 0 }, true},
		{"bad analysis", func(c *Config) { c.Analysis.PerftDepth = -2 }, true},
		{"bad export", func(c *Config) { c.Export.Compression = "none?" }, true},
		{"missing section", func(c *Config) { c.Output = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	var buf bytes.Buffer
	cfg.SetOutput(&buf)
	if cfg.OutputFile != &buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).Build()
	cfg.Logger().Print("hello")
	if !strings.Contains(buf.String(), "chess-rules: ") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output = %q", buf.String())
	}

	buf.Reset()
	cfg.Verbosity = Silent
	cfg.Logger().Print("quiet")
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, logBuf bytes.Buffer

	cfg := NewConfigBuilder().
		WithStartFEN("8/8/8/8/8/8/8/K6k w - - 0 1").
		WithMoves("a1a2", "h1h2").
		WithJSONOutput(true).
		WithBoard(false).
		WithLegalMoves(true).
		WithPerft(3, true).
		WithSquare("e2").
		WithExport("out.parquet").
		WithWorkers(2).
		WithOutput(&out).
		WithLog(&logBuf).
		WithVerbosity(PerMove).
		Build()

	if cfg.StartFEN != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if len(cfg.Moves) != 2 || cfg.Moves[1] != "h1h2" {
		t.Errorf("Moves = %v", cfg.Moves)
	}
	if cfg.Output.Format != JSON {
		t.Error("Format should be JSON")
	}
	if cfg.Output.ShowBoard {
		t.Error("ShowBoard should be false")
	}
	if !cfg.Output.ShowLegalMoves {
		t.Error("ShowLegalMoves should be true")
	}
	if cfg.Analysis.PerftDepth != 3 || !cfg.Analysis.Divide {
		t.Errorf("Analysis = %+v", cfg.Analysis)
	}
	if cfg.Analysis.Square != "e2" {
		t.Errorf("Square = %q", cfg.Analysis.Square)
	}
	if cfg.Export.Path != "out.parquet" {
		t.Errorf("Export.Path = %q", cfg.Export.Path)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &logBuf {
		t.Error("streams not set")
	}
	if cfg.Verbosity != PerMove {
		t.Errorf("Verbosity = %d", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	cfg = NewConfigBuilder().WithOutputFormat(JSON).WithJSONOutput(false).Build()
	if cfg.Output.Format != Text {
		t.Error("WithJSONOutput(false) should select text")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, c *Config)
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			check: func(t *testing.T, c *Config) {
				if c.Output.Format != Text || c.Verbosity != Summary {
					t.Errorf("defaults changed: %+v", c)
				}
			},
		},
		{
			name: "full file",
			yaml: `
verbosity: 2
workers: 3
fen: "8/8/8/8/8/8/8/K6k w - - 0 1"
moves: [a1a2, h1g2]
output:
  format: json
  show_board: false
  show_history: true
analysis:
  perft_depth: 2
  divide: true
export:
  path: hist.parquet
  compression: gzip
`,
			check: func(t *testing.T, c *Config) {
				if c.Verbosity != PerMove || c.Workers != 3 {
					t.Errorf("Verbosity/Workers = %d/%d", c.Verbosity, c.Workers)
				}
				if len(c.Moves) != 2 || c.Moves[0] != "a1a2" {
					t.Errorf("Moves = %v", c.Moves)
				}
				if c.Output.Format != JSON || c.Output.ShowBoard || !c.Output.ShowHistory {
					t.Errorf("Output = %+v", c.Output)
				}
				// Keys not in the file keep their defaults.
				if !c.Output.ShowDrawRules {
					t.Error("ShowDrawRules lost its default")
				}
				if c.Analysis.PerftDepth != 2 || !c.Analysis.Divide {
					t.Errorf("Analysis = %+v", c.Analysis)
				}
				if c.Export.Path != "hist.parquet" || c.Export.Compression != "gzip" || c.Export.Parallel != 4 {
					t.Errorf("Export = %+v", c.Export)
				}
				if c.OutputFile != os.Stdout {
					t.Error("OutputFile should stay stdout")
				}
			},
		},
		{name: "unknown format", yaml: "output:\n  format: xml\n", wantErr: true},
		{name: "unknown key", yaml: "colour: blue\n", wantErr: true},
		{name: "invalid values", yaml: "analysis:\n  divide: true\n", wantErr: true},
		{name: "malformed", yaml: "workers: [\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrInvalidConfig) {
					t.Errorf("Decode() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chess.yaml")
	if err := os.WriteFile(path, []byte("workers: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Workers != 5 {
		t.Errorf("Workers = %d, want 5", cfg.Workers)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := NewConfigBuilder().WithJSONOutput(true).WithPerft(4, false).WithWorkers(2).Build()

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	if !strings.Contains(buf.String(), "format: json") {
		t.Errorf("encoded config missing format:\n%s", buf.String())
	}

	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	if back.Output.Format != JSON || back.Analysis.PerftDepth != 4 || back.Workers != 2 {
		t.Errorf("round trip lost values: %+v %+v", back.Output, back.Analysis)
	}
}
