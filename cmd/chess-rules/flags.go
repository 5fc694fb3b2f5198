// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// options holds the parsed command line.
type options struct {
	fs *flag.FlagSet

	// Position and moves
	fen   string
	moves string

	// Queries
	square string
	perft  int
	divide bool

	// Output options
	jsonOutput  bool
	showBoard   bool
	showLegal   bool
	showHistory bool
	exportFile  string
	compression string

	// Program options
	configFile string
	logFile    string
	verbosity  int
	workers    int
	version    bool
	help       bool
}

// newFlagSet defines every flag on a fresh FlagSet writing usage to stderr.
func newFlagSet(stderr io.Writer) *options {
	o := &options{fs: flag.NewFlagSet("chess-rules", flag.ContinueOnError)}
	fs := o.fs
	fs.SetOutput(stderr)

	fs.StringVar(&o.fen, "fen", "", "Starting position in FEN (default: standard start)")
	fs.StringVar(&o.moves, "moves", "", "Moves to play, e.g. \"e2e4 e7e5 O-O e7e8=Q\"")

	fs.StringVar(&o.square, "square", "", "List the legal moves of the piece on this square")
	fs.IntVar(&o.perft, "perft", 0, "Count leaf nodes to this depth from the final position")
	fs.BoolVar(&o.divide, "divide", false, "Split the perft count by root move")

	fs.BoolVar(&o.jsonOutput, "J", false, "Output in JSON format")
	fs.BoolVar(&o.showBoard, "board", true, "Draw the final position")
	fs.BoolVar(&o.showLegal, "legal", false, "List the legal moves of the side to move")
	fs.BoolVar(&o.showHistory, "history", false, "List every ply with the position it produced")
	fs.StringVar(&o.exportFile, "export", "", "Write the move history to this parquet file")
	fs.StringVar(&o.compression, "compression", "", "Parquet compression: uncompressed, snappy, gzip, zstd, lz4")

	fs.StringVar(&o.configFile, "config", "", "YAML configuration file")
	fs.StringVar(&o.logFile, "log", "", "Write log to file (default: stderr)")
	fs.IntVar(&o.verbosity, "v", config.Summary, "Verbosity: 0 silent, 1 summary, 2 per move")
	fs.IntVar(&o.workers, "workers", 0, "Worker goroutines for perft (default: number of CPUs)")
	fs.BoolVar(&o.version, "version", false, "Show version")
	fs.BoolVar(&o.help, "h", false, "Show help")

	fs.Usage = func() { usage(o) }
	return o
}

// parseFlags parses args into options.
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := newFlagSet(stderr)
	if err := o.fs.Parse(args); err != nil {
		return nil, err
	}
	if o.fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(o.fs.Args(), " "))
	}
	return o, nil
}

// isSet reports whether a flag was given on the command line.
func (o *options) isSet(name string) bool {
	set := false
	o.fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// applyFlags copies explicitly set flags over cfg, so flags win over the
// config file and the file wins over defaults.
func applyFlags(o *options, cfg *config.Config) {
	applyPositionFlags(o, cfg)
	applyAnalysisFlags(o, cfg)
	applyOutputFlags(o, cfg)

	if o.isSet("v") {
		cfg.Verbosity = o.verbosity
	}
	if o.isSet("workers") {
		cfg.Workers = o.workers
	}
	if o.isSet("log") {
		cfg.LogFilename = o.logFile
	}
}

// applyPositionFlags configures the starting position and moves.
func applyPositionFlags(o *options, cfg *config.Config) {
	if o.isSet("fen") {
		cfg.StartFEN = o.fen
	}
	if o.isSet("moves") {
		cfg.Moves = strings.Fields(o.moves)
	}
}

// applyAnalysisFlags configures square queries and perft.
func applyAnalysisFlags(o *options, cfg *config.Config) {
	if o.isSet("square") {
		cfg.Analysis.Square = o.square
	}
	if o.isSet("perft") {
		cfg.Analysis.PerftDepth = o.perft
	}
	if o.isSet("divide") {
		cfg.Analysis.Divide = o.divide
	}
}

// applyOutputFlags configures report format and export.
func applyOutputFlags(o *options, cfg *config.Config) {
	if o.isSet("J") {
		if o.jsonOutput {
			cfg.Output.Format = config.JSON
		} else {
			cfg.Output.Format = config.Text
		}
	}
	if o.isSet("board") {
		cfg.Output.ShowBoard = o.showBoard
	}
	if o.isSet("legal") {
		cfg.Output.ShowLegalMoves = o.showLegal
	}
	if o.isSet("history") {
		cfg.Output.ShowHistory = o.showHistory
	}
	if o.isSet("export") {
		cfg.Export.Path = o.exportFile
	}
	if o.isSet("compression") {
		cfg.Export.Compression = o.compression
	}
}

func usage(o *options) {
	w := o.fs.Output()
	fmt.Fprintf(w, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(w, "Plays a line of moves under the rules of chess and reports the result.\n\n")
	fmt.Fprintf(w, "Options:\n")
	o.fs.PrintDefaults()
	fmt.Fprintf(w, "\nMove text:\n")
	fmt.Fprintf(w, "  e2e4     normal move, en passant included\n")
	fmt.Fprintf(w, "  O-O      castle king side (O-O-O queen side)\n")
	fmt.Fprintf(w, "  e7e8=Q   promotion to Q, R, B or N\n")
}
