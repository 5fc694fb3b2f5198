// chess-rules plays a line of chess moves, checking every move against the
// rules, and reports the final position and game status.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK      = 0
	exitIllegal = 1 // Invalid FEN, move text or illegal move
	exitUsage   = 2 // Bad flags or configuration
	exitIO      = 3 // Files could not be read or written
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "chess-rules: %v\n", err)
		return exitUsage
	}
	if opts.help {
		usage(opts)
		return exitOK
	}
	if opts.version {
		fmt.Fprintf(stdout, "chess-rules version %s\n", programVersion)
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "chess-rules: %v\n", err)
		return exitUsage
	}
	cfg.SetOutput(stdout)
	cfg.LogFile = stderr

	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "chess-rules: %v\n", err)
		return exitIO
	}
	defer closeLog()

	return play(cfg, stderr)
}

// loadConfig reads the config file, if any, and applies the flags over it.
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.NewConfig()
	if opts.configFile != "" {
		var err error
		if cfg, err = config.Load(opts.configFile); err != nil {
			return nil, err
		}
	}
	applyFlags(opts, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile points the log at cfg.LogFilename when one is configured.
func setupLogFile(cfg *config.Config) (func(), error) {
	if cfg.LogFilename == "" {
		return func() {}, nil
	}
	file, err := os.Create(cfg.LogFilename)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", cfg.LogFilename, err)
	}
	cfg.LogFile = file
	return func() { file.Close() }, nil
}

// play replays the configured line, writes the report and any export.
// stderr receives the reason for a non-zero exit.
func play(cfg *config.Config, stderr io.Writer) int {
	logger := cfg.Logger()

	var gameOpts []game.Option
	if cfg.Verbosity >= config.PerMove {
		gameOpts = append(gameOpts, game.WithLogger(logger))
	}

	g, lineErr := processing.ReplayLine(cfg.StartFEN, cfg.Moves, gameOpts...)
	if g == nil {
		fmt.Fprintf(stderr, "chess-rules: %v\n", lineErr)
		return exitIllegal
	}

	report := output.NewReport(g).WithError(lineErr)

	if cfg.Analysis.Square != "" {
		sq, err := chess.ParseSquare(cfg.Analysis.Square)
		if err != nil {
			fmt.Fprintf(stderr, "chess-rules: -square: %v\n", err)
			return exitUsage
		}
		report.WithSquare(sq)
	}
	if cfg.Analysis.PerftDepth > 0 {
		d := engine.Divide(g.Current(), cfg.Analysis.PerftDepth, cfg.Workers)
		report.WithPerft(d, cfg.Analysis.Divide)
		logger.Printf("perft(%d): %d nodes on %d workers", d.Depth, d.Nodes, cfg.Workers)
	}

	writer := output.NewWriter(cfg.OutputFile, cfg.Output)
	if err := writer.WriteReport(report); err != nil {
		fmt.Fprintf(stderr, "chess-rules: writing report: %v\n", err)
		return exitIO
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(stderr, "chess-rules: writing report: %v\n", err)
		return exitIO
	}

	if cfg.Export.Enabled() {
		n, err := output.ExportGame(g, cfg.Export)
		if err != nil {
			fmt.Fprintf(stderr, "chess-rules: export: %v\n", err)
			return exitIO
		}
		logger.Printf("exported %d plies to %s", n, cfg.Export.Path)
	}

	logger.Printf("game %s: %d plies, %s", g.ID(), g.Len(), g.Status())

	if lineErr != nil {
		var illegal *errors.IllegalMoveError
		if errors.As(lineErr, &illegal) {
			fmt.Fprintf(stderr, "chess-rules: %v\n", lineErr)
		} else {
			fmt.Fprintf(stderr, "chess-rules: ply %d (%s): %v\n", g.Len()+1, cfg.Moves[g.Len()], lineErr)
		}
		return exitIllegal
	}
	return exitOK
}
