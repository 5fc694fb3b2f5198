// Package output writes game reports as text, JSON or parquet.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputReport writes r as text, showing the sections cfg enables.
func OutputReport(w io.Writer, r *Report, cfg *config.OutputConfig) {
	fmt.Fprintf(w, "Game %s\n", r.GameID)
	fmt.Fprintf(w, "Start: %s\n", engine.FEN(r.Start))

	if len(r.Moves) > 0 {
		outputMoves(w, r)
	}
	if cfg.ShowHistory {
		outputHistory(w, r)
	}
	if cfg.ShowBoard {
		outputBoard(w, r.Final)
	}

	fmt.Fprintf(w, "FEN: %s\n", engine.FEN(r.Final))
	fmt.Fprintf(w, "To move: %s\n", strings.ToLower(r.Final.Turn.String()))
	fmt.Fprintf(w, "Status: %s\n", r.Status)
	fmt.Fprintf(w, "Result: %s\n", r.Result)
	if r.Analysis != nil {
		fmt.Fprintf(w, "Material: %s (%+d)\n", r.Analysis.Material, r.Analysis.MaterialBalance)
	}

	if cfg.ShowLegalMoves {
		fmt.Fprintf(w, "Legal moves (%d): %s\n", len(r.LegalMoves), joinMoves(r.LegalMoves))
	}
	if r.Square != nil {
		fmt.Fprintf(w, "Moves from %s (%d): %s\n", r.Square, len(r.SquareMoves), joinMoves(r.SquareMoves))
	}
	if cfg.ShowDrawRules && r.Analysis != nil {
		outputDrawRules(w, r)
	}
	if r.Perft != nil {
		outputPerft(w, r.Perft, r.Divide)
	}
	if r.Error != "" {
		fmt.Fprintf(w, "Stopped: %s\n", r.Error)
	}
	fmt.Fprintln(w)
}

// outputMoves writes the move list with move numbers, wrapped at 80 columns.
func outputMoves(w io.Writer, r *Report) {
	fmt.Fprint(w, "Moves:")
	ow := NewOutputWriter(w, 80)
	ow.lineLength = len("Moves:")
	ow.needsSpace = true

	numbers, movers := moveNumbering(r.Start, len(r.Moves))
	for i, m := range r.Moves {
		switch {
		case movers[i] == chess.White:
			ow.Write(fmt.Sprintf("%d.", numbers[i]))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", numbers[i]))
		}
		ow.Write(m.String())
	}
	ow.NewLine()
}

func outputHistory(w io.Writer, r *Report) {
	for i, m := range r.Moves {
		fmt.Fprintf(w, "  ply %d: %s -> %s\n", i+1, m, engine.FEN(r.Boards[i]))
	}
}

// outputBoard draws the grid with rank and file labels, rank 8 on top.
func outputBoard(w io.Writer, pos chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(w, " %s", pos.Cells[rank][file])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a b c d e f g h")
}

func outputDrawRules(w io.Writer, r *Report) {
	a := r.Analysis
	fmt.Fprintf(w, "Draw rules: fifty-move=%s seventy-five-move=%s threefold=%s fivefold=%s insufficient-material=%s\n",
		yesNo(a.HasFiftyMoveRule), yesNo(a.Has75MoveRule),
		yesNo(a.Has3FoldRepetition), yesNo(a.Has5FoldRepetition),
		yesNo(a.HasInsufficientMaterial))
}

func outputPerft(w io.Writer, d *engine.DivideResult, divide bool) {
	if divide {
		for _, mc := range d.Moves {
			fmt.Fprintf(w, "  %s: %d\n", mc.Move, mc.Nodes)
		}
	}
	fmt.Fprintf(w, "Perft(%d): %d nodes, %d unique\n", d.Depth, d.Nodes, d.UniquePositions)
}

func joinMoves(moves []chess.Move) string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return strings.Join(texts, " ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
