package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	GameID      string         `json:"gameId"`
	InitialFEN  string         `json:"initialFEN"`
	Moves       []JSONMove     `json:"moves,omitempty"`
	PlyCount    int            `json:"plyCount"`
	FinalFEN    string         `json:"finalFEN"`
	ToMove      string         `json:"toMove"`
	Status      string         `json:"status"`
	Result      string         `json:"result"`
	Material    string         `json:"material,omitempty"`
	Balance     int            `json:"materialBalance"`
	LegalMoves  []string       `json:"legalMoves,omitempty"`
	Square      string         `json:"square,omitempty"`
	SquareMoves []string       `json:"squareMoves,omitempty"`
	DrawRules   *JSONDrawRules `json:"drawRules,omitempty"`
	Perft       *JSONPerft     `json:"perft,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	Kind       string `json:"kind"` // "normal", "castling" or "promotion"
	From       string `json:"from"`
	To         string `json:"to"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONDrawRules holds the informational draw flags.
type JSONDrawRules struct {
	FiftyMove            bool `json:"fiftyMove"`
	SeventyFiveMove      bool `json:"seventyFiveMove"`
	Threefold            bool `json:"threefold"`
	Fivefold             bool `json:"fivefold"`
	InsufficientMaterial bool `json:"insufficientMaterial"`
	MaterialOdds         bool `json:"materialOdds"`
}

// JSONPerft holds a perft count and, when divided, its split.
type JSONPerft struct {
	Depth           int               `json:"depth"`
	Nodes           uint64            `json:"nodes"`
	UniquePositions int               `json:"uniquePositions"`
	Divide          map[string]uint64 `json:"divide,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// OutputReportJSON writes a single report in JSON format.
func OutputReportJSON(w io.Writer, r *Report, showLegalMoves bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r, showLegalMoves))
}

// ReportToJSON converts a report to JSON format.
func ReportToJSON(r *Report, showLegalMoves bool) *JSONReport {
	jr := &JSONReport{
		GameID:     r.GameID,
		InitialFEN: engine.FEN(r.Start),
		Moves:      convertMoveList(r),
		PlyCount:   len(r.Moves),
		FinalFEN:   engine.FEN(r.Final),
		ToMove:     colorName(r.Final.Turn),
		Status:     r.Status.String(),
		Result:     r.Result,
		Error:      r.Error,
	}

	if showLegalMoves {
		jr.LegalMoves = moveTexts(r.LegalMoves)
	}
	if r.Square != nil {
		jr.Square = r.Square.String()
		jr.SquareMoves = moveTexts(r.SquareMoves)
	}
	if a := r.Analysis; a != nil {
		jr.Material = a.Material
		jr.Balance = a.MaterialBalance
		jr.DrawRules = &JSONDrawRules{
			FiftyMove:            a.HasFiftyMoveRule,
			SeventyFiveMove:      a.Has75MoveRule,
			Threefold:            a.Has3FoldRepetition,
			Fivefold:             a.Has5FoldRepetition,
			InsufficientMaterial: a.HasInsufficientMaterial,
			MaterialOdds:         a.HasMaterialOdds,
		}
	}
	if d := r.Perft; d != nil {
		jr.Perft = &JSONPerft{Depth: d.Depth, Nodes: d.Nodes, UniquePositions: d.UniquePositions}
		if r.Divide {
			jr.Perft.Divide = make(map[string]uint64, len(d.Moves))
			for _, mc := range d.Moves {
				jr.Perft.Divide[mc.Move.String()] = mc.Nodes
			}
		}
	}
	return jr
}

// convertMoveList converts the report's moves to JSON format.
func convertMoveList(r *Report) []JSONMove {
	numbers, movers := moveNumbering(r.Start, len(r.Moves))
	result := make([]JSONMove, 0, len(r.Moves))
	for i, m := range r.Moves {
		jm := JSONMove{
			Ply:        i + 1,
			MoveNumber: numbers[i],
			Color:      colorName(movers[i]),
			UCI:        m.String(),
			From:       chess.MoveFrom(m, movers[i]).String(),
			To:         chess.MoveTo(m, movers[i]).String(),
			FEN:        engine.FEN(r.Boards[i]),
		}
		switch m := m.(type) {
		case chess.NormalMove:
			jm.Kind = "normal"
		case chess.CastlingMove:
			jm.Kind = "castling"
		case chess.PromotionMove:
			jm.Kind = "promotion"
			jm.Promotion = strings.ToLower(m.Kind.String())
		}
		result = append(result, jm)
	}
	return result
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func moveTexts(moves []chess.Move) []string {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return texts
}
