package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

func playedGame(t *testing.T, fen, moves string) *game.Game {
	t.Helper()
	g, err := processing.ReplayLine(fen, strings.Fields(moves))
	if err != nil {
		t.Fatalf("ReplayLine: %v", err)
	}
	return g
}

// TestTextWriter_WriteReport verifies the text report sections
func TestTextWriter_WriteReport(t *testing.T) {
	g := playedGame(t, "", "f2f3 e7e5 g2g4 d8h4")

	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowLegalMoves = true
	writer := NewWriter(&buf, cfg)
	if err := writer.WriteReport(NewReport(g)); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Game " + g.ID().String(),
		"Start: " + engine.InitialFEN,
		"Moves: 1. f2f3 e7e5 2. g2g4 d8h4",
		"8  r n b . k b n r",
		"   a b c d e f g h",
		"FEN: rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"To move: white",
		"Status: checkmate",
		"Result: 0-1",
		"Material: KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp (+0)",
		"Legal moves (0): \n",
		"Draw rules: fifty-move=no",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestOutputReport_Sections(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   string
		modify  func(*config.OutputConfig, *Report)
		want    []string
		notWant []string
	}{
		{
			name:  "black starts",
			fen:   "4k3/8/8/8/8/8/8/4K3 b - - 0 12",
			moves: "e8d8 e1d1",
			modify: func(c *config.OutputConfig, _ *Report) {
				c.ShowBoard = false
			},
			want:    []string{"Moves: 12... e8d8 13. e1d1"},
			notWant: []string{"a b c d e f g h"},
		},
		{
			name:  "history",
			moves: "e2e4",
			modify: func(c *config.OutputConfig, _ *Report) {
				c.ShowHistory = true
			},
			want: []string{"  ply 1: e2e4 -> rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		},
		{
			name: "square query",
			modify: func(_ *config.OutputConfig, r *Report) {
				r.WithSquare(chess.SquareOf("g1"))
			},
			want: []string{"Moves from g1 (2): g1f3 g1h3"},
		},
		{
			name: "perft divided",
			modify: func(_ *config.OutputConfig, r *Report) {
				r.WithPerft(engine.Divide(r.Final, 1, 2), true)
			},
			want: []string{"  e2e4: 1\n", "Perft(1): 20 nodes, 20 unique"},
		},
		{
			name: "perft total only",
			modify: func(_ *config.OutputConfig, r *Report) {
				r.WithPerft(engine.Divide(r.Final, 2, 2), false)
			},
			want:    []string{"Perft(2): 400 nodes"},
			notWant: []string{"e2e4:"},
		},
		{
			name: "stopped",
			modify: func(c *config.OutputConfig, r *Report) {
				c.ShowDrawRules = false
				r.WithError(errStopped)
			},
			want:    []string{"Stopped: boom"},
			notWant: []string{"Draw rules"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewOutputConfig()
			r := NewReport(playedGame(t, tt.fen, tt.moves))
			tt.modify(cfg, r)

			var buf bytes.Buffer
			OutputReport(&buf, r, cfg)
			output := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(output, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, output)
				}
			}
		})
	}
}

type testError string

func (e testError) Error() string { return string(e) }

const errStopped = testError("boom")

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"e2e4", "e7e5", "g1f3", "b8c6"} {
		ow.Write(s)
	}
	ow.NewLine()

	want := "e2e4 e7e5\ng1f3 b8c6\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

// TestJSONWriter_WriteReport verifies the JSON writer batches reports
func TestJSONWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.Format = config.JSON

	writer := NewWriter(&buf, cfg)
	if err := writer.WriteReport(NewReport(playedGame(t, "", "e2e4 e7e5"))); err != nil {
		t.Fatal(err)
	}
	if err := writer.WriteReport(NewReport(playedGame(t, "8/P6k/8/8/8/8/8/K7 w - - 0 1", "a7a8=N"))); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Error("JSON writer should buffer until Close")
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(out.Reports))
	}

	first := out.Reports[0]
	if first.PlyCount != 2 || first.Status != "normal" || first.Result != "*" {
		t.Errorf("first report = %+v", first)
	}
	if first.Moves[1].Color != "black" || first.Moves[1].MoveNumber != 1 || first.Moves[1].From != "e7" {
		t.Errorf("second move = %+v", first.Moves[1])
	}
	if first.LegalMoves != nil {
		t.Error("legal moves should be omitted by default")
	}
	if first.DrawRules == nil || first.DrawRules.MaterialOdds {
		t.Errorf("draw rules = %+v", first.DrawRules)
	}

	promo := out.Reports[1].Moves[0]
	if promo.Kind != "promotion" || promo.Promotion != "knight" || promo.To != "a8" {
		t.Errorf("promotion move = %+v", promo)
	}
}

func TestJSONWriterSingle(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowLegalMoves = true

	writer := NewJSONWriterSingle(&buf, cfg)
	r := NewReport(playedGame(t, "", "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 O-O"))
	r.WithPerft(engine.Divide(r.Final, 1, 1), true)
	if err := writer.WriteReport(r); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("single mode should write immediately")
	}

	var jr JSONReport
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	castle := jr.Moves[6]
	if castle.Kind != "castling" || castle.UCI != "O-O" || castle.From != "e1" || castle.To != "g1" {
		t.Errorf("castling move = %+v", castle)
	}
	if jr.ToMove != "black" || len(jr.LegalMoves) == 0 {
		t.Errorf("report = %+v", jr)
	}
	if jr.Perft == nil || int(jr.Perft.Nodes) != len(jr.LegalMoves) || len(jr.Perft.Divide) != len(jr.LegalMoves) {
		t.Errorf("perft = %+v", jr.Perft)
	}
}
