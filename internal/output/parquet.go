package output

import (
	"fmt"
	"strings"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// PlyRecord is one row of the history export: a move and the position it
// produced.
type PlyRecord struct {
	GameID     string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply        int32  `parquet:"name=ply, type=INT32"`
	MoveNumber int32  `parquet:"name=move_number, type=INT32"`
	Color      string `parquet:"name=color, type=BYTE_ARRAY, convertedtype=UTF8"`
	Move       string `parquet:"name=move, type=BYTE_ARRAY, convertedtype=UTF8"`
	FENBefore  string `parquet:"name=fen_before, type=BYTE_ARRAY, convertedtype=UTF8"`
	FENAfter   string `parquet:"name=fen_after, type=BYTE_ARRAY, convertedtype=UTF8"`
	Capture    bool   `parquet:"name=capture, type=BOOLEAN"`
	Check      bool   `parquet:"name=check, type=BOOLEAN"`
	Halfmove   int32  `parquet:"name=halfmove_clock, type=INT32"`
}

var compressionCodecs = map[string]parquet.CompressionCodec{
	"uncompressed": parquet.CompressionCodec_UNCOMPRESSED,
	"snappy":       parquet.CompressionCodec_SNAPPY,
	"gzip":         parquet.CompressionCodec_GZIP,
	"zstd":         parquet.CompressionCodec_ZSTD,
	"lz4":          parquet.CompressionCodec_LZ4,
}

// HistoryRecords returns one record per ply of g.
func HistoryRecords(g *game.Game) []PlyRecord {
	boards := g.Boards()
	moves := g.Moves()
	numbers, movers := moveNumbering(boards[0], len(moves))
	id := g.ID().String()

	records := make([]PlyRecord, 0, len(moves))
	for i, m := range moves {
		before, after := boards[i], boards[i+1]
		records = append(records, PlyRecord{
			GameID:     id,
			Ply:        int32(i + 1),
			MoveNumber: int32(numbers[i]),
			Color:      colorName(movers[i]),
			Move:       m.String(),
			FENBefore:  engine.FEN(before),
			FENAfter:   engine.FEN(after),
			Capture:    isCapture(before, after),
			Check:      engine.InCheck(after),
			Halfmove:   int32(after.HalfmoveClock),
		})
	}
	return records
}

// isCapture reports whether the mover's opponent lost a piece.
func isCapture(before, after chess.Position) bool {
	victim := before.Turn.Opposite()
	count := func(pos chess.Position) int {
		n := 0
		pos.Pieces(func(_ chess.Square, p chess.Piece) {
			if p.Colour == victim {
				n++
			}
		})
		return n
	}
	return count(after) < count(before)
}

// WriteParquet writes records to a parquet file at path.
func WriteParquet(path string, records <-chan PlyRecord, cfg *config.ExportConfig) error {
	codec, ok := compressionCodecs[strings.ToLower(cfg.Compression)]
	if !ok {
		return fmt.Errorf("compression %q: %w", cfg.Compression, errors.ErrInvalidConfig)
	}

	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(PlyRecord), cfg.Parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = codec
	parquetWriter.RowGroupSize = cfg.RowGroupSize

	for record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}

// ExportGame writes the history of g to cfg.Path.
func ExportGame(g *game.Game, cfg *config.ExportConfig) (int, error) {
	records := HistoryRecords(g)
	ch := make(chan PlyRecord, len(records))
	for _, r := range records {
		ch <- r
	}
	close(ch)

	if err := WriteParquet(cfg.Path, ch, cfg); err != nil {
		return 0, err
	}
	return len(records), nil
}
