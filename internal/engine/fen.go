// Package engine provides chess move generation, validation and position updates.
package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names, used in parse errors.
const (
	fieldPlacement = "piece placement"
	fieldTurn      = "side to move"
	fieldCastling  = "castling rights"
	fieldEnPassant = "en passant target"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

var fenFields = []string{fieldPlacement, fieldTurn, fieldCastling, fieldEnPassant, fieldHalfmove, fieldFullmove}

// ParseFEN creates a position from a FEN string. Either the whole string
// parses or an error wrapping ErrInvalidFEN is returned.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != len(fenFields) {
		field := "field count"
		if len(parts) < len(fenFields) {
			field = fenFields[len(parts)]
		}
		return chess.Position{}, fenError(fen, field, "6 space-separated fields", strconv.Itoa(len(parts))+" fields", nil)
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(&pos, fen, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, fen, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, fen, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, fen, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, fen, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustParseFEN is ParseFEN for strings known to be valid.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func fenError(fen, field, expected, got string, cause error) error {
	err := &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    fen,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
	if cause != nil {
		// Keep both the FEN sentinel and the specific cause visible to errors.Is.
		err.Err = multiCause{errors.ErrInvalidFEN, cause}
	}
	return err
}

// multiCause reports the first error's text and matches both errors.
type multiCause [2]error

func (m multiCause) Error() string   { return m[0].Error() + ": " + m[1].Error() }
func (m multiCause) Unwrap() []error { return m[:] }

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fenError(fen, fieldPlacement, "8 ranks", placement, nil)
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return fenError(fen, fieldPlacement, "8 squares per rank", row, nil)
				}
				continue
			}
			piece, err := chess.ParsePieceLetter(c)
			if err != nil {
				return fenError(fen, fieldPlacement, "piece letter or digit", string(c), err)
			}
			if file >= chess.BoardSize {
				return fenError(fen, fieldPlacement, "8 squares per rank", row, nil)
			}
			pos.Cells[rank][file] = piece
			file++
		}
		if file != chess.BoardSize {
			return fenError(fen, fieldPlacement, "8 squares per rank", row, nil)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return fenError(fen, fieldTurn, "w or b", field, nil)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	pos.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	for _, c := range field {
		var right chess.CastlingRights
		switch c {
		case 'K':
			right = chess.WhiteShort
		case 'Q':
			right = chess.WhiteLong
		case 'k':
			right = chess.BlackShort
		case 'q':
			right = chess.BlackLong
		default:
			return fenError(fen, fieldCastling, "subset of KQkq or -", field, nil)
		}
		pos.Castling |= right
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	pos.ClearEnPassant()
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fen, fieldEnPassant, "square or -", field, err)
	}
	pos.SetEnPassant(sq)
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen, halfmove, fullmove string) error {
	hm, err := strconv.Atoi(halfmove)
	if err != nil || hm < 0 {
		return fenError(fen, fieldHalfmove, "non-negative integer", halfmove, nil)
	}
	fm, err := strconv.Atoi(fullmove)
	if err != nil || fm < 1 {
		return fenError(fen, fieldFullmove, "positive integer", fullmove, nil)
	}
	pos.HalfmoveClock = hm
	pos.FullmoveNumber = fm
	return nil
}

// FEN converts a position to a FEN string.
func FEN(pos chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, &pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, &pos)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullmoveNumber))

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Cells[rank][file]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	if sq, ok := pos.EnPassantTarget(); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	return chess.DefaultPosition()
}
