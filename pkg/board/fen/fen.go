// Package fen reads and writes the engine's position string format
// (section 4.5/6): a field-separated description closely related to FEN,
// but permissive on parse failures and silent on halfmove/fullmove
// counters, which this engine does not track.
package fen

import (
	"fmt"
	"strings"

	"github.com/herohde/mcumax/pkg/board"
)

// Initial is the standard starting position string.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a position string into a Position. Unknown characters in the
// castling and en-passant fields are skipped permissively; missing trailing
// fields (side, castling, en-passant, halfmove, fullmove) default as if the
// string had been truncated there. A placement field that does not resolve
// to exactly 8 ranks of 8 squares each is reported as an error, since a
// truncated board is not a position a caller can reasonably play from.
func Decode(s string) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("fen: empty position string")
	}

	placements, err := decodePlacement(fields[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	side := board.White
	if len(fields) > 1 && fields[1] == "b" {
		side = board.Black
	}

	castling := board.Castling(0)
	if len(fields) > 2 {
		castling = decodeCastling(fields[2])
	} else {
		castling = board.WhiteKingside | board.WhiteQueenside | board.BlackKingside | board.BlackQueenside
	}

	ep := board.InvalidSquare
	if len(fields) > 3 && fields[3] != "-" {
		if sq, err := board.ParseSquareStr(fields[3]); err == nil {
			ep = sq
		}
	}

	return board.NewPosition(placements, side, castling, ep), nil
}

func decodePlacement(s string) ([]board.Placement, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid placement: expected 8 ranks, got %d", len(ranks))
	}

	var placements []board.Placement
	for rank, row := range ranks {
		file := 0
		for _, r := range row {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			t, color, ok := decodePiece(r)
			if !ok {
				continue // unknown character: skipped permissively
			}
			if file > 7 {
				return nil, fmt.Errorf("invalid placement: rank %d overflows 8 files", rank)
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(file, rank),
				Piece:  board.NewPiece(t, color),
			})
			file++
		}
		if file != 8 {
			return nil, fmt.Errorf("invalid placement: rank %d has %d squares, want 8", rank, file)
		}
	}
	return placements, nil
}

func decodePiece(r rune) (board.PieceType, board.Piece, bool) {
	color := board.White
	lower := r
	if r >= 'a' && r <= 'z' {
		color = board.Black
	} else if r >= 'A' && r <= 'Z' {
		lower = r + ('a' - 'A')
	} else {
		return 0, 0, false
	}

	switch lower {
	case 'p':
		if color == board.White {
			return board.PawnUpstream, color, true
		}
		return board.PawnDownstream, color, true
	case 'n':
		return board.Knight, color, true
	case 'b':
		return board.Bishop, color, true
	case 'r':
		return board.Rook, color, true
	case 'q':
		return board.Queen, color, true
	case 'k':
		return board.King, color, true
	default:
		return 0, 0, false
	}
}

func decodeCastling(s string) board.Castling {
	var c board.Castling
	for _, r := range s {
		switch r {
		case 'K':
			c |= board.WhiteKingside
		case 'Q':
			c |= board.WhiteQueenside
		case 'k':
			c |= board.BlackKingside
		case 'q':
			c |= board.BlackQueenside
		}
	}
	return c
}

// Encode exports p as a position string. Castling availability is
// reconstructed from the has-moved bits on the king/rook starting squares;
// halfmove and fullmove are always emitted as "0 1", since this engine does
// not track them.
func Encode(p *board.Position) string {
	side := "w"
	if p.Side() == board.Black {
		side = "b"
	}

	castling := encodeCastling(p.CastlingRights())
	ep := "-"
	if p.EnPassant().IsValid() {
		ep = p.EnPassant().String()
	}

	return fmt.Sprintf("%s %s %s %s 0 1", p.PlacementFEN(), side, castling, ep)
}

func encodeCastling(c board.Castling) string {
	var sb strings.Builder
	if c&board.WhiteKingside != 0 {
		sb.WriteByte('K')
	}
	if c&board.WhiteQueenside != 0 {
		sb.WriteByte('Q')
	}
	if c&board.BlackKingside != 0 {
		sb.WriteByte('k')
	}
	if c&board.BlackQueenside != 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
