package board

import (
	"strconv"
	"strings"
)

// Castling is a bitmask of the four castling rights, each clearing the
// has-moved bit on a king/rook pair when granted by the position loader.
type Castling uint8

const (
	WhiteKingside Castling = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// Squares of the kings and rooks that castling rights apply to, in the 0x88
// layout: rank 7 is White's back rank, rank 0 is Black's.
const (
	whiteKingSquare    = Square(0x74) // e1
	whiteKingsideRook  = Square(0x77) // h1
	whiteQueensideRook = Square(0x70) // a1
	blackKingSquare    = Square(0x04) // e8
	blackKingsideRook  = Square(0x07) // h8
	blackQueensideRook = Square(0x00) // a8
)

// ScoreMax and DepthMax are the sentinel bounds of the search: a returned
// score of ScoreMax means "a king was captured along this line" (i.e. the
// opponent is mated), and no iterative-deepening pass goes past DepthMax.
const (
	ScoreMax = 8000
	DepthMax = 99
)

// Placement is a single piece to install on a freshly loaded Position. Piece
// carries both type and color; the has-moved bit is set by NewPosition for
// every placement and then selectively cleared per the Castling mask, per the
// position string format (section 6).
type Placement struct {
	Square Square
	Piece  Piece
}

// Position is the engine's entire mutable state: the 128-square board, side
// to move, and the running aggregates threaded through search (score,
// en-passant target, non-pawn material). It also carries the small amount of
// state needed by the host callback hook and by iterative deepening's
// move-ordering hint; both are internal to search and not part of the data
// model invariants.
type Position struct {
	board [128]Piece
	side  Piece // White or Black

	score           int
	enPassant       Square
	nonPawnMaterial int

	// hintFrom/hintTo is the previous iterative-deepening pass's best move,
	// tried first in the move scan at every node of the next pass - a cheap,
	// globally shared move-ordering heuristic, not a per-node "best so far".
	hintFrom, hintTo Square

	nodeCount  uint64
	stopSearch bool
	callback   func(*Position)

	// transient state for an in-progress EnumerateMoves call only.
	enumBuf   []Move
	enumCount int
}

// NewPosition builds a Position from an explicit placement list, side to
// move, castling rights and en-passant target. Every placed piece starts
// with the has-moved bit set; granting a castling right clears it on the
// corresponding king and rook starting squares, mirroring the position
// string loader (section 4.5 / 6).
func NewPosition(placements []Placement, side Piece, castling Castling, ep Square) *Position {
	p := &Position{side: side, enPassant: ep}

	for _, pl := range placements {
		pc := pl.Piece.Moved()
		p.board[pl.Square] = pc
		if t := pc.Type(); t != King && t != NoPieceType && t != PawnUpstream && t != PawnDownstream {
			p.nonPawnMaterial += captureValue(t)
		}
	}

	if castling&WhiteKingside != 0 {
		p.clearMoved(whiteKingSquare)
		p.clearMoved(whiteKingsideRook)
	}
	if castling&WhiteQueenside != 0 {
		p.clearMoved(whiteKingSquare)
		p.clearMoved(whiteQueensideRook)
	}
	if castling&BlackKingside != 0 {
		p.clearMoved(blackKingSquare)
		p.clearMoved(blackKingsideRook)
	}
	if castling&BlackQueenside != 0 {
		p.clearMoved(blackKingSquare)
		p.clearMoved(blackQueensideRook)
	}

	p.hintFrom, p.hintTo = InvalidSquare, InvalidSquare
	return p
}

func (p *Position) clearMoved(sq Square) {
	p.board[sq] &^= HasMoved
}

// NewGame returns the standard chess starting position, all castling rights
// granted, White to move.
func NewGame() *Position {
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var placements []Placement
	for file := 0; file < 8; file++ {
		placements = append(placements,
			Placement{NewSquare(file, 0), NewPiece(back[file], Black)},
			Placement{NewSquare(file, 1), NewPiece(PawnDownstream, Black)},
			Placement{NewSquare(file, 6), NewPiece(PawnUpstream, White)},
			Placement{NewSquare(file, 7), NewPiece(back[file], White)},
		)
	}
	return NewPosition(placements, White, WhiteKingside|WhiteQueenside|BlackKingside|BlackQueenside, InvalidSquare)
}

// Side returns the color to move.
func (p *Position) Side() Piece {
	return p.side
}

// EnPassant returns the current en-passant target square, or InvalidSquare.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// NonPawnMaterial returns the running non-pawn material aggregate.
func (p *Position) NonPawnMaterial() int {
	return p.nonPawnMaterial
}

// Score returns the running material+positional score, from the
// side-to-move's perspective.
func (p *Position) Score() int {
	return p.score
}

// PieceAt returns the piece on sq and whether the square is occupied. An
// off-board square always reads as empty.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.IsValid() {
		return Empty, false
	}
	pc := p.board[sq]
	return pc, !pc.IsEmpty()
}

// CastlingRights reconstructs the four castling rights from the has-moved
// bit on each king/rook starting square, for the position exporter (section
// 4.5: "castling availability reconstructed from has-moved bits on original
// king/rook squares").
func (p *Position) CastlingRights() Castling {
	var c Castling
	if p.canCastle(whiteKingSquare, whiteKingsideRook, White) {
		c |= WhiteKingside
	}
	if p.canCastle(whiteKingSquare, whiteQueensideRook, White) {
		c |= WhiteQueenside
	}
	if p.canCastle(blackKingSquare, blackKingsideRook, Black) {
		c |= BlackKingside
	}
	if p.canCastle(blackKingSquare, blackQueensideRook, Black) {
		c |= BlackQueenside
	}
	return c
}

func (p *Position) canCastle(kingSq, rookSq Square, side Piece) bool {
	king := p.board[kingSq]
	rook := p.board[rookSq]
	return king.Type() == King && king.Color() == side && !king.HasMoved() &&
		rook.Type() == Rook && rook.Color() == side && !rook.HasMoved()
}

// SetCallback installs a periodic host callback, invoked at the entry to
// every search frame. ClearCallback removes it.
func (p *Position) SetCallback(fn func(*Position)) {
	p.callback = fn
}

func (p *Position) ClearCallback() {
	p.callback = nil
}

// StopSearch requests that the in-progress search unwind at the next
// opportunity, retaining the best move found so far as the move-ordering
// hint. Intended to be called from inside the callback.
func (p *Position) StopSearch() {
	p.stopSearch = true
}

// NodeCount returns the number of search frames visited since the last
// driver call began.
func (p *Position) NodeCount() uint64 {
	return p.nodeCount
}

func (p *Position) String() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		for file := 0; file < 8; file++ {
			pc := p.board[NewSquare(file, rank)]
			sb.WriteString(pc.String())
		}
	}
	return sb.String()
}

// PlacementFEN returns the board's placement in standard FEN run-length
// form ("rnbqkbnr/pppppppp/8/8/..."), the format external board readers
// such as LiveChess report. Unlike String, empty squares are collapsed into
// digit runs rather than spelled out one dot per square.
func (p *Position) PlacementFEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < 8; file++ {
			pc, ok := p.PieceAt(NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}
