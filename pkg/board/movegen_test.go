package board_test

import (
	"testing"

	"github.com/herohde/mcumax/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastlingKingside(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 7), Piece: board.NewPiece(board.King, board.White)},
		{Square: board.NewSquare(7, 7), Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.NewSquare(4, 0), Piece: board.NewPiece(board.King, board.Black)},
	}
	p := board.NewPosition(placements, board.White, board.WhiteKingside, board.InvalidSquare)

	m := board.Move{From: board.NewSquare(4, 7), To: board.NewSquare(6, 7)}
	require.True(t, p.PlayMove(m))

	rook, ok := p.PieceAt(board.NewSquare(5, 7))
	require.True(t, ok)
	assert.Equal(t, board.Rook, rook.Type())
	assert.True(t, rook.HasMoved())

	_, ok = p.PieceAt(board.NewSquare(7, 7))
	assert.False(t, ok)
}

func TestCastlingBlockedByMovedRook(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 7), Piece: board.NewPiece(board.King, board.White)},
		{Square: board.NewSquare(7, 7), Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.NewSquare(4, 0), Piece: board.NewPiece(board.King, board.Black)},
	}
	// only the queenside right is granted: the king reads as unmoved, but the
	// h1 rook keeps its has-moved bit.
	p := board.NewPosition(placements, board.White, board.WhiteQueenside, board.InvalidSquare)

	m := board.Move{From: board.NewSquare(4, 7), To: board.NewSquare(6, 7)}
	assert.False(t, p.PlayMove(m))
}

func TestEnPassantCapture(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 7), Piece: board.NewPiece(board.King, board.White)},
		{Square: board.NewSquare(4, 0), Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.NewSquare(4, 3), Piece: board.NewPiece(board.PawnUpstream, board.White)},
		{Square: board.NewSquare(3, 1), Piece: board.NewPiece(board.PawnDownstream, board.Black)},
	}
	p := board.NewPosition(placements, board.Black, 0, board.InvalidSquare)

	// black plays d7-d5, a double push landing beside the white pawn.
	d7d5 := board.Move{From: board.NewSquare(3, 1), To: board.NewSquare(3, 3)}
	require.True(t, p.PlayMove(d7d5))
	assert.Equal(t, board.NewSquare(3, 2), p.EnPassant())

	// white captures en passant.
	exd6 := board.Move{From: board.NewSquare(4, 3), To: board.NewSquare(3, 2)}
	require.True(t, p.PlayMove(exd6))

	_, ok := p.PieceAt(board.NewSquare(3, 3))
	assert.False(t, ok, "the captured pawn's square must be cleared")

	pc, ok := p.PieceAt(board.NewSquare(3, 2))
	require.True(t, ok)
	assert.Equal(t, board.PawnUpstream, pc.Type())
}

func TestPromotionToQueen(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 7), Piece: board.NewPiece(board.King, board.White)},
		{Square: board.NewSquare(4, 0), Piece: board.NewPiece(board.King, board.Black)},
		{Square: board.NewSquare(0, 1), Piece: board.NewPiece(board.PawnUpstream, board.White)},
	}
	p := board.NewPosition(placements, board.White, 0, board.InvalidSquare)

	m := board.Move{From: board.NewSquare(0, 1), To: board.NewSquare(0, 0)}
	require.True(t, p.PlayMove(m))

	pc, ok := p.PieceAt(board.NewSquare(0, 0))
	require.True(t, ok)
	assert.Equal(t, board.Queen, pc.Type())
	assert.Equal(t, board.White, pc.Color())
}

func TestMakeUnmakeSymmetry(t *testing.T) {
	p := board.NewGame()
	before := p.String()

	buf := make([]board.Move, 64)
	n := p.EnumerateMoves(buf)
	require.Greater(t, n, 0)

	after := p.String()
	assert.Equal(t, before, after, "enumeration must not leave the board mutated")
}
