package board_test

import (
	"testing"

	"github.com/herohde/mcumax/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestNewGame(t *testing.T) {
	p := board.NewGame()
	assert.Equal(t, board.White, p.Side())
	assert.Equal(t, board.InvalidSquare, p.EnPassant())

	wantCastling := board.WhiteKingside | board.WhiteQueenside | board.BlackKingside | board.BlackQueenside
	assert.Equal(t, wantCastling, p.CastlingRights())

	pc, ok := p.PieceAt(board.NewSquare(4, 7))
	assert.True(t, ok)
	assert.Equal(t, board.King, pc.Type())
	assert.Equal(t, board.White, pc.Color())

	pc, ok = p.PieceAt(board.NewSquare(4, 4))
	assert.False(t, ok)
}

func TestNewGameMoveCount(t *testing.T) {
	p := board.NewGame()
	buf := make([]board.Move, 64)
	n := p.EnumerateMoves(buf)
	assert.Equal(t, 20, n) // 16 pawn moves + 4 knight moves in the opening position
}

func TestNewPositionClearsCastlingOnlyWhenGranted(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 7), Piece: board.NewPiece(board.King, board.White)},
		{Square: board.NewSquare(7, 7), Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.NewSquare(4, 0), Piece: board.NewPiece(board.King, board.Black)},
	}
	p := board.NewPosition(placements, board.White, board.WhiteKingside, board.InvalidSquare)

	assert.Equal(t, board.WhiteKingside, p.CastlingRights())
}

func TestNewPositionNonPawnMaterial(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(4, 7), Piece: board.NewPiece(board.King, board.White)},
		{Square: board.NewSquare(0, 7), Piece: board.NewPiece(board.Rook, board.White)},
		{Square: board.NewSquare(3, 7), Piece: board.NewPiece(board.Queen, board.White)},
		{Square: board.NewSquare(4, 0), Piece: board.NewPiece(board.King, board.Black)},
	}
	p := board.NewPosition(placements, board.White, 0, board.InvalidSquare)

	assert.Equal(t, 5+9, p.NonPawnMaterial())
}

func TestPieceAtOffBoard(t *testing.T) {
	p := board.NewGame()
	pc, ok := p.PieceAt(board.InvalidSquare)
	assert.False(t, ok)
	assert.True(t, pc.IsEmpty())
}

func TestStopSearchAndCallback(t *testing.T) {
	p := board.NewGame()

	var ticks int
	p.SetCallback(func(pos *board.Position) {
		ticks++
		pos.StopSearch()
	})

	m := p.FindBestMove(0, 4)
	assert.GreaterOrEqual(t, ticks, 1)
	// the search unwound immediately, so no move should have been found.
	assert.False(t, m.IsValid())

	p.ClearCallback()
}
