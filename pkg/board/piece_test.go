package board_test

import (
	"testing"

	"github.com/herohde/mcumax/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPieceTypeAndColor(t *testing.T) {
	p := board.NewPiece(board.Knight, board.White)
	assert.Equal(t, board.Knight, p.Type())
	assert.Equal(t, board.White, p.Color())
	assert.False(t, p.HasMoved())
	assert.False(t, p.IsEmpty())
}

func TestPieceEmpty(t *testing.T) {
	assert.True(t, board.Empty.IsEmpty())
	assert.Equal(t, board.NoPieceType, board.Empty.Type())
}

func TestPieceMoved(t *testing.T) {
	p := board.NewPiece(board.Rook, board.Black)
	assert.False(t, p.HasMoved())

	moved := p.Moved()
	assert.True(t, moved.HasMoved())
	assert.Equal(t, board.Rook, moved.Type())
	assert.Equal(t, board.Black, moved.Color())
}

func TestPiecePromote(t *testing.T) {
	p := board.NewPiece(board.PawnUpstream, board.White).Moved()
	q := p.Promote(board.Queen)
	assert.Equal(t, board.Queen, q.Type())
	assert.Equal(t, board.White, q.Color())
	assert.True(t, q.HasMoved())
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, ".", board.Empty.String())
	assert.Equal(t, "P", board.NewPiece(board.PawnUpstream, board.White).String())
	assert.Equal(t, "p", board.NewPiece(board.PawnDownstream, board.Black).String())
	assert.Equal(t, "K", board.NewPiece(board.King, board.White).String())
	assert.Equal(t, "q", board.NewPiece(board.Queen, board.Black).String())
}
