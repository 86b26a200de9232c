package board_test

import (
	"testing"

	"github.com/herohde/mcumax/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	sq := board.NewSquare(2, 3)
	assert.True(t, sq.IsValid())
	assert.Equal(t, 2, sq.File())
	assert.Equal(t, 3, sq.Rank())
}

func TestSquareIsValid(t *testing.T) {
	assert.True(t, board.NewSquare(0, 0).IsValid())
	assert.True(t, board.NewSquare(7, 7).IsValid())
	assert.False(t, board.InvalidSquare.IsValid())
}

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   board.Square
		want string
	}{
		{board.NewSquare(0, 7), "a1"},
		{board.NewSquare(4, 4), "e4"},
		{board.NewSquare(7, 0), "h8"},
		{board.InvalidSquare, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.sq.String())
	}
}

func TestParseSquareStr(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	require.NoError(t, err)
	assert.Equal(t, board.NewSquare(4, 4), sq)

	_, err = board.ParseSquareStr("i9")
	assert.Error(t, err)

	_, err = board.ParseSquareStr("e")
	assert.Error(t, err)
}

func TestSquareRoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := board.NewSquare(file, rank)
			parsed, err := board.ParseSquareStr(sq.String())
			require.NoError(t, err)
			assert.Equal(t, sq, parsed)
		}
	}
}
