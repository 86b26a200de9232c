package board

// stepVectors holds, per PieceType, the list of signed 0x88 offsets that
// define its moves. Sliding piece types (bishop, rook, queen)
// repeat a direction until blocked; the king uses the same list as the queen
// but is stopped after one step (see Position's generator) except for the
// special two-step slide used to probe castling. Knights and sliding pieces
// try both the listed offset and its negation, covering all directions with
// half the table; pawns do not, since their two PieceTypes already encode
// direction.
var stepVectors = map[PieceType][]int{
	PawnUpstream:   {-16, -15, -17},
	PawnDownstream: {16, 15, 17},
	Knight:         {14, 18, 31, 33},
	King:           {1, 16, 15, 17},
	Bishop:         {15, 17},
	Rook:           {1, 16},
	Queen:          {1, 16, 15, 17},
}

// mirrorsDirection reports whether t's step generator should also try the
// negation of each listed offset. Pawns move one way only.
func mirrorsDirection(t PieceType) bool {
	switch t {
	case PawnUpstream, PawnDownstream:
		return false
	default:
		return true
	}
}

// captureValue is the nominal material value of capturing a piece of type t,
// scaled by capturedScale (37) during search move ordering. A captured king is
// handled separately as an immediate mate signal, not via this table.
func captureValue(t PieceType) int {
	switch t {
	case PawnUpstream, PawnDownstream:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

const capturedScale = 37
