package board

// InCheck reports whether side's king is currently attacked, by direct ray
// scan from the king's square: the four orthogonal rays for rook/queen, the
// four diagonal rays for bishop/queen, the eight knight offsets, the two
// pawn-capture diagonals, and the eight king-adjacent squares. It considers
// only attack geometry, not pins or discovered checks, per section 9's
// note that this probe answers "is my king attacked right now", not "would
// this move be legal".
func (p *Position) InCheck(side Piece) bool {
	kingSq := p.findKing(side)
	if !kingSq.IsValid() {
		return false
	}
	return p.isAttackedBy(kingSq, side^sideFlip)
}

// IsCheckmate reports whether side is in check with no legal move escaping
// it, per section 4.4: in-check AND no legal move exists.
func (p *Position) IsCheckmate(side Piece) bool {
	return p.InCheck(side) && !p.hasLegalMove(side)
}

// IsStalemate reports whether side is not in check and has no legal move,
// per section 4.4: not-in-check AND no legal move exists.
func (p *Position) IsStalemate(side Piece) bool {
	return !p.InCheck(side) && !p.hasLegalMove(side)
}

func (p *Position) findKing(side Piece) Square {
	for sq := Square(0); sq < 128; sq++ {
		if !sq.IsValid() {
			continue
		}
		if pc := p.board[sq]; pc.Type() == King && pc.Color() == side {
			return sq
		}
	}
	return InvalidSquare
}

// isAttackedBy reports whether sq is attacked by any piece of color bySide.
func (p *Position) isAttackedBy(sq Square, bySide Piece) bool {
	for _, vec := range [4]int{1, -1, 16, -16} {
		if p.rayAttacks(sq, vec, bySide, Rook, Queen) {
			return true
		}
	}
	for _, vec := range [4]int{15, -15, 17, -17} {
		if p.rayAttacks(sq, vec, bySide, Bishop, Queen) {
			return true
		}
	}
	for _, vec := range [4]int{14, -14, 18, -18} {
		if p.stepAttacks(sq, vec, bySide, Knight) {
			return true
		}
	}
	for _, vec := range [2]int{31, -31} {
		if p.stepAttacks(sq, vec, bySide, Knight) {
			return true
		}
	}
	for _, vec := range [2]int{33, -33} {
		if p.stepAttacks(sq, vec, bySide, Knight) {
			return true
		}
	}
	for _, vec := range [4]int{1, -1, 16, -16} {
		if p.stepAttacks(sq, vec, bySide, King) {
			return true
		}
	}
	for _, vec := range [4]int{15, -15, 17, -17} {
		if p.stepAttacks(sq, vec, bySide, King) {
			return true
		}
	}

	// pawn captures: a White pawn at X attacks X-15/X-17; a Black pawn at X
	// attacks X+15/X+17. sq is attacked by a White pawn sitting at sq+15 or
	// sq+17, and by a Black pawn sitting at sq-15 or sq-17.
	if bySide == White {
		return p.stepAttacks(sq, 15, White, PawnUpstream) || p.stepAttacks(sq, 17, White, PawnUpstream)
	}
	return p.stepAttacks(sq, -15, Black, PawnDownstream) || p.stepAttacks(sq, -17, Black, PawnDownstream)
}

func (p *Position) rayAttacks(sq Square, vec int, bySide Piece, types ...PieceType) bool {
	to := sq
	for {
		next := int(to) + vec
		if next < 0 || next > 255 {
			return false
		}
		to = Square(next)
		if !to.IsValid() {
			return false
		}
		pc := p.board[to]
		if pc.IsEmpty() {
			continue
		}
		if pc.Color() != bySide {
			return false
		}
		for _, t := range types {
			if pc.Type() == t {
				return true
			}
		}
		return false
	}
}

func (p *Position) stepAttacks(sq Square, vec int, bySide Piece, t PieceType) bool {
	next := int(sq) + vec
	if next < 0 || next > 255 {
		return false
	}
	to := Square(next)
	if !to.IsValid() {
		return false
	}
	pc := p.board[to]
	return pc.Color() == bySide && pc.Type() == t
}

// hasLegalMove reports whether side has any pseudo-legal move that does not
// leave its own king in check. This is the "dedicated legal-move generator
// that filters self-checks" section 9 calls the clean substitute for
// re-using the full search routine's play mode to probe legality.
func (p *Position) hasLegalMove(side Piece) bool {
	found := false
	p.genMoves(side, func(m Move) bool {
		u, _ := p.applyMove(m, false)
		legal := !p.InCheck(side)
		p.unapplyMove(m, u)
		if legal {
			found = true
			return true
		}
		return false
	})
	return found
}
