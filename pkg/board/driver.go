package board

// EnumerateMoves fills buf with up to cap(buf) pseudo-legal moves for the
// side to move and returns the total count, which may exceed cap(buf) - the
// caller detects truncation by comparing the two, per section 4.3/6.
func (p *Position) EnumerateMoves(buf []Move) int {
	p.enumBuf = buf[:0]
	p.enumCount = 0
	p.nodeCount = 0
	p.stopSearch = false

	p.search(-ScoreMax, ScoreMax, 0, 3, modeEnumerate, InvalidSquare, InvalidSquare)

	count := p.enumCount
	p.enumBuf = nil
	return count
}

// FindBestMove runs iterative deepening from depth 2 up to depthMax+3 (the
// same +3 offset section 4.3 gives enumerate's fixed depth, so with depthMax
// 0 find-best's deepest pass is enumerate's depth 3), stopping early once
// nodeMax nodes have been visited or the host calls StopSearch. It returns
// InvalidMove if no move was ever found - node_max == 0 and depth_max == 0
// still complete the minimum two-ply pass before the node check can fire.
func (p *Position) FindBestMove(nodeMax uint64, depthMax int) Move {
	p.nodeCount = 0
	p.stopSearch = false

	maxDepth := depthMax + 3
	if maxDepth > DepthMax {
		maxDepth = DepthMax
	}
	if maxDepth < 2 {
		maxDepth = 2
	}

	best := InvalidMove
	score := 0
	for depth := 2; depth <= maxDepth; depth++ {
		res := p.search(-ScoreMax, ScoreMax, score, depth, modeFindBest, InvalidSquare, InvalidSquare)
		if res.matched && res.from.IsValid() {
			best = Move{From: res.from, To: res.to}
			p.hintFrom, p.hintTo = res.from, res.to
		}
		score = res.score
		if p.stopSearch {
			break
		}
		if p.nodeCount >= nodeMax {
			break
		}
	}
	return best
}

// PlayMove plays m if it is among the pseudo-legal moves the search reaches
// at the same depth EnumerateMoves uses, committing the resulting board,
// score, en-passant target and non-pawn material and flipping the side to
// move. Returns false, with the position unchanged, if m is not reachable.
func (p *Position) PlayMove(m Move) bool {
	mover, ok := p.PieceAt(m.From)
	if !ok || mover.Color() != p.side {
		return false
	}

	p.nodeCount = 0
	p.stopSearch = false
	res := p.search(-ScoreMax, ScoreMax, 0, 3, modePlay, m.From, m.To)
	if !res.matched {
		return false
	}

	p.applyMove(m, false)
	p.side ^= sideFlip
	p.hintFrom, p.hintTo = InvalidSquare, InvalidSquare
	return true
}
