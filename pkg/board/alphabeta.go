package board

// centerDistance is the static positional table described in section 3 as
// "the off-board half of the board array", here kept as a plain function of
// the square rather than overlaid onto the board bytes themselves - the
// separate-table alternative section 9 calls "cleaner and equivalent".
func centerDistance(sq Square) int {
	file, rank := sq.File(), sq.Rank()
	return (file-4)*(file-4) + (rank-4)*(rank-3)
}

// searchResult carries everything a root-level search call reports back to
// its driver: the returned score, the best move found at this node (meaningful
// for modeFindBest), and whether the driver's requested move was reached
// (meaningful for modePlay).
type searchResult struct {
	score    int
	from, to Square
	matched  bool
}

// search is the single recursive alpha-beta routine. alpha/beta/score/depth
// are the per-frame window and static-score baseline; mode is modeInternal
// for every call except the one the driver issues directly. reqFrom/reqTo
// name the move modePlay is watching for; ignored otherwise.
func (p *Position) search(alpha, beta, score, depth int, mode searchMode, reqFrom, reqTo Square) searchResult {
	p.nodeCount++
	if p.callback != nil {
		p.callback(p)
	}
	noMove := searchResult{score: score, from: InvalidSquare, to: InvalidSquare}
	if p.stopSearch {
		return noMove
	}

	// step 1: window adjustment - shrinks the window by one on the side
	// facing the static score, a "delay bonus" favouring decisive mates
	// sooner and losses later.
	if alpha < score {
		alpha--
	}
	if beta <= score {
		beta--
	}

	if depth <= 0 {
		return noMove
	}

	side := p.side

	// step 2: null-move pruning probe.
	iterScore := -ScoreMax
	nullScore := -ScoreMax
	if depth > 2 && beta != -ScoreMax && p.nonPawnMaterial <= 35 {
		p.side ^= sideFlip
		sub := p.search(-beta, 1-beta, -score, depth-3, modeInternal, InvalidSquare, InvalidSquare)
		p.side = side
		nullScore = -sub.score
		if nullScore >= beta && depth == 2 {
			iterScore = score
		}
	}

	result := searchResult{from: InvalidSquare, to: InvalidSquare}

	tryMove := func(m Move, viaHint bool) bool {
		mover, _ := p.PieceAt(m.From)
		moverType := mover.Type()

		u, stepScore := p.applyMove(m, depth == 1)

		newDepth := depth - 1
		reduced := false
		if depth > 5 && !viaHint && moverType != PawnUpstream && moverType != PawnDownstream &&
			u.captured.Type() == NoPieceType {
			extend := p.nonPawnMaterial <= 30 && nullScore == ScoreMax && depth >= 3 &&
				(u.captured.Type() == NoPieceType || moverType == King)
			if !extend {
				newDepth--
				reduced = true
			}
		}

		childScore := -p.search(-beta, -alpha, -stepScore, newDepth, modeInternal, InvalidSquare, InvalidSquare).score
		if reduced && childScore > alpha {
			childScore = -p.search(-beta, -alpha, -stepScore, depth-1, modeInternal, InvalidSquare, InvalidSquare).score
		}

		p.unapplyMove(m, u)

		if mode == modeEnumerate {
			p.enumCount++
			if len(p.enumBuf) < cap(p.enumBuf) {
				p.enumBuf = append(p.enumBuf, m)
			}
		}

		if childScore > iterScore {
			iterScore = childScore
			result.from, result.to = m.From, m.To
			if mode == modeFindBest {
				result.matched = true
			}
		}
		if mode == modePlay && m.From == reqFrom && m.To == reqTo {
			result.matched = true
		}

		return iterScore >= beta && depth > 1
	}

	if p.hintFrom.IsValid() {
		hint := Move{From: p.hintFrom, To: p.hintTo}
		if pc, ok := p.PieceAt(hint.From); ok && pc.Color() == side && p.isPseudoLegal(hint) {
			tryMove(hint, true)
		}
	}

	p.genMoves(side, func(m Move) bool {
		if p.hintFrom.IsValid() && m.From == p.hintFrom && m.To == p.hintTo {
			return false
		}
		return tryMove(m, false)
	})

	// step 5: terminal detection. No candidate at this node improved the
	// baseline at all - either no pseudo-legal move existed, or every one
	// led to an immediate king capture for the opponent. The externally
	// visible checkmate/stalemate distinction is made independently by the
	// auxiliary probes (InCheck/IsCheckmate/IsStalemate); here we only need
	// a bounded, reasonable value so alpha-beta above this frame stays sane.
	if iterScore == -ScoreMax {
		iterScore = 0
	}

	// step 7: delayed-loss return adjustment, mirroring the window shrink.
	result.score = iterScore
	if iterScore < score {
		result.score++
	}
	return result
}

// isPseudoLegal reports whether m is among the pseudo-legal moves generated
// for the piece at m.From, used to validate the move-ordering hint before
// retrying it (the hint may no longer apply after the board changed).
func (p *Position) isPseudoLegal(m Move) bool {
	pc, ok := p.PieceAt(m.From)
	if !ok {
		return false
	}
	found := false
	p.genMoves(pc.Color(), func(cand Move) bool {
		if cand == m {
			found = true
			return true
		}
		return false
	})
	return found
}
