package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// outOfTime bumps the node counter and polls the clock every TimeCheckNodes
// nodes. Once the deadline passes, the stop flag latches and every node
// entered afterwards bails out immediately. Overrunning the budget by one
// poll interval of work is expected; there is no preemption.
func (e *Engine) outOfTime() bool {
	e.nodes++
	if e.stopped {
		return true
	}
	if e.nodes&e.checkMask == 0 && e.timer.Expired() {
		e.stopped = true
		return true
	}
	return false
}

// alphabeta is the main negamax search with principal-variation null-window
// re-search. Scores are from the mover's point of view; each child call
// negates and swaps the window.
//
// A timed-out node returns its static evaluation rather than an error, so
// aborted branches degrade to shallow evaluations and the driver keeps
// whatever move the last completed depth had settled on.
func (e *Engine) alphabeta(board *dragontoothmg.Board, depth int, alpha int, beta int, ply int) int {
	if e.outOfTime() {
		return Evaluation(board)
	}
	if ply >= MaxPly {
		return Evaluation(board)
	}

	if depth == 0 {
		return e.quiescence(board, alpha, beta, e.cfg.QuiescenceDepth)
	}

	if result, _ := e.GameStatus(board); result != NoResult {
		if result == Draw {
			return DrawScore
		}
		// Mate-distance scoring: losing later is better, so mates nearer
		// the root score more extreme.
		return -MateScore + ply
	}

	hash := board.Hash()
	entry := e.tt.Probe(hash)
	if int(entry.Depth) >= depth {
		switch entry.Flag {
		case ExactBound:
			return int(entry.Score)
		case LowerBound:
			alpha = Max(alpha, int(entry.Score))
		case UpperBound:
			beta = Min(beta, int(entry.Score))
		}
		if alpha >= beta {
			return int(entry.Score)
		}
	}

	moves := e.OrderMoves(board, board.GenerateLegalMoves(), ply)

	originalAlpha := alpha
	bestScore := -Inf

	for i, move := range moves {
		isCapture := dragontoothmg.IsCapture(move, board)
		unapply := e.applyMove(board, move)

		var score int
		if i == 0 {
			score = -e.alphabeta(board, depth-1, -beta, -alpha, ply+1)
		} else {
			// PVS: try to prove the move worse than the first with a cheap
			// null window; re-search with the full window only when the
			// result lands strictly inside it.
			score = -e.alphabeta(board, depth-1, -alpha-1, -alpha, ply+1)
			if score > alpha && score < beta {
				score = -e.alphabeta(board, depth-1, -beta, -alpha, ply+1)
			}
		}

		unapply()

		if score > bestScore {
			bestScore = score
		}

		if score > alpha {
			alpha = score
			if !isCapture {
				e.killers.InsertKiller(move, ply)
				e.history.Increment(board.Wtomove, move, depth)
			}
		}

		if alpha >= beta {
			break
		}
	}

	var flag int8
	switch {
	case bestScore <= originalAlpha:
		flag = UpperBound
	case bestScore >= beta:
		flag = LowerBound
	default:
		flag = ExactBound
	}
	e.tt.Store(hash, depth, bestScore, flag)

	return bestScore
}

// quiescence settles tactical sequences before the static evaluation is
// trusted: only captures are searched, starting from the stand-pat score.
// Captures are finite per branch, but the depth guard keeps pathological
// exchange chains from recursing without bound.
func (e *Engine) quiescence(board *dragontoothmg.Board, alpha int, beta int, depth int) int {
	standPat := Evaluation(board)

	if e.outOfTime() {
		return standPat
	}

	if standPat >= beta {
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	if depth == 0 {
		return alpha
	}

	for _, move := range board.GenerateLegalMoves() {
		if !dragontoothmg.IsCapture(move, board) {
			continue
		}

		unapply := e.applyMove(board, move)
		score := -e.quiescence(board, -beta, -alpha, depth-1)
		unapply()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// applyMove plays a move and returns a closure that reverses both the board
// and the repetition stack. Every caller pairs the two on all exit paths, so
// the position is restored bit-identical whatever the search does in between.
func (e *Engine) applyMove(board *dragontoothmg.Board, move dragontoothmg.Move) func() {
	unapply := board.Apply(move)
	e.pushState(board)
	return func() {
		unapply()
		e.popState()
	}
}
