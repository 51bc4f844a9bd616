package engine

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
)

// Move ordering offsets. Any capture outranks every quiet move - even a
// "losing" capture - and the killer slots sit between captures and
// history-scored quiets.
const (
	captureOffset     = 100000
	firstKillerScore  = 90000
	secondKillerScore = 80000
)

type scoredMove struct {
	move  dragontoothmg.Move
	score int
}

// Nice helper to get what piece is at a square :)
func GetPieceTypeAtPosition(position uint8, bitboards *dragontoothmg.Bitboards) (pieceType dragontoothmg.Piece, occupied bool) {
	if bitboards.Pawns&(1<<position) > 0 {
		return dragontoothmg.Pawn, true
	} else if bitboards.Knights&(1<<position) > 0 {
		return dragontoothmg.Knight, true
	} else if bitboards.Bishops&(1<<position) > 0 {
		return dragontoothmg.Bishop, true
	} else if bitboards.Rooks&(1<<position) > 0 {
		return dragontoothmg.Rook, true
	} else if bitboards.Queens&(1<<position) > 0 {
		return dragontoothmg.Queen, true
	} else if bitboards.Kings&(1<<position) > 0 {
		return dragontoothmg.King, true
	}
	return 0, false
}

// OrderMoves ranks the legal moves for one node, best first. It reads the
// killer slots and history counters but mutates nothing - not even the input
// slice - so the driver loop and every search node call it freely. Ties may
// land in any order.
func (e *Engine) OrderMoves(board *dragontoothmg.Board, moves []dragontoothmg.Move, ply int) []dragontoothmg.Move {
	scored := make([]scoredMove, len(moves))
	for i, move := range moves {
		scored[i] = scoredMove{move: move, score: e.scoreMove(board, move, ply)}
	}

	slices.SortStableFunc(scored, func(a, b scoredMove) int {
		return b.score - a.score
	})

	ordered := make([]dragontoothmg.Move, len(moves))
	for i := range scored {
		ordered[i] = scored[i].move
	}
	return ordered
}

// scoreMove assigns the per-move priority: captures by MVV-LVA above
// everything, then the two killer slots for this ply, then whatever history
// the (side, from, to) cell has earned.
func (e *Engine) scoreMove(board *dragontoothmg.Board, move dragontoothmg.Move, ply int) int {
	if dragontoothmg.IsCapture(move, board) {
		return captureOffset + captureScore(board, move)
	}
	if move == e.killers.KillerMoves[ply][0] {
		return firstKillerScore
	}
	if move == e.killers.KillerMoves[ply][1] {
		return secondKillerScore
	}
	return e.history.Score(board.Wtomove, move)
}

// captureScore favors grabbing valuable victims with cheap attackers. En
// passant leaves the target square empty; the victim is then a pawn.
func captureScore(board *dragontoothmg.Board, move dragontoothmg.Move) int {
	bitboardsOwn, bitboardsOpponent := &board.White, &board.Black
	if !board.Wtomove {
		bitboardsOwn, bitboardsOpponent = &board.Black, &board.White
	}

	victim, occupied := GetPieceTypeAtPosition(move.To(), bitboardsOpponent)
	if !occupied {
		victim = dragontoothmg.Pawn
	}
	attacker, _ := GetPieceTypeAtPosition(move.From(), bitboardsOwn)

	return pieceValue[victim] - pieceValue[attacker]
}
