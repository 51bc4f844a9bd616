package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Piece values in centipawns, indexed by dragontoothmg.Piece. The king has
// no exchange value.
var pieceValue = [7]int{0, 100, 320, 330, 500, 900, 0}

const (
	bishopPairBonus     = 30
	doubledPawnPenalty  = 15
	passedPawnRankBonus = 10
	mobilityWeight      = 2
	kingShieldBonus     = 15
	undevelopedPenalty  = 15
	centerPawnBonus     = 20
)

// =============================================================================
// PIECE-SQUARE TABLES
// White reads them directly with a1 = 0; Black reads them mirrored through
// 63-sq, so one table serves both sides.
// =============================================================================
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 5, 10, 10, 5, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 5, 10, 10, 5, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// d4, e4, d5, e5
const centerMask uint64 = 1<<27 | 1<<28 | 1<<35 | 1<<36

// Precomputed masks, filled in by init.
var fileMasks [8]uint64
var passedWhiteMask [64]uint64 // squares that must be clear of black pawns
var passedBlackMask [64]uint64
var kingShieldWhite [64]uint64 // the three squares ahead of the king
var kingShieldBlack [64]uint64

func init() {
	for sq := 0; sq < 64; sq++ {
		fileMasks[sq%8] |= uint64(1) << uint(sq)
	}

	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		rank := sq / 8
		for f := file - 1; f <= file+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			for r := rank + 1; r < 8; r++ {
				passedWhiteMask[sq] |= uint64(1) << uint(r*8+f)
			}
			for r := rank - 1; r >= 0; r-- {
				passedBlackMask[sq] |= uint64(1) << uint(r*8+f)
			}
			if rank+1 < 8 {
				kingShieldWhite[sq] |= uint64(1) << uint((rank+1)*8+f)
			}
			if rank-1 >= 0 {
				kingShieldBlack[sq] |= uint64(1) << uint((rank-1)*8+f)
			}
		}
	}
}

// Evaluation scores the position for the player to move: every term is
// summed from White's point of view and the total negated when Black is the
// mover (negamax convention). Deterministic integer arithmetic throughout.
func Evaluation(board *dragontoothmg.Board) int {
	score := material(board)
	score += pieceSquares(board)
	score += pawnStructure(board)
	score += mobility(board)
	score += kingSafety(board)
	score += development(board)
	score += centerControl(board)

	if board.Wtomove {
		return score
	}
	return -score
}

func material(board *dragontoothmg.Board) int {
	white := pieceValue[dragontoothmg.Pawn]*bits.OnesCount64(board.White.Pawns) +
		pieceValue[dragontoothmg.Knight]*bits.OnesCount64(board.White.Knights) +
		pieceValue[dragontoothmg.Bishop]*bits.OnesCount64(board.White.Bishops) +
		pieceValue[dragontoothmg.Rook]*bits.OnesCount64(board.White.Rooks) +
		pieceValue[dragontoothmg.Queen]*bits.OnesCount64(board.White.Queens)
	black := pieceValue[dragontoothmg.Pawn]*bits.OnesCount64(board.Black.Pawns) +
		pieceValue[dragontoothmg.Knight]*bits.OnesCount64(board.Black.Knights) +
		pieceValue[dragontoothmg.Bishop]*bits.OnesCount64(board.Black.Bishops) +
		pieceValue[dragontoothmg.Rook]*bits.OnesCount64(board.Black.Rooks) +
		pieceValue[dragontoothmg.Queen]*bits.OnesCount64(board.Black.Queens)
	return white - black
}

func pieceSquares(board *dragontoothmg.Board) int {
	score := pstSum(board.White.Pawns, &pawnPST, false) - pstSum(board.Black.Pawns, &pawnPST, true)
	score += pstSum(board.White.Knights, &knightPST, false) - pstSum(board.Black.Knights, &knightPST, true)
	score += pstSum(board.White.Bishops, &bishopPST, false) - pstSum(board.Black.Bishops, &bishopPST, true)
	score += pstSum(board.White.Rooks, &rookPST, false) - pstSum(board.Black.Rooks, &rookPST, true)
	score += pstSum(board.White.Queens, &queenPST, false) - pstSum(board.Black.Queens, &queenPST, true)

	if bits.OnesCount64(board.White.Bishops) >= 2 {
		score += bishopPairBonus
	}
	if bits.OnesCount64(board.Black.Bishops) >= 2 {
		score -= bishopPairBonus
	}
	return score
}

func pstSum(pieces uint64, pst *[64]int, mirrored bool) int {
	sum := 0
	for bb := pieces; bb != 0; bb &= bb - 1 {
		sq := bits.TrailingZeros64(bb)
		if mirrored {
			sq = 63 - sq
		}
		sum += pst[sq]
	}
	return sum
}

func pawnStructure(board *dragontoothmg.Board) int {
	score := 0

	for file := 0; file < 8; file++ {
		whiteCount := bits.OnesCount64(board.White.Pawns & fileMasks[file])
		blackCount := bits.OnesCount64(board.Black.Pawns & fileMasks[file])
		if whiteCount > 1 {
			score -= doubledPawnPenalty * (whiteCount - 1)
		}
		if blackCount > 1 {
			score += doubledPawnPenalty * (blackCount - 1)
		}
	}

	// A pawn with no opposing pawn ahead on its own or adjacent files is
	// passed; the bonus grows as it marches toward promotion.
	for bb := board.White.Pawns; bb != 0; bb &= bb - 1 {
		sq := bits.TrailingZeros64(bb)
		if passedWhiteMask[sq]&board.Black.Pawns == 0 {
			score += passedPawnRankBonus * (sq / 8)
		}
	}
	for bb := board.Black.Pawns; bb != 0; bb &= bb - 1 {
		sq := bits.TrailingZeros64(bb)
		if passedBlackMask[sq]&board.White.Pawns == 0 {
			score -= passedPawnRankBonus * (7 - sq/8)
		}
	}

	return score
}

// mobility counts legal moves for both sides. The move generator has no null
// move, so the side to move is flipped in place and restored before
// returning - the only mutation Evaluation performs, and a fully reversible
// one. A stale en-passant square can miscount by one move; accepted.
func mobility(board *dragontoothmg.Board) int {
	mover := len(board.GenerateLegalMoves())

	board.Wtomove = !board.Wtomove
	opponent := len(board.GenerateLegalMoves())
	board.Wtomove = !board.Wtomove

	whiteMob, blackMob := mover, opponent
	if !board.Wtomove {
		whiteMob, blackMob = opponent, mover
	}
	return (whiteMob - blackMob) * mobilityWeight
}

func kingSafety(board *dragontoothmg.Board) int {
	score := 0
	if board.White.Kings != 0 {
		sq := bits.TrailingZeros64(board.White.Kings)
		score += kingShieldBonus * bits.OnesCount64(kingShieldWhite[sq]&board.White.Pawns)
	}
	if board.Black.Kings != 0 {
		sq := bits.TrailingZeros64(board.Black.Kings)
		score -= kingShieldBonus * bits.OnesCount64(kingShieldBlack[sq]&board.Black.Pawns)
	}
	return score
}

// development penalizes minor pieces still sitting on their starting
// squares: b1/g1 and c1/f1 for White, mirrored for Black.
func development(board *dragontoothmg.Board) int {
	score := 0
	score -= undevelopedPenalty * bits.OnesCount64(board.White.Knights&(1<<1|1<<6))
	score -= undevelopedPenalty * bits.OnesCount64(board.White.Bishops&(1<<2|1<<5))
	score += undevelopedPenalty * bits.OnesCount64(board.Black.Knights&(1<<57|1<<62))
	score += undevelopedPenalty * bits.OnesCount64(board.Black.Bishops&(1<<58|1<<61))
	return score
}

func centerControl(board *dragontoothmg.Board) int {
	return centerPawnBonus * (bits.OnesCount64(board.White.Pawns&centerMask) -
		bits.OnesCount64(board.Black.Pawns&centerMask))
}
