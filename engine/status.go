package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

// Result of the game at a position, from nobody's perspective.
type Result int

const (
	NoResult Result = iota
	WhiteWins
	BlackWins
	Draw
)

// Reason the game ended.
type Reason int

const (
	NoReason Reason = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	Repetition
	InsufficientMaterial
)

// GameStatus decides whether the position on top of the search stack is
// over. The move generator owns legality and check detection; the draw rules
// that need position history come from the engine's repetition stack.
func (e *Engine) GameStatus(board *dragontoothmg.Board) (Result, Reason) {
	if len(board.GenerateLegalMoves()) == 0 {
		if board.OurKingInCheck() {
			if board.Wtomove {
				return BlackWins, Checkmate
			}
			return WhiteWins, Checkmate
		}
		return Draw, Stalemate
	}
	if int(board.Halfmoveclock) >= fiftyMoveLimit {
		return Draw, FiftyMoveRule
	}
	if e.repetitionDraw() {
		return Draw, Repetition
	}
	if insufficientMaterial(board) {
		return Draw, InsufficientMaterial
	}
	return NoResult, NoReason
}

// insufficientMaterial covers the dead draws: bare kings, a lone minor
// against a bare king, and lone bishops on the same color complex.
func insufficientMaterial(board *dragontoothmg.Board) bool {
	majorsOrPawns := board.White.Pawns | board.Black.Pawns |
		board.White.Rooks | board.Black.Rooks |
		board.White.Queens | board.Black.Queens
	if majorsOrPawns != 0 {
		return false
	}

	wMinors := bits.OnesCount64(board.White.Knights | board.White.Bishops)
	bMinors := bits.OnesCount64(board.Black.Knights | board.Black.Bishops)
	if wMinors > 1 || bMinors > 1 {
		return false
	}
	if wMinors+bMinors <= 1 {
		return true
	}
	if board.White.Knights|board.Black.Knights != 0 {
		return false
	}

	const lightSquares = 0x55AA55AA55AA55AA
	wLight := board.White.Bishops&lightSquares != 0
	bLight := board.Black.Bishops&lightSquares != 0
	return wLight == bLight
}
