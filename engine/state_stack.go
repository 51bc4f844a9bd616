package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions.
type State struct {
	Hash   uint64
	Rule50 int
}

// resetStateTracking rebuilds the stack so it only holds the root position.
// Move starts every search from a bare FEN, so the stack never sees game
// history older than the root.
func (e *Engine) resetStateTracking(board *dragontoothmg.Board) {
	e.stateStack = e.stateStack[:0]
	e.pushState(board)
}

func (e *Engine) pushState(board *dragontoothmg.Board) {
	e.stateStack = append(e.stateStack, State{
		Hash:   board.Hash(),
		Rule50: int(board.Halfmoveclock),
	})
}

func (e *Engine) popState() {
	if len(e.stateStack) == 0 {
		return
	}
	e.stateStack = e.stateStack[:len(e.stateStack)-1]
}

// repetitionDraw reports whether the current position already occurred on
// the search line, looking back no further than the reversible-move window.
// One repetition inside the line is enough: the mover can force the repeat.
func (e *Engine) repetitionDraw() bool {
	if len(e.stateStack) <= 1 {
		return false
	}
	curr := e.stateStack[len(e.stateStack)-1]
	start := len(e.stateStack) - 1 - curr.Rule50
	if start < 0 {
		start = 0
	}
	for i := len(e.stateStack) - 2; i >= start; i-- {
		if e.stateStack[i].Hash == curr.Hash {
			return true
		}
	}
	return false
}
