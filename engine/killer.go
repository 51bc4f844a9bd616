package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

// KillerStruct holds, per ply, the two most recent quiet moves that improved
// alpha in a sibling branch at that ply.
type KillerStruct struct {
	KillerMoves [MaxPly + 1][2]dragontoothmg.Move
}

// InsertKiller pushes a new killer FIFO-style: the newcomer takes slot 0 and
// the previous slot 0 shifts to slot 1. Re-inserting the current slot-0 move
// is a no-op so both slots stay distinct.
func (k *KillerStruct) InsertKiller(move dragontoothmg.Move, ply int) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	var empty dragontoothmg.Move
	for ply := 0; ply < MaxPly+1; ply++ {
		k.KillerMoves[ply][0] = empty
		k.KillerMoves[ply][1] = empty
	}
}
