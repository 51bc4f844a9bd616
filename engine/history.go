package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

/*
	HISTORY HEURISTIC
	Quiet moves that improved alpha earn depth*depth on their (side, from, to)
	cell. The counters are never decremented and persist across Move calls
	for the lifetime of the Engine, so a long game keeps accumulating
	evidence about which squares matter for each side.
*/
type HistoryStruct struct {
	scores [2][64][64]int
}

func (h *HistoryStruct) Increment(whiteToMove bool, move dragontoothmg.Move, depth int) {
	h.scores[sideIndex(whiteToMove)][move.From()][move.To()] += depth * depth
}

func (h *HistoryStruct) Score(whiteToMove bool, move dragontoothmg.Move) int {
	return h.scores[sideIndex(whiteToMove)][move.From()][move.To()]
}

// Clear the values in the history table.
func (h *HistoryStruct) Clear() {
	for sq1 := 0; sq1 < 64; sq1++ {
		for sq2 := 0; sq2 < 64; sq2++ {
			h.scores[0][sq1][sq2] = 0
			h.scores[1][sq1][sq2] = 0
		}
	}
}

func sideIndex(whiteToMove bool) int {
	if whiteToMove {
		return 0
	}
	return 1
}
