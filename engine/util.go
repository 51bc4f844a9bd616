package engine

import (
	"fmt"
)

// Min returns the smaller of x or y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of x or y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// mateOrCPScore renders a score the way UCI wants it: forced mates as a
// distance in moves, everything else in centipawns.
func mateOrCPScore(score int) string {
	if score > MateScore-MaxPly {
		pliesToMate := MateScore - score
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	}
	if score < -(MateScore - MaxPly) {
		pliesToMate := MateScore + score
		return fmt.Sprintf("mate %d", -((pliesToMate + 1) / 2))
	}
	return fmt.Sprintf("cp %d", score)
}
