package engine

// Bound classification for stored scores.
const (
	ExactBound int8 = iota
	LowerBound
	UpperBound
)

// 2^22 entries (~32MB), indexed by hash & (ttSize - 1).
const ttSize = 1 << 22

type TTEntry struct {
	Score int32
	Depth int8
	Flag  int8
}

/*
	Fixed-capacity, mask-indexed, no chaining and no stored-key check:
	colliding positions alias the same slot and a probe can hand back a
	foreign entry. That risk is bounded by the depth-preferred replacement
	policy and tolerated for the speed/memory win; callers must gate on
	Depth before trusting a slot.
*/
type TransTable struct {
	entries []TTEntry
}

func (tt *TransTable) init() {
	tt.entries = make([]TTEntry, ttSize)
	tt.Clear()
}

// Probe always returns a slot - possibly stale or foreign. The caller checks
// Depth against its own remaining depth before using anything in it.
func (tt *TransTable) Probe(hash uint64) *TTEntry {
	return &tt.entries[hash&(ttSize-1)]
}

// Store keeps the deeper analysis: the slot is only overwritten when the
// incoming depth is at least the stored one.
func (tt *TransTable) Store(hash uint64, depth int, score int, flag int8) {
	entry := &tt.entries[hash&(ttSize-1)]
	if int(entry.Depth) <= depth {
		entry.Depth = int8(depth)
		entry.Score = int32(score)
		entry.Flag = flag
	}
}

// Clear resets every slot's depth to the unusable sentinel. Called once per
// top-level Move, not per ply.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i].Depth = -1
	}
}
