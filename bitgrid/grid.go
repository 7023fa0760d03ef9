package bitgrid

import "sync/atomic"

// cellsPerWord is the number of 2-bit cells packed into one 64-bit word.
const cellsPerWord = 32

// cellMask selects the low 2 bits of a word once shifted into place.
const cellMask = 0x3

// loMask is 0b01 repeated in every cell: the mask of the bit-trick that
// tests "does this word contain any cell equal to v" in O(1) instead of
// unpacking all 32 cells. Package pdb's scans keep their own copy of it
// (residueMask); nothing in this package uses it.
const loMask = 0x5555555555555555

// Sentinel is the "not yet visited" value stored in every cell before a
// breadth-first build reaches it. It is the only legal value outside
// {0,1,2}; Grid never validates against it — callers choose it as the
// fill value and as the comparand in their first CAS.
const Sentinel = 0x3

// Grid is a fixed-size array of N 2-bit cells, atomically readable and
// compare-and-swappable one cell at a time. The zero value is not
// usable; construct with New.
type Grid struct {
	words []atomic.Uint64
	size  uint64
}

// New allocates a Grid holding exactly size cells, all initially zero.
// Callers almost always call Fill(Sentinel) immediately afterward.
func New(size uint64) *Grid {
	nWords := (size + cellsPerWord - 1) / cellsPerWord
	return &Grid{
		words: make([]atomic.Uint64, nWords),
		size:  size,
	}
}

// Size returns the number of cells the grid was constructed with.
func (g *Grid) Size() uint64 { return g.size }

// NumWords returns the number of 64-bit words backing the grid; callers
// that want to scan word-at-a-time (the bit-trick skip in pdb) iterate
// word indices in [0, NumWords()) and recover cell index via i*32.
func (g *Grid) NumWords() uint64 { return uint64(len(g.words)) }

// LoadWord returns a relaxed atomic snapshot of the word at wordIndex.
// Used by callers that want to apply the "does this word contain cell
// value v" bit trick across all 32 cells at once rather than calling
// Get 32 times.
func (g *Grid) LoadWord(wordIndex uint64) uint64 {
	return g.words[wordIndex].Load()
}

// Get returns the current value of cell i, in {0,1,2,3}. The load is a
// relaxed atomic load of the containing word followed by a shift and
// mask; it carries no synchronization guarantee beyond that single
// cell's own atomicity.
func (g *Grid) Get(i uint64) uint64 {
	j := i / cellsPerWord
	k := (i % cellsPerWord) * 2
	return (g.words[j].Load() >> k) & cellMask
}

// CAS attempts to transition cell i from old to new. It retries the
// underlying word-level compare-and-swap until either the cell's
// current value no longer equals old (returns false — someone else got
// there first) or the word swap succeeds with cell i updated in place
// (returns true). Every other cell packed into the same word is carried
// through unchanged. The retry loop is bounded only by contention on
// that word; it is otherwise wait-free per cell.
func (g *Grid) CAS(i, old, new uint64) bool {
	j := i / cellsPerWord
	k := (i % cellsPerWord) * 2
	word := &g.words[j]
	oldWord := word.Load()
	for {
		if (oldWord>>k)&cellMask != old {
			return false
		}
		newWord := (oldWord &^ (cellMask << k)) | (new << k)
		if word.CompareAndSwap(oldWord, newWord) {
			return true
		}
		oldWord = word.Load()
	}
}

// Fill sets every cell to x, x in {0,1,2,3}. It is a plain (non-atomic)
// write and must strictly precede any concurrent Get/CAS on this Grid —
// it is intended only for initialization, before a build's worker
// goroutines are started.
func (g *Grid) Fill(x uint64) {
	y := x & cellMask
	for shift := uint(1); shift < 6; shift++ {
		y |= y << (uint64(1) << shift)
	}
	for i := range g.words {
		g.words[i].Store(y)
	}
}
