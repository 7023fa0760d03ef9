package refsolve

import "github.com/katalvlaran/groupsearch/bitgrid"

// Parity is the coarse phase-0 solver for combine.CombineSearch: it
// projects a Z_n cube onto its parity (state 0 = even, state 1 = odd)
// and treats "even" as the start state — i.e. phase 0's job is only to
// drive the cube into the even subgroup, not to reach the identity.
// n must be even.
type Parity struct {
	n    uint64
	grid *bitgrid.Grid
}

// NewParity builds a Parity solver over Z_n (n even).
func NewParity(n uint64) *Parity {
	return &Parity{n: n, grid: bitgrid.New(2)}
}

func (p *Parity) NState() uint64 { return 2 }
func (p *Parity) NBase() uint64  { return 2 }

func (p *Parity) Identity() int64            { return 0 }
func (p *Parity) Multiply(a, b int64) int64  { return mod(a+b, p.n) }
func (p *Parity) CubeToState(a int64) uint64 { return uint64(mod(a, p.n)) % 2 }
func (p *Parity) StateToInt(s uint64) uint64 { return s }
func (p *Parity) IntToState(i uint64) uint64 { return i }

// Adj: both +1 and -1 flip parity (n is even, so -1 mod n is odd).
func (p *Parity) Adj(s uint64) []uint64 {
	flip := (s + 1) % 2
	return []uint64{flip, flip}
}

func (p *Parity) Alt(_ uint64, index uint64) []uint64 { return []uint64{index} }
func (p *Parity) IsStart(s uint64) bool                { return s == 0 }

func (p *Parity) Base() []int64       { return []int64{1, int64(p.n) - 1} }
func (p *Parity) BaseName() []string  { return []string{"+1", "-1"} }
func (p *Parity) BaseMask() []uint64  { return []uint64{0b11, 0b11} }
func (p *Parity) BaseIndex() []uint64 { return []uint64{0, 1} }

func (p *Parity) Grid() *bitgrid.Grid { return p.grid }

// EvenCyclic is the phase-1 solver for combine.CombineSearch: the
// index-2 even subgroup of Z_n, relabeled as its own cyclic group of
// order n/2 with generators {+2, -2} expressed in the shared Z_n cube
// space. n must be even; CubeToState assumes its argument is already
// an even residue (guaranteed by Parity's phase-0 contract).
type EvenCyclic struct {
	n    uint64 // the *outer* modulus (Z_n); the state space has n/2 states
	grid *bitgrid.Grid
}

// NewEvenCyclic builds an EvenCyclic solver for the even subgroup of
// Z_n.
func NewEvenCyclic(n uint64) *EvenCyclic {
	return &EvenCyclic{n: n, grid: bitgrid.New(n / 2)}
}

func (e *EvenCyclic) NState() uint64 { return e.n / 2 }
func (e *EvenCyclic) NBase() uint64  { return 2 }

func (e *EvenCyclic) Identity() int64           { return 0 }
func (e *EvenCyclic) Multiply(a, b int64) int64 { return mod(a+b, e.n) }

// CubeToState halves the even residue a mod n into a reduced index in
// [0, n/2).
func (e *EvenCyclic) CubeToState(a int64) uint64 {
	return uint64(mod(a, e.n)) / 2
}
func (e *EvenCyclic) StateToInt(s uint64) uint64 { return s }
func (e *EvenCyclic) IntToState(i uint64) uint64 { return i }

func (e *EvenCyclic) Adj(s uint64) []uint64 {
	m := e.n / 2
	return []uint64{(s + 1) % m, (s + m - 1) % m}
}

func (e *EvenCyclic) Alt(_ uint64, index uint64) []uint64 { return []uint64{index} }
func (e *EvenCyclic) IsStart(s uint64) bool                { return s == 0 }

// Base returns the real Z_n cube deltas {+2, -2} that generate the
// even subgroup.
func (e *EvenCyclic) Base() []int64       { return []int64{2, int64(e.n) - 2} }
func (e *EvenCyclic) BaseName() []string  { return []string{"+2", "-2"} }
func (e *EvenCyclic) BaseMask() []uint64  { return []uint64{0b01, 0b10} }
func (e *EvenCyclic) BaseIndex() []uint64 { return []uint64{2, 3} } // shared super-space: 0,1 taken by phase 0

func (e *EvenCyclic) Grid() *bitgrid.Grid { return e.grid }
