package refsolve

import "github.com/katalvlaran/groupsearch/bitgrid"

// Reflective is the Cayley graph of Z_n generated by {+1, -1}, same as
// Cyclic, but with the reflection automorphism x -> (n-x) mod n
// exposed as a genuine 2-element symmetry orbit.
type Reflective struct {
	n    uint64
	grid *bitgrid.Grid
}

// NewReflective builds a Reflective solver over Z_n.
func NewReflective(n uint64) *Reflective {
	return &Reflective{n: n, grid: bitgrid.New(n)}
}

func (r *Reflective) NState() uint64 { return r.n }
func (r *Reflective) NBase() uint64  { return 2 }

func (r *Reflective) Identity() int64            { return 0 }
func (r *Reflective) Multiply(a, b int64) int64  { return mod(a+b, r.n) }
func (r *Reflective) CubeToState(a int64) uint64 { return uint64(mod(a, r.n)) }
func (r *Reflective) StateToInt(s uint64) uint64 { return s }
func (r *Reflective) IntToState(i uint64) uint64 { return i }

func (r *Reflective) Adj(s uint64) []uint64 {
	n := r.n
	return []uint64{(s + 1) % n, (s + n - 1) % n}
}

// Alt returns {index, mirror}, where mirror = (n-index) mod n, unless
// index is its own mirror (index == 0 or, for even n, index == n/2), in
// which case the orbit is the singleton {index}. The first element is
// always index, per the contract.
func (r *Reflective) Alt(_ uint64, index uint64) []uint64 {
	mirror := (r.n - index) % r.n
	if mirror == index {
		return []uint64{index}
	}
	return []uint64{index, mirror}
}

func (r *Reflective) IsStart(s uint64) bool { return s == 0 }

func (r *Reflective) Base() []int64      { return []int64{1, int64(r.n) - 1} }
func (r *Reflective) BaseName() []string { return []string{"+1", "-1"} }
func (r *Reflective) BaseMask() []uint64 { return []uint64{0b01, 0b10} }
func (r *Reflective) BaseIndex() []uint64 { return []uint64{0, 1} }

func (r *Reflective) Grid() *bitgrid.Grid { return r.grid }
