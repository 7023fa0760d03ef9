package refsolve

import "github.com/katalvlaran/groupsearch/bitgrid"

// mod normalizes a into [0, n).
func mod(a int64, n uint64) int64 {
	m := int64(n)
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

// Cyclic is the Cayley graph of Z_n generated by {+1, -1}.
type Cyclic struct {
	n    uint64
	grid *bitgrid.Grid
}

// NewCyclic builds a Cyclic solver over Z_n with a freshly allocated,
// not-yet-built pattern database grid of size n.
func NewCyclic(n uint64) *Cyclic {
	return &Cyclic{n: n, grid: bitgrid.New(n)}
}

func (c *Cyclic) NState() uint64 { return c.n }
func (c *Cyclic) NBase() uint64  { return 2 }

func (c *Cyclic) Identity() int64            { return 0 }
func (c *Cyclic) Multiply(a, b int64) int64  { return mod(a+b, c.n) }
func (c *Cyclic) CubeToState(a int64) uint64 { return uint64(mod(a, c.n)) }
func (c *Cyclic) StateToInt(s uint64) uint64 { return s }
func (c *Cyclic) IntToState(i uint64) uint64 { return i }

func (c *Cyclic) Adj(s uint64) []uint64 {
	n := c.n
	return []uint64{(s + 1) % n, (s + n - 1) % n}
}

// Alt returns a trivial (singleton) symmetry orbit: Cyclic does not
// collapse any states together.
func (c *Cyclic) Alt(_ uint64, index uint64) []uint64 { return []uint64{index} }

func (c *Cyclic) IsStart(s uint64) bool { return s == 0 }

func (c *Cyclic) Base() []int64      { return []int64{1, int64(c.n) - 1} }
func (c *Cyclic) BaseName() []string { return []string{"+1", "-1"} }

// BaseMask forbids immediately undoing the previous move: after +1,
// only +1 may follow (bit 0); after -1, only -1 may follow (bit 1).
func (c *Cyclic) BaseMask() []uint64 { return []uint64{0b01, 0b10} }

func (c *Cyclic) BaseIndex() []uint64 { return []uint64{0, 1} }

func (c *Cyclic) Grid() *bitgrid.Grid { return c.grid }
