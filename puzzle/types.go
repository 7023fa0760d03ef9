package puzzle

import (
	"strings"

	"github.com/katalvlaran/groupsearch/bitgrid"
)

// Solver is the contract every caller must implement to plug a concrete
// puzzle (a finite group acting on itself via a fixed generator set)
// into the search engine. S is the opaque, comparable, cheap-to-copy
// state type; C is the group-element ("cube") type, multiplied by move
// generators.
//
// NBase must be <= 64 so a single uint64 can gate legal next moves
// (BaseMask). Implementations are expected to be safe for concurrent
// read-only use: every method here is called from multiple goroutines
// once a pdb.Build or a parallelida.Run is underway.
type Solver[S comparable, C any] interface {
	// NState returns the size of the enumerable state space.
	NState() uint64
	// NBase returns the number of move generators, <= 64.
	NBase() uint64

	// Identity returns the group identity element.
	Identity() C
	// Multiply composes two group elements (a then b, or however the
	// concrete group defines its operation); used to fold a move
	// sequence back into a single cube for two-phase composition.
	Multiply(a, b C) C

	// CubeToState maps a group element to its canonical state.
	CubeToState(C) S
	// StateToInt maps a state to its dense index in [0, NState()).
	StateToInt(S) uint64
	// IntToState is the inverse of StateToInt.
	IntToState(uint64) S

	// Adj returns the NBase() neighbors of s in move-index order:
	// Adj(s)[i] is the state reached by applying move i to s.
	Adj(s S) []S
	// Alt returns the symmetry orbit of (s, index) as a set of state
	// indices. The first element is always index itself; it is the
	// canonical element CAS'd first by the BFS engine.
	Alt(s S, index uint64) []uint64
	// IsStart reports whether s is the identity state.
	IsStart(s S) bool

	// Base returns the NBase() move generators as group elements.
	Base() []C
	// BaseName returns a short textual name per move generator.
	BaseName() []string
	// BaseMask returns, for each move i, a bitmask over move indices
	// legal to play immediately after i (bit j set => move j allowed).
	BaseMask() []uint64
	// BaseIndex maps this solver's move indices into a shared,
	// super-set move-index space, used by CombineSearch to remap moves
	// between its two phases.
	BaseIndex() []uint64

	// Grid returns the pattern database this solver's searches consult
	// as an admissible heuristic. It must be already built (via
	// pdb.Build) before any search method is called.
	Grid() *bitgrid.Grid
}

// SymMasker is an optional extension a Solver may implement to prune
// moves at shallow search depths using symmetries of the root cube
// that a plain BaseMask cannot express (for example: forbidding moves
// that only reorder a canonical-but-symmetric opening sequence).
// IdaStar and ParallelIdaStar type-assert for it and fall back to an
// all-ones mask (no extra pruning) when a Solver does not implement
// it.
type SymMasker[S comparable, C any] interface {
	// SymMask returns a bitmask over move indices legal to play from
	// node state given the original search root a. IdaStar calls it
	// only while the node's move count is below its configured
	// symmetry-mask depth; parallelida calls it at every node of its
	// breadth-first stage and not during its depth-first stage.
	SymMask(a C, state S, hint uint64, moves Moves) uint64
}

// MaxMoves bounds every Moves value in this module. The source's
// capacity is a per-search-instantiation compile-time constant; Go
// generics cannot parameterize array length by a type parameter's
// value, so this module fixes one constant large enough for any
// realistic puzzle diameter (see DESIGN.md).
const MaxMoves = 40

// Moves is a bounded-capacity sequence of move-generator indices.
type Moves struct {
	N uint8
	A [MaxMoves]uint8
}

// Push appends move index i, panicking if the sequence is already at
// MaxMoves capacity — a capacity overflow is a fatal invariant
// violation (the solver's own diameter exceeds what this module was
// built to hold), not a recoverable error.
func (m *Moves) Push(i uint8) {
	if int(m.N) >= MaxMoves {
		panic("puzzle: Moves capacity exceeded")
	}
	m.A[m.N] = i
	m.N++
}

// Slice returns the move indices in order.
func (m Moves) Slice() []uint8 {
	return append([]uint8(nil), m.A[:m.N]...)
}

// Equal reports whether two Moves sequences have identical content.
func (m Moves) Equal(o Moves) bool {
	if m.N != o.N {
		return false
	}
	for i := uint8(0); i < m.N; i++ {
		if m.A[i] != o.A[i] {
			return false
		}
	}
	return true
}

// Concat returns a new Moves holding m followed by o. Panics on
// overflow, per Push.
func Concat(m, o Moves) Moves {
	out := m
	for i := uint8(0); i < o.N; i++ {
		out.Push(o.A[i])
	}
	return out
}

// MovesString renders moves as the specified textual form: a
// parenthesized, space-separated list of base_name[indices[i]].
func MovesString(names []string, m Moves) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := uint8(0); i < m.N; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(names[m.A[i]])
	}
	b.WriteByte(')')
	return b.String()
}

// Flag encodes the outcome of a single search step.
type Flag uint64

const (
	// FlagNone means "no solution this call, continue calling Next."
	FlagNone Flag = 0
	// FlagSolution means the returned Moves solves the puzzle.
	FlagSolution Flag = 1
	// FlagOptimum, combined with FlagSolution, means the solution is
	// proven optimal (the first solution found at the smallest bound).
	FlagOptimum Flag = 2
	// FlagEnd means the search is exhausted; no further solutions exist
	// within the configured bound.
	FlagEnd Flag = 4
)

// Has reports whether f has every bit of want set.
func (f Flag) Has(want Flag) bool { return f&want == want }
