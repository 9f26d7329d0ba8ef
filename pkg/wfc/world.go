package wfc

// World is the user-provided container of cells the solver reads from and
// writes to. Concrete topologies (grids, graphs, Sudoku boards) are out of
// scope for this package (spec.md §1) — World is the only contract the
// engine needs, and any topology lookups a rule function needs (neighbor
// ids, coordinates) are opaque to the engine and live entirely on the
// caller's World implementation.
type World[T any] interface {
	// Size returns N, the number of cells.
	Size() int
	// GetValue returns the value held by cell i. Run treats every value the
	// IDMap maps as pre-assigned, so an unassigned cell must return a value
	// outside the IDMap.
	GetValue(i int) T
	// SetValue writes a solved value back into cell i. Called only at the
	// end of a successful Run, and transiently before an event callback
	// fires (spec.md §6).
	SetValue(i int, v T)
}

// NeighborFunc resolves the neighbor of cell in direction dir, for the
// AdjacencyTable rule representation. The engine tolerates (and never
// special-cases) a NeighborFunc that returns cell itself — a self-loop —
// per spec.md §9.
type NeighborFunc func(cell int, dir int) int

// RuleFunc is a per-value propagation rule: given the world, the cell that
// was just collapsed, its variable index k and mapped value, it applies
// whatever domain restrictions the rule implies via the Constrainer. Rule
// functions have no failure channel (spec.md §7): a rule that detects an
// inconsistency drives the wave to contradiction via Exclude/Only and lets
// the solver discover it.
type RuleFunc[T any] func(world World[T], cell int, k int, value T, c *Constrainer)

// RuleTable is the propagation rule table consumed by the solver. Exactly
// one of CallbackTable or AdjacencyTable is bound at solver-construction
// time (spec.md §4.6.4); both satisfy RuleTable so the solver's main loop
// never branches on which representation it was given.
type RuleTable[T any] interface {
	// Apply is invoked once per collapsed cell popped from the
	// propagation queue.
	Apply(world World[T], cell int, k int, value T, c *Constrainer)
}

// CallbackTable is the per-value callback rule representation: a function
// indexed by variable index k, invoked whenever a cell with that variable
// index is popped from the queue. Values without a user-specified rule get
// a no-op, so the engine never needs a nil check on the hot path.
type CallbackTable[T any] struct {
	rules []RuleFunc[T]
}

// NewCallbackTable builds a CallbackTable over v variables. rules maps
// variable index -> rule function; indices absent from rules default to a
// no-op.
func NewCallbackTable[T any](v int, rules map[int]RuleFunc[T]) *CallbackTable[T] {
	t := &CallbackTable[T]{rules: make([]RuleFunc[T], v)}
	noop := func(World[T], int, int, T, *Constrainer) {}
	for k := range t.rules {
		t.rules[k] = noop
	}
	for k, fn := range rules {
		assertf(k >= 0 && k < v, "wfc: CallbackTable rule index %d out of range [0,%d)", k, v)
		t.rules[k] = fn
	}
	return t
}

func (t *CallbackTable[T]) Apply(world World[T], cell int, k int, value T, c *Constrainer) {
	t.rules[k](world, cell, k, value, c)
}

// AdjacencyTable is the adjacency-matrix rule representation: an
// allowed-neighbor mask per (direction, source variable), applied by
// intersecting each neighbor's domain with the mask for the collapsed
// cell's variable.
type AdjacencyTable[T any] struct {
	// Masks[dir][k] is the set of variable indices a neighbor in direction
	// dir is allowed to take, given the source cell's variable index is k.
	Masks    [][]Domain
	Neighbor NeighborFunc
}

// NewAdjacencyTable builds an AdjacencyTable for dirCount directions and v
// source variables, with masks initially empty (fully restrictive); fill
// Masks[dir][k] before use.
func NewAdjacencyTable[T any](dirCount, v int, neighbor NeighborFunc) *AdjacencyTable[T] {
	masks := make([][]Domain, dirCount)
	for d := range masks {
		masks[d] = make([]Domain, v)
	}
	return &AdjacencyTable[T]{Masks: masks, Neighbor: neighbor}
}

func (t *AdjacencyTable[T]) Apply(world World[T], cell int, k int, value T, c *Constrainer) {
	for dir, row := range t.Masks {
		neighbor := t.Neighbor(cell, dir)
		c.OnlyMask(neighbor, row[k])
	}
}

// ValueSelector picks a uniform-ish index in [0, max) during branching
// (spec.md §4.6.3). Two implementations are required by spec.md §6:
// LCGSelector and MathRandSelector; custom selectors are permitted.
type ValueSelector interface {
	Pick(max int) int
}

// InitialStateRule is optionally invoked once, after seeding from the
// world and before the main propagation loop, so a caller can force or
// further constrain values before any per-value rule runs (spec.md
// §4.6.1 step 3).
type InitialStateRule[T any] func(world World[T], c *Constrainer, selector ValueSelector)
