package wfc

import (
	"log"

	"github.com/gitrdm/gowfc/internal/arena"
)

// defaultMaxIterations is MAX_ITERATIONS from spec.md §4.6: the bound on how
// many search-tree nodes (propagate-check-branch cycles, one per Run or
// recursive branch attempt) a single Run will explore before giving up with
// ErrIterationLimit.
const defaultMaxIterations = 16384

// solverConfig collects the options a caller may set via SolverOption,
// grounded on the teacher's SolverConfig/StrategyConfig functional-options
// pattern (fd_solver.go, search.go's DefaultSolverConfig).
type solverConfig[T any] struct {
	initialState  InitialStateRule[T]
	callbacks     *EventCallbacks[T]
	maxIterations int
	logger        *log.Logger
	scanner       EntropyScanner
}

// SolverOption configures a Solver at construction time.
type SolverOption[T any] func(*solverConfig[T])

// WithInitialStateRule sets the rule invoked once, after seeding from the
// world and before the main propagation loop (spec.md §4.6.1 step 3).
func WithInitialStateRule[T any](r InitialStateRule[T]) SolverOption[T] {
	return func(c *solverConfig[T]) { c.initialState = r }
}

// WithEventCallbacks installs the optional OnCellCollapsed / OnContradiction
// / OnBranch hooks (spec.md §6).
func WithEventCallbacks[T any](cb *EventCallbacks[T]) SolverOption[T] {
	return func(c *solverConfig[T]) { c.callbacks = cb }
}

// WithMaxIterations overrides the default iteration bound of 16384.
func WithMaxIterations[T any](n int) SolverOption[T] {
	return func(c *solverConfig[T]) { c.maxIterations = n }
}

// WithLogger installs a logger for diagnostic messages. gowfc logs nothing
// by default; a caller that wants visibility into backtracking behavior
// supplies one, matching the teacher's convention of a nil-able *log.Logger
// rather than a global logging package.
func WithLogger[T any](l *log.Logger) SolverOption[T] {
	return func(c *solverConfig[T]) { c.logger = l }
}

// WithEntropyScanner overrides how the solver picks the next cell to branch
// on. The default, minEntropyScanner, implements spec.md §4.6.3's mandated
// minimum-entropy-then-lowest-id rule; a caller may substitute a different
// EntropyScanner (e.g. one that also weighs topological degree, the way the
// teacher's labeling.go offers FirstFailLabeling vs DegreeLabeling) without
// gowfc needing to ship every possible ordering itself.
func WithEntropyScanner[T any](scan EntropyScanner) SolverOption[T] {
	return func(c *solverConfig[T]) { c.scanner = scan }
}

// Solver runs the wave-function-collapse search described by spec.md §4.6
// over a World[T], a variable<->value IDMap, a propagation RuleTable, and a
// branch-time ValueSelector. A Solver is reusable across many Run calls; it
// holds no per-run state itself (that lives in the unexported solveState
// built fresh inside Run).
type Solver[T comparable] struct {
	idmap    IDMap[T]
	rules    RuleTable[T]
	selector ValueSelector
	cfg      solverConfig[T]
}

// NewSolver builds a Solver. idmap, rules and selector are required;
// everything else is optional via SolverOption.
func NewSolver[T comparable](idmap IDMap[T], rules RuleTable[T], selector ValueSelector, opts ...SolverOption[T]) *Solver[T] {
	cfg := solverConfig[T]{maxIterations: defaultMaxIterations}
	for _, o := range opts {
		o(&cfg)
	}
	return &Solver[T]{idmap: idmap, rules: rules, selector: selector, cfg: cfg}
}

// solveState carries the per-run machinery through the recursive search
// (spec.md §4.6.2-§4.6.3). One solveState is built per Run call and shared,
// by pointer, across every recursive branch attempt within that run — the
// iteration counter and SolverStats are cumulative over the whole search
// tree, not per-branch.
type solveState[T comparable] struct {
	world    World[T]
	idmap    IDMap[T]
	rules    RuleTable[T]
	selector ValueSelector
	cb       *EventCallbacks[T]
	logger   *log.Logger

	root *arena.Arena
	iter int
	max  int

	scan  EntropyScanner
	stats *SolverStats
}

// Run seeds a wave from world's pre-assigned values, propagates, and
// searches (branching and backtracking as needed) for a fully collapsed
// wave consistent with the rule table. On success world is overwritten with
// the solved values and Run returns nil. On failure Run returns
// ErrUnsatisfiable or ErrIterationLimit (spec.md §7); world's contents are
// then undefined beyond whatever a contradiction callback already
// refreshed.
func (s *Solver[T]) Run(world World[T]) error {
	n := world.Size()
	v := s.idmap.Size()

	root := arena.New()
	wave := NewWave(root, n, v)
	queue := NewQueue(root, n)

	scan := s.cfg.scanner
	if scan == nil {
		scan = minEntropyScanner
	}

	st := &solveState[T]{
		world:    world,
		idmap:    s.idmap,
		rules:    s.rules,
		selector: s.selector,
		cb:       s.cfg.callbacks,
		logger:   s.cfg.logger,
		root:     root,
		max:      s.cfg.maxIterations,
		scan:     scan,
		stats:    &SolverStats{},
	}

	c := &Constrainer{wave: wave, queue: queue, onCollapse: func(cell int) { st.onCollapse(wave, cell) }}

	// Seed: any cell whose world value maps to a known variable index is
	// collapsed to exactly that index (spec.md §4.6.1 step 2).
	for i := 0; i < n; i++ {
		if idx, ok := s.idmap.IndexOf(world.GetValue(i)); ok {
			c.Only(i, idx)
		}
	}

	if s.cfg.initialState != nil {
		s.cfg.initialState(world, c, s.selector)
	}

	ok, err := st.run(wave, queue)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnsatisfiable
	}

	refreshWorld(world, wave, s.idmap)
	return nil
}

// onCollapse fires OnCellCollapsed, refreshing world first per spec.md §6.
// cell is not itself part of the StateView: the event carries a refreshed
// snapshot of the whole solver state, not the individual transition.
func (s *solveState[T]) onCollapse(wave *Wave, cell int) {
	if s.cb == nil || s.cb.OnCellCollapsed == nil {
		return
	}
	_ = cell
	refreshWorld(s.world, wave, s.idmap)
	s.cb.fireCellCollapsed(&StateView[T]{World: s.world, Wave: wave, Stats: s.stats})
}

// run is the main loop of spec.md §4.6.2, executed once per search-tree
// node: drain propagation, check for contradiction or completion, and
// branch if neither holds. It recurses into itself (via branch) to explore
// deeper nodes; the recursion depth is the search's backtracking depth.
func (s *solveState[T]) run(wave *Wave, queue *Queue) (bool, error) {
	s.iter++
	s.stats.Iterations = s.iter
	if s.iter > s.max {
		return false, ErrIterationLimit
	}

	// Step 1: propagate until the queue drains, applying the rule table to
	// every collapsed cell as it's popped.
	for !queue.Empty() {
		s.stats.recordQueueDepth(queue.back - queue.front)
		cell := queue.Pop()
		s.stats.PropagationSteps++

		if wave.IsContradicted(cell) {
			s.reportContradiction(wave)
			return false, nil
		}

		k := wave.VariableID(cell)
		value := s.idmap.ValueOf(k)
		c := &Constrainer{wave: wave, queue: queue, onCollapse: func(cc int) { s.onCollapse(wave, cc) }}
		s.rules.Apply(s.world, cell, k, value, c)
	}

	// Step 2: a contradiction can also arise without the contradicted cell
	// itself being re-queued (it's never queued, per the observed-transition
	// protocol in constrainer.go), so scan for one explicitly.
	if wave.HasContradiction() {
		s.reportContradiction(wave)
		return false, nil
	}

	// Step 3: success.
	if wave.IsFullyCollapsed() {
		return true, nil
	}

	// Step 4: branch.
	if s.cb != nil && s.cb.OnBranch != nil {
		refreshWorld(s.world, wave, s.idmap)
		s.cb.fireBranch(&StateView[T]{World: s.world, Wave: wave, Stats: s.stats})
	}
	return s.branch(wave, queue)
}

func (s *solveState[T]) reportContradiction(wave *Wave) {
	s.stats.ContradictionsDetected++
	if s.cb == nil || s.cb.OnContradiction == nil {
		return
	}
	refreshWorld(s.world, wave, s.idmap)
	s.cb.fireContradiction(&StateView[T]{World: s.world, Wave: wave, Stats: s.stats})
}

// branch implements spec.md §4.6.3: pick the lowest-id cell among those
// with minimum entropy greater than one, enumerate its remaining values via
// swap-removal selection, and try each in a cloned wave under its own
// arena frame and queue checkpoint, backtracking into the parent wave on
// failure.
func (s *solveState[T]) branch(wave *Wave, queue *Queue) (bool, error) {
	cell, best := s.scan(wave)
	if cell == -1 {
		// Every cell has entropy <= 1 but IsFullyCollapsed already said no:
		// unreachable under a correct wave, but fail rather than loop.
		return false, nil
	}

	// P holds the candidate value indices, allocated from the arena (spec.md
	// §4.3: "all transient solver allocations go here") rather than a plain
	// Go slice, even though its contents are only ever read back as ints.
	pWords := s.root.Alloc(best)
	for i, idx := range wave.Mask(cell).Values(nil) {
		pWords[i] = uint64(idx)
	}

	e := best
	for e > 0 {
		i := s.selector.Pick(e)
		val := int(pWords[i])

		s.stats.NodesExplored++
		frame := s.root.Frame()
		qcp := queue.Checkpoint()
		clone := wave.Clone(s.root)

		c := &Constrainer{wave: clone, queue: queue, onCollapse: func(cc int) { s.onCollapse(clone, cc) }}
		c.Only(cell, val)

		ok, err := s.run(clone, queue)
		if err != nil {
			frame.Release()
			queue.Restore(qcp)
			return false, err
		}
		if ok {
			wave.CopyFrom(clone)
			return true, nil
		}

		s.stats.Backtracks++
		if s.logger != nil {
			s.logger.Printf("wfc: backtrack at cell %d, value index %d failed", cell, val)
		}
		frame.Release()
		queue.Restore(qcp)

		// Learn from the failure: v can never be cell's value given the
		// current parent state, so exclude it before trying the next
		// candidate (spec.md §4.6.3 step 3.e).
		parent := &Constrainer{wave: wave, queue: queue, onCollapse: func(cc int) { s.onCollapse(wave, cc) }}
		parent.Exclude(cell, val)

		pWords[i], pWords[e-1] = pWords[e-1], pWords[i]
		e--
	}
	return false, nil
}
