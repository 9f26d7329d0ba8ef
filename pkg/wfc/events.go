package wfc

// StateView is the immutable view of solver state passed to event
// callbacks (spec.md §6). It is only valid for the duration of the
// callback invocation; callbacks must not retain it.
type StateView[T any] struct {
	World World[T]
	Wave  *Wave
	Stats *SolverStats
}

// EventCallbacks are optional hooks the solver fires during a Run
// (spec.md §6). Any of the three may be nil.
type EventCallbacks[T any] struct {
	// OnCellCollapsed fires once for every cell that transitions to
	// collapsed through a Constrainer, at the moment of the transition:
	// during seeding, the initial-state rule, propagation and branching.
	OnCellCollapsed func(*StateView[T])
	// OnContradiction fires when the main loop discovers an empty domain
	// after a propagation pass drains.
	OnContradiction func(*StateView[T])
	// OnBranch fires immediately before the solver attempts branching
	// (spec.md §4.6.2 step 4), once per call into the branching step —
	// not once per value tried.
	OnBranch func(*StateView[T])
}

func (cb *EventCallbacks[T]) fireCellCollapsed(sv *StateView[T]) {
	if cb != nil && cb.OnCellCollapsed != nil {
		cb.OnCellCollapsed(sv)
	}
}

func (cb *EventCallbacks[T]) fireContradiction(sv *StateView[T]) {
	if cb != nil && cb.OnContradiction != nil {
		cb.OnContradiction(sv)
	}
}

func (cb *EventCallbacks[T]) fireBranch(sv *StateView[T]) {
	if cb != nil && cb.OnBranch != nil {
		cb.OnBranch(sv)
	}
}

// refreshWorld writes the wave's current state back into world, the way
// spec.md §6 requires before any event callback fires. Cells that are not
// yet collapsed get a best-effort value: the lowest set bit's mapped
// value — spec.md §9 leaves this choice to the implementation and asks
// that it be documented; DESIGN.md records the decision.
func refreshWorld[T comparable](world World[T], wave *Wave, idmap IDMap[T]) {
	n := wave.Size()
	for i := 0; i < n; i++ {
		m := wave.Mask(i)
		if m.IsZero() {
			continue
		}
		world.SetValue(i, idmap.ValueOf(m.CountTrailingZero()))
	}
}
