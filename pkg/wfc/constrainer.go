package wfc

// Constrainer is the sole mutator exposed to rule functions (spec.md §4.5).
// It wraps a Wave and a Queue and implements the observed-transition
// protocol: before and after each mutation it notes whether the affected
// cell is collapsed, and pushes the cell onto the queue exactly when the
// transition is not-collapsed -> collapsed. Transitions into contradiction
// are never queued — the solver's main loop discovers contradictions by
// scanning after propagation drains (spec.md §4.6.2 step 2).
type Constrainer struct {
	wave  *Wave
	queue *Queue

	// onCollapse, when set, is notified of every cell that transitions to
	// collapsed through this Constrainer. It exists solely so the solver
	// can fire the optional OnCellCollapsed event (spec.md §6) at the
	// exact point spec.md §4.5's observed-transition protocol detects a
	// transition; rule functions never see or set this field.
	onCollapse func(cell int)
}

// NewConstrainer wraps a wave and queue pair for use by rule functions.
func NewConstrainer(wave *Wave, queue *Queue) *Constrainer {
	return &Constrainer{wave: wave, queue: queue}
}

func (c *Constrainer) notifyIfCollapsed(cell int, wasCollapsed bool) {
	if !wasCollapsed && c.wave.IsCollapsed(cell) {
		c.queue.Push(cell)
		if c.onCollapse != nil {
			c.onCollapse(cell)
		}
	}
}

// Exclude removes values from cell's domain: collapse(cell, ~mask_for(v...)).
func (c *Constrainer) Exclude(cell int, values ...int) {
	was := c.wave.IsCollapsed(cell)
	c.wave.Collapse(cell, MaskFor(values...).Not(c.wave.v))
	c.notifyIfCollapsed(cell, was)
}

// ExcludeMask removes every value set in mask from cell's domain.
func (c *Constrainer) ExcludeMask(cell int, mask Domain) {
	was := c.wave.IsCollapsed(cell)
	c.wave.Collapse(cell, mask.Not(c.wave.v))
	c.notifyIfCollapsed(cell, was)
}

// Only restricts cell's domain to exactly the given values:
// collapse(cell, mask_for(v...)).
func (c *Constrainer) Only(cell int, values ...int) {
	was := c.wave.IsCollapsed(cell)
	c.wave.Collapse(cell, MaskFor(values...))
	c.notifyIfCollapsed(cell, was)
}

// OnlyMask restricts cell's domain to exactly mask.
func (c *Constrainer) OnlyMask(cell int, mask Domain) {
	was := c.wave.IsCollapsed(cell)
	c.wave.Collapse(cell, mask)
	c.notifyIfCollapsed(cell, was)
}

// Include re-admits values into cell's domain, but only if the cell is not
// already collapsed — a no-op on a collapsed cell. This is load-bearing
// for the "exclude all walls, then re-include walls next to floors" style
// of initial-state rule spec.md §9 calls out by name; preserve the
// semantics exactly rather than "fixing" it to always apply.
func (c *Constrainer) Include(cell int, values ...int) {
	if c.wave.IsCollapsed(cell) {
		return
	}
	c.wave.Enable(cell, MaskFor(values...))
	c.notifyIfCollapsed(cell, false)
}

// IncludeMask is the Domain-valued form of Include.
func (c *Constrainer) IncludeMask(cell int, mask Domain) {
	if c.wave.IsCollapsed(cell) {
		return
	}
	c.wave.Enable(cell, mask)
	c.notifyIfCollapsed(cell, false)
}
