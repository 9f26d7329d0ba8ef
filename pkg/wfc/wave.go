package wfc

import "github.com/gitrdm/gowfc/internal/arena"

// Wave is the ordered sequence of N cell domains the solver searches over.
// Storage is one contiguous arena-allocated []uint64 of N*totalWords
// words (one inline word plus wordsPerCell(V) overflow words per cell), so
// Clone is a single copy() — matching spec.md §3's "cheaply
// copyable (value semantics, memcpy ...)" requirement for real, not just
// in spirit.
type Wave struct {
	words      []uint64
	n          int
	v          int
	totalWords int // 1 (lo) + wordsPerCell(v) (hi)
}

// NewWave allocates a Wave of n cells, each initialised to the full v-bit
// domain, from the arena a.
func NewWave(a *arena.Arena, n, v int) *Wave {
	tw := 1 + wordsPerCell(v)
	w := &Wave{
		words:      a.Alloc(n * tw),
		n:          n,
		v:          v,
		totalWords: tw,
	}
	full := Full(v)
	for i := 0; i < n; i++ {
		w.setDomain(i, full)
	}
	return w
}

// Clone returns a deep, independent copy of w backed by a new arena
// allocation from a.
func (w *Wave) Clone(a *arena.Arena) *Wave {
	dst := a.Alloc(len(w.words))
	copy(dst, w.words)
	return &Wave{words: dst, n: w.n, v: w.v, totalWords: w.totalWords}
}

// CopyFrom overwrites w's domains with src's. w and src must share the same
// n, v and totalWords (true for any Wave produced by Clone from the same
// parent) — used to copy a successful branch's wave back into its parent
// (spec.md §4.6.3 step 3.d).
func (w *Wave) CopyFrom(src *Wave) {
	copy(w.words, src.words)
}

// Size returns the number of cells, N.
func (w *Wave) Size() int { return w.n }

// VariableCount returns V, the number of distinct value indices.
func (w *Wave) VariableCount() int { return w.v }

func (w *Wave) base(cell int) int {
	assertf(cell >= 0 && cell < w.n, "wave: cell %d out of range [0,%d)", cell, w.n)
	return cell * w.totalWords
}

// Mask returns the raw domain of a cell.
func (w *Wave) Mask(cell int) Domain {
	b := w.base(cell)
	d := Domain{lo: w.words[b]}
	if w.totalWords > 1 {
		// Copy, not a view: callers must not mutate the wave by mutating a
		// Domain obtained from Mask.
		d.hi = append([]uint64(nil), w.words[b+1:b+w.totalWords]...)
	}
	return d
}

func (w *Wave) setDomain(cell int, d Domain) {
	b := w.base(cell)
	w.words[b] = d.lo
	for i := 0; i < w.totalWords-1; i++ {
		w.words[b+1+i] = wordAt(d.hi, i)
	}
}

// Collapse intersects cell's domain with mask (AND).
func (w *Wave) Collapse(cell int, mask Domain) {
	w.setDomain(cell, w.Mask(cell).And(mask))
}

// Enable unions cell's domain with mask (OR).
func (w *Wave) Enable(cell int, mask Domain) {
	w.setDomain(cell, w.Mask(cell).Or(mask))
}

// Entropy returns the cell's domain popcount.
func (w *Wave) Entropy(cell int) int {
	return w.Mask(cell).Popcount()
}

// IsCollapsed reports whether cell's entropy is exactly 1.
func (w *Wave) IsCollapsed(cell int) bool {
	return w.Entropy(cell) == 1
}

// IsContradicted reports whether cell's domain is empty.
func (w *Wave) IsContradicted(cell int) bool {
	return w.Mask(cell).IsZero()
}

// IsFullyCollapsed reports whether every cell's entropy is exactly 1.
func (w *Wave) IsFullyCollapsed() bool {
	for i := 0; i < w.n; i++ {
		if !w.IsCollapsed(i) {
			return false
		}
	}
	return true
}

// HasContradiction reports whether any cell has an empty domain.
func (w *Wave) HasContradiction() bool {
	for i := 0; i < w.n; i++ {
		if w.IsContradicted(i) {
			return true
		}
	}
	return false
}

// VariableID returns the variable index of a collapsed cell. Behavior is
// undefined (debug builds assert) if the cell is not collapsed.
func (w *Wave) VariableID(cell int) int {
	m := w.Mask(cell)
	assertf(m.Popcount() == 1, "wave: VariableID(%d) called on a non-collapsed cell (entropy=%d)", cell, m.Popcount())
	return m.CountTrailingZero()
}
