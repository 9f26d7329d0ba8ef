package wfc

// EntropyScanner picks the next cell for the solver to branch on, given the
// current wave. It returns cell == -1 when no cell has entropy greater than
// one. gowfc ships exactly one implementation, minEntropyScanner, the
// minimum-entropy-then-lowest-id rule spec.md §4.6.3 mandates; the type is
// exported as an extension point (SolverOption WithEntropyScanner) rather
// than a closed switch, the way the teacher's labeling.go exposes
// LabelingStrategy for FirstFailLabeling vs DegreeLabeling.
type EntropyScanner func(wave *Wave) (cell int, entropy int)

// minEntropyScanner is the default, required EntropyScanner: the cell with
// the smallest entropy greater than one, breaking ties by lowest cell id.
func minEntropyScanner(wave *Wave) (int, int) {
	cell, best := -1, 0
	n := wave.Size()
	for i := 0; i < n; i++ {
		e := wave.Entropy(i)
		if e > 1 && (cell == -1 || e < best) {
			cell, best = i, e
		}
	}
	return cell, best
}
