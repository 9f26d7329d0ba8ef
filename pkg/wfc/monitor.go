package wfc

// SolverStats accumulates run statistics, grounded on the teacher's
// fd_monitor.go (SolverStats, SolverMonitor) but adapted to gowfc's
// single-threaded model: spec.md §5 guarantees a SolverState is never
// shared across goroutines within a Run, so plain counters replace the
// teacher's atomics — there is no concurrent writer to race against.
type SolverStats struct {
	// NodesExplored counts branch attempts (one per value tried at a
	// branch point, spec.md §4.6.3 step 3).
	NodesExplored int64
	// Backtracks counts failed branch attempts that required restoring a
	// checkpoint.
	Backtracks int64
	// ContradictionsDetected counts times the main loop found an empty
	// domain after propagation.
	ContradictionsDetected int64
	// PropagationSteps counts queue pops (one rule invocation each).
	PropagationSteps int64
	// PeakQueueDepth is the largest (back - front) the queue ever reached.
	PeakQueueDepth int
	// Iterations counts main-loop iterations, bounded by MaxIterations.
	Iterations int
}

func (s *SolverStats) recordQueueDepth(depth int) {
	if depth > s.PeakQueueDepth {
		s.PeakQueueDepth = depth
	}
}
