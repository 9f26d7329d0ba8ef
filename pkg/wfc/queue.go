package wfc

import "github.com/gitrdm/gowfc/internal/arena"

// Queue is a single-producer, single-consumer FIFO of pending cell ids,
// backed by one arena-allocated array of capacity N. front and back are
// always in [0, N]; whenever the queue drains to empty both reset to 0, so
// a long-running solve never needs circular-buffer arithmetic even though
// the same backing slots are reused across many branch attempts.
//
// The solver takes a Checkpoint after propagation has drained the queue
// (spec.md §4.6.2 runs propagation to completion before branching), so
// front == back at most checkpoints. The exception is the last candidate
// at a branch point: excluding the failed candidates from the parent wave
// can collapse the branch cell and queue it just before that checkpoint,
// leaving one pending entry. Checkpoint/Restore therefore work on the full
// (front, back) pair spec.md §4.4 describes. Restore rewinds the indices
// only; a slot reused after the queue drained and reset to 0 keeps its
// newer contents.
type Queue struct {
	buf   []uint64
	front int
	back  int
	cap   int
}

// NewQueue allocates a queue of capacity cap (ordinarily N, the wave size)
// from the arena a. Cell ids are non-negative and fit comfortably in a
// uint64 word, so the queue's backing array is arena words directly —
// no separate int arena is needed.
func NewQueue(a *arena.Arena, cap int) *Queue {
	return &Queue{buf: a.Alloc(cap), cap: cap}
}

// Empty reports whether the queue has no pending cells.
func (q *Queue) Empty() bool { return q.front == q.back }

// Has performs a linear scan for membership. Intended only for the debug
// assertions in Push, matching spec.md §4.4's "used only by debug
// assertions" contract — never called on the hot path when debugAsserts is
// off.
func (q *Queue) Has(cell int) bool {
	for i := q.front; i < q.back; i++ {
		if q.buf[i] == uint64(cell) {
			return true
		}
	}
	return false
}

// Push enqueues a cell id. The contract (spec.md §4.4) is that push only
// happens on a not-collapsed -> collapsed transition and is never called
// twice for the same transition. Debug builds assert that the queue is not
// full and that the cell is not already pending.
func (q *Queue) Push(cell int) {
	assertf(q.back < q.cap, "queue: push on a full queue (cap=%d)", q.cap)
	if debugAsserts {
		assertf(!q.Has(cell), "queue: duplicate push of cell %d", cell)
	}
	q.buf[q.back] = uint64(cell)
	q.back++
}

// Pop dequeues and returns the oldest pending cell id.
func (q *Queue) Pop() int {
	assertf(!q.Empty(), "queue: pop from an empty queue")
	cell := int(q.buf[q.front])
	q.front++
	if q.front == q.back {
		q.front, q.back = 0, 0
	}
	return cell
}

// Checkpoint captures (front, back) so a later Restore can rewind the
// queue's indices to this position.
type Checkpoint struct {
	front, back int
}

// Checkpoint returns a guard value capturing the queue's current state.
func (q *Queue) Checkpoint() Checkpoint {
	return Checkpoint{front: q.front, back: q.back}
}

// Restore rewinds the queue to a previously captured Checkpoint.
func (q *Queue) Restore(c Checkpoint) {
	q.front, q.back = c.front, c.back
}
