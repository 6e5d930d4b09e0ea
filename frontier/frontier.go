// Package frontier implements the open set of a best-first search: a
// min-priority queue keyed by state identity with insert-or-decrease-key as a
// single operation.
//
// Each state appears at most once. InsertOrUpdate either inserts an absent
// state or lowers the priority of a present one; it never raises a priority
// and never creates a second entry at a different priority. Ties between
// equal priorities are broken by insertion order (a decrease-key keeps the
// original position in that order), so ExtractMin is fully reproducible for
// a given sequence of calls.
//
// Complexity:
//
//   - InsertOrUpdate: O(log n)
//   - ExtractMin:     O(log n)
//   - Contains, Priority, Len, IsEmpty: O(1) expected
//
// A Frontier is not safe for concurrent use.
package frontier

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/Psrit/TilegameAI/state"
)

// Sentinel errors returned by Frontier operations.
var (
	// ErrEmptyFrontier is returned by ExtractMin when no states remain.
	ErrEmptyFrontier = errors.New("frontier: no states remain")

	// ErrInvalidPriority is returned when a NaN priority is supplied.
	ErrInvalidPriority = errors.New("frontier: priority is NaN")
)

// item is one heap entry.
type item[S any] struct {
	state    S
	priority float64
	seq      uint64 // insertion order, tie-breaker
	index    int    // position in the heap, -1 once removed
}

// queue is the container/heap backing store, ordered by (priority, seq).
type queue[S any] []*item[S]

func (q queue[S]) Len() int { return len(q) }

func (q queue[S]) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q queue[S]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue[S]) Push(x any) {
	it := x.(*item[S])
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *queue[S]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // drop the reference for the GC
	it.index = -1
	*q = old[:n-1]

	return it
}

// Frontier is a min-priority set of states.
type Frontier[S state.Identity[S]] struct {
	heap  queue[S]
	index *state.Table[S, *item[S]]
	seq   uint64
}

// New returns an empty Frontier sized for roughly hint states.
func New[S state.Identity[S]](hint int) *Frontier[S] {
	if hint < 0 {
		hint = 0
	}
	return &Frontier[S]{
		heap:  make(queue[S], 0, hint),
		index: state.NewTable[S, *item[S]](hint),
	}
}

// InsertOrUpdate inserts s with the given priority if it is absent, or lowers
// its priority if s is present and priority is strictly lower than the
// current one. A higher or equal priority for a present state is a no-op.
//
// inserted reports a fresh insertion; lowered reports a decrease-key.
// At most one of the two is true.
func (f *Frontier[S]) InsertOrUpdate(s S, priority float64) (inserted, lowered bool, err error) {
	if math.IsNaN(priority) {
		return false, false, fmt.Errorf("%w: state hash %#x", ErrInvalidPriority, s.Hash())
	}

	if it, ok := f.index.Get(s); ok {
		if priority >= it.priority {
			return false, false, nil
		}
		it.priority = priority
		heap.Fix(&f.heap, it.index)
		return false, true, nil
	}

	it := &item[S]{state: s, priority: priority, seq: f.seq}
	f.seq++
	heap.Push(&f.heap, it)
	f.index.Put(s, it)

	return true, false, nil
}

// ExtractMin removes and returns the state with the smallest priority,
// together with that priority. Returns ErrEmptyFrontier when empty.
func (f *Frontier[S]) ExtractMin() (S, float64, error) {
	if len(f.heap) == 0 {
		var zero S
		return zero, 0, ErrEmptyFrontier
	}
	it := heap.Pop(&f.heap).(*item[S])
	f.index.Delete(it.state)

	return it.state, it.priority, nil
}

// Contains reports whether s is currently in the frontier.
func (f *Frontier[S]) Contains(s S) bool { return f.index.Has(s) }

// Priority returns the current priority of s, if present.
func (f *Frontier[S]) Priority(s S) (float64, bool) {
	it, ok := f.index.Get(s)
	if !ok {
		return 0, false
	}
	return it.priority, true
}

// Len returns the number of states in the frontier.
func (f *Frontier[S]) Len() int { return len(f.heap) }

// IsEmpty reports whether the frontier holds no states.
func (f *Frontier[S]) IsEmpty() bool { return len(f.heap) == 0 }
