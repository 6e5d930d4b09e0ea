// Package bfs provides breadth-first search over any state.State,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores states in increasing distance from a start state,
// with optional hooks, depth limiting, visit limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/Psrit/TilegameAI/state"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S any] struct {
	s     S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S state.State[S, A], A any] struct {
	opts    Options
	ctx     context.Context
	onVisit func(S, int) error
	filter  func(S, S) bool
	queue   []queueItem[S]
	res     *Result[S, A]
}

// BFS runs breadth-first search starting from start, applying any number
// of functional Options. Step costs are ignored: depth counts edges.
// Returns ErrOptionViolation for bad options, the context error on
// cancellation, or any user-supplied hook error. The partial result is
// returned alongside runtime errors.
func BFS[S state.State[S, A], A any](start S, opts ...Option) (*Result[S, A], error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, A]{
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[S], 0, 64),
		res: &Result[S, A]{
			Order: make([]S, 0, 64),
			nodes: state.NewTable[S, node[A]](64),
		},
	}
	if o.onVisit != nil {
		fn, ok := o.onVisit.(func(S, int) error)
		if !ok {
			return nil, fmt.Errorf("%w: OnVisit of type %T does not match the state type", ErrOptionViolation, o.onVisit)
		}
		w.onVisit = fn
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(S, S) bool)
		if !ok {
			return nil, fmt.Errorf("%w: filter of type %T does not match the state type", ErrOptionViolation, o.filter)
		}
		w.filter = fn
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, node[A]{depth: 0, parent: -1})
	// Main loop
	return w.res, w.loop()
}

// enqueue records n for s and adds it to the queue.
func (w *walker[S, A]) enqueue(s S, n node[A]) {
	w.res.nodes.Put(s, n)
	w.queue = append(w.queue, queueItem[S]{s: s, depth: n.depth})
}

// loop processes the queue until empty, error, truncation, or cancellation.
func (w *walker[S, A]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.opts.MaxVisits > 0 && len(w.res.Order) >= w.opts.MaxVisits {
			w.res.Truncated = true
			return nil
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item, len(w.res.Order)-1)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker[S, A]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S, A]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.s)
	if w.onVisit == nil {
		return nil
	}
	if err := w.onVisit(item.s, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// successor of item, which was visited at Order[at].
func (w *walker[S, A]) enqueueNeighbors(item queueItem[S], at int) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, succ := range item.s.Successors() {
		if w.filter != nil && !w.filter(item.s, succ.State) {
			continue
		}
		// first time seen?
		if !w.res.nodes.Has(succ.State) {
			w.enqueue(succ.State, node[A]{
				depth:     nextDepth,
				parent:    at,
				action:    succ.Action,
				hasParent: true,
			})
		}
	}
}
