// Package bfs provides tunable options and error definitions
// for breadth‐first search over any state.State.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/Psrit/TilegameAI/state"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for states the traversal never saw.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxVisits, if > 0, stops the traversal after that many states were
	// visited; the result is then marked Truncated.
	MaxVisits int

	// typed callbacks, checked against S when BFS starts
	onVisit any // func(s S, depth int) error
	filter  any // func(from, to S) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no visit limit (MaxVisits == 0)
//   - no filtering and no visit callback.
func DefaultOptions() Options {
	return Options{
		Ctx: context.Background(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.fail(fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d))
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxVisits stops the traversal after n visited states.
//
//	n > 0: limit to n visits
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxVisits = n
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS. S must match the traversed state type.
func WithOnVisit[S any](fn func(s S, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithFilter skips edges from→to when fn returns false.
// S must match the traversed state type.
func WithFilter[S any](fn func(from, to S) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// node is the per-state bookkeeping of one traversal.
type node[A any] struct {
	depth     int
	parent    int // index into Order; -1 for the start state
	action    A
	hasParent bool
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence (start first).
//   - Truncated: MaxVisits stopped the traversal early.
//
// Depth, Reached and PathTo also answer for states that were discovered but
// not visited before a truncation.
type Result[S state.Identity[S], A any] struct {
	Order     []S
	Truncated bool

	nodes *state.Table[S, node[A]]
}

// Depth returns the distance (in edges) from the start to s.
func (r *Result[S, A]) Depth(s S) (int, bool) {
	n, ok := r.nodes.Get(s)
	return n.depth, ok
}

// Reached reports whether s was discovered.
func (r *Result[S, A]) Reached(s S) bool {
	return r.nodes.Has(s)
}

// Len returns the number of discovered states.
func (r *Result[S, A]) Len() int {
	return r.nodes.Len()
}

// PathTo reconstructs the action sequence from the start state to dest.
// Returns ErrNotReached if dest was not discovered.
func (r *Result[S, A]) PathTo(dest S) ([]A, error) {
	n, ok := r.nodes.Get(dest)
	if !ok {
		return nil, ErrNotReached
	}
	// build reversed path
	path := make([]A, 0, n.depth)
	for n.hasParent {
		path = append(path, n.action)
		n, _ = r.nodes.Get(r.Order[n.parent])
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Find returns the first visited state satisfying pred, which is one of the
// shallowest such states.
func (r *Result[S, A]) Find(pred func(S) bool) (S, bool) {
	for _, s := range r.Order {
		if pred(s) {
			return s, true
		}
	}
	var zero S
	return zero, false
}
