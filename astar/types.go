// Package astar defines core types and configuration options for informed
// best-first (A*) search over any state type satisfying state.State.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNilHeuristic indicates that no heuristic was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNegativeCost indicates a successor with a negative step cost.
	ErrNegativeCost = errors.New("astar: negative step cost")

	// ErrInvalidCost indicates a successor whose step cost is NaN or infinite.
	ErrInvalidCost = errors.New("astar: step cost is not a finite number")

	// ErrNegativeHeuristic indicates the heuristic returned a negative estimate.
	ErrNegativeHeuristic = errors.New("astar: heuristic returned a negative estimate")

	// ErrInvalidHeuristic indicates the heuristic returned NaN.
	ErrInvalidHeuristic = errors.New("astar: heuristic returned NaN")

	// ErrExpansionLimit indicates the MaxExpansions budget ran out before a
	// goal was reached or the frontier emptied.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrBrokenPath indicates that path reconstruction found a missing record
	// or a parent chain longer than the interior list. It signals an internal
	// fault or a state type whose Hash disagrees with Equal.
	ErrBrokenPath = errors.New("astar: search tree is inconsistent")
)

// NoParent is the OriginIndex of the initial state's record.
const NoParent = -1

// GoalFunc reports whether s satisfies the goal.
type GoalFunc[S any] func(s S) bool

// Heuristic estimates the remaining cost from s to the nearest goal.
// Estimates must be non-negative. +Inf is allowed and marks s as a dead end
// that will only be expanded once everything finite has been tried.
type Heuristic[S any] func(s S) float64

// Zero is the trivial heuristic. With it Search degrades to uniform-cost
// search (Dijkstra), which is always admissible and consistent.
func Zero[S any](S) float64 { return 0 }

// Record is the per-state bookkeeping kept during one search.
//
// OriginAction and OriginIndex describe the edge that produced the best known
// path: the parent is the interior state at OriginIndex. The initial state has
// HasOrigin == false and OriginIndex == NoParent. F == G + h(state), with F
// moved by the same delta as G whenever a cheaper path is found.
type Record[A any] struct {
	OriginAction A
	OriginIndex  int
	HasOrigin    bool
	G            float64
	F            float64
}

// Result is the outcome of Search.
//
// When Found is false the goal is unreachable from the initial state (or the
// search stopped early, in which case Search also returns an error).
// Actions is never nil when Found is true; it is empty when the initial state
// already satisfies the goal.
type Result[S any, A any] struct {
	Actions  []A     // root-to-goal action sequence
	Goal     S       // goal state reached; zero value when not found
	Found    bool    // whether a goal was reached
	Cost     float64 // cumulative cost of Actions
	Expanded int     // length of the interior list at termination
	Reopened int     // interior states reopened (WithReopen only)
}

// Unreachable reports whether the search finished without reaching a goal.
func (r *Result[S, A]) Unreachable() bool { return !r.Found }

// Hooks lets callers observe the search as it runs.
// Nil fields are ignored. Hooks must not retain or mutate engine state.
type Hooks[S any, A any] struct {
	// OnExpand is called when s is appended to the interior list at index,
	// starting with the initial state at index 0.
	OnExpand func(s S, index int, g float64)

	// OnRelax is called after the record of s is created (fresh == true) or
	// improved by a strictly cheaper path (fresh == false).
	OnRelax func(s S, rec Record[A], fresh bool)
}

// Options configures Search.
//
// Ctx           – cancellation and deadlines; checked once per iteration.
// Timeout       – optional deadline applied on top of Ctx (0 = none).
// MaxExpansions – optional cap on expanded states (0 = unlimited).
// Reopen        – reopen interior states on a strictly cheaper rediscovery.
// Logger        – destination for debug summaries; discards by default.
//
// Reopen is only needed for optimality when the heuristic is admissible but
// not consistent.
type Options struct {
	Ctx           context.Context
	Timeout       time.Duration
	MaxExpansions int
	Reopen        bool
	Logger        *slog.Logger

	hooks any   // Hooks[S, A]; type-checked when Search starts
	err   error // first invalid option, surfaced as ErrOptionViolation
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the defaults used by Search:
//   - Ctx:           context.Background()
//   - Timeout:       0 (none)
//   - MaxExpansions: 0 (unlimited; termination is the caller's concern in
//     unbounded state spaces)
//   - Reopen:        false (interior states are final)
//   - Logger:        discards everything
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout bounds the wall-clock duration of the search.
//
//	d > 0: deadline of d from the start of Search
//	d <= 0: invalid option → ErrOptionViolation
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.fail(fmt.Errorf("%w: Timeout must be positive (%s)", ErrOptionViolation, d))
			return
		}
		o.Timeout = d
	}
}

// WithMaxExpansions caps the number of states expanded.
//
//	n > 0:  at most n expansions, then ErrExpansionLimit
//	n == 0: explicit "no limit"
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.fail(fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n))
			return
		}
		o.MaxExpansions = n
	}
}

// WithReopen lets interior states be reopened when rediscovered via a
// strictly cheaper path. Reopened states are appended to the interior list
// again, so the list may then hold the same state more than once.
func WithReopen() Option {
	return func(o *Options) {
		o.Reopen = true
	}
}

// WithLogger sets the logger for debug summaries. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHooks registers observation callbacks. The type parameters must match
// the ones Search is instantiated with, otherwise Search fails with
// ErrOptionViolation.
func WithHooks[S any, A any](h Hooks[S, A]) Option {
	return func(o *Options) {
		o.hooks = h
	}
}

// fail records the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
