// Package astar implements informed best-first search (A*) over pluggable
// state spaces.
//
// The search keeps three structures, all local to one call:
//
//   - the interior list: states already expanded, in expansion order, with
//     the initial state at index 0;
//   - the record table: per-state origin action, origin (parent) index into
//     the interior list, g and f;
//   - the frontier: discovered-but-unexpanded states ordered by f.
//
// The parent-pointer tree is encoded as the interior list plus integer
// back-references, so no state ever points at another.
//
// Complexity (n = states discovered, b = branching factor):
//
//   - Time:  O(n·b·log n) with a consistent heuristic.
//   - Space: O(n) for records, interior list and frontier.
//
// Notes on implementation choices:
//
//   - The goal test runs on a state when it is extracted, not when it is
//     discovered, which is what makes the result cost-optimal.
//   - Interior states are final unless WithReopen is given. Cost-optimality
//     then requires a consistent heuristic.
//   - A better rediscovery shifts f by exactly the improvement in g; the
//     heuristic is evaluated once per state.
//   - Step costs and heuristic values are validated as they are produced and
//     violations abort the search with a wrapped sentinel error.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/Psrit/TilegameAI/frontier"
	"github.com/Psrit/TilegameAI/state"
)

// Search finds a minimum-cost action sequence from initial to any state
// satisfying goal, guided by heuristic h.
//
// Returns:
//
//   - (res, nil) with res.Found == true and the root-to-goal actions when a
//     goal is reached (empty actions if initial is already a goal);
//   - (res, nil) with res.Found == false when the frontier empties first,
//     meaning no goal is reachable;
//   - (partial, err) when the search is stopped or fails: ErrExpansionLimit,
//     a wrapped context error, or a contract violation (ErrNegativeCost,
//     ErrInvalidCost, ErrNegativeHeuristic, ErrInvalidHeuristic);
//   - (nil, err) for invalid input: ErrNilGoal, ErrNilHeuristic,
//     ErrOptionViolation.
//
// Preconditions:
//
//   - S.Equal and S.Hash agree (see package state).
//   - h is admissible for a cost-optimal result, and consistent as well
//     unless WithReopen is given.
//   - The reachable state space is finite, or the caller bounds the search
//     with WithMaxExpansions, WithTimeout or WithContext.
func Search[S state.State[S, A], A any](initial S, goal GoalFunc[S], h Heuristic[S], opts ...Option) (*Result[S, A], error) {
	// 1) Validate inputs.
	if goal == nil {
		return nil, ErrNilGoal
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}

	// 2) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	var hooks Hooks[S, A]
	if cfg.hooks != nil {
		hk, ok := cfg.hooks.(Hooks[S, A])
		if !ok {
			return nil, fmt.Errorf("%w: hooks of type %T do not match the searched state/action types", ErrOptionViolation, cfg.hooks)
		}
		hooks = hk
	}

	// 3) Apply the optional deadline.
	ctx := cfg.Ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	// 4) Run.
	r := newRunner[S, A](ctx, goal, h, cfg, hooks)
	res, err := r.run(initial)
	r.report(res, err)

	return res, err
}

// runner holds the mutable state for a single Search execution.
type runner[S state.State[S, A], A any] struct {
	ctx     context.Context
	goal    GoalFunc[S]
	h       Heuristic[S]
	options Options
	hooks   Hooks[S, A]

	interior []S                         // expanded states, expansion order
	closed   *state.Table[S, int]        // interior membership → latest index
	records  *state.Table[S, *Record[A]] // one record per discovered state
	open     *frontier.Frontier[S]       // discovered, not yet expanded

	expansions int
	reopened   int
}

func newRunner[S state.State[S, A], A any](ctx context.Context, goal GoalFunc[S], h Heuristic[S], cfg Options, hooks Hooks[S, A]) *runner[S, A] {
	return &runner[S, A]{
		ctx:      ctx,
		goal:     goal,
		h:        h,
		options:  cfg,
		hooks:    hooks,
		interior: make([]S, 0, 64),
		closed:   state.NewTable[S, int](64),
		records:  state.NewTable[S, *Record[A]](64),
		open:     frontier.New[S](64),
	}
}

// run is the main loop: goal test, expand, extract, append to interior.
func (r *runner[S, A]) run(initial S) (*Result[S, A], error) {
	// 1) Seed the record table and the interior list with the initial state.
	if err := r.seed(initial); err != nil {
		return r.partial(), err
	}
	current, index := initial, 0

	for {
		// 2) Cancellation check (once per iteration).
		if err := r.ctx.Err(); err != nil {
			return r.partial(), fmt.Errorf("astar: search interrupted after %d expansions: %w", r.expansions, err)
		}

		// 3) Goal test on the node just moved to the interior.
		if r.goal(current) {
			return r.finish(current)
		}

		// 4) Respect the expansion budget.
		if r.options.MaxExpansions > 0 && r.expansions >= r.options.MaxExpansions {
			return r.partial(), fmt.Errorf("%w: %d", ErrExpansionLimit, r.options.MaxExpansions)
		}

		// 5) Fold the successors of current into the frontier.
		if err := r.expand(current, index); err != nil {
			return r.partial(), err
		}

		// 6) Pick the cheapest-estimated frontier state. An empty frontier
		//    means the goal is unreachable, which is a result, not an error.
		next, _, err := r.open.ExtractMin()
		if errors.Is(err, frontier.ErrEmptyFrontier) {
			return r.partial(), nil
		}
		if err != nil {
			return r.partial(), err
		}

		// 7) Move it to the interior and continue from there.
		current, index = next, r.close(next)
	}
}

// seed creates the root record and appends initial at interior index 0.
func (r *runner[S, A]) seed(initial S) error {
	h0, err := r.estimate(initial)
	if err != nil {
		return err
	}
	rec := &Record[A]{OriginIndex: NoParent, G: 0, F: h0}
	r.records.Put(initial, rec)
	r.relaxed(initial, rec, true)
	r.close(initial)

	return nil
}

// close appends s to the interior list and returns its index.
func (r *runner[S, A]) close(s S) int {
	index := len(r.interior)
	r.interior = append(r.interior, s)
	r.closed.Put(s, index)
	if r.hooks.OnExpand != nil {
		rec, _ := r.records.Get(s)
		r.hooks.OnExpand(s, index, rec.G)
	}

	return index
}

// expand relaxes every outgoing edge of the interior state current, which
// sits at interior position index.
func (r *runner[S, A]) expand(current S, index int) error {
	r.expansions++
	parent, ok := r.records.Get(current)
	if !ok {
		return fmt.Errorf("%w: expanded state has no record", ErrBrokenPath)
	}
	gCurrent := parent.G

	for _, succ := range current.Successors() {
		if err := checkCost(succ.Cost); err != nil {
			return fmt.Errorf("%w (expanding interior state #%d)", err, index)
		}
		if err := r.relax(succ, gCurrent, index); err != nil {
			return err
		}
	}

	return nil
}

// relax applies one edge parent(index) --action/cost--> succ.State.
//
//  1. Interior targets are skipped (or reopened under WithReopen).
//  2. A known target keeps its record unless newG is strictly lower; when
//     lower, g and f both move down by the same delta and the origin is
//     rewritten to this edge.
//  3. An unknown target gets a fresh record with f = newG + h.
//  4. The frontier is told the (possibly new) f.
func (r *runner[S, A]) relax(succ state.Successor[S, A], gParent float64, index int) error {
	target := succ.State
	interior := r.closed.Has(target)
	if interior && !r.options.Reopen {
		return nil
	}

	newG := gParent + succ.Cost
	rec, known := r.records.Get(target)
	if known {
		if rec.G <= newG {
			return nil
		}
		rec.F = rec.F - rec.G + newG
		rec.G = newG
		rec.OriginAction = succ.Action
		rec.OriginIndex = index
		rec.HasOrigin = true
		if interior {
			r.closed.Delete(target)
			r.reopened++
		}
	} else {
		hv, err := r.estimate(target)
		if err != nil {
			return err
		}
		rec = &Record[A]{
			OriginAction: succ.Action,
			OriginIndex:  index,
			HasOrigin:    true,
			G:            newG,
			F:            newG + hv,
		}
		r.records.Put(target, rec)
	}
	r.relaxed(target, rec, !known)

	if _, _, err := r.open.InsertOrUpdate(target, rec.F); err != nil {
		return fmt.Errorf("astar: frontier rejected state: %w", err)
	}

	return nil
}

// relaxed fires the OnRelax hook with a copy of rec.
func (r *runner[S, A]) relaxed(s S, rec *Record[A], fresh bool) {
	if r.hooks.OnRelax != nil {
		r.hooks.OnRelax(s, *rec, fresh)
	}
}

// estimate evaluates and validates the heuristic at s.
func (r *runner[S, A]) estimate(s S) (float64, error) {
	v := r.h(s)
	switch {
	case math.IsNaN(v):
		return 0, ErrInvalidHeuristic
	case v < 0:
		return 0, fmt.Errorf("%w: %g", ErrNegativeHeuristic, v)
	}

	return v, nil
}

// checkCost validates a step cost.
func checkCost(c float64) error {
	switch {
	case math.IsNaN(c) || math.IsInf(c, 0):
		return fmt.Errorf("%w: %g", ErrInvalidCost, c)
	case c < 0:
		return fmt.Errorf("%w: %g", ErrNegativeCost, c)
	}

	return nil
}

// finish reconstructs the path to goal and builds the final Result.
func (r *runner[S, A]) finish(goal S) (*Result[S, A], error) {
	actions, err := r.path(goal)
	if err != nil {
		return r.partial(), err
	}
	rec, _ := r.records.Get(goal)
	res := r.partial()
	res.Actions = actions
	res.Goal = goal
	res.Found = true
	res.Cost = rec.G

	return res, nil
}

// path walks OriginAction/OriginIndex from goal back to the root, then
// reverses the collected actions into root-to-goal order.
func (r *runner[S, A]) path(goal S) ([]A, error) {
	actions := make([]A, 0, 16)
	rec, ok := r.records.Get(goal)
	if !ok {
		return nil, fmt.Errorf("%w: goal has no record", ErrBrokenPath)
	}
	for rec.HasOrigin {
		if len(actions) > len(r.interior) {
			return nil, fmt.Errorf("%w: parent chain exceeds %d interior states", ErrBrokenPath, len(r.interior))
		}
		if rec.OriginIndex < 0 || rec.OriginIndex >= len(r.interior) {
			return nil, fmt.Errorf("%w: origin index %d out of range", ErrBrokenPath, rec.OriginIndex)
		}
		actions = append(actions, rec.OriginAction)
		at := rec.OriginIndex
		if rec, ok = r.records.Get(r.interior[at]); !ok {
			return nil, fmt.Errorf("%w: interior state #%d has no record", ErrBrokenPath, at)
		}
	}
	slices.Reverse(actions)

	return actions, nil
}

// partial returns a Result carrying only the counters.
func (r *runner[S, A]) partial() *Result[S, A] {
	return &Result[S, A]{
		Expanded: len(r.interior),
		Reopened: r.reopened,
	}
}

// report writes a debug summary of the finished search.
func (r *runner[S, A]) report(res *Result[S, A], err error) {
	logger := r.options.Logger
	if !logger.Enabled(r.ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Expanded),
		slog.Int("discovered", r.records.Len()),
		slog.Int("frontier", r.open.Len()),
		slog.Int("reopened", res.Reopened),
	}
	if res.Found {
		attrs = append(attrs, slog.Int("path_length", len(res.Actions)), slog.Float64("cost", res.Cost))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(r.ctx, slog.LevelDebug, "astar search finished", attrs...)
}
