// Package bfs provides breadth-first search over any state.State,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (edge count) from a start state.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth / Reached: distance (edges) from start for each discovered state
//   - PathTo: action sequence along the BFS tree
//   - Find: first visited state satisfying a predicate
//   - OnVisit hook (may abort with an error) and per-edge filtering via WithFilter.
//   - Honors MaxDepth (d>0) and MaxVisits (n>0) limits, or explicit “no limit” (0).
//
// Why
//
//   - Exact fewest-moves answers for unit-cost domains, used to cross-check
//     the informed search in package astar.
//   - Counting the states reachable from a configuration.
//
// Determinism
//
//	Successors are enqueued in the order the state returns them, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = reachable states, E = their outgoing edges)
//
//   - Time:   O(V + E)   (each state and edge seen at most once)
//   - Memory: O(V)       (for queue and the per-state table)
//
// Usage
//
//	res, err := bfs.BFS[gridworld.Cell, gridworld.Move](
//	    start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilter(func(from, to gridworld.Cell) bool { return to.Value() < 5 }),
//	    bfs.WithOnVisit(func(c gridworld.Cell, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth), or a
//     callback whose state type differs from the traversed one.
//   - ErrNotReached       from PathTo for undiscovered states.
//   - Context errors on cancellation, and wrapped OnVisit errors.
package bfs
