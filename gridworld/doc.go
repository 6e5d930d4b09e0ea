// Package gridworld treats a 2D grid of integer cell values as a searchable
// state space: every passable cell is a state and every legal step to a
// neighbouring cell is an edge.
//
// What:
//
//   - Grid wraps a rectangular [][]int with a Passable threshold: cells whose
//     value is ≥ Passable can be entered, everything else is a wall.
//   - Four- or eight-connectivity (Conn4 or Conn8).
//   - Unit step costs, or Weighted costs where entering a cell costs its value.
//   - Cell implements state.State[Cell, Move], so it plugs straight into
//     astar.Search and bfs.BFS.
//   - Manhattan and Chebyshev heuristics scaled by the cheapest step, which
//     keeps them admissible and consistent on weighted grids too.
//   - Components / Connected label connected regions, which predicts
//     unreachability without running a search.
//   - ParseMap reads a text map ('.', '#', 'S', 'G', digits).
//
// Why:
//
//   - Game maps and robot floor plans.
//   - Small, fully checkable domains for exercising the search engines:
//     corridors, partitioned maps, weighted terrain.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory (deep copy).
//   - Successors: O(d), d = 4 or 8.
//   - Components: O(W×H×d) once, then O(1) per Connected query.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrBlocked: coordinates name a wall.
//   - ErrInvalidMove: a move is unknown or not allowed by the connectivity.
//   - ErrBadMap: ParseMap input is malformed.
package gridworld
