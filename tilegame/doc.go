// Package tilegame models the sliding-tile puzzle (8-puzzle, 15-puzzle and
// their rectangular cousins) as a state space for package astar.
//
// What:
//
//   - Board is an immutable rows×cols arrangement of tiles 1..n-1 and a
//     single blank (0). The solved board lists tiles row-major, blank last.
//   - Direction names the way the blank moves: Up, Down, Left, Right.
//     Every move costs 1.
//   - Board implements state.State[Board, Direction]; Equal compares
//     dimensions and tiles, Hash mixes both with xxhash.
//   - Shuffle scrambles a board by a random walk of the blank, so the result
//     is always solvable.
//   - Misplaced and Manhattan are admissible, consistent heuristics.
//     Zero turns the search into uniform-cost search.
//   - Solvable decides reachability up front with a permutation-parity test.
//   - Puzzle pairs an initial and a goal board and solves it with astar.
//
// Complexity:
//
//   - Move / Successors: O(n) per produced board (copy of the tiles).
//   - Manhattan:         O(n) per evaluation.
//   - Solvable:          O(n).
//
// Errors:
//
//   - ErrInvalidShape: non-positive dimensions, or boards of differing size.
//   - ErrInvalidBoard: tiles are not a permutation of 0..n-1.
//   - ErrUnknownDirection: a Direction value or name is not one of the four.
//   - ErrIllegalMove: the blank would leave the board.
//   - ErrInvalidSteps: negative shuffle length.
//   - ErrUnknownHeuristic: ParseHeuristic got an unsupported name.
package tilegame
