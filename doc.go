// Package tilegameai is a generic A* search engine and the puzzles it solves.
//
// 🚀 What is in here?
//
//	A best-first search over any state type that can compare itself, hash
//	itself and list its successors, plus two domains built on it:
//		• Engine: frontier with decrease-key, interior list, path rebuild
//		• Oracle: breadth-first reachability for checking optimality
//		• Grids: 4/8-connected, optionally weighted, text map parser
//		• Tiles: sliding-tile boards, shuffling, parity check, heuristics
//		• Telemetry: Prometheus metrics and OpenTelemetry spans per search
//
// ✨ Why this layout?
//
//   - Domains know nothing about the engine beyond the state contract
//   - Every search is scoped to one call; nothing is shared or global
//   - Bad costs and heuristics fail fast with sentinel errors
//
// Packages:
//
//	state/        State contract, xxhash Hasher, hash-and-equality Table
//	frontier/     priority queue with decrease-key and FIFO tie-break
//	astar/        Search, Options, Result
//	bfs/          breadth-first traversal and shortest unweighted paths
//	gridworld/    Grid, Cell, Move, Manhattan/Chebyshev, ParseMap
//	tilegame/     Board, Direction, Puzzle, Misplaced/Manhattan
//	telemetry/    instrumented Search wrapper
//	config/       YAML configuration with validation
//	logging/      slog construction
//	cmd/tilesolve/ command line front end
//
// Quick example, a 2×2 board one move from solved:
//
//	1 2      1 2
//	. 3  →   3 .
//
//	tilesolve solve --rows 3 --cols 3 --steps 40 --seed 7 --replay
package tilegameai
