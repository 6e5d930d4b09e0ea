package gridworld

import (
	"errors"
	"strconv"
	"sync"
)

// Sentinel errors for gridworld operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridworld: coordinates out of bounds")
	// ErrBlocked indicates coordinates of an impassable cell.
	ErrBlocked = errors.New("gridworld: cell is not passable")
	// ErrInvalidMove indicates an unknown move or one the connectivity forbids.
	ErrInvalidMove = errors.New("gridworld: invalid move")
	// ErrBadMap indicates malformed ParseMap input.
	ErrBadMap = errors.New("gridworld: malformed map")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Move is the action label of a grid step. Y grows downwards.
type Move int

const (
	Up Move = iota
	Right
	Down
	Left
	UpRight
	DownRight
	DownLeft
	UpLeft
)

var moveNames = [...]string{"Up", "Right", "Down", "Left", "UpRight", "DownRight", "DownLeft", "UpLeft"}

// moveDelta holds the (dx, dy) offset of each Move.
var moveDelta = [...][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

// String returns the move name, or "Move(n)" for unknown values.
func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "Move(" + strconv.Itoa(int(m)) + ")"
	}
	return moveNames[m]
}

// Delta returns the (dx, dy) offset of m. Unknown moves return (0, 0).
func (m Move) Delta() (dx, dy int) {
	if m < 0 || int(m) >= len(moveDelta) {
		return 0, 0
	}
	return moveDelta[m][0], moveDelta[m][1]
}

// Diagonal reports whether m changes both coordinates.
func (m Move) Diagonal() bool { return m >= UpRight && m <= UpLeft }

// Options contains tunable parameters for grid construction.
type Options struct {
	// Passable is the minimum cell value that can be entered.
	Passable int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weighted makes entering a cell cost its value instead of 1.
	Weighted bool
}

// DefaultOptions returns Options with default settings:
// Passable=1 (0 is a wall), Conn=Conn4, unit costs.
func DefaultOptions() Options {
	return Options{
		Passable: 1,
		Conn:     Conn4,
	}
}

// Grid is an immutable 2D grid. Width and Height define dimensions;
// CellValues[y][x] holds the original input value.
type Grid struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	Passable      int
	Weighted      bool

	moves   []Move  // legal moves for Conn, in successor order
	minStep float64 // cheapest possible step cost, scales heuristics

	labelsOnce sync.Once
	labels     []int // component label per row-major index, -1 for walls
	ncomp      int
}

// Cell is one position on a Grid. It is the state type searched by the
// engines; Equal and Hash both depend only on the grid and (X, Y).
type Cell struct {
	X, Y int
	grid *Grid
}
