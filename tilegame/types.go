package tilegame

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tilegame operations.
var (
	// ErrInvalidShape indicates non-positive dimensions or mismatched boards.
	ErrInvalidShape = errors.New("tilegame: invalid board shape")
	// ErrInvalidBoard indicates tiles that are not a permutation of 0..n-1.
	ErrInvalidBoard = errors.New("tilegame: tiles must be a permutation of 0..n-1")
	// ErrUnknownDirection indicates a direction outside Up/Down/Left/Right.
	ErrUnknownDirection = errors.New("tilegame: unknown direction")
	// ErrIllegalMove indicates a move that would push the blank off the board.
	ErrIllegalMove = errors.New("tilegame: illegal move")
	// ErrInvalidSteps indicates a negative shuffle length.
	ErrInvalidSteps = errors.New("tilegame: shuffle steps cannot be negative")
	// ErrUnknownHeuristic indicates an unsupported heuristic name.
	ErrUnknownHeuristic = errors.New("tilegame: unknown heuristic")
)

// Direction is the way the blank moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in successor order.
var Directions = [...]Direction{Up, Down, Left, Right}

var directionNames = [...]string{"Up", "Down", "Left", "Right"}

// directionDelta holds the (drow, dcol) offset of each Direction.
var directionDelta = [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool { return d >= Up && d <= Right }

// String returns the direction name, or "Direction(n)" for unknown values.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// ParseDirection resolves a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Board is an immutable puzzle configuration. The zero Board is empty and
// only useful as a placeholder.
type Board struct {
	rows, cols int
	tiles      []int // row-major, 0 is the blank
	blank      int   // index of 0 in tiles
}
