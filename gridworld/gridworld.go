package gridworld

import (
	"fmt"
	"math"

	"github.com/Psrit/TilegameAI/state"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute legal moves based on connectivity
	moves := []Move{Up, Right, Down, Left}
	if opts.Conn == Conn8 {
		moves = []Move{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
	}
	gg := &Grid{
		Width:      w,
		Height:     h,
		CellValues: cells,
		Conn:       opts.Conn,
		Passable:   opts.Passable,
		Weighted:   opts.Weighted,
		moves:      moves,
		minStep:    1,
	}
	if gg.Weighted {
		gg.minStep = gg.cheapestCell()
	}

	return gg, nil
}

// cheapestCell returns the smallest non-negative passable value, or 0 when
// the grid has none.
func (gg *Grid) cheapestCell() float64 {
	low := math.Inf(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			if v >= gg.Passable && v >= 0 && float64(v) < low {
				low = float64(v)
			}
		}
	}
	if math.IsInf(low, 1) {
		return 0
	}
	return low
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsPassable reports whether (x,y) is inside the grid and can be entered.
func (gg *Grid) IsPassable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.Passable
}

// Moves returns the legal moves under the grid's connectivity, in the order
// Successors produces them.
func (gg *Grid) Moves() []Move {
	out := make([]Move, len(gg.moves))
	copy(out, gg.moves)
	return out
}

// Cell returns the state at (x,y).
// Returns ErrOutOfBounds or ErrBlocked for positions that cannot be occupied.
func (gg *Grid) Cell(x, y int) (Cell, error) {
	if !gg.InBounds(x, y) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) on %d×%d grid", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}
	if gg.CellValues[y][x] < gg.Passable {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrBlocked, x, y)
	}
	return Cell{X: x, Y: y, grid: gg}, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *Grid) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *Grid) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// allows reports whether m is a legal move on this grid.
func (gg *Grid) allows(m Move) bool {
	for _, legal := range gg.moves {
		if legal == m {
			return true
		}
	}
	return false
}

// stepCost returns the cost of entering (x,y).
func (gg *Grid) stepCost(x, y int) float64 {
	if gg.Weighted {
		return float64(gg.CellValues[y][x])
	}
	return 1
}

// Walk applies moves to start one by one and returns the final cell along
// with the accumulated step cost. It fails with ErrInvalidMove on moves the
// connectivity forbids and ErrOutOfBounds/ErrBlocked on illegal targets.
func (gg *Grid) Walk(start Cell, moves []Move) (Cell, float64, error) {
	if start.grid != gg {
		return Cell{}, 0, fmt.Errorf("%w: start cell belongs to another grid", ErrInvalidMove)
	}
	cur, cost := start, 0.0
	for i, m := range moves {
		if !gg.allows(m) {
			return cur, cost, fmt.Errorf("%w: step %d (%s) under connectivity %d", ErrInvalidMove, i, m, gg.Conn)
		}
		dx, dy := m.Delta()
		next, err := gg.Cell(cur.X+dx, cur.Y+dy)
		if err != nil {
			return cur, cost, fmt.Errorf("step %d (%s): %w", i, m, err)
		}
		cost += gg.stepCost(next.X, next.Y)
		cur = next
	}
	return cur, cost, nil
}

// Grid returns the grid this cell belongs to.
func (c Cell) Grid() *Grid { return c.grid }

// Value returns the underlying cell value.
func (c Cell) Value() int { return c.grid.CellValues[c.Y][c.X] }

// String formats the cell as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Equal reports whether c and o are the same position on the same grid.
func (c Cell) Equal(o Cell) bool {
	return c.grid == o.grid && c.X == o.X && c.Y == o.Y
}

// Hash is derived from the coordinates alone, which Equal always compares.
func (c Cell) Hash() uint64 { return state.HashInts(c.X, c.Y) }

// Successors returns one edge per legal move into a passable cell.
func (c Cell) Successors() []state.Successor[Cell, Move] {
	gg := c.grid
	out := make([]state.Successor[Cell, Move], 0, len(gg.moves))
	for _, m := range gg.moves {
		dx, dy := m.Delta()
		nx, ny := c.X+dx, c.Y+dy
		if !gg.IsPassable(nx, ny) {
			continue
		}
		out = append(out, state.Successor[Cell, Move]{
			State:  Cell{X: nx, Y: ny, grid: gg},
			Action: m,
			Cost:   gg.stepCost(nx, ny),
		})
	}
	return out
}
