package tilegame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Psrit/TilegameAI/state"
)

// NewBoard returns the solved rows×cols board: tile (i+1) mod n at
// row-major position i, so the blank ends up in the bottom-right corner.
func NewBoard(rows, cols int) (Board, error) {
	if rows < 1 || cols < 1 {
		return Board{}, fmt.Errorf("%w: %d×%d", ErrInvalidShape, rows, cols)
	}
	n := rows * cols
	tiles := make([]int, n)
	for i := range tiles {
		tiles[i] = (i + 1) % n
	}
	return Board{rows: rows, cols: cols, tiles: tiles, blank: n - 1}, nil
}

// FromTiles builds a board from row-major tiles. The slice is copied.
// Returns ErrInvalidShape for bad dimensions or a length mismatch and
// ErrInvalidBoard unless tiles is a permutation of 0..rows*cols-1.
func FromTiles(rows, cols int, tiles []int) (Board, error) {
	if rows < 1 || cols < 1 || len(tiles) != rows*cols {
		return Board{}, fmt.Errorf("%w: %d×%d with %d tiles", ErrInvalidShape, rows, cols, len(tiles))
	}
	seen := make([]bool, len(tiles))
	blank := -1
	for i, t := range tiles {
		if t < 0 || t >= len(tiles) || seen[t] {
			return Board{}, fmt.Errorf("%w: tile %d at position %d", ErrInvalidBoard, t, i)
		}
		seen[t] = true
		if t == 0 {
			blank = i
		}
	}
	cp := make([]int, len(tiles))
	copy(cp, tiles)

	return Board{rows: rows, cols: cols, tiles: cp, blank: blank}, nil
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// Tiles returns a copy of the row-major tiles.
func (b Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// At returns the tile at (row, col); 0 is the blank.
func (b Board) At(row, col int) int { return b.tiles[row*b.cols+col] }

// Blank returns the position of the blank.
func (b Board) Blank() (row, col int) { return b.blank / b.cols, b.blank % b.cols }

// sameShape reports whether b and o have the same dimensions.
func (b Board) sameShape(o Board) bool { return b.rows == o.rows && b.cols == o.cols }

// Equal reports whether b and o have the same dimensions and tiles.
func (b Board) Equal(o Board) bool {
	if !b.sameShape(o) || len(b.tiles) != len(o.tiles) {
		return false
	}
	for i, t := range b.tiles {
		if o.tiles[i] != t {
			return false
		}
	}
	return true
}

// Hash mixes the dimensions and the tiles, the same fields Equal compares.
func (b Board) Hash() uint64 {
	return state.NewHasher().WriteInt(b.rows).WriteInt(b.cols).WriteInts(b.tiles...).Sum64()
}

// target returns the blank's index after moving d, or -1 if it would leave
// the board.
func (b Board) target(d Direction) int {
	r, c := b.Blank()
	r += directionDelta[d][0]
	c += directionDelta[d][1]
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return -1
	}
	return r*b.cols + c
}

// slide returns a copy of b with the blank moved to index to.
func (b Board) slide(to int) Board {
	tiles := make([]int, len(b.tiles))
	copy(tiles, b.tiles)
	tiles[b.blank], tiles[to] = tiles[to], 0
	return Board{rows: b.rows, cols: b.cols, tiles: tiles, blank: to}
}

// Move returns the board after the blank moves in direction d.
func (b Board) Move(d Direction) (Board, error) {
	if !d.Valid() {
		return Board{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	to := b.target(d)
	if to < 0 {
		r, c := b.Blank()
		return Board{}, fmt.Errorf("%w: blank at (%d,%d) cannot move %s", ErrIllegalMove, r, c, d)
	}
	return b.slide(to), nil
}

// Successors returns one unit-cost edge per legal direction, in the order
// Up, Down, Left, Right.
func (b Board) Successors() []state.Successor[Board, Direction] {
	out := make([]state.Successor[Board, Direction], 0, len(Directions))
	for _, d := range Directions {
		to := b.target(d)
		if to < 0 {
			continue
		}
		out = append(out, state.Successor[Board, Direction]{State: b.slide(to), Action: d, Cost: 1})
	}
	return out
}

// Apply plays dirs in order and returns the final board.
func (b Board) Apply(dirs []Direction) (Board, error) {
	cur := b
	for i, d := range dirs {
		next, err := cur.Move(d)
		if err != nil {
			return cur, fmt.Errorf("move %d: %w", i, err)
		}
		cur = next
	}
	return cur, nil
}

// Replay plays dirs in order and returns every board visited, starting
// with b itself.
func (b Board) Replay(dirs []Direction) ([]Board, error) {
	out := make([]Board, 0, len(dirs)+1)
	out = append(out, b)
	cur := b
	for i, d := range dirs {
		next, err := cur.Move(d)
		if err != nil {
			return out, fmt.Errorf("move %d: %w", i, err)
		}
		out = append(out, next)
		cur = next
	}
	return out, nil
}

// Solvable reports whether goal can be reached from b.
//
// On boards with at least two rows and two columns, the reachable boards
// are exactly those whose tile permutation parity equals the parity of the
// blank's taxicab displacement. On a single row or column tiles never pass
// each other, so their order must already match.
func (b Board) Solvable(goal Board) bool {
	if !b.sameShape(goal) || len(b.tiles) != len(goal.tiles) {
		return false
	}
	if b.rows == 1 || b.cols == 1 {
		return sameOrder(b.tiles, goal.tiles)
	}

	// Permutation mapping each position of b to the goal position of its tile.
	where := make([]int, len(goal.tiles))
	for i, t := range goal.tiles {
		where[t] = i
	}
	perm := make([]int, len(b.tiles))
	for i, t := range b.tiles {
		perm[i] = where[t]
	}

	br, bc := b.Blank()
	gr, gc := goal.Blank()
	blankParity := (abs(br-gr) + abs(bc-gc)) % 2

	return parity(perm) == blankParity
}

// parity returns 0 for even and 1 for odd permutations.
func parity(perm []int) int {
	seen := make([]bool, len(perm))
	swaps := 0
	for i := range perm {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			length++
		}
		swaps += length - 1
	}
	return swaps % 2
}

func sameOrder(a, b []int) bool {
	j := 0
	for _, t := range a {
		if t == 0 {
			continue
		}
		for b[j] == 0 {
			j++
		}
		if b[j] != t {
			return false
		}
		j++
	}
	return true
}

// String renders the board as rows of right-aligned tiles, the blank shown
// as '.'.
func (b Board) String() string {
	if len(b.tiles) == 0 {
		return ""
	}
	width := len(strconv.Itoa(len(b.tiles) - 1))
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if t := b.At(r, c); t != 0 {
				cell = strconv.Itoa(t)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		if r < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
