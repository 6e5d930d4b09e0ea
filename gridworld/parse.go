package gridworld

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseMap reads a text map and returns the grid together with its start
// and goal cells.
//
// Characters:
//
//	'.'      open cell (value 1)
//	'#'      wall (value 0)
//	'S'      start, open
//	'G'      goal, open
//	'1'-'9'  open cell whose entry cost is the digit
//
// Any digit makes the grid Weighted. Blank lines are skipped. Exactly one S
// and one G are required; a malformed map yields ErrBadMap (or
// ErrNonRectangular for ragged rows).
func ParseMap(r io.Reader, conn Connectivity) (*Grid, Cell, Cell, error) {
	var (
		values           [][]int
		weighted         bool
		sx, sy, gx, gy   = -1, -1, -1, -1
		starts, goals, y int
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for x, ch := range []byte(text) {
			switch {
			case ch == '.':
				row = append(row, 1)
			case ch == '#':
				row = append(row, 0)
			case ch == 'S':
				sx, sy = x, y
				starts++
				row = append(row, 1)
			case ch == 'G':
				gx, gy = x, y
				goals++
				row = append(row, 1)
			case ch >= '1' && ch <= '9':
				weighted = true
				row = append(row, int(ch-'0'))
			default:
				return nil, Cell{}, Cell{}, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrBadMap, line, x+1, ch)
			}
		}
		values = append(values, row)
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, Cell{}, Cell{}, fmt.Errorf("gridworld: read map: %w", err)
	}
	if starts != 1 || goals != 1 {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: need exactly one S and one G, got %d and %d", ErrBadMap, starts, goals)
	}

	gg, err := NewGrid(values, Options{Passable: 1, Conn: conn, Weighted: weighted})
	if err != nil {
		return nil, Cell{}, Cell{}, err
	}
	start := Cell{X: sx, Y: sy, grid: gg}
	goal := Cell{X: gx, Y: gy, grid: gg}

	return gg, start, goal, nil
}
