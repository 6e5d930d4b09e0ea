package gridworld

// Goal returns a predicate matching exactly the target cell.
func Goal(target Cell) func(Cell) bool {
	return target.Equal
}

// Manhattan returns |dx|+|dy| to target, times the grid's cheapest step.
// Admissible and consistent under Conn4; under Conn8 it can overestimate,
// use Chebyshev there.
func Manhattan(target Cell) func(Cell) float64 {
	scale := 1.0
	if target.grid != nil {
		scale = target.grid.minStep
	}
	return func(c Cell) float64 {
		return scale * float64(abs(c.X-target.X)+abs(c.Y-target.Y))
	}
}

// Chebyshev returns max(|dx|,|dy|) to target, times the grid's cheapest step.
// Admissible and consistent under both connectivities.
func Chebyshev(target Cell) func(Cell) float64 {
	scale := 1.0
	if target.grid != nil {
		scale = target.grid.minStep
	}
	return func(c Cell) float64 {
		return scale * float64(max(abs(c.X-target.X), abs(c.Y-target.Y)))
	}
}

// HeuristicFor picks Manhattan for Conn4 grids and Chebyshev for Conn8.
func HeuristicFor(target Cell) func(Cell) float64 {
	if target.grid != nil && target.grid.Conn == Conn8 {
		return Chebyshev(target)
	}
	return Manhattan(target)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
