package tilegame

import (
	"fmt"

	"github.com/Psrit/TilegameAI/astar"
)

// Puzzle is one instance to solve: a scrambled board and the board to reach.
type Puzzle struct {
	initial Board
	goal    Board
}

// NewPuzzle pairs initial with goal. Both must have the same shape.
func NewPuzzle(initial, goal Board) (*Puzzle, error) {
	if !initial.sameShape(goal) || len(initial.tiles) == 0 {
		return nil, fmt.Errorf("%w: initial %d×%d, goal %d×%d",
			ErrInvalidShape, initial.rows, initial.cols, goal.rows, goal.cols)
	}
	return &Puzzle{initial: initial, goal: goal}, nil
}

// Initial returns the starting board.
func (p *Puzzle) Initial() Board { return p.initial }

// Target returns the board to reach.
func (p *Puzzle) Target() Board { return p.goal }

// Goal returns the goal predicate for astar.Search.
func (p *Puzzle) Goal() astar.GoalFunc[Board] { return p.goal.Equal }

// Solvable reports whether the target is reachable from the initial board.
func (p *Puzzle) Solvable() bool { return p.initial.Solvable(p.goal) }

// Solve searches for a shortest move sequence with heuristic h.
// An unsolvable puzzle yields Found == false after the whole reachable half
// of the state space has been expanded, unless opts bound the search.
func (p *Puzzle) Solve(h astar.Heuristic[Board], opts ...astar.Option) (*astar.Result[Board, Direction], error) {
	return astar.Search[Board, Direction](p.initial, p.Goal(), h, opts...)
}
