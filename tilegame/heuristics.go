package tilegame

import (
	"fmt"
	"math"
	"strings"

	"github.com/Psrit/TilegameAI/astar"
)

// Heuristic names accepted by ParseHeuristic.
const (
	HeuristicManhattan = "manhattan"
	HeuristicMisplaced = "misplaced"
	HeuristicZero      = "zero"
)

// Misplaced counts the non-blank tiles that are not where goal has them.
// Every misplaced tile needs at least one move, so the estimate is admissible.
// A board whose shape differs from goal's can never reach it and scores +Inf.
func Misplaced(goal Board) astar.Heuristic[Board] {
	return func(b Board) float64 {
		if !b.sameShape(goal) {
			return math.Inf(1)
		}
		n := 0
		for i, t := range b.tiles {
			if t != 0 && t != goal.tiles[i] {
				n++
			}
		}
		return float64(n)
	}
}

// Manhattan sums, over non-blank tiles, the row and column distance to the
// tile's position in goal. It dominates Misplaced. Like Misplaced it scores
// boards of another shape +Inf.
func Manhattan(goal Board) astar.Heuristic[Board] {
	where := make([]int, len(goal.tiles))
	for i, t := range goal.tiles {
		where[t] = i
	}
	cols := goal.cols
	return func(b Board) float64 {
		if !b.sameShape(goal) {
			return math.Inf(1)
		}
		sum := 0
		for i, t := range b.tiles {
			if t == 0 {
				continue
			}
			j := where[t]
			sum += abs(i/cols-j/cols) + abs(i%cols-j%cols)
		}
		return float64(sum)
	}
}

// Zero is the uninformed heuristic.
func Zero(Board) float64 { return 0 }

// ParseHeuristic resolves a case-insensitive heuristic name for goal.
func ParseHeuristic(name string, goal Board) (astar.Heuristic[Board], error) {
	switch strings.ToLower(name) {
	case HeuristicManhattan:
		return Manhattan(goal), nil
	case HeuristicMisplaced:
		return Misplaced(goal), nil
	case HeuristicZero:
		return Zero, nil
	}
	return nil, fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownHeuristic, name,
		HeuristicManhattan, HeuristicMisplaced, HeuristicZero)
}
