package tilegame

import (
	"fmt"
	"math/rand"
)

// Shuffle walks the blank steps times, each time picking uniformly among
// the legal moves, and returns the final board with the walk taken.
// The walk may undo itself. The result is reachable from b by construction.
func (b Board) Shuffle(rng *rand.Rand, steps int) (Board, []Direction, error) {
	if steps < 0 {
		return Board{}, nil, fmt.Errorf("%w: %d", ErrInvalidSteps, steps)
	}
	walk := make([]Direction, 0, steps)
	cur := b
	for i := 0; i < steps; i++ {
		succ := cur.Successors()
		if len(succ) == 0 {
			break // 1×1 board
		}
		pick := succ[rng.Intn(len(succ))]
		cur = pick.State
		walk = append(walk, pick.Action)
	}
	return cur, walk, nil
}
