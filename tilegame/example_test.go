package tilegame_test

import (
	"fmt"

	"github.com/Psrit/TilegameAI/tilegame"
)

// ExamplePuzzle_Solve solves a lightly scrambled 8-puzzle.
func ExamplePuzzle_Solve() {
	goal, _ := tilegame.NewBoard(3, 3)
	initial, _ := goal.Apply([]tilegame.Direction{tilegame.Up, tilegame.Left, tilegame.Down})
	fmt.Println(initial)

	p, _ := tilegame.NewPuzzle(initial, goal)
	res, err := p.Solve(tilegame.Manhattan(goal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Actions, res.Cost)

	// Output:
	// 1 2 3
	// 4 8 5
	// 7 . 6
	// [Up Right Down] 3
}
