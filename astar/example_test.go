package astar_test

import (
	"fmt"
	"strings"

	"github.com/Psrit/TilegameAI/astar"
	"github.com/Psrit/TilegameAI/gridworld"
)

// ExampleSearch finds the cheapest route around a wall on a 4-connected map.
func ExampleSearch() {
	_, start, goal, err := gridworld.ParseMap(strings.NewReader(""+
		"S.#.\n"+
		"..#.\n"+
		"...G\n"), gridworld.Conn4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := astar.Search[gridworld.Cell, gridworld.Move](start, gridworld.Goal(goal), gridworld.Manhattan(goal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found)
	fmt.Println("cost:", res.Cost)
	fmt.Println("moves:", len(res.Actions))
	// Output:
	// found: true
	// cost: 5
	// moves: 5
}

// ExampleSearch_unreachable shows that an unreachable goal is a result, not an error.
func ExampleSearch_unreachable() {
	_, start, goal, _ := gridworld.ParseMap(strings.NewReader("S#G\n"), gridworld.Conn4)

	res, err := astar.Search[gridworld.Cell, gridworld.Move](start, gridworld.Goal(goal), gridworld.Manhattan(goal))
	fmt.Println(res.Found, err)
	// Output:
	// false <nil>
}
