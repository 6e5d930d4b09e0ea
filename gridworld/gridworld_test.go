package gridworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Psrit/TilegameAI/gridworld"
)

//----------------------------------------------------------------------------//
// NewGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridworld.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridworld.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridworld.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridworld.NewGrid(tc.grid, gridworld.DefaultOptions())
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 1}, {1, 1}}
	gg, err := gridworld.NewGrid(in, gridworld.DefaultOptions())
	require.NoError(t, err)
	in[0][1] = 0
	assert.True(t, gg.IsPassable(1, 0))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridworld.NewGrid([][]int{{0, 1, 0}, {1, 0, 1}}, gridworld.DefaultOptions())
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.Truef(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.Falsef(t, gg.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}

// TestCell_Errors checks out-of-bounds and wall lookups.
func TestCell_Errors(t *testing.T) {
	gg, err := gridworld.NewGrid([][]int{{1, 0}}, gridworld.DefaultOptions())
	require.NoError(t, err)

	_, err = gg.Cell(5, 0)
	require.ErrorIs(t, err, gridworld.ErrOutOfBounds)
	_, err = gg.Cell(1, 0)
	require.ErrorIs(t, err, gridworld.ErrBlocked)
	c, err := gg.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "(0,0)", c.String())
	assert.Same(t, gg, c.Grid())
}

//----------------------------------------------------------------------------//
// Cell identity and successors
//----------------------------------------------------------------------------//

func TestCell_Identity(t *testing.T) {
	values := [][]int{{1, 1}, {1, 1}}
	g1, err := gridworld.NewGrid(values, gridworld.DefaultOptions())
	require.NoError(t, err)
	g2, err := gridworld.NewGrid(values, gridworld.DefaultOptions())
	require.NoError(t, err)

	a, _ := g1.Cell(1, 0)
	b, _ := g1.Cell(1, 0)
	c, _ := g2.Cell(1, 0)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c), "cells of distinct grids differ")
}

// TestSuccessors_Conn4 verifies order and blocking under Conn4.
func TestSuccessors_Conn4(t *testing.T) {
	gg, err := gridworld.NewGrid([][]int{
		{1, 1, 1},
		{1, 1, 0},
		{1, 1, 1},
	}, gridworld.DefaultOptions())
	require.NoError(t, err)
	center, _ := gg.Cell(1, 1)

	var moves []gridworld.Move
	for _, s := range center.Successors() {
		moves = append(moves, s.Action)
		assert.Equal(t, 1.0, s.Cost)
	}
	assert.Equal(t, []gridworld.Move{gridworld.Up, gridworld.Down, gridworld.Left}, moves)
}

// TestSuccessors_Conn8 verifies diagonals are present under Conn8.
func TestSuccessors_Conn8(t *testing.T) {
	opts := gridworld.DefaultOptions()
	opts.Conn = gridworld.Conn8
	gg, err := gridworld.NewGrid([][]int{{1, 1}, {1, 1}}, opts)
	require.NoError(t, err)
	corner, _ := gg.Cell(0, 0)

	succ := corner.Successors()
	require.Len(t, succ, 3)
	assert.Equal(t, gridworld.Right, succ[0].Action)
	assert.Equal(t, gridworld.DownRight, succ[1].Action)
	assert.Equal(t, gridworld.Down, succ[2].Action)
	assert.True(t, succ[1].Action.Diagonal())
}

// TestSuccessors_Weighted checks that entry cost equals destination value.
func TestSuccessors_Weighted(t *testing.T) {
	opts := gridworld.DefaultOptions()
	opts.Weighted = true
	gg, err := gridworld.NewGrid([][]int{{2, 7}}, opts)
	require.NoError(t, err)
	left, _ := gg.Cell(0, 0)

	succ := left.Successors()
	require.Len(t, succ, 1)
	assert.Equal(t, 7.0, succ[0].Cost)
	assert.Equal(t, 7, succ[0].State.Value())
}

//----------------------------------------------------------------------------//
// Walk
//----------------------------------------------------------------------------//

func TestWalk(t *testing.T) {
	opts := gridworld.DefaultOptions()
	opts.Weighted = true
	gg, err := gridworld.NewGrid([][]int{
		{1, 3, 1},
		{0, 0, 2},
	}, opts)
	require.NoError(t, err)
	start, _ := gg.Cell(0, 0)

	end, cost, err := gg.Walk(start, []gridworld.Move{gridworld.Right, gridworld.Right, gridworld.Down})
	require.NoError(t, err)
	assert.Equal(t, 2, end.X)
	assert.Equal(t, 1, end.Y)
	assert.Equal(t, 6.0, cost)

	_, _, err = gg.Walk(start, []gridworld.Move{gridworld.Down})
	require.ErrorIs(t, err, gridworld.ErrBlocked)

	_, _, err = gg.Walk(start, []gridworld.Move{gridworld.Left})
	require.ErrorIs(t, err, gridworld.ErrOutOfBounds)

	_, _, err = gg.Walk(start, []gridworld.Move{gridworld.DownRight})
	require.ErrorIs(t, err, gridworld.ErrInvalidMove)
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "UpLeft", gridworld.UpLeft.String())
	assert.Equal(t, "Move(42)", gridworld.Move(42).String())
	dx, dy := gridworld.Move(42).Delta()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

//----------------------------------------------------------------------------//
// Heuristics
//----------------------------------------------------------------------------//

func TestHeuristics(t *testing.T) {
	opts := gridworld.DefaultOptions()
	opts.Weighted = true
	gg, err := gridworld.NewGrid([][]int{
		{2, 3, 4},
		{5, 0, 2},
	}, opts)
	require.NoError(t, err)
	goal, _ := gg.Cell(2, 1)
	from, _ := gg.Cell(0, 0)

	// Cheapest passable value is 2.
	assert.Equal(t, 6.0, gridworld.Manhattan(goal)(from))
	assert.Equal(t, 4.0, gridworld.Chebyshev(goal)(from))
	assert.Zero(t, gridworld.Manhattan(goal)(goal))
	assert.True(t, gridworld.Goal(goal)(goal))
	assert.False(t, gridworld.Goal(goal)(from))
}
