package astar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Psrit/TilegameAI/gridworld"
	"github.com/Psrit/TilegameAI/state"
)

// wgraph is a small directed graph with named vertices; the action of an
// edge is the name of its target.
type wgraph struct {
	adj map[string][]wedge
}

type wedge struct {
	to   string
	cost float64
}

func newGraph() *wgraph { return &wgraph{adj: make(map[string][]wedge)} }

func (g *wgraph) edge(from, to string, cost float64) *wgraph {
	g.adj[from] = append(g.adj[from], wedge{to: to, cost: cost})
	return g
}

func (g *wgraph) at(name string) vtx { return vtx{name: name, g: g} }

type vtx struct {
	name string
	g    *wgraph
}

func (v vtx) Equal(o vtx) bool { return v.name == o.name }

func (v vtx) Hash() uint64 { return state.NewHasher().WriteString(v.name).Sum64() }

func (v vtx) Successors() []state.Successor[vtx, string] {
	out := make([]state.Successor[vtx, string], 0, len(v.g.adj[v.name]))
	for _, e := range v.g.adj[v.name] {
		out = append(out, state.Successor[vtx, string]{State: v.g.at(e.to), Action: e.to, Cost: e.cost})
	}
	return out
}

func named(name string) func(vtx) bool {
	return func(v vtx) bool { return v.name == name }
}

// table returns a heuristic backed by fixed values; missing names get 0.
func table(values map[string]float64) func(vtx) float64 {
	return func(v vtx) float64 { return values[v.name] }
}

// counter is an unbounded state space: n → n+1.
type counter int

func (c counter) Equal(o counter) bool { return c == o }
func (c counter) Hash() uint64         { return state.HashInts(int(c)) }
func (c counter) Successors() []state.Successor[counter, int] {
	return []state.Successor[counter, int]{{State: c + 1, Action: 1, Cost: 1}}
}

type (
	cell = gridworld.Cell
	move = gridworld.Move
)

func parseMap(t testing.TB, src string, conn gridworld.Connectivity) (*gridworld.Grid, cell, cell) {
	t.Helper()
	gg, start, goal, err := gridworld.ParseMap(strings.NewReader(src), conn)
	require.NoError(t, err)
	return gg, start, goal
}
