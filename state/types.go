package state

// Identity is the equality half of the state contract.
// Equal must be an equivalence relation and Hash must agree with it:
// states that are Equal always return the same Hash.
type Identity[S any] interface {
	Equal(other S) bool
	Hash() uint64
}

// State is the full contract consumed by the search engines.
// S is the concrete state type (usually the implementing type itself) and
// A is the action label carried on each edge.
type State[S any, A any] interface {
	Identity[S]

	// Successors returns the outgoing edges of this state.
	Successors() []Successor[S, A]
}

// Successor is one outgoing edge: applying Action to the parent yields State
// at a step cost of Cost.
type Successor[S any, A any] struct {
	State  S
	Action A
	Cost   float64
}
