package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Psrit/TilegameAI/state"
)

func TestHashInts_Deterministic(t *testing.T) {
	assert.Equal(t, state.HashInts(1, 2, 3), state.HashInts(1, 2, 3))
	assert.NotEqual(t, state.HashInts(1, 2, 3), state.HashInts(3, 2, 1))
}

func TestHasher_LengthPrefix(t *testing.T) {
	a := state.NewHasher().WriteInts(1, 2).WriteInts(3).Sum64()
	b := state.NewHasher().WriteInts(1).WriteInts(2, 3).Sum64()
	assert.NotEqual(t, a, b)

	c := state.NewHasher().WriteString("ab").WriteString("c").Sum64()
	d := state.NewHasher().WriteString("a").WriteString("bc").Sum64()
	assert.NotEqual(t, c, d)
}

func TestHasher_Reset(t *testing.T) {
	h := state.NewHasher()
	h.WriteInt(7)
	first := h.Sum64()
	h.Reset()
	h.WriteInt(7)
	assert.Equal(t, first, h.Sum64())
	assert.Equal(t, first, state.NewHasher().WriteInt(7).Sum64())
}
