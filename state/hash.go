package state

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates state content into a 64-bit xxhash.
// Write the exact fields Equal compares, in a fixed order, and the resulting
// Sum64 is a valid Hash for the state.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns a Hasher with an empty digest.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// WriteInt mixes a single integer into the digest.
func (h *Hasher) WriteInt(v int) *Hasher {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(v))
	_, _ = h.d.Write(h.buf[:])
	return h
}

// WriteInts mixes vs into the digest, prefixed by their count so that
// ([1,2],[3]) and ([1],[2,3]) never collide by construction.
func (h *Hasher) WriteInts(vs ...int) *Hasher {
	h.WriteInt(len(vs))
	for _, v := range vs {
		h.WriteInt(v)
	}
	return h
}

// WriteString mixes s into the digest, length-prefixed.
func (h *Hasher) WriteString(s string) *Hasher {
	h.WriteInt(len(s))
	_, _ = h.d.WriteString(s)
	return h
}

// Sum64 returns the current hash value. The digest is left untouched.
func (h *Hasher) Sum64() uint64 { return h.d.Sum64() }

// Reset clears the digest for reuse.
func (h *Hasher) Reset() { h.d.Reset() }

// HashInts is shorthand for NewHasher().WriteInts(vs...).Sum64().
func HashInts(vs ...int) uint64 {
	return NewHasher().WriteInts(vs...).Sum64()
}
