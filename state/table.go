package state

// entry is one stored key/value pair. Entries live in Table.entries in
// insertion order; deleted entries are tombstoned until the next compaction.
type entry[S any, V any] struct {
	key   S
	value V
	live  bool
}

// Table maps states to values by identity rather than by Go equality.
//
// Keys are bucketed by Hash(); a bucket holds the positions of every live
// entry with that hash, and lookups walk it with Equal. Iteration follows
// insertion order, which keeps anything built on top of a Table deterministic
// within one run.
//
// A Table is not safe for concurrent use.
type Table[S Identity[S], V any] struct {
	buckets map[uint64][]int
	entries []entry[S, V]
	live    int
}

// NewTable returns an empty Table sized for roughly hint entries.
// A negative hint is treated as zero.
func NewTable[S Identity[S], V any](hint int) *Table[S, V] {
	if hint < 0 {
		hint = 0
	}
	return &Table[S, V]{
		buckets: make(map[uint64][]int, hint),
		entries: make([]entry[S, V], 0, hint),
	}
}

// find returns the position of key in t.entries, or -1.
func (t *Table[S, V]) find(key S, h uint64) int {
	for _, pos := range t.buckets[h] {
		if t.entries[pos].key.Equal(key) {
			return pos
		}
	}
	return -1
}

// Get returns the value stored for key and whether it was present.
func (t *Table[S, V]) Get(key S) (V, bool) {
	if pos := t.find(key, key.Hash()); pos >= 0 {
		return t.entries[pos].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (t *Table[S, V]) Has(key S) bool {
	return t.find(key, key.Hash()) >= 0
}

// Put stores value for key, overwriting any previous value.
// It reports whether key was newly inserted.
func (t *Table[S, V]) Put(key S, value V) bool {
	h := key.Hash()
	if pos := t.find(key, h); pos >= 0 {
		t.entries[pos].value = value
		return false
	}
	t.buckets[h] = append(t.buckets[h], len(t.entries))
	t.entries = append(t.entries, entry[S, V]{key: key, value: value, live: true})
	t.live++
	return true
}

// Delete removes key and reports whether it was present.
func (t *Table[S, V]) Delete(key S) bool {
	h := key.Hash()
	bucket := t.buckets[h]
	for i, pos := range bucket {
		if !t.entries[pos].key.Equal(key) {
			continue
		}
		t.entries[pos] = entry[S, V]{}
		if len(bucket) == 1 {
			delete(t.buckets, h)
		} else {
			t.buckets[h] = append(bucket[:i:i], bucket[i+1:]...)
		}
		t.live--
		if t.live*2 < len(t.entries) {
			t.compact()
		}
		return true
	}
	return false
}

// compact drops tombstones and rebuilds the buckets.
func (t *Table[S, V]) compact() {
	kept := make([]entry[S, V], 0, t.live)
	for _, e := range t.entries {
		if e.live {
			kept = append(kept, e)
		}
	}
	t.entries = kept
	t.buckets = make(map[uint64][]int, len(kept))
	for pos, e := range kept {
		h := e.key.Hash()
		t.buckets[h] = append(t.buckets[h], pos)
	}
}

// Len returns the number of stored entries.
func (t *Table[S, V]) Len() int { return t.live }

// Range calls fn for every entry in insertion order until fn returns false.
// fn must not modify t.
func (t *Table[S, V]) Range(fn func(key S, value V) bool) {
	for _, e := range t.entries {
		if !e.live {
			continue
		}
		if !fn(e.key, e.value) {
			return
		}
	}
}
