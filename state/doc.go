// Package state defines the contract every searchable problem state must
// satisfy, together with the identity-keyed table and hashing helpers the
// search packages are built on.
//
// What:
//
//   - Identity[S]: total equality (Equal) plus a hash consistent with it (Hash).
//   - State[S, A]: an Identity that can enumerate its outgoing edges as
//     Successor triples (next state, action label, step cost).
//   - Table[S, V]: a map keyed by state identity. Entries are bucketed by
//     Hash() and collisions are resolved with Equal, so S does not have to be
//     a comparable Go type (boards backed by slices work fine).
//   - Hasher / HashInts: xxhash-based helpers for deriving Hash() from the
//     same content Equal compares.
//
// Why:
//
//	Any type with Equal, Hash and Successors can be searched. There is no
//	base type to embed and no hierarchy to join; the search engines take the
//	state type as a type parameter.
//
// Contract:
//
//   - a.Equal(b) implies a.Hash() == b.Hash(). Breaking this silently defeats
//     membership and rediscovery checks: equal states land in different
//     buckets and are treated as strangers.
//   - Successors may be computed lazily and need not be cached. Step costs
//     must be finite and non-negative; the engines reject anything else.
//   - Successor order is implementation-defined. It never affects correctness
//     but it does decide ties between equal-priority frontier entries.
//
// Complexity:
//
//   - Table.Get / Put / Has / Delete: O(1) expected, O(k) for a bucket of k
//     colliding hashes.
//   - Table.Range: O(n) in insertion order.
package state
