// This file is part of the reltrie library. See matcher.go for license.

package relmatch

import "github.com/ledgerwatch/reltrie/reladapter"

// The constructors below are the external collaborators described in the
// package spec as out of scope for the trie core: per-arity overloads that
// translate a nullable per-dimension input into a []Matcher, so callers
// don't have to spell out Any()/Equals() by hand for the common rank-2 and
// rank-3 cases. They hold no algorithmic weight; ForUnary, ForPair and
// ForTriple cover the three arities of reladapter's convenience adapters.

// ForUnary builds a length-1 matcher slice: Any if v is nil, Equals(*v)
// otherwise.
func ForUnary[A any](v *A) []Matcher[A] {
	if v == nil {
		return []Matcher[A]{Any[A]()}
	}
	return []Matcher[A]{Equals(*v)}
}

// ForPair builds a length-2 matcher slice over reladapter.Pair[A, B], with
// a nil component translating to a wildcard for that dimension.
func ForPair[A, B any](a *A, b *B) []Matcher[reladapter.Pair[A, B]] {
	out := make([]Matcher[reladapter.Pair[A, B]], 2)
	if a == nil {
		out[0] = Any[reladapter.Pair[A, B]]()
	} else {
		out[0] = Equals(reladapter.Pair[A, B]{A: *a})
	}
	if b == nil {
		out[1] = Any[reladapter.Pair[A, B]]()
	} else {
		out[1] = Equals(reladapter.Pair[A, B]{B: *b})
	}
	return out
}

// ForTriple builds a length-3 matcher slice over reladapter.Triple[A, B, C].
func ForTriple[A, B, C any](a *A, b *B, c *C) []Matcher[reladapter.Triple[A, B, C]] {
	out := make([]Matcher[reladapter.Triple[A, B, C]], 3)
	if a == nil {
		out[0] = Any[reladapter.Triple[A, B, C]]()
	} else {
		out[0] = Equals(reladapter.Triple[A, B, C]{A: *a})
	}
	if b == nil {
		out[1] = Any[reladapter.Triple[A, B, C]]()
	} else {
		out[1] = Equals(reladapter.Triple[A, B, C]{B: *b})
	}
	if c == nil {
		out[2] = Any[reladapter.Triple[A, B, C]]()
	} else {
		out[2] = Equals(reladapter.Triple[A, B, C]{C: *c})
	}
	return out
}
