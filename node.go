// This file is part of the reltrie library. See doc.go for license.

package reltrie

import "github.com/ledgerwatch/reltrie/reladapter"

// B is the branching factor: each node has 8 buckets (spec §4.3). S is the
// number of hash bits a single level consumes within one dimension's hash
// (log2(B) = 3).
const (
	B = 8
	S = 3
)

// node is the persistent trie node (spec §3 "Relation node"). All nodes of
// one relation share the same adapter value.
type node[T any] struct {
	adapter reladapter.Adapter[T]
	dim     int
	level   int
	count   int
	buckets [B]bucket[T]
	owner   *token // nil: frozen and freely shared. non-nil: owned by one bulk batch.
}

func newNode[T any](adapter reladapter.Adapter[T], dim, level int, owner *token) *node[T] {
	return &node[T]{adapter: adapter, dim: dim, level: level, owner: owner}
}

// nextDimLevel computes the child's (dim, level) from the parent's, per the
// round-robin rotation rule in spec §4.3.
func nextDimLevel(dim, level, rank int) (int, int) {
	if dim+1 < rank {
		return dim + 1, level
	}
	return 0, level + 1
}

// cloneOrReuse returns a node usable for in-place mutation under tok: n
// itself if it is already owned by tok, or a shallow copy (owned by tok)
// otherwise. The bucket array is copied by value, so child pointers are
// shared with the original — only the node doing the mutating is
// duplicated, which is the entire copy-on-write trick (spec §4.4 step 2,
// §9 "Ownership / token discipline").
func cloneOrReuse[T any](n *node[T], tok *token) *node[T] {
	if n.owner == tok {
		return n
	}
	cp := *n
	cp.owner = tok
	return &cp
}

// freeze walks every node still owned by tok (this batch) and marks it
// frozen, recursing into children that are also tok-owned. Nodes owned by a
// different (e.g. outer, nested-batch) token or already frozen are left
// untouched — they are either still in use elsewhere or already shared
// (spec §4.9 step 4).
func freeze[T any](n *node[T], tok *token) *node[T] {
	if n.owner != tok {
		return n
	}
	n.owner = nil
	for i := range n.buckets {
		if n.buckets[i].child != nil {
			n.buckets[i].child = freeze(n.buckets[i].child, tok)
		}
	}
	return n
}

// bucketIndex computes the bucket a tuple falls into at dimension dim and
// level within the current node's own dimension/level (spec §4.3). The
// per-dimension hash is recomputed fresh from the adapter on every call
// rather than carried forward and shifted, so no dimension needs the
// reference design's dim>=2 special case — see hash.go for why this is
// behaviorally equivalent for callers.
func bucketIndex[T any](adapter reladapter.Adapter[T], t T, dim, level int) int {
	return indexFromHash(adapter.ItemHash(t, dim), level)
}

func indexFromHash(h uint64, level int) int {
	return int(h>>uint(S*level)) & (B - 1)
}
