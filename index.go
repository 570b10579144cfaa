// This file is part of the reltrie library. See doc.go for license.

package reltrie

import (
	"github.com/ledgerwatch/reltrie/reladapter"
	"github.com/ledgerwatch/reltrie/relmatch"
)

// indexedAt returns the i-th tuple in n's subtree under the deterministic
// per-instance ordering from spec §4.8: buckets visited 0..B-1, inline
// tuple (if any) before the bucket's child subtree. Callers must ensure
// 0 <= i < n.count.
func indexedAt[T any](n *node[T], i int) T {
	for idx := 0; idx < B; idx++ {
		b := &n.buckets[idx]
		if b.itemValid {
			if i == 0 {
				return b.item
			}
			i--
		}
		if b.child != nil {
			if i < b.child.count {
				return indexedAt(b.child, i)
			}
			i -= b.child.count
		}
	}
	panic("reltrie: indexedAt index out of range (internal invariant violated)")
}

// fullyMatches reports whether t satisfies every matcher in ms, across all
// of the adapter's dimensions (spec §4.6: "all matchers (across all
// dimensions) match it").
func fullyMatches[T any](t T, ms []relmatch.Matcher[T], adapter reladapter.Adapter[T]) bool {
	for d := 0; d < adapter.Rank(); d++ {
		if !ms[d].Matches(t, d, adapter) {
			return false
		}
	}
	return true
}
