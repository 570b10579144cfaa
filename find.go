// This file is part of the reltrie library. See doc.go for license.

package reltrie

import (
	"iter"

	"github.com/ledgerwatch/reltrie/reladapter"
	"github.com/ledgerwatch/reltrie/relmatch"
)

// findSeq implements spec §4.6 with an explicit work stack rather than
// recursion, as the spec directs, and yields tuples lazily: nothing is
// visited until the returned iter.Seq is actually ranged over, and a
// consumer that stops early (range ... break) stops the walk at the same
// point.
func findSeq[T any](root *node[T], adapter reladapter.Adapter[T], ms []relmatch.Matcher[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		stack := []*node[T]{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			m := ms[n.dim]
			if m.MatchesEverything() {
				for idx := 0; idx < B; idx++ {
					b := &n.buckets[idx]
					if b.itemValid && fullyMatches(b.item, ms, adapter) {
						if !yield(b.item) {
							return
						}
					}
					if b.child != nil {
						stack = append(stack, b.child)
					}
				}
				continue
			}

			idx := indexFromHash(m.KeyHash(n.dim, adapter), n.level)
			b := &n.buckets[idx]
			if b.itemValid && fullyMatches(b.item, ms, adapter) {
				if !yield(b.item) {
					return
				}
			}
			if b.child != nil {
				stack = append(stack, b.child)
			}
		}
	}
}
