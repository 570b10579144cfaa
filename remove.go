// This file is part of the reltrie library. See doc.go for license.

package reltrie

import "github.com/ledgerwatch/reltrie/relmatch"

// removeAt implements spec §4.5 (single-tuple remove). Like addAt, it
// clones lazily: the not-present path returns n unchanged.
func removeAt[T any](n *node[T], t T, tok *token) *node[T] {
	a := n.adapter
	idx := bucketIndex(a, t, n.dim, n.level)
	b := n.buckets[idx]

	if !b.itemValid {
		return n
	}

	if a.Equals(b.item, t) {
		nn := cloneOrReuse(n, tok)
		if b.child == nil {
			nn.buckets[idx] = bucket[T]{}
			nn.count--
			return nn
		}
		promoted := indexedAt(b.child, 0)
		newChild := removeAt(b.child, promoted, tok)
		nn.buckets[idx].item = promoted
		nn.buckets[idx].itemValid = true
		if newChild.count == 0 {
			nn.buckets[idx].child = nil
		} else {
			nn.buckets[idx].child = newChild
		}
		nn.count--
		return nn
	}

	if b.child == nil {
		return n
	}
	newChild := removeAt(b.child, t, tok)
	if newChild.count == b.child.count {
		return n
	}
	nn := cloneOrReuse(n, tok)
	if newChild.count == 0 {
		nn.buckets[idx].child = nil
	} else {
		nn.buckets[idx].child = newChild
	}
	nn.count--
	return nn
}

// removeMatchAt implements spec §4.7 (partial-key remove). Bucket selection
// follows §4.6: every bucket when the current dimension's matcher is a
// wildcard, otherwise only the hashed bucket. Because a single pass can
// remove an entire matched subtree's worth of tuples rather than exactly
// one, the resulting count is recomputed from the invariant (spec §3,
// invariant 1) instead of decremented incrementally.
func removeMatchAt[T any](n *node[T], ms []relmatch.Matcher[T], tok *token) *node[T] {
	a := n.adapter
	m := ms[n.dim]

	var indices []int
	if m.MatchesEverything() {
		indices = allIndices[:]
	} else {
		indices = []int{indexFromHash(m.KeyHash(n.dim, a), n.level)}
	}

	cur := n
	changed := false

	for _, idx := range indices {
		b := cur.buckets[idx]
		if !b.itemValid {
			continue
		}

		if fullyMatches(b.item, ms, a) {
			changed = true
			cur = cloneOrReuse(cur, tok)
			if b.child == nil {
				cur.buckets[idx] = bucket[T]{}
				continue
			}
			newChild := removeMatchAt(b.child, ms, tok)
			if newChild.count == 0 {
				cur.buckets[idx] = bucket[T]{}
				continue
			}
			promoted := indexedAt(newChild, 0)
			finalChild := removeAt(newChild, promoted, tok)
			cur.buckets[idx].item = promoted
			cur.buckets[idx].itemValid = true
			if finalChild.count == 0 {
				cur.buckets[idx].child = nil
			} else {
				cur.buckets[idx].child = finalChild
			}
			continue
		}

		if b.child != nil {
			newChild := removeMatchAt(b.child, ms, tok)
			if newChild.count != b.child.count {
				changed = true
				cur = cloneOrReuse(cur, tok)
				if newChild.count == 0 {
					cur.buckets[idx].child = nil
				} else {
					cur.buckets[idx].child = newChild
				}
			}
		}
	}

	if !changed {
		return n
	}

	total := 0
	for i := 0; i < B; i++ {
		bb := cur.buckets[i]
		if bb.itemValid {
			total++
		}
		if bb.child != nil {
			total += bb.child.count
		}
	}
	cur.count = total
	return cur
}

var allIndices = [B]int{0, 1, 2, 3, 4, 5, 6, 7}
