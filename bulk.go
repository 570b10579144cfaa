// This file is part of the reltrie library. See doc.go for license.

package reltrie

import "github.com/ledgerwatch/reltrie/reladapter"

// Batch is the temporarily-mutable view a Bulk callback operates on (spec
// §4.9). Every Add/Remove call mutates nodes owned by this batch's token in
// place and clones on first touch anything it doesn't own yet — including
// nodes belonging to an outer, still-active batch, if this Batch was
// created by a nested Bulk call. A Batch must not escape its Bulk callback:
// it is invalid, and unsafe to use from another goroutine, once that
// callback returns.
type Batch[T any] struct {
	adapter reladapter.Adapter[T]
	root    *node[T]
	token   *token
}

// Add inserts t, mutating this batch's working root in place where
// possible, and returns the batch for chaining.
func (b *Batch[T]) Add(t T) *Batch[T] {
	b.root = addAt(b.root, t, b.token)
	return b
}

// Remove deletes t, mutating this batch's working root in place where
// possible, and returns the batch for chaining.
func (b *Batch[T]) Remove(t T) *Batch[T] {
	b.root = removeAt(b.root, t, b.token)
	return b
}

// Count is the number of tuples currently held by the batch's working root.
func (b *Batch[T]) Count() int { return b.root.count }

// IsEmpty reports whether Count() == 0.
func (b *Batch[T]) IsEmpty() bool { return b.root.count == 0 }

// Bulk runs f against a mutable view seeded from r, and returns the new
// frozen relation that results (spec §4.9). Add/Remove calls made through
// the Batch inside f approach in-place performance: nodes already owned by
// this batch are mutated directly rather than cloned, while nodes shared
// with r (or an enclosing batch, for nested Bulk calls) are cloned exactly
// once, on first touch.
func (r *Relation[T]) Bulk(f func(*Batch[T])) *Relation[T] {
	tok := newToken()
	root := cloneOrReuse(r.root, tok)
	r.logger.Debug("bulk: enter", "count", root.count)
	b := &Batch[T]{adapter: r.adapter, root: root, token: tok}
	f(b)
	frozenRoot := freeze(b.root, tok)
	r.logger.Debug("bulk: exit", "count", frozenRoot.count)
	if r.metrics != nil {
		r.metrics.Count.Set(float64(frozenRoot.count))
	}
	return &Relation[T]{adapter: r.adapter, root: frozenRoot, metrics: r.metrics, logger: r.logger}
}
