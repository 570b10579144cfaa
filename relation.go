// This file is part of the reltrie library. See doc.go for license.

package reltrie

import (
	"iter"

	"github.com/ledgerwatch/reltrie/internal/rlog"
	"github.com/ledgerwatch/reltrie/reladapter"
	"github.com/ledgerwatch/reltrie/relmatch"
	"github.com/ledgerwatch/reltrie/relmetrics"
)

// Relation is a persistent, structurally-shared set of fixed-arity tuples
// of type T (spec §3). The zero value is not valid; build one with New.
// Every method that returns *Relation[T] returns a new, independent
// snapshot — the receiver is never mutated (spec §5, testable property 9).
type Relation[T any] struct {
	adapter reladapter.Adapter[T]
	root    *node[T]
	metrics *relmetrics.Recorder
	logger  *rlog.Logger
}

// New creates an empty, frozen relation over adapter. Panics, wrapping
// ErrInvalidArgument, if adapter is nil (spec §6: "Failure inputs ... fail
// with InvalidArgument").
func New[T any](adapter reladapter.Adapter[T]) *Relation[T] {
	if adapter == nil {
		panic(invalidArgument("nil adapter passed to New"))
	}
	return &Relation[T]{
		adapter: adapter,
		root:    newNode(adapter, 0, 0, nil),
		logger:  rlog.Discard,
	}
}

// WithMetrics returns a relation identical to r but reporting call counts
// and the live tuple count to rec. Passing a nil rec disables reporting.
func (r *Relation[T]) WithMetrics(rec *relmetrics.Recorder) *Relation[T] {
	cp := *r
	cp.metrics = rec
	return &cp
}

// WithLogger returns a relation identical to r but tracing structural
// events (clone-on-write, bulk batch enter/exit) to logger. Passing nil
// restores the default discard logger.
func (r *Relation[T]) WithLogger(logger *rlog.Logger) *Relation[T] {
	cp := *r
	if logger == nil {
		logger = rlog.Discard
	}
	cp.logger = logger
	return &cp
}

// Count is the number of tuples currently stored (spec §3 invariant 1,
// §4.8).
func (r *Relation[T]) Count() int { return r.root.count }

// IsEmpty reports whether Count() == 0.
func (r *Relation[T]) IsEmpty() bool { return r.root.count == 0 }

// At returns the tuple at position i under the deterministic per-instance
// ordering described in spec §4.8. Panics, wrapping ErrIndexOutOfRange, if
// i is outside [0, Count()).
func (r *Relation[T]) At(i int) T {
	if i < 0 || i >= r.root.count {
		panic(indexOutOfRange(i, r.root.count))
	}
	return indexedAt(r.root, i)
}

// Add returns a new relation with t inserted, or r itself (same identity,
// no new nodes) if t was already present (spec §4.4).
func (r *Relation[T]) Add(t T) *Relation[T] {
	if r.metrics != nil {
		r.metrics.Adds.Inc()
	}
	tok := newToken()
	newRoot := addAt(r.root, t, tok)
	if newRoot == r.root {
		return r
	}
	newRoot = freeze(newRoot, tok)
	r.logger.Debug("add: root cloned", "count", newRoot.count)
	return r.withRoot(newRoot)
}

// Remove returns a new relation with t absent, or r itself if t was not
// present (spec §4.5).
func (r *Relation[T]) Remove(t T) *Relation[T] {
	if r.metrics != nil {
		r.metrics.Removes.Inc()
	}
	tok := newToken()
	newRoot := removeAt(r.root, t, tok)
	if newRoot == r.root {
		return r
	}
	newRoot = freeze(newRoot, tok)
	r.logger.Debug("remove: root cloned", "count", newRoot.count)
	return r.withRoot(newRoot)
}

// RemoveMatch returns a new relation with every tuple matching every
// dimension of ms removed — equivalent to, but far cheaper than, removing
// each element of Find(ms) one at a time (spec §4.7, testable property 7).
// Panics, wrapping ErrInvalidArgument, if len(ms) != the adapter's rank.
func (r *Relation[T]) RemoveMatch(ms []relmatch.Matcher[T]) *Relation[T] {
	r.checkMatchers(ms)
	if r.metrics != nil {
		r.metrics.Removes.Inc()
	}
	tok := newToken()
	newRoot := removeMatchAt(r.root, ms, tok)
	if newRoot == r.root {
		return r
	}
	newRoot = freeze(newRoot, tok)
	r.logger.Debug("remove-match: root cloned", "count", newRoot.count)
	return r.withRoot(newRoot)
}

// Find yields, lazily and in an unspecified but deterministic per-instance
// order, every stored tuple satisfying every matcher in ms (spec §4.6).
// Panics, wrapping ErrInvalidArgument, if len(ms) != the adapter's rank.
func (r *Relation[T]) Find(ms []relmatch.Matcher[T]) iter.Seq[T] {
	r.checkMatchers(ms)
	if r.metrics != nil {
		r.metrics.Finds.Inc()
	}
	return findSeq(r.root, r.adapter, ms)
}

// All enumerates every stored tuple — equivalent to Find with every
// dimension wildcarded (spec §6 "enumeration").
func (r *Relation[T]) All() iter.Seq[T] {
	ms := make([]relmatch.Matcher[T], r.adapter.Rank())
	for i := range ms {
		ms[i] = relmatch.Any[T]()
	}
	return r.Find(ms)
}

func (r *Relation[T]) checkMatchers(ms []relmatch.Matcher[T]) {
	if len(ms) != r.adapter.Rank() {
		panic(invalidArgument("matcher slice has length %d, adapter rank is %d", len(ms), r.adapter.Rank()))
	}
}

func (r *Relation[T]) withRoot(root *node[T]) *Relation[T] {
	if root.count != 0 {
		r.logger.Debug("snapshot", "count", root.count)
	}
	if r.metrics != nil {
		r.metrics.Count.Set(float64(root.count))
	}
	return &Relation[T]{adapter: r.adapter, root: root, metrics: r.metrics, logger: r.logger}
}
