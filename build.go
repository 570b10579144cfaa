// This file is part of the reltrie library. See doc.go for license.

package reltrie

import "github.com/ledgerwatch/reltrie/reladapter"

// FromSlice builds a relation containing exactly the distinct tuples in
// items, inserting them as a single Bulk batch rather than one Add call per
// element. The shape mirrors the teacher's trie-from-witness builder (build
// a fresh root, then feed it a sequence of entries one at a time, reusing
// the same mutable state across entries) adapted from a linear decode loop
// to a linear insert loop — there is no serialized witness to replay here,
// just the tuples themselves.
func FromSlice[T any](adapter reladapter.Adapter[T], items ...T) *Relation[T] {
	rel := New(adapter)
	return rel.Bulk(func(b *Batch[T]) {
		for _, item := range items {
			b.Add(item)
		}
	})
}
