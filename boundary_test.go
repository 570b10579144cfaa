// This file is part of the reltrie library. See doc.go for license.

package reltrie

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerwatch/reltrie/reladapter"
	"github.com/ledgerwatch/reltrie/relmatch"
)

// collidingAdapter hashes every dimension to the same constant, forcing
// every tuple into bucket 0 at every level regardless of value — the
// "hashes collide in every dimension" boundary case from spec §8.
func collidingAdapter() reladapter.Adapter[reladapter.Pair[int, int]] {
	constHash := reladapter.DimComparer[int]{
		Equal: func(a, b int) bool { return a == b },
		Hash:  func(int) uint64 { return 0 },
	}
	return reladapter.NewBinary[int, int](constHash, constHash)
}

func TestEmptyRelation(t *testing.T) {
	rel := New(intPairAdapter())
	assert.Equal(t, 0, rel.Count())
	assert.True(t, rel.IsEmpty())
	assert.Empty(t, collect(rel.All()))

	// Remove on an empty relation is a no-op that preserves identity.
	assert.Same(t, rel, rel.Remove(pair(1, 1)))
}

func TestSingleTuple(t *testing.T) {
	rel := New(intPairAdapter()).Add(pair(1, 1))
	assert.Equal(t, 1, rel.Count())
	assert.Equal(t, pair(1, 1), rel.At(0))

	rel = rel.Remove(pair(1, 1))
	assert.True(t, rel.IsEmpty())
}

// Tuples whose every-dimension hash collides force descent into a
// child subtree at every level — spec §8 boundary case.
func TestDeepCollisionForcesDescent(t *testing.T) {
	adapter := collidingAdapter()
	rel := New(adapter)
	tuples := []reladapter.Pair[int, int]{
		{A: 1, B: 1}, {A: 2, B: 2}, {A: 3, B: 3}, {A: 4, B: 4},
	}
	for _, tp := range tuples {
		rel = rel.Add(tp)
	}
	require.Equal(t, len(tuples), rel.Count())
	assert.ElementsMatch(t, tuples, collect(rel.All()))

	one := 1
	assert.ElementsMatch(t, []reladapter.Pair[int, int]{{A: 1, B: 1}},
		collect(rel.Find(relmatch.ForPair[int, int](&one, nil))))

	// Remove the first-inserted (inline) tuple; a survivor from the child
	// must be promoted and the rest remain reachable.
	rel = rel.Remove(tuples[0])
	assert.Equal(t, len(tuples)-1, rel.Count())
	assert.ElementsMatch(t, tuples[1:], collect(rel.All()))
}

func TestIntExtremesInEveryDimension(t *testing.T) {
	rel := New(intPairAdapter())
	extremes := []reladapter.Pair[int, int]{
		{A: math.MaxInt64, B: math.MaxInt64},
		{A: math.MinInt64, B: math.MinInt64},
		{A: math.MaxInt64, B: math.MinInt64},
		{A: math.MinInt64, B: math.MaxInt64},
	}
	for _, tp := range extremes {
		rel = rel.Add(tp)
	}
	require.Equal(t, 4, rel.Count())
	assert.ElementsMatch(t, extremes, collect(rel.All()))

	maxV := math.MaxInt64
	assert.Len(t, collect(rel.Find(relmatch.ForPair[int, int](&maxV, nil))), 2)

	for _, tp := range extremes {
		rel = rel.Remove(tp)
	}
	assert.True(t, rel.IsEmpty())
}

func TestFrozenSnapshotConcurrentReaders(t *testing.T) {
	rel := New(intPairAdapter())
	for i := 0; i < 200; i++ {
		rel = rel.Add(pair(i, i*2))
	}

	var wg sync.WaitGroup
	results := make([][]reladapter.Pair[int, int], 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = collect(rel.All())
		}(g)
	}
	wg.Wait()

	first := results[0]
	assert.Len(t, first, 200)
	for _, r := range results[1:] {
		assert.ElementsMatch(t, first, r)
	}
}
