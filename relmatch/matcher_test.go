// This file is part of the reltrie library. See matcher.go for license.

package relmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerwatch/reltrie/reladapter"
)

func TestAnyMatchesEverything(t *testing.T) {
	m := Any[int]()
	assert.True(t, m.MatchesEverything())
	assert.Equal(t, KindAny, Kind(0))
}

func TestEqualsMatchesOnlyItsDimension(t *testing.T) {
	adapter := reladapter.NewBinary[int, int](reladapter.DimComparer[int]{}, reladapter.DimComparer[int]{})
	example := reladapter.Pair[int, int]{A: 5}
	m := Equals(example)

	assert.False(t, m.MatchesEverything())
	assert.True(t, m.Matches(reladapter.Pair[int, int]{A: 5, B: 99}, 0, adapter))
	assert.False(t, m.Matches(reladapter.Pair[int, int]{A: 6, B: 99}, 0, adapter))
}

func TestAnyMatcherMatchesAnything(t *testing.T) {
	adapter := reladapter.NewUnary[int](reladapter.DimComparer[int]{})
	m := Any[int]()
	assert.True(t, m.Matches(42, 0, adapter))
	assert.True(t, m.Matches(-1, 0, adapter))
}

func TestKeyHashUsesAdapterItemHash(t *testing.T) {
	adapter := reladapter.NewUnary[int](reladapter.DimComparer[int]{})
	m := Equals(7)
	assert.Equal(t, adapter.ItemHash(7, 0), m.KeyHash(0, adapter))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Any", KindAny.String())
	assert.Equal(t, "Equals", KindEquals.String())
}

func TestZeroValueMatcherIsWildcard(t *testing.T) {
	var m Matcher[int]
	assert.True(t, m.MatchesEverything())
}
