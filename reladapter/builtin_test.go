// This file is part of the reltrie library. See adapter.go for license.

package reladapter

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestBytesComparer(t *testing.T) {
	c := BytesComparer()
	a := []byte("hello")
	b := []byte("hello")
	other := []byte("world")

	assert.True(t, c.Equal(a, b))
	assert.False(t, c.Equal(a, other))
	assert.Equal(t, c.Hash(a), c.Hash(b))
}

func TestStringComparer(t *testing.T) {
	c := StringComparer()
	assert.True(t, c.Equal("x", "x"))
	assert.False(t, c.Equal("x", "y"))
	assert.Equal(t, c.Hash("x"), c.Hash("x"))
}

func TestUint256Comparer(t *testing.T) {
	c := Uint256Comparer()
	a := *uint256.NewInt(42)
	b := *uint256.NewInt(42)
	other := *uint256.NewInt(43)

	assert.True(t, c.Equal(a, b))
	assert.False(t, c.Equal(a, other))
	assert.Equal(t, c.Hash(a), c.Hash(b))
}

func TestUint256AdapterRoundTrip(t *testing.T) {
	adapter := NewUnary[uint256.Int](Uint256Comparer())
	assert.True(t, adapter.Equals(*uint256.NewInt(7), *uint256.NewInt(7)))
	assert.False(t, adapter.Equals(*uint256.NewInt(7), *uint256.NewInt(8)))
}
