package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNewDistinctSeeds(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSymmetricBounds(t *testing.T) {
	r := New(7)
	sawNegative, sawPositive := false, false

	for i := 0; i < 10000; i++ {
		v := Symmetric(r, 3)
		assert.GreaterOrEqual(t, v, -3)
		assert.LessOrEqual(t, v, 3)
		sawNegative = sawNegative || v < 0
		sawPositive = sawPositive || v > 0
	}

	assert.True(t, sawNegative)
	assert.True(t, sawPositive)
	assert.Zero(t, Symmetric(r, 0))
}

func TestMixIsBijectiveOnSample(t *testing.T) {
	seen := make(map[uint64]bool)
	for i := uint64(0); i < 1000; i++ {
		v := mix(i)
		assert.False(t, seen[v])
		seen[v] = true
	}
}
