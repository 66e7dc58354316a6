package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	r := New(42)
	assert.Equal(t, int64(42), r.Seed())

	for range 1000 {
		v := r.Uniform(-2, 3)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)
	}
}

func TestFillUniformDeterministic(t *testing.T) {
	a := make([]float64, 16)
	b := make([]float64, 16)
	New(7).FillUniform(a, 0, 10)
	New(7).FillUniform(b, 0, 10)
	assert.Equal(t, a, b)
}

func TestDefaultShared(t *testing.T) {
	require.Same(t, Default(), Default())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = Default().Uniform(0, 1)
			}
		}()
	}
	wg.Wait()
}
