// Package testutil provides testing utilities for vecmath.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random source, fault assertions and
// tolerance-aware comparisons.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float64, 16)
//	rng.FillUniformRange(vec, -1, 1)
//	vs := rng.UnitVectors(8, 3)
//
// # Faults
//
//	testutil.RequireFault(t, vecmath.ErrSizeMismatch, func() { vecmath.InnerProduct(a, b) })
//
// # Approximate Comparison
//
//	assert.True(t, cmp.Equal(want, got, testutil.Approx(1e-9)))
package testutil
