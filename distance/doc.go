// Package distance provides distance and similarity measures between vectors.
//
// Every measure accepts any vecmath.View, so fixed and dynamic vectors of the
// same element type can be compared with each other. Operands must have the same
// length; a mismatch panics with a *vecmath.Fault wrapping vecmath.ErrSizeMismatch,
// like the algebra in the root package.
//
// # Supported Metrics
//
//   - MetricEuclidean: L2 distance (default)
//   - MetricSquaredEuclidean: squared L2 distance
//   - MetricManhattan: L1 distance
//   - MetricChebyshev: L∞ distance
//   - MetricCosine: one minus the cosine similarity
//   - MetricHamming: number of differing elements
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	fn, err := distance.Provider[float64](distance.MetricCosine)
//	sim := distance.CosineSimilarity(a, b)
package distance
