// Package vecmath provides generic mathematical vectors over real and complex
// scalars, in fixed and dynamic extents, with a library of vector-algebra
// operations.
//
// # Vectors
//
// Two container types share one operation contract:
//
//	a := vecmath.Vec3Of(3.0, 4.0, 1.0)          // *Fixed[float64, [3]float64]
//	b := vecmath.VectorOf(1.0, 9.0, 10.0)       // *Vector[float64], size decided at run time
//	c := vecmath.FixedOf[int, [5]int](1, 2, 3)  // trailing elements are zero
//
// The size of a Fixed vector is part of its type. Algorithms take both operands
// as the same type parameter, so mixing a Vec2 and a Vec3 does not compile, and
// operations restricted to two or three dimensions only accept Vec2/Vec3 among
// the fixed types. Dynamic vectors are checked at run time instead.
//
// # Algebra
//
//	dot := vecmath.InnerProduct(a, a)
//	x := vecmath.Cross(a, vecmath.Vec3Of(1.0, 9.0, 10.0))  // (31, -29, 23)
//	ok := vecmath.AreParallel(a, x, vecmath.WithEpsilon(1e-9))
//	n := vecmath.Norm(b, vecmath.L1)
//	s := vecmath.ToSpherical(a)
//
// Complex inner products conjugate the first operand unless
// WithConvention(AntilinearSecond) is passed.
//
// # Faults
//
// Violated preconditions (size mismatch, wrong dimension, division by zero,
// inadmissible conversion) panic with a *Fault. They are programmer errors in
// the same way an out-of-range index is. At API boundaries, Catch converts them
// into errors matching the sentinel values:
//
//	err := vecmath.Catch(func() { vecmath.InnerProduct(d4, d3) })
//	errors.Is(err, vecmath.ErrSizeMismatch) // true
//
// # Conversion Policy
//
// Element conversions (VectorFrom, ConvertFixed, ScaleBy, ...) follow a policy
// fixed at build time. By default only conversions that never lose information
// are admitted. Building with -tags vecmath_permissive admits narrowing and
// real-to-complex conversions as well.
//
// # Concurrency
//
// Vectors are plain values with no internal locking; share one between
// goroutines only with external synchronization. The generator behind
// RandomVector and RandomFixed is process-wide and safe for concurrent use.
// The batch package runs per-vector work on a bounded worker group.
//
// # Related Packages
//
//   - codec: binary frames with LZ4/ZSTD compression and JSON documents
//   - distance: Euclidean, Manhattan, Chebyshev, Minkowski, cosine and Hamming distances
//   - support: sparsity patterns backed by Roaring bitmaps
//   - batch: concurrent operations over many vectors
package vecmath
