package testutil

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformRangeVectors generates num vectors with values in range [-1, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformRangeVectors(num, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)
	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()*2 - 1
		}
		vectors[i] = vec
	}
	return vectors
}

// ComplexVectors generates num vectors whose real and imaginary parts are in
// range [-1, 1).
func (r *RNG) ComplexVectors(num, dimensions int) [][]complex128 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]complex128, num)
	for i := range num {
		vec := make([]complex128, dimensions)
		for j := range vec {
			vec[j] = complex(r.rand.Float64()*2-1, r.rand.Float64()*2-1)
		}
		vectors[i] = vec
	}
	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitVectors(num, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vectors := make([][]float64, num)
	for i := range num {
		vec := make([]float64, dimensions)
		var norm float64
		for j := range vec {
			vec[j] = r.rand.NormFloat64()
			norm += vec[j] * vec[j]
		}
		if norm == 0 {
			norm = 1
		}
		inv := 1 / math.Sqrt(norm)
		for j := range vec {
			vec[j] *= inv
		}
		vectors[i] = vec
	}
	return vectors
}

// NonZeroVectors generates num vectors in range [-1, 1) whose first component is
// never zero, as coordinate conversions require.
func (r *RNG) NonZeroVectors(num, dimensions int) [][]float64 {
	vectors := r.UniformRangeVectors(num, dimensions)
	for _, v := range vectors {
		if v[0] == 0 {
			v[0] = 0.5
		}
	}
	return vectors
}

// Approx returns a cmp option treating floats and complex values within margin
// of each other as equal.
func Approx(margin float64) cmp.Option {
	return cmp.Options{
		cmpopts.EquateApprox(0, margin),
		cmp.Comparer(func(a, b complex128) bool {
			return cmplx.Abs(a-b) <= margin
		}),
		cmp.Comparer(func(a, b complex64) bool {
			return cmplx.Abs(complex128(a)-complex128(b)) <= margin
		}),
	}
}

// RequireApprox fails the test unless want and got are equal within margin.
func RequireApprox(t testing.TB, want, got any, margin float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, Approx(margin)); diff != "" {
		require.FailNow(t, "values differ", "(-want +got):\n%s", diff)
	}
}

// Recover runs fn and returns the error it panicked with, or nil. Panics with
// non-error values are reported as errors wrapping their formatted value.
func Recover(fn func()) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			err = r
		default:
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}

// RequireFault fails the test unless fn panics with an error matching target.
func RequireFault(t testing.TB, target error, fn func()) {
	t.Helper()
	err := Recover(fn)
	require.Error(t, err, "expected a fault matching %v", target)
	require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
}
