package distance

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/num"
)

func requireSameLen[T vecmath.Scalar](op string, a, b vecmath.View[T]) {
	if a.Len() != b.Len() {
		panic(&vecmath.Fault{
			Op:       op,
			Err:      vecmath.ErrSizeMismatch,
			Expected: a.Len(),
			Actual:   b.Len(),
			Detail:   fmt.Sprintf("sizes of both operands must be equal (%d != %d)", a.Len(), b.Len()),
		})
	}
}

// diff returns |a[i] - b[i]| computed in complex128, so unsigned operands
// cannot wrap.
func diff[T vecmath.Scalar](a, b vecmath.View[T], i int) float64 {
	d := num.ToComplex(a.At(i)) - num.ToComplex(b.At(i))
	if imag(d) == 0 {
		return math.Abs(real(d))
	}
	return math.Hypot(real(d), imag(d))
}

// SquaredEuclidean returns Σ|aᵢ - bᵢ|².
func SquaredEuclidean[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	requireSameLen("squared euclidean distance", a, b)
	var sum float64
	for i := range a.Len() {
		d := diff(a, b, i)
		sum += d * d
	}
	return sum
}

// Euclidean returns the L2 distance between a and b.
func Euclidean[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	requireSameLen("euclidean distance", a, b)
	var sum float64
	for i := range a.Len() {
		d := diff(a, b, i)
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Manhattan returns the L1 distance between a and b.
func Manhattan[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	requireSameLen("manhattan distance", a, b)
	var sum float64
	for i := range a.Len() {
		sum += diff(a, b, i)
	}
	return sum
}

// Chebyshev returns the L∞ distance between a and b.
func Chebyshev[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	requireSameLen("chebyshev distance", a, b)
	var m float64
	for i := range a.Len() {
		m = max(m, diff(a, b, i))
	}
	return m
}

// Minkowski returns the p-distance between a and b. p must be at least 1;
// p = +Inf yields the Chebyshev distance.
func Minkowski[T vecmath.Scalar](a, b vecmath.View[T], p float64) float64 {
	requireSameLen("minkowski distance", a, b)
	if math.IsNaN(p) || p < 1 {
		panic(&vecmath.Fault{Op: "minkowski distance", Err: vecmath.ErrInvalidArgument, Detail: fmt.Sprintf("p = %g", p)})
	}
	if math.IsInf(p, 1) {
		return Chebyshev(a, b)
	}
	var sum float64
	for i := range a.Len() {
		sum += math.Pow(diff(a, b, i), p)
	}
	return math.Pow(sum, 1/p)
}

// CosineSimilarity returns Re⟨a,b⟩ / (‖a‖·‖b‖). A zero operand faults with
// vecmath.ErrDivisionByZero.
func CosineSimilarity[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	requireSameLen("cosine similarity", a, b)
	var dot, na, nb float64
	for i := range a.Len() {
		x, y := num.ToComplex(a.At(i)), num.ToComplex(b.At(i))
		dot += real(complex(real(x), -imag(x)) * y)
		na += real(x)*real(x) + imag(x)*imag(x)
		nb += real(y)*real(y) + imag(y)*imag(y)
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		panic(&vecmath.Fault{Op: "cosine similarity", Err: vecmath.ErrDivisionByZero})
	}
	return max(-1, min(1, dot/denom))
}

// Cosine returns the cosine distance 1 - CosineSimilarity(a, b).
func Cosine[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	return 1 - CosineSimilarity(a, b)
}

// Hamming returns the number of positions at which a and b differ.
func Hamming[T vecmath.Scalar](a, b vecmath.View[T]) float64 {
	requireSameLen("hamming distance", a, b)
	var n int
	for i := range a.Len() {
		if a.At(i) != b.At(i) {
			n++
		}
	}
	return float64(n)
}

// HammingBits returns the number of differing bits between two byte slices of
// equal length.
func HammingBits(a, b []byte) int {
	if len(a) != len(b) {
		panic(&vecmath.Fault{
			Op:       "hamming bits",
			Err:      vecmath.ErrSizeMismatch,
			Expected: len(a),
			Actual:   len(b),
		})
	}
	var n int
	for i := range a {
		n += bits.OnesCount8(a[i] ^ b[i])
	}
	return n
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricEuclidean Metric = iota
	MetricSquaredEuclidean
	MetricManhattan
	MetricChebyshev
	MetricCosine
	MetricHamming
)

var metricNames = [...]string{
	MetricEuclidean:        "euclidean",
	MetricSquaredEuclidean: "squared-euclidean",
	MetricManhattan:        "manhattan",
	MetricChebyshev:        "chebyshev",
	MetricCosine:           "cosine",
	MetricHamming:          "hamming",
}

func (m Metric) String() string {
	if m >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}
	return fmt.Sprintf("Unknown(%d)", int(m))
}

// ParseMetric parses a metric name as produced by Metric.String. The aliases
// l1, l2 and linf are accepted.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(s) {
	case "l2":
		return MetricEuclidean, nil
	case "l1":
		return MetricManhattan, nil
	case "linf":
		return MetricChebyshev, nil
	}
	for m, name := range metricNames {
		if strings.EqualFold(name, s) {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Func is a function type for distance calculation.
type Func[T vecmath.Scalar] func(a, b vecmath.View[T]) float64

// Provider returns the distance function for the given metric.
func Provider[T vecmath.Scalar](m Metric) (Func[T], error) {
	switch m {
	case MetricEuclidean:
		return Euclidean[T], nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean[T], nil
	case MetricManhattan:
		return Manhattan[T], nil
	case MetricChebyshev:
		return Chebyshev[T], nil
	case MetricCosine:
		return Cosine[T], nil
	case MetricHamming:
		return Hamming[T], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Nearest returns the index of the candidate closest to query under fn and its
// distance. It returns -1 when candidates is empty.
func Nearest[T vecmath.Scalar](fn Func[T], query vecmath.View[T], candidates []vecmath.View[T]) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i, c := range candidates {
		if d := fn(query, c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
