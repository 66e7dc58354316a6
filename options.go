package vecmath

import "math"

// Convention selects which argument of a complex inner product is conjugated.
type Convention int

const (
	// AntilinearFirst conjugates the elements of the left operand: Σ conj(aᵢ)·bᵢ.
	AntilinearFirst Convention = iota
	// AntilinearSecond conjugates the elements of the right operand: Σ aᵢ·conj(bᵢ).
	AntilinearSecond
)

func (c Convention) String() string {
	switch c {
	case AntilinearFirst:
		return "antilinear-first"
	case AntilinearSecond:
		return "antilinear-second"
	default:
		return "unknown"
	}
}

// DefaultEpsilon is the tolerance used by the similarity predicates.
const DefaultEpsilon = 1e-6

type options struct {
	epsilon    float64
	convention Convention
}

// Option configures a single algebra call.
//
// Options exist to keep one entry point per operation instead of a variant per
// inner-product convention or tolerance.
type Option func(*options)

// WithEpsilon sets the tolerance used by near-zero tests. The sign is ignored.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = math.Abs(eps)
	}
}

// WithConvention selects the complex inner-product convention.
// It has no effect on real element types.
func WithConvention(c Convention) Option {
	return func(o *options) {
		o.convention = c
	}
}

func applyOptions(opts []Option) options {
	o := options{
		epsilon:    DefaultEpsilon,
		convention: AntilinearFirst,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
