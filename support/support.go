// Package support tracks the sparsity pattern of vectors: the set of indices
// holding non-zero elements. Patterns are backed by Roaring bitmaps, so set
// algebra over long, sparse vectors stays cheap.
package support

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/num"
)

// Pattern is a set of element indices.
type Pattern struct {
	rb *roaring.Bitmap
}

// New creates an empty pattern.
func New() *Pattern {
	return &Pattern{rb: roaring.New()}
}

// FromIndices creates a pattern holding the given indices.
func FromIndices(indices ...uint32) *Pattern {
	return &Pattern{rb: roaring.BitmapOf(indices...)}
}

// Of returns the indices of v whose magnitude exceeds eps. With eps = 0 only
// exact zeros are excluded.
func Of[T vecmath.Scalar](v vecmath.View[T], eps float64) *Pattern {
	p := New()
	for i := range v.Len() {
		if num.Abs(v.At(i)) > eps {
			p.rb.Add(uint32(i))
		}
	}
	return p
}

// Add adds index i.
func (p *Pattern) Add(i uint32) {
	p.rb.Add(i)
}

// Remove removes index i.
func (p *Pattern) Remove(i uint32) {
	p.rb.Remove(i)
}

// Contains reports whether index i is in the pattern.
func (p *Pattern) Contains(i uint32) bool {
	return p.rb.Contains(i)
}

// IsEmpty returns true if the pattern holds no index.
func (p *Pattern) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// Cardinality returns the number of indices in the pattern.
func (p *Pattern) Cardinality() int {
	return int(p.rb.GetCardinality())
}

// Clone returns a deep copy of the pattern.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{rb: p.rb.Clone()}
}

// Equal reports whether p and o hold the same indices.
func (p *Pattern) Equal(o *Pattern) bool {
	return p.rb.Equals(o.rb)
}

// Indices iterates the indices in increasing order.
func (p *Pattern) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToArray returns the indices in increasing order.
func (p *Pattern) ToArray() []uint32 {
	return p.rb.ToArray()
}

func (p *Pattern) String() string {
	return fmt.Sprint(p.rb.ToArray())
}

// And returns the intersection of p and o.
func (p *Pattern) And(o *Pattern) *Pattern {
	return &Pattern{rb: roaring.And(p.rb, o.rb)}
}

// Or returns the union of p and o.
func (p *Pattern) Or(o *Pattern) *Pattern {
	return &Pattern{rb: roaring.Or(p.rb, o.rb)}
}

// AndNot returns the indices of p that are not in o.
func (p *Pattern) AndNot(o *Pattern) *Pattern {
	return &Pattern{rb: roaring.AndNot(p.rb, o.rb)}
}

// Overlap returns the number of indices shared by p and o.
func (p *Pattern) Overlap(o *Pattern) int {
	return int(p.rb.AndCardinality(o.rb))
}

// Jaccard returns |p ∩ o| / |p ∪ o|. Two empty patterns have similarity 1.
func (p *Pattern) Jaccard(o *Pattern) float64 {
	union := p.rb.OrCardinality(o.rb)
	if union == 0 {
		return 1
	}
	return float64(p.rb.AndCardinality(o.rb)) / float64(union)
}

// MarshalBinary encodes the pattern in the portable Roaring format.
func (p *Pattern) MarshalBinary() ([]byte, error) {
	p.rb.RunOptimize()
	return p.rb.ToBytes()
}

// UnmarshalBinary decodes a pattern produced by MarshalBinary.
func (p *Pattern) UnmarshalBinary(data []byte) error {
	rb := roaring.New()
	if _, err := rb.FromBuffer(data); err != nil {
		return fmt.Errorf("support: decode pattern: %w", err)
	}
	// FromBuffer may alias data; detach it.
	p.rb = rb.Clone()
	return nil
}

// Density returns the fraction of non-zero elements of v under eps.
// An empty vector has density 0.
func Density[T vecmath.Scalar](v vecmath.View[T], eps float64) float64 {
	if v.Len() == 0 {
		return 0
	}
	return float64(Of(v, eps).Cardinality()) / float64(v.Len())
}

// Mask returns a copy of v with every element outside p set to zero.
func Mask[T vecmath.Scalar, V vecmath.Vec[T, V]](v V, p *Pattern) V {
	out := v.Clone()
	var zero T
	for i := range out.Len() {
		if !p.Contains(uint32(i)) {
			out.Set(i, zero)
		}
	}
	return out
}

// SparseInnerProduct computes Σ conj(aᵢ)·bᵢ over the indices where both a and b
// are non-zero. The result equals vecmath.InnerProduct under the default
// convention but skips the zero entries.
func SparseInnerProduct[T vecmath.Scalar](a, b vecmath.View[T]) T {
	if a.Len() != b.Len() {
		panic(&vecmath.Fault{
			Op:       "sparse inner product",
			Err:      vecmath.ErrSizeMismatch,
			Expected: a.Len(),
			Actual:   b.Len(),
		})
	}
	var sum T
	for i := range Of(a, 0).And(Of(b, 0)).Indices() {
		sum += num.Conj(a.At(i)) * b.At(i)
	}
	return sum
}
