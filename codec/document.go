package codec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/num"
)

// Document is the JSON form of a vector. Real elements are stored in Values,
// complex elements as [re, im] pairs in Complex.
type Document struct {
	Kind    string       `json:"kind"`
	Extent  int          `json:"extent"`
	Values  []float64    `json:"values,omitempty"`
	Complex [][2]float64 `json:"complex,omitempty"`
}

// NewDocument captures v as a Document.
func NewDocument[T vecmath.Scalar](v vecmath.View[T]) Document {
	kind := vecmath.KindOf[T]()
	d := Document{Kind: kind.String(), Extent: int(v.Extent())}

	if kind.IsComplex() {
		d.Complex = make([][2]float64, v.Len())
		for i := range v.Len() {
			c := num.ToComplex(v.At(i))
			d.Complex[i] = [2]float64{real(c), imag(c)}
		}
		return d
	}

	d.Values = make([]float64, v.Len())
	for i := range v.Len() {
		d.Values[i] = num.Real(v.At(i))
	}
	return d
}

// Len returns the number of elements the document holds.
func (d Document) Len() int {
	if len(d.Complex) > 0 {
		return len(d.Complex)
	}
	return len(d.Values)
}

// StoredKind parses the kind recorded in the document.
func (d Document) StoredKind() (vecmath.Kind, error) {
	k, ok := vecmath.ParseKind(d.Kind)
	if !ok {
		return vecmath.KindInvalid, fmt.Errorf("codec: unknown element kind %q", d.Kind)
	}
	return k, nil
}

// DocumentVector rebuilds a dynamic vector of T from d. The recorded kind must be
// convertible to T under the active conversion policy.
func DocumentVector[T vecmath.Scalar](d Document) (*vecmath.Vector[T], error) {
	from, err := d.StoredKind()
	if err != nil {
		return nil, err
	}
	to := vecmath.KindOf[T]()
	if !vecmath.Convertible(from, to) {
		return nil, fmt.Errorf("codec: decode %s as %s: %w", from, to, vecmath.ErrTypeNotConvertible)
	}
	if len(d.Values) > 0 && len(d.Complex) > 0 {
		return nil, errors.New("codec: document holds both real and complex values")
	}
	if from.IsComplex() != (len(d.Complex) > 0) && d.Len() > 0 {
		return nil, fmt.Errorf("codec: %s document stores the wrong value form", from)
	}
	if d.Extent != int(vecmath.DynamicExtent) && d.Extent != d.Len() {
		return nil, fmt.Errorf("codec: extent %d holds %d elements", d.Extent, d.Len())
	}

	v := vecmath.NewVector[T](d.Len())
	for i, c := range d.Complex {
		v.Set(i, num.FromComplex[T](complex(c[0], c[1])))
	}
	for i, x := range d.Values {
		v.Set(i, num.FromFloat[T](x))
	}
	return v, nil
}

// EncodeJSON encodes v as a JSON document using c (Default when nil).
func EncodeJSON[T vecmath.Scalar](c Codec, v vecmath.View[T]) ([]byte, error) {
	if c == nil {
		c = Default
	}
	return c.Marshal(NewDocument(v))
}

// DecodeJSON decodes a JSON document into a dynamic vector of T.
func DecodeJSON[T vecmath.Scalar](c Codec, data []byte) (*vecmath.Vector[T], error) {
	if c == nil {
		c = Default
	}
	var d Document
	if err := c.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("codec %s: %w", c.Name(), err)
	}
	return DocumentVector[T](d)
}
