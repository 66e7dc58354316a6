package codec

import (
	"testing"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/testutil"
)

func benchmarkVector(n int) *vecmath.Vector[float64] {
	rng := testutil.NewRNG(42)
	v := vecmath.NewVector[float64](n)
	for i := range n {
		v.Set(i, rng.Float64())
	}
	return v
}

func BenchmarkMarshalBinary(b *testing.B) {
	v := benchmarkVector(1024)
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := MarshalBinary[float64](v, WithCompression(c)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkUnmarshalBinary(b *testing.B) {
	data, err := MarshalBinary[float64](benchmarkVector(1024))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := UnmarshalBinary[float64](data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeJSON(b *testing.B) {
	v := benchmarkVector(1024)
	for _, c := range []Codec{JSON{}, GoJSON{}} {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := EncodeJSON[float64](c, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
