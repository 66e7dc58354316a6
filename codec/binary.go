package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/vecmath"
	"github.com/hupe1980/vecmath/internal/num"
)

// Binary frame layout (little endian):
//
//	[0:4]   magic "VMAT"
//	[4]     format version
//	[5]     element kind
//	[6]     compression
//	[7]     reserved
//	[8:12]  extent (int32, -1 for dynamic)
//	[12:16] element count (uint32)
//	[16:]   block (see compressBlock)
const (
	frameHeaderSize = 16
	formatVersion   = 1

	// MaxElements bounds the element count accepted by ReadVector.
	MaxElements = 1 << 28
)

var frameMagic = [4]byte{'V', 'M', 'A', 'T'}

var (
	// ErrBadMagic is returned when a frame does not start with the vecmath magic.
	ErrBadMagic = errors.New("codec: bad magic")
	// ErrUnsupportedVersion is returned for frames written by a newer format.
	ErrUnsupportedVersion = errors.New("codec: unsupported version")
	// ErrCorrupt is returned when a frame is truncated or inconsistent.
	ErrCorrupt = errors.New("codec: corrupt frame")
)

// BinaryOption configures WriteVector and MarshalBinary.
type BinaryOption func(*binaryOptions)

type binaryOptions struct {
	compression Compression
}

// WithCompression selects the block compression of the payload.
func WithCompression(c Compression) BinaryOption {
	return func(o *binaryOptions) {
		o.compression = c
	}
}

// Header describes a binary vector frame.
type Header struct {
	Kind        vecmath.Kind
	Compression Compression
	Extent      vecmath.Extent
	Count       int
}

// MarshalBinary encodes v as a binary frame.
func MarshalBinary[T vecmath.Scalar](v vecmath.View[T], opts ...BinaryOption) ([]byte, error) {
	o := binaryOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	kind := vecmath.KindOf[T]()
	size := elemSize(kind)
	if size == 0 {
		return nil, fmt.Errorf("codec: unsupported element kind %s", kind)
	}
	if v.Len() > MaxElements {
		return nil, fmt.Errorf("codec: %d elements exceed the frame limit", v.Len())
	}

	payload := make([]byte, v.Len()*size)
	for i := range v.Len() {
		encodeElem(kind, payload[i*size:], v.At(i))
	}

	block, err := compressBlock(payload, o.compression)
	if err != nil {
		return nil, fmt.Errorf("codec: compress %s: %w", o.compression, err)
	}

	out := make([]byte, frameHeaderSize, frameHeaderSize+len(block))
	copy(out, frameMagic[:])
	out[4] = formatVersion
	out[5] = byte(kind)
	out[6] = byte(o.compression)
	binary.LittleEndian.PutUint32(out[8:], uint32(int32(v.Extent())))
	binary.LittleEndian.PutUint32(out[12:], uint32(v.Len()))
	return append(out, block...), nil
}

// WriteVector writes v to w as a binary frame.
func WriteVector[T vecmath.Scalar](w io.Writer, v vecmath.View[T], opts ...BinaryOption) error {
	b, err := MarshalBinary(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// UnmarshalBinary decodes a binary frame into a dynamic vector of T. The stored
// kind must be convertible to T under the active conversion policy.
func UnmarshalBinary[T vecmath.Scalar](data []byte) (*vecmath.Vector[T], error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	payload, _, err := decompressBlock(data[frameHeaderSize:], h.Compression, h.Count*elemSize(h.Kind))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return decodePayload[T](h, payload)
}

// ReadVector reads one binary frame from r.
func ReadVector[T vecmath.Scalar](r io.Reader) (*vecmath.Vector[T], error) {
	br := bufio.NewReader(r)

	head := make([]byte, frameHeaderSize+blockHeaderSize)
	if _, err := io.ReadFull(br, head); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	h, err := parseHeader(head)
	if err != nil {
		return nil, err
	}

	n := binary.LittleEndian.Uint32(head[frameHeaderSize+4:])
	if n == 0 {
		n = binary.LittleEndian.Uint32(head[frameHeaderSize:])
	}
	if int(n) > h.Count*elemSize(h.Kind)*2+64 {
		return nil, fmt.Errorf("%w: block of %d bytes for %d elements", ErrCorrupt, n, h.Count)
	}

	body := make([]byte, int(n))
	if _, err := io.ReadFull(br, body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	payload, _, err := decompressBlock(append(head[frameHeaderSize:], body...), h.Compression, h.Count*elemSize(h.Kind))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return decodePayload[T](h, payload)
}

// ReadHeader parses the header of a binary frame without decoding the payload.
func ReadHeader(data []byte) (Header, error) {
	return parseHeader(data)
}

func parseHeader(data []byte) (Header, error) {
	if len(data) < frameHeaderSize {
		return Header{}, fmt.Errorf("%w: %d byte header", ErrCorrupt, len(data))
	}
	if [4]byte(data[:4]) != frameMagic {
		return Header{}, ErrBadMagic
	}
	if data[4] != formatVersion {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	h := Header{
		Kind:        vecmath.Kind(data[5]),
		Compression: Compression(data[6]),
		Extent:      vecmath.Extent(int32(binary.LittleEndian.Uint32(data[8:]))),
		Count:       int(binary.LittleEndian.Uint32(data[12:])),
	}
	if elemSize(h.Kind) == 0 {
		return Header{}, fmt.Errorf("%w: element kind %d", ErrCorrupt, data[5])
	}
	if h.Compression > CompressionZSTD {
		return Header{}, fmt.Errorf("%w: compression %d", ErrCorrupt, data[6])
	}
	if h.Count > MaxElements {
		return Header{}, fmt.Errorf("%w: %d elements", ErrCorrupt, h.Count)
	}
	if !h.Extent.IsDynamic() && int(h.Extent) != h.Count {
		return Header{}, fmt.Errorf("%w: extent %s holds %d elements", ErrCorrupt, h.Extent, h.Count)
	}
	return h, nil
}

func decodePayload[T vecmath.Scalar](h Header, payload []byte) (*vecmath.Vector[T], error) {
	to := vecmath.KindOf[T]()
	if !vecmath.Convertible(h.Kind, to) {
		return nil, fmt.Errorf("codec: decode %s as %s: %w", h.Kind, to, vecmath.ErrTypeNotConvertible)
	}

	size := elemSize(h.Kind)
	if len(payload) != h.Count*size {
		return nil, fmt.Errorf("%w: payload of %d bytes for %d %s elements", ErrCorrupt, len(payload), h.Count, h.Kind)
	}

	v := vecmath.NewVector[T](h.Count)
	for i := range h.Count {
		v.Set(i, decodeElem[T](h.Kind, payload[i*size:]))
	}
	return v, nil
}

// elemSize returns the encoded width of one element. Platform-sized integers are
// always stored as 64 bits.
func elemSize(k vecmath.Kind) int {
	switch k {
	case vecmath.KindInt, vecmath.KindUint, vecmath.KindUintptr:
		return 8
	case vecmath.KindInvalid:
		return 0
	default:
		return k.Bits() / 8
	}
}

func encodeElem[T vecmath.Scalar](k vecmath.Kind, b []byte, x T) {
	le := binary.LittleEndian
	switch k {
	case vecmath.KindInt8:
		b[0] = byte(num.Cast[int8](x))
	case vecmath.KindUint8:
		b[0] = num.Cast[uint8](x)
	case vecmath.KindInt16:
		le.PutUint16(b, uint16(num.Cast[int16](x)))
	case vecmath.KindUint16:
		le.PutUint16(b, num.Cast[uint16](x))
	case vecmath.KindInt32:
		le.PutUint32(b, uint32(num.Cast[int32](x)))
	case vecmath.KindUint32:
		le.PutUint32(b, num.Cast[uint32](x))
	case vecmath.KindInt, vecmath.KindInt64:
		le.PutUint64(b, uint64(num.Cast[int64](x)))
	case vecmath.KindUint, vecmath.KindUint64, vecmath.KindUintptr:
		le.PutUint64(b, num.Cast[uint64](x))
	case vecmath.KindFloat32:
		le.PutUint32(b, math.Float32bits(num.Cast[float32](x)))
	case vecmath.KindFloat64:
		le.PutUint64(b, math.Float64bits(num.Cast[float64](x)))
	case vecmath.KindComplex64:
		c := num.Cast[complex64](x)
		le.PutUint32(b, math.Float32bits(real(c)))
		le.PutUint32(b[4:], math.Float32bits(imag(c)))
	case vecmath.KindComplex128:
		c := num.Cast[complex128](x)
		le.PutUint64(b, math.Float64bits(real(c)))
		le.PutUint64(b[8:], math.Float64bits(imag(c)))
	}
}

func decodeElem[T vecmath.Scalar](k vecmath.Kind, b []byte) T {
	le := binary.LittleEndian
	switch k {
	case vecmath.KindInt8:
		return num.Cast[T](int8(b[0]))
	case vecmath.KindUint8:
		return num.Cast[T](b[0])
	case vecmath.KindInt16:
		return num.Cast[T](int16(le.Uint16(b)))
	case vecmath.KindUint16:
		return num.Cast[T](le.Uint16(b))
	case vecmath.KindInt32:
		return num.Cast[T](int32(le.Uint32(b)))
	case vecmath.KindUint32:
		return num.Cast[T](le.Uint32(b))
	case vecmath.KindInt, vecmath.KindInt64:
		return num.Cast[T](int64(le.Uint64(b)))
	case vecmath.KindUint, vecmath.KindUint64, vecmath.KindUintptr:
		return num.Cast[T](le.Uint64(b))
	case vecmath.KindFloat32:
		return num.Cast[T](math.Float32frombits(le.Uint32(b)))
	case vecmath.KindFloat64:
		return num.Cast[T](math.Float64frombits(le.Uint64(b)))
	case vecmath.KindComplex64:
		return num.Cast[T](complex(math.Float32frombits(le.Uint32(b)), math.Float32frombits(le.Uint32(b[4:]))))
	case vecmath.KindComplex128:
		return num.Cast[T](complex(math.Float64frombits(le.Uint64(b)), math.Float64frombits(le.Uint64(b[8:]))))
	default:
		var zero T
		return zero
	}
}
