// Package codec encodes vectors for storage and transport.
//
// Two representations are provided. The binary frame (MarshalBinary, WriteVector)
// is compact, optionally LZ4 or ZSTD compressed, and records the element kind so
// that decoding can apply the conversion policy. The JSON document (EncodeJSON)
// is portable and goes through a pluggable Codec.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
