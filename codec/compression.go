package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression applied to a binary vector payload.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression parses the names produced by Compression.String.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("codec: unknown compression %q", s)
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// A CompressedSize of 0 means the data is stored uncompressed.
const blockHeaderSize = 8

var errCorruptBlock = errors.New("codec: corrupt block")

// compressBlock frames data as a block, compressing it with c when that saves
// at least 10%.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	var compressed []byte
	var err error

	switch c {
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed = compressBlockZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)
	return enc.EncodeAll(data, nil)
}

// decompressBlock decodes one block produced by compressBlock and returns the
// payload plus the number of bytes consumed.
func decompressBlock(data []byte, c Compression, expected int) ([]byte, int, error) {
	if len(data) < blockHeaderSize {
		return nil, 0, fmt.Errorf("%w: block too small for header", errCorruptBlock)
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])

	// The size comes from untrusted input; check it before allocating.
	if uint64(uncompressedSize) != uint64(expected) {
		return nil, 0, fmt.Errorf("%w: block holds %d bytes, want %d", errCorruptBlock, uncompressedSize, expected)
	}

	if compressedSize == 0 {
		end := blockHeaderSize + int(uncompressedSize)
		if len(data) < end {
			return nil, 0, fmt.Errorf("%w: block data too small", errCorruptBlock)
		}
		return data[blockHeaderSize:end], end, nil
	}

	end := blockHeaderSize + int(compressedSize)
	if len(data) < end {
		return nil, 0, fmt.Errorf("%w: compressed block data too small", errCorruptBlock)
	}
	compressedData := data[blockHeaderSize:end]
	result := make([]byte, uncompressedSize)

	switch c {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, 0, err
		}
		if uint32(n) != uncompressedSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", errCorruptBlock)
		}
		return result, end, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, 0, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, 0, fmt.Errorf("%w: decompressed size mismatch", errCorruptBlock)
		}
		return decoded, end, nil

	default:
		return nil, 0, fmt.Errorf("%w: compressed block with compression %s", errCorruptBlock, c)
	}
}
