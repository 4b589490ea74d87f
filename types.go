// Package riegeli defines the format-level constants and the compression
// configuration of a record-oriented container format.
//
// The container is a sequence of tagged chunks. This package holds the
// values frozen by the on-disk format (ChunkType, CompressionType) and the
// CompressorOptions value that selects the codec and tuning used when a
// chunk is compressed. The stream, memstream, chainstream and compress
// packages build on these definitions to move the bytes themselves.
package riegeli

import "fmt"

// ChunkType identifies the kind of a chunk in the container format.
//
// These values are frozen in the file format. They are spelled out as
// literals and never derived from declaration order; TestChunkTypeValues
// pins them to the documented constants.
type ChunkType uint8

const (
	ChunkTypeFileSignature ChunkType = 0x73 // 's'
	ChunkTypePadding       ChunkType = 0x70 // 'p'
	ChunkTypeSimple        ChunkType = 0x72 // 'r'
	ChunkTypeTransposed    ChunkType = 0x74 // 't'
)

// String returns a human-readable name for the chunk type.
func (t ChunkType) String() string {
	switch t {
	case ChunkTypeFileSignature:
		return "file_signature"
	case ChunkTypePadding:
		return "padding"
	case ChunkTypeSimple:
		return "simple"
	case ChunkTypeTransposed:
		return "transposed"
	default:
		return fmt.Sprintf("unknown_chunk_type(0x%02x)", uint8(t))
	}
}

// CompressionType identifies the compression codec of a chunk as stored on
// disk.
//
// These values are frozen in the file format. Note that Snappy has no
// on-disk tag: it exists only on the runtime Algorithm axis and is framed
// outside the chunk compression byte.
type CompressionType uint8

const (
	CompressionNone   CompressionType = 0
	CompressionBrotli CompressionType = 0x62 // 'b'
	CompressionZstd   CompressionType = 0x7A // 'z'
)

// String returns a human-readable name for the compression type.
func (ct CompressionType) String() string {
	switch ct {
	case CompressionNone:
		return "none"
	case CompressionBrotli:
		return "brotli"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown_compression_type(0x%02x)", uint8(ct))
	}
}

// Algorithm returns the runtime algorithm for an on-disk compression tag,
// and false for a tag the format does not define.
func (ct CompressionType) Algorithm() (Algorithm, bool) {
	switch ct {
	case CompressionNone:
		return AlgorithmNone, true
	case CompressionBrotli:
		return AlgorithmBrotli, true
	case CompressionZstd:
		return AlgorithmZstd, true
	default:
		return 0, false
	}
}

// Algorithm selects a compression codec at runtime. Unlike CompressionType
// it is not written to disk and also covers Snappy.
type Algorithm uint8

const (
	AlgorithmNone   Algorithm = 0
	AlgorithmBrotli Algorithm = 0x62 // 'b'
	AlgorithmZstd   Algorithm = 0x7A // 'z'
	AlgorithmSnappy Algorithm = 0x73 // 's'
)

// String returns the name used in the compression option grammar, except
// for AlgorithmNone which the grammar spells "uncompressed".
func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "none"
	case AlgorithmBrotli:
		return "brotli"
	case AlgorithmZstd:
		return "zstd"
	case AlgorithmSnappy:
		return "snappy"
	default:
		return fmt.Sprintf("unknown_algorithm(0x%02x)", uint8(a))
	}
}

// CompressionType returns the on-disk compression tag for the algorithm,
// and false when the algorithm has no tag in the chunk format (Snappy).
func (a Algorithm) CompressionType() (CompressionType, bool) {
	switch a {
	case AlgorithmNone:
		return CompressionNone, true
	case AlgorithmBrotli:
		return CompressionBrotli, true
	case AlgorithmZstd:
		return CompressionZstd, true
	default:
		return 0, false
	}
}
