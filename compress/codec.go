package compress

import (
	"fmt"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
)

// Compressor compresses a resource payload into the on-disk form of one compression kind.
//
// Memory management:
//   - Returned slice is owned by the caller unless documented otherwise
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a resource payload from its on-disk form.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data that is expected to expand to size bytes.
	//
	// A negative size means the decompressed size is not known. Codecs that
	// can bound their output stop at size and fail with errs.ErrSizeExceeded
	// rather than allocating past it. All failures wrap errs.ErrCodec.
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes the effect of compressing one payload.
type CompressionStats struct {
	// Algorithm identifies the compression kind used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Returns 0.0 if the original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Add accumulates another payload's sizes into s.
func (s *CompressionStats) Add(o CompressionStats) {
	s.OriginalSize += o.OriginalSize
	s.CompressedSize += o.CompressedSize
}

// CreateCodec creates a Codec for the specified compression kind configured by opts.
//
// Uncompressed, Deleted and Streamable payloads are stored verbatim and get a
// NoOpCompressor. Unknown kinds return errs.ErrUnsupportedCompression.
func CreateCodec(kind format.CompressionType, opts ...Option) (Codec, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	switch kind {
	case format.CompressionNone, format.CompressionDeleted, format.CompressionStreamable:
		return NewNoOpCompressor(), nil
	case format.CompressionZLib:
		return NewZLibCompressor(cfg.ZLibLevel), nil
	case format.CompressionRefPack:
		return NewRefPackCompressor(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, kind)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:       NewNoOpCompressor(),
	format.CompressionDeleted:    NewNoOpCompressor(),
	format.CompressionStreamable: NewNoOpCompressor(),
	format.CompressionZLib:       NewZLibCompressor(DefaultZLibLevel),
	format.CompressionRefPack:    NewRefPackCompressor(defaultConfig()),
}

// GetCodec retrieves a built-in Codec with default settings for the specified compression kind.
func GetCodec(kind format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[kind]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, kind)
}

// Set is a per-kind codec table built once from a shared option list.
type Set struct {
	codecs map[format.CompressionType]Codec
}

// NewSet creates codecs for every supported compression kind with opts applied.
func NewSet(opts ...Option) (*Set, error) {
	s := &Set{codecs: make(map[format.CompressionType]Codec, len(builtinCodecs))}
	for kind := range builtinCodecs {
		c, err := CreateCodec(kind, opts...)
		if err != nil {
			return nil, err
		}
		s.codecs[kind] = c
	}

	return s, nil
}

// Codec returns the codec for kind, or errs.ErrUnsupportedCompression.
func (s *Set) Codec(kind format.CompressionType) (Codec, error) {
	if s == nil {
		return GetCodec(kind)
	}
	if c, ok := s.codecs[kind]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, kind)
}
