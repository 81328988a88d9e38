// Package compress provides the codecs that move DBPF resource payloads
// between their on-disk and decompressed forms.
//
// # Overview
//
// Every index entry carries a format.CompressionType. This package maps each
// kind to a Codec:
//   - Uncompressed, Deleted, Streamable: NoOpCompressor (bytes stored verbatim)
//   - ZLib: ZLibCompressor (klauspost/compress, bounded by the declared size)
//   - RefPack: RefPackCompressor (see the refpack subpackage)
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte, size int) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec returns shared codecs with default settings. CreateCodec and NewSet
// build codecs configured with functional options:
//
//	set, err := compress.NewSet(
//	    compress.WithRefPackVariants(refpack.SimEA, refpack.Reference),
//	    compress.WithAmbiguityDetection(true),
//	    compress.WithLogger(logger),
//	)
//	codec, _ := set.Codec(format.CompressionRefPack)
//	data, err := codec.Decompress(blob, declaredSize)
//
// # Errors
//
// Every decompression failure wraps errs.ErrCodec. Output that would exceed the
// declared size additionally wraps errs.ErrSizeExceeded; RefPack blobs that no
// variant accepts wrap errs.ErrRefPackFormat.
//
// # Thread Safety
//
// All codecs are safe for concurrent use.
package compress
