package compress

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/dbpf/compress/refpack"
	"github.com/arloliu/dbpf/endian"
	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
)

func TestGetCodec(t *testing.T) {
	t.Run("Passthrough kinds", func(t *testing.T) {
		for _, kind := range []format.CompressionType{
			format.CompressionNone, format.CompressionDeleted, format.CompressionStreamable,
		} {
			codec, err := GetCodec(kind)
			require.NoError(t, err)
			require.IsType(t, NoOpCompressor{}, codec)

			data := []byte("opaque")
			out, err := codec.Decompress(data, 99)
			require.NoError(t, err)
			require.Equal(t, data, out)
		}
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := GetCodec(format.CompressionType(0x1234))
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

		_, err = CreateCodec(format.CompressionType(0x1234))
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	})
}

func TestRoundTrip(t *testing.T) {
	data := generateBenchmarkData(20000, "compressible")
	for _, kind := range []format.CompressionType{
		format.CompressionNone, format.CompressionZLib, format.CompressionRefPack,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			codec, err := GetCodec(kind)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			out, err := codec.Decompress(compressed, len(data))
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestZLibBounded(t *testing.T) {
	codec := NewZLibCompressor(DefaultZLibLevel)
	data := make([]byte, 10000)
	compressed, err := codec.Compress(data)
	require.NoError(t, err)

	t.Run("Declared size too small", func(t *testing.T) {
		_, err := codec.Decompress(compressed, 100)
		require.ErrorIs(t, err, errs.ErrSizeExceeded)
		require.ErrorIs(t, err, errs.ErrCodec)
	})

	t.Run("Declared size too large", func(t *testing.T) {
		_, err := codec.Decompress(compressed, len(data)+1)
		require.ErrorIs(t, err, errs.ErrCodec)
		require.NotErrorIs(t, err, errs.ErrSizeExceeded)
	})

	t.Run("Huge declared size stays bounded", func(t *testing.T) {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		_, err := codec.Decompress(compressed, 1<<31)
		runtime.ReadMemStats(&after)

		require.ErrorIs(t, err, errs.ErrCodec)
		require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
	})

	t.Run("Unknown size", func(t *testing.T) {
		out, err := codec.Decompress(compressed, -1)
		require.NoError(t, err)
		require.Len(t, out, len(data))
	})

	t.Run("Corrupt stream", func(t *testing.T) {
		_, err := codec.Decompress([]byte{0x78, 0x9C, 0xFF, 0xFF}, 10)
		require.ErrorIs(t, err, errs.ErrCodec)

		_, err = codec.Decompress([]byte("nope"), 10)
		require.ErrorIs(t, err, errs.ErrCodec)
	})

	t.Run("Interoperates with other writers", func(t *testing.T) {
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		_, err := w.Write([]byte("hello hello hello"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		out, err := codec.Decompress(buf.Bytes(), 17)
		require.NoError(t, err)
		require.Equal(t, "hello hello hello", string(out))
	})
}

func TestRefPackCodec(t *testing.T) {
	t.Run("Declared size mismatch", func(t *testing.T) {
		codec, err := GetCodec(format.CompressionRefPack)
		require.NoError(t, err)

		blob, err := codec.Compress([]byte("abcabcabcabc"))
		require.NoError(t, err)

		_, err = codec.Decompress(blob, 5)
		require.ErrorIs(t, err, errs.ErrSizeExceeded)

		_, err = codec.Decompress(blob, 50)
		require.ErrorIs(t, err, errs.ErrCodec)
	})

	t.Run("Garbage", func(t *testing.T) {
		codec, err := GetCodec(format.CompressionRefPack)
		require.NoError(t, err)

		_, err = codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF}, 4)
		require.ErrorIs(t, err, errs.ErrCodec)
	})

	t.Run("Ambiguity is logged", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))
		codec, err := CreateCodec(format.CompressionRefPack,
			WithAmbiguityDetection(true), WithLogger(logger))
		require.NoError(t, err)

		// A SimEA-style header with only standard flags also parses as Reference.
		maxis, err := refpack.Compress([]byte("xyzxyzxyzxyz"))
		require.NoError(t, err)
		blob := endian.AppendUint24([]byte{0x10, 0xFB}, 12)
		blob = append(blob, maxis[9:]...)

		out, err := codec.Decompress(blob, 12)
		require.NoError(t, err)
		require.Equal(t, "xyzxyzxyzxyz", string(out))
		require.Contains(t, logs.String(), "ambiguous refpack blob")
	})

	t.Run("Restricted variant list", func(t *testing.T) {
		codec, err := CreateCodec(format.CompressionRefPack, WithRefPackVariants(refpack.Reference))
		require.NoError(t, err)

		blob, err := refpack.Compress([]byte("maxis only"))
		require.NoError(t, err)
		_, err = codec.Decompress(blob, 10)
		require.ErrorIs(t, err, errs.ErrRefPackFormat)
	})
}

func TestOptions(t *testing.T) {
	_, err := CreateCodec(format.CompressionZLib, WithZLibLevel(42))
	require.Error(t, err)

	_, err = CreateCodec(format.CompressionRefPack, WithRefPackVariants())
	require.Error(t, err)

	set, err := NewSet(WithZLibLevel(zlib.BestSpeed), WithRefPackChainDepth(8))
	require.NoError(t, err)

	codec, err := set.Codec(format.CompressionZLib)
	require.NoError(t, err)
	require.Equal(t, zlib.BestSpeed, codec.(ZLibCompressor).level)

	_, err = set.Codec(format.CompressionType(7))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

	var nilSet *Set
	codec, err = nilSet.Codec(format.CompressionNone)
	require.NoError(t, err)
	require.NotNil(t, codec)
}

func TestCompressionStats(t *testing.T) {
	var total CompressionStats
	total.Add(CompressionStats{OriginalSize: 100, CompressedSize: 40})
	total.Add(CompressionStats{OriginalSize: 100, CompressedSize: 60})

	require.InDelta(t, 0.5, total.CompressionRatio(), 1e-9)
	require.InDelta(t, 50.0, total.SpaceSavings(), 1e-9)
	require.Zero(t, CompressionStats{}.CompressionRatio())
}
