package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/tgi"
)

func TestLegacyEntry(t *testing.T) {
	wideKey := tgi.New(tgi.TypeDirectory, 0xE86B1EEF, 0x286B1F03_00000001)
	narrowKey := tgi.New(tgi.TypeCode(0x12345678), 7, 0x42)

	t.Run("Minor 2 carries 64-bit instance", func(t *testing.T) {
		e := LegacyEntry{TGI: wideKey, Location: 96, Size: 300}
		data := e.AppendLegacy(nil, format.IndexMinorV2)
		require.Len(t, data, 24)

		parsed, err := ParseLegacyEntry(data, format.IndexMinorV2)
		require.NoError(t, err)
		require.Equal(t, e, parsed)
	})

	t.Run("Minor 1 drops instance high", func(t *testing.T) {
		e := LegacyEntry{TGI: narrowKey, Location: 96, Size: 5}
		data := e.AppendLegacy(nil, format.IndexMinorV1)
		require.Len(t, data, 20)

		parsed, err := ParseLegacyEntry(data, format.IndexMinorV1)
		require.NoError(t, err)
		require.Equal(t, e, parsed)
	})

	t.Run("Zero location", func(t *testing.T) {
		data := LegacyEntry{TGI: narrowKey, Location: 0, Size: 5}.AppendLegacy(nil, format.IndexMinorV1)
		_, err := ParseLegacyEntry(data, format.IndexMinorV1)
		require.ErrorIs(t, err, errs.ErrIndexCorruption)
	})

	t.Run("Short buffer", func(t *testing.T) {
		_, err := ParseLegacyEntry(make([]byte, 20), format.IndexMinorV2)
		require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
	})

	t.Run("Index", func(t *testing.T) {
		var data []byte
		for i := range 3 {
			data = LegacyEntry{TGI: narrowKey, Location: uint32(100 + i), Size: 1}.AppendLegacy(data, format.IndexMinorV0)
		}
		entries, err := ParseLegacyIndex(data, 3, format.IndexMinorV0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		require.Equal(t, uint32(102), entries[2].Location)

		_, err = ParseLegacyIndex(data, 4, format.IndexMinorV0)
		require.ErrorIs(t, err, errs.ErrIndexCorruption)
	})
}

func TestHoles(t *testing.T) {
	data := HoleEntry{Location: 500, Size: 64}.AppendHole(nil)
	data = HoleEntry{Location: 900, Size: 16}.AppendHole(data)

	holes, err := ParseHoles(data, 2)
	require.NoError(t, err)
	require.Equal(t, []HoleEntry{{500, 64}, {900, 16}}, holes)

	_, err = ParseHoles(data, 3)
	require.ErrorIs(t, err, errs.ErrIndexCorruption)
}

func TestDirectory(t *testing.T) {
	a := tgi.New(tgi.TypeCode(0xEBCF3E27), 1, 2)
	b := tgi.New(tgi.TypeCode(0xEBCF3E27), 1, 3)
	dir := Directory{{a, 100}, {b, 200}, {a, 999}}

	for _, minor := range []format.IndexMinorVersion{format.IndexMinorV1, format.IndexMinorV2} {
		t.Run(minor.String(), func(t *testing.T) {
			data := dir.Append(nil, minor)
			require.Len(t, data, 3*DirectoryEntrySize(minor))

			parsed, err := ParseDirectory(data, minor)
			require.NoError(t, err)
			require.Equal(t, dir, parsed)

			sizes := parsed.Sizes()
			require.Equal(t, uint32(100), sizes[a], "first row wins")
			require.Equal(t, uint32(200), sizes[b])
		})
	}

	t.Run("Partial row", func(t *testing.T) {
		_, err := ParseDirectory(make([]byte, 17), format.IndexMinorV1)
		require.ErrorIs(t, err, errs.ErrIndexCorruption)
	})

	t.Run("Empty", func(t *testing.T) {
		parsed, err := ParseDirectory(nil, format.IndexMinorV1)
		require.NoError(t, err)
		require.Empty(t, parsed)
	})
}

func TestCurrentIndex(t *testing.T) {
	shared := []CurrentEntry{
		{TGI: tgi.New(0x220557DA, 0x80000000, 0x00000001_00000010), Location: 96, Size: 10, DecompressedSize: 30,
			Compression: format.CompressionZLib, Extended: true, Committed: 1},
		{TGI: tgi.New(0x220557DA, 0x80000000, 0x00000001_00000020), Location: 106, Size: 4, DecompressedSize: 4,
			Compression: format.CompressionNone, Extended: true, Committed: 1},
	}

	t.Run("Fixed components", func(t *testing.T) {
		it := ChooseIndexType(shared)
		require.Equal(t, FixedType|FixedGroup|FixedInstanceHigh, it)
		require.Equal(t, "type|group|instance-high", it.String())

		data := AppendCurrentIndex(nil, it, shared)
		// prefix + 3 fixed words + 2 * (lo, location, size, decompressed, compression+committed)
		require.Len(t, data, 16+2*20)

		entries, gotType, err := ReadCurrentIndex(bytes.NewReader(data), 2)
		require.NoError(t, err)
		require.Equal(t, it, gotType)
		require.Equal(t, shared, entries)
	})

	t.Run("Mixed groups", func(t *testing.T) {
		mixed := append([]CurrentEntry(nil), shared...)
		mixed[1].TGI = tgi.New(0x220557DA, 0x12, 0x00000002_00000020)

		it := ChooseIndexType(mixed)
		require.Equal(t, FixedType, it)

		entries, _, err := ReadCurrentIndex(bytes.NewReader(AppendCurrentIndex(nil, it, mixed)), 2)
		require.NoError(t, err)
		require.Equal(t, mixed, entries)
	})

	t.Run("Unextended entries are uncompressed", func(t *testing.T) {
		plain := []CurrentEntry{{TGI: tgi.New(1, 2, 3), Location: 96, Size: 8, DecompressedSize: 8}}
		data := AppendCurrentIndex(nil, 0, plain)
		require.Len(t, data, 4+28)

		entries, it, err := ReadCurrentIndex(bytes.NewReader(data), 1)
		require.NoError(t, err)
		require.Equal(t, "none", it.String())
		require.Equal(t, format.CompressionNone, entries[0].Compression)
		require.False(t, entries[0].Extended)
	})

	t.Run("Truncated", func(t *testing.T) {
		data := AppendCurrentIndex(nil, ChooseIndexType(shared), shared)
		_, _, err := ReadCurrentIndex(bytes.NewReader(data[:len(data)-3]), 2)
		require.ErrorIs(t, err, errs.ErrIndexCorruption)

		_, _, err = ReadCurrentIndex(bytes.NewReader(nil), 0)
		require.ErrorIs(t, err, errs.ErrIndexCorruption)
	})

	t.Run("Empty index", func(t *testing.T) {
		require.Equal(t, IndexType(0), ChooseIndexType(nil))
		entries, _, err := ReadCurrentIndex(bytes.NewReader(AppendCurrentIndex(nil, 0, nil)), 0)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}
