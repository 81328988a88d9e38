package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
)

func TestHeader_RoundTrip(t *testing.T) {
	h := NewHeader(format.VersionCurrent)
	h.UserVersion = UserVersion{Major: 3, Minor: 1}
	h.Flags = 0x10
	h.Created = 1700000000
	h.Modified = 1700000100
	h.IndexCount = 12
	h.IndexSize = 400
	h.IndexOffset = 0x1_0000_0000
	h.HoleCount = 1
	h.HoleLocation = 200
	h.HoleSize = 8

	data := h.Bytes()
	require.Len(t, data, HeaderSize)
	require.Equal(t, []byte("DBPF"), data[:4])
	require.Equal(t, make([]byte, 24), data[72:])

	parsed, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, *h, parsed)
	require.Equal(t, uint64(0x1_0000_0000), parsed.IndexPosition())
}

func TestHeader_Parse(t *testing.T) {
	t.Run("Wrong size", func(t *testing.T) {
		var h Header
		require.ErrorIs(t, h.Parse(make([]byte, 95)), errs.ErrInvalidHeaderSize)

		_, err := ParseHeader(make([]byte, 10))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Bad magic", func(t *testing.T) {
		data := NewHeader(format.VersionLegacy).Bytes()
		copy(data, "DBPX")
		_, err := ParseHeader(data)
		require.ErrorIs(t, err, errs.ErrHeaderFormat)
	})

	t.Run("Unsupported versions", func(t *testing.T) {
		for _, v := range []format.Version{{Major: 4}, {Major: 1, Minor: 3}, {Major: 3, Minor: 1}, {}} {
			data := NewHeader(v).Bytes()
			_, err := ParseHeader(data)
			require.ErrorIs(t, err, errs.ErrHeaderFormat, v.String())
		}
	})

	t.Run("Supported versions", func(t *testing.T) {
		for _, v := range []format.Version{
			{Major: 1, Minor: 0}, {Major: 1, Minor: 1}, {Major: 1, Minor: 2},
			{Major: 2, Minor: 0}, {Major: 2, Minor: 1}, {Major: 3, Minor: 0},
		} {
			_, err := ParseHeader(NewHeader(v).Bytes())
			require.NoError(t, err, v.String())
		}
	})

	t.Run("Legacy rejects minor 3", func(t *testing.T) {
		h := NewHeader(format.VersionLegacy)
		h.IndexMinor = format.IndexMinorV3
		_, err := ParseHeader(h.Bytes())
		require.ErrorIs(t, err, errs.ErrHeaderFormat)
	})
}

func TestHeader_Validate(t *testing.T) {
	t.Run("Legacy index size", func(t *testing.T) {
		h := NewHeader(format.VersionLegacy)
		h.IndexCount = 2
		h.IndexLocation = HeaderSize
		h.IndexSize = 40
		require.NoError(t, h.Validate())

		h.IndexMinor = format.IndexMinorV2
		require.ErrorIs(t, h.Validate(), errs.ErrIndexCorruption)
		h.IndexSize = 48
		require.NoError(t, h.Validate())
	})

	t.Run("Index inside header", func(t *testing.T) {
		h := NewHeader(format.VersionLegacy)
		h.IndexCount = 1
		h.IndexLocation = 10
		h.IndexSize = 20
		require.ErrorIs(t, h.Validate(), errs.ErrIndexCorruption)

		c := NewHeader(format.VersionCurrent)
		c.IndexCount = 1
		c.IndexOffset = 50
		require.ErrorIs(t, c.Validate(), errs.ErrIndexCorruption)
	})

	t.Run("Empty index anywhere", func(t *testing.T) {
		h := NewHeader(format.VersionLegacy)
		require.NoError(t, h.Validate())
	})

	t.Run("Legacy hole size", func(t *testing.T) {
		h := NewHeader(format.VersionLegacy)
		h.HoleCount = 2
		h.HoleLocation = 500
		h.HoleSize = 8
		require.ErrorIs(t, h.Validate(), errs.ErrIndexCorruption)
		h.HoleSize = 16
		require.NoError(t, h.Validate())
	})

	t.Run("Current falls back to 32-bit location", func(t *testing.T) {
		h := NewHeader(format.VersionCurrent)
		h.IndexLocation = 1234
		require.Equal(t, uint64(1234), h.IndexPosition())
	})
}

func TestHeader_InBounds(t *testing.T) {
	t.Run("Legacy index past end", func(t *testing.T) {
		h := NewHeader(format.VersionLegacy)
		h.IndexCount = 50_000_000
		h.IndexLocation = HeaderSize
		h.IndexSize = 50_000_000 * 20
		require.NoError(t, h.Validate())
		require.ErrorIs(t, h.InBounds(HeaderSize), errs.ErrIndexCorruption)
		require.NoError(t, h.InBounds(HeaderSize+uint64(h.IndexSize)))
	})

	t.Run("Current index sized by smallest records", func(t *testing.T) {
		h := NewHeader(format.VersionCurrent)
		h.IndexCount = 3
		h.IndexOffset = HeaderSize
		end := uint64(HeaderSize + 4 + 3*MinCurrentEntrySize)
		require.NoError(t, h.InBounds(end))
		require.ErrorIs(t, h.InBounds(end-1), errs.ErrIndexCorruption)
	})

	t.Run("Index located past end", func(t *testing.T) {
		h := NewHeader(format.VersionCurrent)
		h.IndexCount = 1
		h.IndexOffset = 1 << 40
		require.ErrorIs(t, h.InBounds(1<<20), errs.ErrIndexCorruption)
	})

	t.Run("Current hole table unchecked by Validate", func(t *testing.T) {
		h := NewHeader(format.VersionCurrent)
		h.HoleCount = 0xFFFFFFFF
		h.HoleLocation = HeaderSize
		require.NoError(t, h.Validate())
		require.ErrorIs(t, h.InBounds(1<<20), errs.ErrIndexCorruption)
	})

	t.Run("Empty tables", func(t *testing.T) {
		require.NoError(t, NewHeader(format.VersionCurrent).InBounds(HeaderSize))
	})
}
