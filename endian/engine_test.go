package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())

	buf := GetLittleEndianEngine().AppendUint32(nil, 0x46504244)
	require.Equal(t, []byte("DBPF"), buf)
}

func TestUint24(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		for _, v := range []uint32{0, 1, 0xFF, 0x1234, 0xABCDEF, MaxUint24} {
			b := make([]byte, 3)
			PutUint24(b, v)
			require.Equal(t, v, Uint24(b))
			require.Equal(t, b, AppendUint24(nil, v))
		}
	})

	t.Run("Big endian order", func(t *testing.T) {
		require.Equal(t, []byte{0x01, 0x02, 0x03}, AppendUint24(nil, 0x010203))
	})

	t.Run("Truncates high byte", func(t *testing.T) {
		require.Equal(t, []byte{0x02, 0x03, 0x04}, AppendUint24(nil, 0x01020304))
	})
}

func TestSizeField(t *testing.T) {
	narrow := AppendSizeField(nil, 0x123456, false)
	require.Len(t, narrow, 3)
	require.Equal(t, uint32(0x123456), SizeField(narrow, false))

	wide := AppendSizeField(nil, 0x12345678, true)
	require.Len(t, wide, 4)
	require.Equal(t, uint32(0x12345678), SizeField(wide, true))
}
