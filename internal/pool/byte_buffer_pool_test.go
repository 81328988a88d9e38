package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestByteBuffer(t *testing.T) {
	t.Run("Write appends", func(t *testing.T) {
		bb := NewByteBuffer(IndexBufferDefaultSize)
		n, err := bb.Write([]byte("DBPF"))
		require.NoError(t, err)
		require.Equal(t, 4, n)
		bb.MustWrite([]byte{2, 0, 0, 0})
		require.Equal(t, []byte{'D', 'B', 'P', 'F', 2, 0, 0, 0}, bb.Bytes())
		require.Equal(t, 8, bb.Len())
	})

	t.Run("Reset keeps capacity", func(t *testing.T) {
		bb := NewByteBuffer(IndexBufferDefaultSize)
		bb.MustWrite(make([]byte, 100))
		capBefore := bb.Cap()
		bb.Reset()
		require.Zero(t, bb.Len())
		require.Equal(t, capBefore, bb.Cap())
	})

	t.Run("WriteTo", func(t *testing.T) {
		bb := NewByteBuffer(16)
		bb.MustWrite([]byte("index"))
		var out bytes.Buffer
		n, err := bb.WriteTo(&out)
		require.NoError(t, err)
		require.Equal(t, int64(5), n)
		require.Equal(t, "index", out.String())

		_, err = bb.WriteTo(failingWriter{})
		require.Error(t, err)
	})

	t.Run("Grow small buffer", func(t *testing.T) {
		bb := NewByteBuffer(IndexBufferDefaultSize)
		bb.B = append(bb.B, make([]byte, IndexBufferDefaultSize)...)
		bb.Grow(10)
		require.GreaterOrEqual(t, bb.Cap(), 2*IndexBufferDefaultSize)
		require.Equal(t, IndexBufferDefaultSize, bb.Len())
	})

	t.Run("Grow large request preserves data", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte{1, 2, 3})
		bb.Grow(ResourceBufferDefaultSize)
		require.GreaterOrEqual(t, bb.Cap(), 3+ResourceBufferDefaultSize)
		require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})
}

func TestByteBufferPool(t *testing.T) {
	t.Run("pooled buffers are empty", func(t *testing.T) {
		bb := GetIndexBuffer()
		bb.MustWrite([]byte("leftover"))
		PutIndexBuffer(bb)

		again := GetIndexBuffer()
		defer PutIndexBuffer(again)
		require.Zero(t, again.Len())
	})

	t.Run("oversized buffers are discarded", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := p.Get()
		bb.Grow(1024)
		p.Put(bb)
		require.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("resource pool default capacity", func(t *testing.T) {
		bb := GetResourceBuffer()
		defer PutResourceBuffer(bb)
		require.GreaterOrEqual(t, bb.Cap(), 0)
	})
}
