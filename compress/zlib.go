package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/internal/pool"
)

// maxDeflateRatio is the largest expansion a deflate stream can achieve.
const maxDeflateRatio = 1032

// ZLibCompressor implements the ZLib (0x5A42) kind with klauspost/compress.
//
// Inflation is bounded by the declared decompressed size so a corrupt or
// hostile stream cannot allocate more than the index promised.
type ZLibCompressor struct {
	level   int
	writers *sync.Pool
}

var _ Codec = (*ZLibCompressor)(nil)

// NewZLibCompressor creates a ZLib codec that deflates at level.
func NewZLibCompressor(level int) ZLibCompressor {
	return ZLibCompressor{
		level: level,
		writers: &sync.Pool{
			New: func() any {
				w, err := zlib.NewWriterLevel(nil, level)
				if err != nil {
					// Levels are validated by WithZLibLevel.
					panic(fmt.Sprintf("failed to create zlib writer for pool: %v", err))
				}

				return w
			},
		},
	}
}

// Compress deflates data into a zlib stream using a pooled writer.
func (c ZLibCompressor) Compress(data []byte) ([]byte, error) {
	buf := pool.GetResourceBuffer()
	defer pool.PutResourceBuffer(buf)

	w, _ := c.writers.Get().(*zlib.Writer)
	defer c.writers.Put(w)
	w.Reset(buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: zlib compression failed: %w", errs.ErrCodec, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: zlib compression failed: %w", errs.ErrCodec, err)
	}

	return bytes.Clone(buf.Bytes()), nil
}

// Decompress inflates data, reading at most size+1 bytes so that an
// oversized stream is detected without being fully materialized. A stream
// that ends short of a known size is an error.
func (c ZLibCompressor) Decompress(data []byte, size int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib header: %w", errs.ErrCodec, err)
	}
	defer r.Close()

	var src io.Reader = r
	if size >= 0 {
		src = io.LimitReader(r, int64(size)+1)
	}

	out := bytes.NewBuffer(make([]byte, 0, min(max(size, 0), len(data)*maxDeflateRatio)))
	if _, err := out.ReadFrom(src); err != nil {
		return nil, fmt.Errorf("%w: zlib decompression failed: %w", errs.ErrCodec, err)
	}
	if size >= 0 && out.Len() > size {
		return nil, fmt.Errorf("%w: %w: zlib stream exceeds %d bytes", errs.ErrCodec, errs.ErrSizeExceeded, size)
	}
	if size >= 0 && out.Len() < size {
		return nil, fmt.Errorf("%w: zlib stream produced %d of %d bytes", errs.ErrCodec, out.Len(), size)
	}

	return out.Bytes(), nil
}
