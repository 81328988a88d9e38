package resource

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/tgi"
)

const initialReadSize = 1 << 20

// Args describes how to materialize a payload from the file.
type Args struct {
	// Length is the number of on-disk bytes.
	Length uint32
	// Kind is the on-disk compression.
	Kind format.CompressionType
	// DecompressedSize is the declared decompressed length; negative when unknown.
	DecompressedSize int
	// Type is the resource type, passed to the decoder.
	Type tgi.TypeCode
}

// Handle is a lazily resolved reference to a payload in a file.
//
// The handle stores only the offset and Args. The first Resolve reads the
// bytes and memoizes the resulting Data; the reader is never retained.
type Handle struct {
	offset int64
	args   Args
	env    *Env
	data   *Data
}

// NewHandle creates an unresolved handle for the payload at offset.
func NewHandle(offset int64, args Args, env *Env) *Handle {
	return &Handle{offset: offset, args: args, env: env}
}

// NewResolved creates a handle that already holds data and never reads.
func NewResolved(data *Data) *Handle {
	return &Handle{offset: -1, data: data, args: Args{Type: data.Type(), DecompressedSize: -1}}
}

// Offset returns the file offset the handle was created with, or -1 for a
// handle created by NewResolved.
func (h *Handle) Offset() int64 {
	return h.offset
}

// Args returns the materialization arguments.
func (h *Handle) Args() Args {
	return h.args
}

// SetArgs replaces the compression kind and declared size. When the handle is
// already resolved and still compressed the cached payload is updated too.
func (h *Handle) SetArgs(kind format.CompressionType, decompressedSize int) {
	h.args.Kind = kind
	h.args.DecompressedSize = decompressedSize
	if h.data != nil {
		h.data.setCompressedArgs(kind, decompressedSize)
	}
}

// Relocate points the handle at a new offset and Args, as after the payload
// was rewritten into another file. A memoized Data is kept.
func (h *Handle) Relocate(offset int64, args Args) {
	h.offset = offset
	h.args = args
}

// Resolved reports whether the payload has been materialized.
func (h *Handle) Resolved() bool {
	return h.data != nil
}

// Data returns the materialized payload, or nil before the first Resolve.
func (h *Handle) Data() *Data {
	return h.data
}

// Resolve materializes the payload from r on first call and returns the
// memoized Data afterwards without touching r.
//
// A short read returns errs.ErrIndexCorruption; the handle stays unresolved.
func (h *Handle) Resolve(r io.ReadSeeker) (*Data, error) {
	if h.data != nil {
		return h.data, nil
	}
	if r == nil {
		return nil, errs.ErrNoSource
	}

	if _, err := r.Seek(h.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to payload at %d: %w", h.offset, err)
	}

	// The buffer grows with the bytes actually read, so a Length past the end
	// of r costs no more than the stream holds.
	buf := bytes.NewBuffer(make([]byte, 0, min(int(h.args.Length), initialReadSize)))
	if _, err := io.CopyN(buf, r, int64(h.args.Length)); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, fmt.Errorf("%w: payload at %d of %d bytes: %w", errs.ErrIndexCorruption, h.offset, h.args.Length, err)
	}

	h.data = NewCompressed(h.args.Type, Compressed{
		Bytes:            buf.Bytes(),
		Kind:             h.args.Kind,
		DecompressedSize: h.args.DecompressedSize,
	}, h.env)

	return h.data, nil
}
