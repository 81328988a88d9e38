package dbpf

import (
	"io"

	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/resource"
	"github.com/arloliu/dbpf/tgi"
)

// Entry is one resource in a File's index.
type Entry struct {
	TGI tgi.TGI

	compression format.CompressionType
	handle      *resource.Handle
}

// Compression returns the kind the entry will be written with. After a load
// it is the on-disk kind.
func (e *Entry) Compression() format.CompressionType {
	return e.compression
}

// SetCompression changes the kind the entry will be written with. The payload
// is not touched until the next Write.
func (e *Entry) SetCompression(kind format.CompressionType) {
	e.compression = kind
}

// Data materializes the entry's payload from r on first access.
// Later calls return the same *resource.Data without reading.
func (e *Entry) Data(r io.ReadSeeker) (*resource.Data, error) {
	return e.handle.Resolve(r)
}

// Handle exposes the lazy payload handle.
func (e *Entry) Handle() *resource.Handle {
	return e.handle
}

// StoredSize returns the on-disk payload length recorded in the index.
func (e *Entry) StoredSize() uint32 {
	return e.handle.Args().Length
}

// DeclaredSize returns the decompressed size recorded in the index, or -1 when unknown.
func (e *Entry) DeclaredSize() int {
	return e.handle.Args().DecompressedSize
}
