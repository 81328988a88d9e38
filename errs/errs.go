// Package errs defines the sentinel errors shared by all dbpf packages.
//
// Errors fall into two groups:
//
//   - File-level structural errors (ErrHeaderFormat, ErrIndexCorruption and the
//     size errors) abort a load or write entirely. No partial index is returned.
//   - Entry-level errors (ErrCodec, ErrDecode) are recoverable: the failing entry
//     keeps its previous state and sibling entries stay usable.
//
// Callers classify with errors.Is; the concrete error always carries context
// added with fmt.Errorf("%w").
package errs

import "errors"

var (
	// ErrHeaderFormat is returned when the magic or version fields of a header are invalid.
	ErrHeaderFormat = errors.New("dbpf: invalid header format")

	// ErrIndexCorruption is returned when declared counts, sizes or locations are inconsistent.
	ErrIndexCorruption = errors.New("dbpf: index corruption")

	// ErrInvalidHeaderSize is returned when a header buffer has the wrong length.
	ErrInvalidHeaderSize = errors.New("dbpf: invalid header size")

	// ErrInvalidIndexEntrySize is returned when an index entry buffer is too short.
	ErrInvalidIndexEntrySize = errors.New("dbpf: invalid index entry size")

	// ErrCodec is returned when an entry's bytes cannot be compressed or decompressed.
	ErrCodec = errors.New("dbpf: codec error")

	// ErrSizeExceeded is returned when decompressed output grows past its declared size.
	ErrSizeExceeded = errors.New("dbpf: decompressed size exceeds declared size")

	// ErrRefPackFormat is returned when a blob is not valid under any configured RefPack variant.
	ErrRefPackFormat = errors.New("dbpf: malformed refpack stream")

	// ErrDecode is returned when a per-type decoder rejects decompressed bytes.
	ErrDecode = errors.New("dbpf: resource decode failed")

	// ErrUnsupportedCompression is returned for compression kinds a codec or layout cannot handle.
	ErrUnsupportedCompression = errors.New("dbpf: unsupported compression type")

	// ErrEntryNotFound is returned when no entry matches a TGI.
	ErrEntryNotFound = errors.New("dbpf: entry not found")

	// ErrNoSource is returned when an unresolved entry is accessed without a source stream.
	ErrNoSource = errors.New("dbpf: no source stream for unresolved entry")

	// ErrInvalidSource is returned when a conflict scan is given an empty source name.
	ErrInvalidSource = errors.New("dbpf: invalid conflict source")

	// ErrSourceAlreadyTracked is returned when a conflict scan sees the same source twice.
	ErrSourceAlreadyTracked = errors.New("dbpf: conflict source already tracked")
)
