package section

import (
	"fmt"

	"github.com/arloliu/dbpf/endian"
	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/tgi"
)

// DirectoryEntry is one row of the legacy directory side table: the
// decompressed size of a RefPack-compressed resource.
//
// Layout (little-endian), 16 or 20 bytes:
//
//	type u32 | group u32 | instance lo u32 | [instance hi u32] | decompressed size u32
type DirectoryEntry struct {
	TGI              tgi.TGI
	DecompressedSize uint32
}

// Directory is the decoded content of a directory resource.
type Directory []DirectoryEntry

// ParseDirectory decodes rows until data is exhausted.
//
// Returns:
//   - error: ErrIndexCorruption if data is not a whole number of rows
func ParseDirectory(data []byte, minor format.IndexMinorVersion) (Directory, error) {
	size := DirectoryEntrySize(minor)
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: directory of %d bytes is not a multiple of %d",
			errs.ErrIndexCorruption, len(data), size)
	}

	engine := endian.GetLittleEndianEngine()
	wide := WideInstances(minor)

	dir := make(Directory, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		key, pos := parseTGI(data[off:], wide)
		dir = append(dir, DirectoryEntry{TGI: key, DecompressedSize: engine.Uint32(data[off+pos:])})
	}

	return dir, nil
}

// Sizes returns the declared decompressed size per TGI. When a TGI is listed
// more than once the first row wins.
func (d Directory) Sizes() map[tgi.TGI]uint32 {
	sizes := make(map[tgi.TGI]uint32, len(d))
	for _, row := range d {
		if _, seen := sizes[row.TGI]; !seen {
			sizes[row.TGI] = row.DecompressedSize
		}
	}

	return sizes
}

// Append appends the serialized rows to dst.
func (d Directory) Append(dst []byte, minor format.IndexMinorVersion) []byte {
	engine := endian.GetLittleEndianEngine()
	wide := WideInstances(minor)

	for _, row := range d {
		dst = appendTGI(dst, row.TGI, wide)
		dst = engine.AppendUint32(dst, row.DecompressedSize)
	}

	return dst
}
