package section

import (
	"fmt"

	"github.com/arloliu/dbpf/endian"
	"github.com/arloliu/dbpf/errs"
)

// HoleEntry describes a run of unused bytes left behind by in-place edits.
type HoleEntry struct {
	Location uint32
	Size     uint32
}

// ParseHoles parses count hole entries from data.
func ParseHoles(data []byte, count int) ([]HoleEntry, error) {
	if len(data) < count*HoleEntrySize {
		return nil, fmt.Errorf("%w: hole index of %d entries needs %d bytes, have %d",
			errs.ErrIndexCorruption, count, count*HoleEntrySize, len(data))
	}

	engine := endian.GetLittleEndianEngine()

	holes := make([]HoleEntry, count)
	for i := range holes {
		off := i * HoleEntrySize
		holes[i] = HoleEntry{
			Location: engine.Uint32(data[off:]),
			Size:     engine.Uint32(data[off+4:]),
		}
	}

	return holes, nil
}

// AppendHole appends the serialized hole entry to dst.
func (h HoleEntry) AppendHole(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = engine.AppendUint32(dst, h.Location)

	return engine.AppendUint32(dst, h.Size)
}
