package section

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/dbpf/endian"
	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/tgi"
)

// IndexType is the bitfield that opens a current-layout index. Each set bit
// hoists one TGI component out of the entries into a single shared value.
type IndexType uint32

// Has reports whether all bits of f are set.
func (t IndexType) Has(f IndexType) bool {
	return t&f == f
}

func (t IndexType) String() string {
	var parts []string
	if t.Has(FixedType) {
		parts = append(parts, "type")
	}
	if t.Has(FixedGroup) {
		parts = append(parts, "group")
	}
	if t.Has(FixedInstanceHigh) {
		parts = append(parts, "instance-high")
	}
	if len(parts) == 0 {
		return "none"
	}

	return strings.Join(parts, "|")
}

// CurrentEntry is one record of a current-layout (major version 2 and 3) index.
//
// Layout (little-endian) after the shared IndexType prefix:
//
//	[type u32] | [group u32] | [instance hi u32] | instance lo u32 |
//	location u32 | size u32 (bit 31: extended) | decompressed size u32 |
//	[compression u16 | committed u16]
//
// Bracketed TGI fields are absent when the IndexType hoists them. The
// compression pair is present only when the extended bit of the size word is
// set; otherwise the entry is Uncompressed.
type CurrentEntry struct {
	TGI              tgi.TGI
	Location         uint32
	Size             uint32
	DecompressedSize uint32
	Compression      format.CompressionType
	Extended         bool
	Committed        uint16
}

type fieldReader struct {
	r   io.Reader
	buf [4]byte
	err error
}

func (f *fieldReader) u32() uint32 {
	if f.err != nil {
		return 0
	}
	if _, err := io.ReadFull(f.r, f.buf[:4]); err != nil {
		f.err = err
		return 0
	}

	return endian.GetLittleEndianEngine().Uint32(f.buf[:4])
}

func (f *fieldReader) u16() uint16 {
	if f.err != nil {
		return 0
	}
	if _, err := io.ReadFull(f.r, f.buf[:2]); err != nil {
		f.err = err
		return 0
	}

	return endian.GetLittleEndianEngine().Uint16(f.buf[:2])
}

// ReadCurrentIndex reads a current-layout index of count entries from r.
//
// Returns:
//   - []CurrentEntry: Entries in on-disk order with hoisted components filled in
//   - IndexType: The IndexType prefix that was read
//   - error: ErrIndexCorruption when the stream ends early
func ReadCurrentIndex(r io.Reader, count int) ([]CurrentEntry, IndexType, error) {
	f := &fieldReader{r: r}

	it := IndexType(f.u32())
	var fixedType, fixedGroup, fixedHigh uint32
	if it.Has(FixedType) {
		fixedType = f.u32()
	}
	if it.Has(FixedGroup) {
		fixedGroup = f.u32()
	}
	if it.Has(FixedInstanceHigh) {
		fixedHigh = f.u32()
	}
	if f.err != nil {
		return nil, 0, fmt.Errorf("%w: index type prefix: %w", errs.ErrIndexCorruption, f.err)
	}

	entries := make([]CurrentEntry, 0, min(count, 1<<16))
	for i := range count {
		typeID, group, high := fixedType, fixedGroup, fixedHigh
		if !it.Has(FixedType) {
			typeID = f.u32()
		}
		if !it.Has(FixedGroup) {
			group = f.u32()
		}
		if !it.Has(FixedInstanceHigh) {
			high = f.u32()
		}
		low := f.u32()

		e := CurrentEntry{
			TGI:      tgi.New(tgi.TypeCode(typeID), group, uint64(high)<<32|uint64(low)),
			Location: f.u32(),
		}
		sizeWord := f.u32()
		e.Size = sizeWord & sizeMask
		e.Extended = sizeWord&extendedFlag != 0
		e.DecompressedSize = f.u32()
		if e.Extended {
			e.Compression = format.CompressionType(f.u16())
			e.Committed = f.u16()
		}

		if f.err != nil {
			return nil, 0, fmt.Errorf("%w: index entry %d of %d: %w", errs.ErrIndexCorruption, i, count, f.err)
		}
		entries = append(entries, e)
	}

	return entries, it, nil
}

// ChooseIndexType returns the IndexType that hoists every TGI component shared
// by all entries. An empty index hoists nothing.
func ChooseIndexType(entries []CurrentEntry) IndexType {
	if len(entries) == 0 {
		return 0
	}

	it := FixedType | FixedGroup | FixedInstanceHigh
	first := entries[0].TGI
	for _, e := range entries[1:] {
		if e.TGI.Type != first.Type {
			it &^= FixedType
		}
		if e.TGI.Group != first.Group {
			it &^= FixedGroup
		}
		if e.TGI.InstanceHigh() != first.InstanceHigh() {
			it &^= FixedInstanceHigh
		}
	}

	return it
}

// AppendCurrentIndex serializes entries with the given IndexType to dst.
func AppendCurrentIndex(dst []byte, it IndexType, entries []CurrentEntry) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint32(dst, uint32(it))
	if len(entries) > 0 {
		first := entries[0].TGI
		if it.Has(FixedType) {
			dst = engine.AppendUint32(dst, first.Type.Code())
		}
		if it.Has(FixedGroup) {
			dst = engine.AppendUint32(dst, first.Group)
		}
		if it.Has(FixedInstanceHigh) {
			dst = engine.AppendUint32(dst, first.InstanceHigh())
		}
	}

	for _, e := range entries {
		if !it.Has(FixedType) {
			dst = engine.AppendUint32(dst, e.TGI.Type.Code())
		}
		if !it.Has(FixedGroup) {
			dst = engine.AppendUint32(dst, e.TGI.Group)
		}
		if !it.Has(FixedInstanceHigh) {
			dst = engine.AppendUint32(dst, e.TGI.InstanceHigh())
		}
		dst = engine.AppendUint32(dst, e.TGI.InstanceLow())
		dst = engine.AppendUint32(dst, e.Location)

		sizeWord := e.Size & sizeMask
		if e.Extended {
			sizeWord |= extendedFlag
		}
		dst = engine.AppendUint32(dst, sizeWord)
		dst = engine.AppendUint32(dst, e.DecompressedSize)
		if e.Extended {
			dst = engine.AppendUint16(dst, uint16(e.Compression))
			dst = engine.AppendUint16(dst, e.Committed)
		}
	}

	return dst
}
