package section

import (
	"fmt"

	"github.com/arloliu/dbpf/endian"
	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/tgi"
)

// LegacyEntry is one record of a legacy (major version 1) index.
//
// Layout (little-endian), 20 or 24 bytes:
//
//	type u32 | group u32 | instance lo u32 | [instance hi u32] | location u32 | size u32
//
// The instance high word is present only for index minor version 2. Legacy
// entries carry no compression information; it comes from the directory table.
type LegacyEntry struct {
	TGI      tgi.TGI
	Location uint32
	Size     uint32
}

// ParseLegacyEntry parses one entry from the start of data.
//
// Returns:
//   - error: ErrInvalidIndexEntrySize if data is too short, ErrIndexCorruption
//     if the location is zero
func ParseLegacyEntry(data []byte, minor format.IndexMinorVersion) (LegacyEntry, error) {
	if len(data) < LegacyEntrySize(minor) {
		return LegacyEntry{}, errs.ErrInvalidIndexEntrySize
	}

	engine := endian.GetLittleEndianEngine()

	key, pos := parseTGI(data, WideInstances(minor))
	e := LegacyEntry{
		TGI:      key,
		Location: engine.Uint32(data[pos:]),
		Size:     engine.Uint32(data[pos+4:]),
	}
	if e.Location == 0 {
		return LegacyEntry{}, fmt.Errorf("%w: entry %s has zero location", errs.ErrIndexCorruption, e.TGI)
	}

	return e, nil
}

// ParseLegacyIndex parses count consecutive entries from data.
func ParseLegacyIndex(data []byte, count int, minor format.IndexMinorVersion) ([]LegacyEntry, error) {
	size := LegacyEntrySize(minor)
	if len(data) < count*size {
		return nil, fmt.Errorf("%w: index of %d entries needs %d bytes, have %d",
			errs.ErrIndexCorruption, count, count*size, len(data))
	}

	entries := make([]LegacyEntry, count)
	for i := range entries {
		e, err := ParseLegacyEntry(data[i*size:], minor)
		if err != nil {
			return nil, fmt.Errorf("index entry %d: %w", i, err)
		}
		entries[i] = e
	}

	return entries, nil
}

// AppendLegacy appends the serialized entry to dst.
func (e LegacyEntry) AppendLegacy(dst []byte, minor format.IndexMinorVersion) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = appendTGI(dst, e.TGI, WideInstances(minor))
	dst = engine.AppendUint32(dst, e.Location)

	return engine.AppendUint32(dst, e.Size)
}

func parseTGI(data []byte, wide bool) (tgi.TGI, int) {
	engine := endian.GetLittleEndianEngine()

	t := tgi.TypeCode(engine.Uint32(data[0:]))
	group := engine.Uint32(data[4:])
	instance := uint64(engine.Uint32(data[8:]))
	if !wide {
		return tgi.New(t, group, instance), 12
	}
	instance |= uint64(engine.Uint32(data[12:])) << 32

	return tgi.New(t, group, instance), 16
}

func appendTGI(dst []byte, key tgi.TGI, wide bool) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint32(dst, key.Type.Code())
	dst = engine.AppendUint32(dst, key.Group)
	dst = engine.AppendUint32(dst, key.InstanceLow())
	if wide {
		dst = engine.AppendUint32(dst, key.InstanceHigh())
	}

	return dst
}
