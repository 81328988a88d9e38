package section

import (
	"fmt"

	"github.com/arloliu/dbpf/endian"
	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
)

// UserVersion is the application-defined version pair stored in the header.
type UserVersion struct {
	Major uint32
	Minor uint32
}

// Header represents the fixed 96-byte header at the start of a DBPF file.
//
// All fields are little-endian on disk:
//
//	0  "DBPF"        24 created        48 hole count
//	4  major         28 modified       52 hole location
//	8  minor         32 index version  56 hole size
//	12 user major    36 index count    60 index minor version
//	16 user minor    40 index location 64 index offset (u64)
//	20 flags         44 index size     72..95 reserved
type Header struct {
	Version     format.Version
	UserVersion UserVersion
	Flags       uint32
	Created     uint32
	Modified    uint32

	IndexVersion  format.IndexVersion
	IndexCount    uint32
	IndexLocation uint32 // legacy layout index position
	IndexSize     uint32

	HoleCount    uint32
	HoleLocation uint32
	HoleSize     uint32

	IndexMinor  format.IndexMinorVersion
	IndexOffset uint64 // current layout index position
}

// NewHeader creates a header for version with default index versions.
//
// Legacy headers use index minor version 1 (32-bit instances); current
// headers use index minor version 3.
func NewHeader(version format.Version) *Header {
	h := &Header{
		Version:      version,
		IndexVersion: format.IndexVersionDefault,
		IndexMinor:   format.IndexMinorV3,
	}
	if version.IsLegacy() {
		h.IndexMinor = format.IndexMinorV1
	}

	return h
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 96 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 96 bytes, ErrHeaderFormat for a bad
//     magic or unsupported version
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if string(data[0:4]) != Magic {
		return fmt.Errorf("%w: bad magic %q", errs.ErrHeaderFormat, data[0:4])
	}

	engine := endian.GetLittleEndianEngine()

	h.Version = format.Version{
		Major: engine.Uint32(data[offMajor:]),
		Minor: engine.Uint32(data[offMinor:]),
	}
	if !h.Version.IsValid() {
		return fmt.Errorf("%w: unsupported version %s", errs.ErrHeaderFormat, h.Version)
	}

	h.UserVersion = UserVersion{
		Major: engine.Uint32(data[offUserMajor:]),
		Minor: engine.Uint32(data[offUserMinor:]),
	}
	h.Flags = engine.Uint32(data[offFlags:])
	h.Created = engine.Uint32(data[offCreated:])
	h.Modified = engine.Uint32(data[offModified:])
	h.IndexVersion = format.IndexVersion(engine.Uint32(data[offIndexVersion:]))
	h.IndexCount = engine.Uint32(data[offIndexCount:])
	h.IndexLocation = engine.Uint32(data[offIndexLocation:])
	h.IndexSize = engine.Uint32(data[offIndexSize:])
	h.HoleCount = engine.Uint32(data[offHoleCount:])
	h.HoleLocation = engine.Uint32(data[offHoleLocation:])
	h.HoleSize = engine.Uint32(data[offHoleSize:])
	h.IndexMinor = format.IndexMinorVersion(engine.Uint32(data[offIndexMinor:]))
	h.IndexOffset = engine.Uint64(data[offIndexOffset:])

	if h.Version.IsLegacy() && h.IndexMinor > format.IndexMinorV2 {
		return fmt.Errorf("%w: legacy index minor version %s", errs.ErrHeaderFormat, h.IndexMinor)
	}

	return nil
}

// Validate checks the index and hole table geometry declared by the header.
//
// Returns:
//   - error: ErrIndexCorruption if a non-empty table points into the header or
//     a legacy table size disagrees with its entry count
func (h *Header) Validate() error {
	if h.IndexCount > 0 && h.IndexPosition() < HeaderSize {
		return fmt.Errorf("%w: index count %d with index location %d",
			errs.ErrIndexCorruption, h.IndexCount, h.IndexPosition())
	}
	if h.HoleCount > 0 && h.HoleLocation < HeaderSize {
		return fmt.Errorf("%w: hole count %d with hole location %d",
			errs.ErrIndexCorruption, h.HoleCount, h.HoleLocation)
	}

	if !h.Version.IsLegacy() {
		return nil
	}

	entrySize := uint64(LegacyEntrySize(h.IndexMinor))
	if uint64(h.IndexSize) != uint64(h.IndexCount)*entrySize {
		return fmt.Errorf("%w: index size %d != %d entries * %d bytes",
			errs.ErrIndexCorruption, h.IndexSize, h.IndexCount, entrySize)
	}
	if uint64(h.HoleSize) != uint64(h.HoleCount)*HoleEntrySize {
		return fmt.Errorf("%w: hole index size %d != %d entries * %d bytes",
			errs.ErrIndexCorruption, h.HoleSize, h.HoleCount, HoleEntrySize)
	}

	return nil
}

// MinCurrentEntrySize is the smallest current-layout index record: instance
// low, location, size and decompressed size with every other field hoisted.
const MinCurrentEntrySize = 16

// InBounds checks that the index and hole tables fit in a stream of end bytes.
// Current-layout indexes are sized by their smallest possible records.
//
// Returns:
//   - error: ErrIndexCorruption if a table extends past end
func (h *Header) InBounds(end uint64) error {
	if h.HoleCount > 0 {
		holesEnd := uint64(h.HoleLocation) + uint64(h.HoleCount)*HoleEntrySize
		if holesEnd > end {
			return fmt.Errorf("%w: %d holes at %d extend past end of stream at %d",
				errs.ErrIndexCorruption, h.HoleCount, h.HoleLocation, end)
		}
	}

	if h.IndexCount == 0 {
		return nil
	}
	indexSize := uint64(h.IndexSize)
	if !h.Version.IsLegacy() {
		indexSize = 4 + uint64(h.IndexCount)*MinCurrentEntrySize
	}
	if pos := h.IndexPosition(); pos > end || indexSize > end-pos {
		return fmt.Errorf("%w: %d index entries at %d extend past end of stream at %d",
			errs.ErrIndexCorruption, h.IndexCount, pos, end)
	}

	return nil
}

// IndexPosition returns the absolute file offset of the index table.
//
// Legacy files store it in the 32-bit location field; current files in the
// 64-bit offset field, falling back to the 32-bit field when that is zero.
func (h *Header) IndexPosition() uint64 {
	if h.Version.IsLegacy() || h.IndexOffset == 0 {
		return uint64(h.IndexLocation)
	}

	return h.IndexOffset
}

// Bytes serializes the Header into a 96-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetLittleEndianEngine()

	copy(b[0:4], Magic)
	engine.PutUint32(b[offMajor:], h.Version.Major)
	engine.PutUint32(b[offMinor:], h.Version.Minor)
	engine.PutUint32(b[offUserMajor:], h.UserVersion.Major)
	engine.PutUint32(b[offUserMinor:], h.UserVersion.Minor)
	engine.PutUint32(b[offFlags:], h.Flags)
	engine.PutUint32(b[offCreated:], h.Created)
	engine.PutUint32(b[offModified:], h.Modified)
	engine.PutUint32(b[offIndexVersion:], uint32(h.IndexVersion))
	engine.PutUint32(b[offIndexCount:], h.IndexCount)
	engine.PutUint32(b[offIndexLocation:], h.IndexLocation)
	engine.PutUint32(b[offIndexSize:], h.IndexSize)
	engine.PutUint32(b[offHoleCount:], h.HoleCount)
	engine.PutUint32(b[offHoleLocation:], h.HoleLocation)
	engine.PutUint32(b[offHoleSize:], h.HoleSize)
	engine.PutUint32(b[offIndexMinor:], uint32(h.IndexMinor))
	engine.PutUint64(b[offIndexOffset:], h.IndexOffset)

	return b
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 96 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or ErrHeaderFormat
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
