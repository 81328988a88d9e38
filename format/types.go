package format

import "fmt"

type (
	// CompressionType is the on-disk compression tag of an entry.
	CompressionType uint16
	// IndexVersion is the index major version stored in the header.
	IndexVersion uint32
	// IndexMinorVersion selects the index entry dialect.
	IndexMinorVersion uint32
)

const (
	CompressionNone       CompressionType = 0x0000 // CompressionNone stores the payload as-is.
	CompressionDeleted    CompressionType = 0xFFE0 // CompressionDeleted marks an entry that is preserved but never interpreted.
	CompressionStreamable CompressionType = 0xFFFE // CompressionStreamable marks a streamable entry, treated as opaque.
	CompressionRefPack    CompressionType = 0xFFFF // CompressionRefPack represents the RefPack LZ77 codec.
	CompressionZLib       CompressionType = 0x5A42 // CompressionZLib represents DEFLATE with a zlib wrapper.

	IndexVersionDefault IndexVersion = 7 // IndexVersionDefault is used by most games.
	IndexVersionSpore   IndexVersion = 0 // IndexVersionSpore is used by Spore packages.

	IndexMinorV0 IndexMinorVersion = 0
	IndexMinorV1 IndexMinorVersion = 1
	IndexMinorV2 IndexMinorVersion = 2 // IndexMinorV2 stores 64-bit instance ids in legacy entries.
	IndexMinorV3 IndexMinorVersion = 3
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "Uncompressed"
	case CompressionDeleted:
		return "Deleted"
	case CompressionStreamable:
		return "Streamable"
	case CompressionRefPack:
		return "RefPack"
	case CompressionZLib:
		return "ZLib"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known compression tags.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionDeleted, CompressionStreamable, CompressionRefPack, CompressionZLib:
		return true
	default:
		return false
	}
}

// IsOpaque reports whether payloads with this tag are passed through untouched.
func (c CompressionType) IsOpaque() bool {
	return c == CompressionNone || c.IsPreserved()
}

// IsPreserved reports whether entries with this tag must keep their stored
// form on rewrite: they are never recompressed or interpreted.
func (c CompressionType) IsPreserved() bool {
	return c == CompressionDeleted || c == CompressionStreamable
}

// Version is the file layout version from the first header fields.
//
// Major 1 is the legacy layout; majors 2 and 3 use the current layout.
type Version struct {
	Major uint32
	Minor uint32
}

var (
	VersionLegacy  = Version{Major: 1, Minor: 1} // VersionLegacy is the layout written by The Sims 2.
	VersionCurrent = Version{Major: 2, Minor: 1} // VersionCurrent is the default for new files.
)

// IsLegacy reports whether v uses the legacy header and index layout.
func (v Version) IsLegacy() bool {
	return v.Major == 1
}

// IsValid reports whether v is a layout present in known files.
func (v Version) IsValid() bool {
	switch v.Major {
	case 1:
		return v.Minor <= 2
	case 2:
		return v.Minor <= 1
	case 3:
		return v.Minor == 0
	default:
		return false
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v IndexMinorVersion) String() string {
	return fmt.Sprintf("%d", uint32(v))
}
