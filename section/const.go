package section

import "github.com/arloliu/dbpf/format"

// Magic is the four-byte signature at the start of every DBPF file.
const Magic = "DBPF"

// offset and section sizes in the file
const (
	HeaderSize          = 96 // fixed header size in bytes (shared by all versions)
	HoleEntrySize       = 8  // {location, size}
	legacyEntryBaseSize = 20 // type, group, instance lo, location, size
	dirEntryBaseSize    = 16 // type, group, instance lo, decompressed size
)

// Byte offsets of the header fields.
const (
	offMajor         = 4
	offMinor         = 8
	offUserMajor     = 12
	offUserMinor     = 16
	offFlags         = 20
	offCreated       = 24
	offModified      = 28
	offIndexVersion  = 32
	offIndexCount    = 36
	offIndexLocation = 40
	offIndexSize     = 44
	offHoleCount     = 48
	offHoleLocation  = 52
	offHoleSize      = 56
	offIndexMinor    = 60
	offIndexOffset   = 64
)

// Bits of the current-layout IndexType word.
const (
	FixedType         IndexType = 1 << 0 // every entry shares the type id
	FixedGroup        IndexType = 1 << 1 // every entry shares the group id
	FixedInstanceHigh IndexType = 1 << 2 // every entry shares the high 32 bits of the instance id

	sizeMask     = 0x7FFFFFFF
	extendedFlag = 0x80000000
)

// WideInstances reports whether legacy entries and directory rows of minor carry a 64-bit instance.
func WideInstances(minor format.IndexMinorVersion) bool {
	return minor == format.IndexMinorV2
}

// LegacyEntrySize returns the legacy index entry size for minor: 24 bytes for
// minor version 2, 20 bytes otherwise.
func LegacyEntrySize(minor format.IndexMinorVersion) int {
	if WideInstances(minor) {
		return legacyEntryBaseSize + 4
	}

	return legacyEntryBaseSize
}

// DirectoryEntrySize returns the directory row size for minor: 20 bytes for
// minor version 2, 16 bytes otherwise.
func DirectoryEntrySize(minor format.IndexMinorVersion) int {
	if WideInstances(minor) {
		return dirEntryBaseSize + 4
	}

	return dirEntryBaseSize
}
