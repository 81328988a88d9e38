// Package section defines the low-level binary structures of the DBPF container format.
//
// This package handles the byte-level layout of headers, index tables, hole
// tables and the legacy directory side table. It performs no I/O beyond
// reading an index from an io.Reader and knows nothing about resource
// payloads or compression codecs.
//
// # File Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (96 bytes, fixed)                                │
//	│  - Magic "DBPF", version, user version, timestamps      │
//	│  - Index count/location/size, hole count/location/size  │
//	│  - Index minor version, 64-bit index offset             │
//	├─────────────────────────────────────────────────────────┤
//	│ Resource payloads (variable)                            │
//	├─────────────────────────────────────────────────────────┤
//	│ Hole index (N × 8 bytes, optional)                      │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (anywhere after the header)                       │
//	│  - Legacy: N × 20/24 byte LegacyEntry                   │
//	│  - Current: IndexType prefix + variable CurrentEntry    │
//	└─────────────────────────────────────────────────────────┘
//
// # Layouts
//
// Major version 1 files use the legacy index. Their entries carry no
// compression tag: a resource of type tgi.TypeDirectory lists the TGIs that
// are RefPack compressed together with their decompressed sizes (Directory).
//
// Major versions 2 and 3 use the current index, which opens with an
// IndexType bitfield that hoists TGI components shared by every entry, and
// stores the compression kind per entry.
//
// # Errors
//
// Size mismatches of fixed buffers return errs.ErrInvalidHeaderSize or
// errs.ErrInvalidIndexEntrySize. Inconsistent counts, sizes and locations
// return errs.ErrIndexCorruption; a bad magic or version errs.ErrHeaderFormat.
package section
