package dbpf

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/resource"
	"github.com/arloliu/dbpf/section"
	"github.com/arloliu/dbpf/tgi"
)

// File is a DBPF container: its header, index and hole table.
//
// Payloads are not held by the File until an entry is accessed; the caller
// keeps the source stream and passes it to Entry.Data, Verify and Write.
// A File is not safe for concurrent use.
type File struct {
	header  section.Header
	entries []*Entry
	holes   []section.HoleEntry

	env    *resource.Env
	logger *slog.Logger
}

// New creates an empty file of the given layout version.
func New(version format.Version, opts ...Option) (*File, error) {
	if !version.IsValid() {
		return nil, fmt.Errorf("%w: unsupported version %s", errs.ErrHeaderFormat, version)
	}

	f, err := newFile(opts...)
	if err != nil {
		return nil, err
	}
	f.header = *section.NewHeader(version)

	return f, nil
}

func newFile(opts ...Option) (*File, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	env, err := cfg.env()
	if err != nil {
		return nil, err
	}

	return &File{env: env, logger: cfg.logger}, nil
}

// Header returns a copy of the header as last read or written.
func (f *File) Header() section.Header {
	return f.header
}

// Version returns the layout version.
func (f *File) Version() format.Version {
	return f.header.Version
}

// SetVersion changes the layout the next Write produces. Switching between
// the legacy and current layouts resets the index minor version to the new
// layout's default.
func (f *File) SetVersion(version format.Version) error {
	if !version.IsValid() {
		return fmt.Errorf("%w: unsupported version %s", errs.ErrHeaderFormat, version)
	}
	if version.IsLegacy() != f.header.Version.IsLegacy() {
		f.header.IndexMinor = section.NewHeader(version).IndexMinor
	}
	f.header.Version = version

	return nil
}

// Entries returns the index entries in order. Directory entries of legacy
// files are not included.
func (f *File) Entries() []*Entry {
	out := make([]*Entry, len(f.entries))
	copy(out, f.entries)

	return out
}

// Len returns the number of entries.
func (f *File) Len() int {
	return len(f.entries)
}

// Lookup returns the entry for key. When the index lists key more than once
// the last occurrence wins.
func (f *File) Lookup(key tgi.TGI) (*Entry, bool) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].TGI == key {
			return f.entries[i], true
		}
	}

	return nil, false
}

// Add appends a new entry holding data, to be written with kind. An existing
// entry with the same key is shadowed for Lookup but kept in the index.
func (f *File) Add(key tgi.TGI, kind format.CompressionType, data []byte) *Entry {
	e := &Entry{
		TGI:         key,
		compression: kind,
		handle:      resource.NewResolved(resource.NewDecompressed(key.Type, data, f.env)),
	}
	f.entries = append(f.entries, e)

	return e
}

// Remove deletes every entry with key.
//
// Returns:
//   - error: ErrEntryNotFound when no entry matches
func (f *File) Remove(key tgi.TGI) error {
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.TGI != key {
			kept = append(kept, e)
		}
	}
	removed := len(f.entries) - len(kept)
	clear(f.entries[len(kept):])
	f.entries = kept

	if removed == 0 {
		return fmt.Errorf("%w: %s", errs.ErrEntryNotFound, key)
	}

	return nil
}

// Holes returns the hole table read from the file. It is empty after Write.
func (f *File) Holes() []section.HoleEntry {
	out := make([]section.HoleEntry, len(f.holes))
	copy(out, f.holes)

	return out
}

// HoleSize returns the total number of bytes the hole table marks as unused.
func (f *File) HoleSize() uint64 {
	var total uint64
	for _, h := range f.holes {
		total += uint64(h.Size)
	}

	return total
}
