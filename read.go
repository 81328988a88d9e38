package dbpf

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/resource"
	"github.com/arloliu/dbpf/section"
	"github.com/arloliu/dbpf/tgi"
)

// Read parses the header, hole table and index of a DBPF file.
//
// Payloads are not read: each entry resolves lazily from r on first access.
// Legacy directory resources are consumed to annotate RefPack entries and do
// not appear in the result.
//
// Returns:
//   - error: ErrHeaderFormat for a bad magic or version, ErrIndexCorruption
//     for inconsistent index or hole geometry or tables extending past the
//     end of r. No partial File is returned.
func Read(r io.ReadSeeker, opts ...Option) (*File, error) {
	f, err := newFile(opts...)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, section.HeaderSize)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", errs.ErrHeaderFormat, err)
	}

	f.header, err = section.ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if err := f.header.Validate(); err != nil {
		return nil, err
	}

	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if err := f.header.InBounds(uint64(end)); err != nil { //nolint: gosec
		return nil, err
	}

	if err := f.readHoles(r); err != nil {
		return nil, err
	}

	if f.header.Version.IsLegacy() {
		err = f.readLegacyIndex(r)
	} else {
		err = f.readCurrentIndex(r)
	}
	if err != nil {
		return nil, err
	}

	f.logger.Debug("loaded dbpf index",
		slog.String("version", f.header.Version.String()),
		slog.String("index_minor", f.header.IndexMinor.String()),
		slog.Int("entries", len(f.entries)),
		slog.Int("holes", len(f.holes)))

	return f, nil
}

func readAt(r io.ReadSeeker, offset uint64, size int) ([]byte, error) {
	if _, err := r.Seek(int64(offset), io.SeekStart); err != nil { //nolint: gosec
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %d bytes at %d: %w", errs.ErrIndexCorruption, size, offset, err)
	}

	return buf, nil
}

func (f *File) readHoles(r io.ReadSeeker) error {
	if f.header.HoleCount == 0 {
		return nil
	}

	count := int(f.header.HoleCount)
	data, err := readAt(r, uint64(f.header.HoleLocation), count*section.HoleEntrySize)
	if err != nil {
		return fmt.Errorf("hole index: %w", err)
	}
	f.holes, err = section.ParseHoles(data, count)

	return err
}

func (f *File) readLegacyIndex(r io.ReadSeeker) error {
	minor := f.header.IndexMinor
	count := int(f.header.IndexCount)

	data, err := readAt(r, f.header.IndexPosition(), int(f.header.IndexSize))
	if err != nil {
		return fmt.Errorf("legacy index: %w", err)
	}
	raw, err := section.ParseLegacyIndex(data, count, minor)
	if err != nil {
		return err
	}

	f.entries = make([]*Entry, 0, len(raw))
	for _, le := range raw {
		f.entries = append(f.entries, &Entry{
			TGI:         le.TGI,
			compression: format.CompressionNone,
			handle: resource.NewHandle(int64(le.Location), resource.Args{
				Length:           le.Size,
				Kind:             format.CompressionNone,
				DecompressedSize: -1,
				Type:             le.TGI.Type,
			}, f.env),
		})
	}

	return f.annotateFromDirectory(r)
}

// annotateFromDirectory consumes the legacy directory resources: entries the
// directory lists become RefPack with the declared size, the directory
// entries themselves are dropped from the index.
func (f *File) annotateFromDirectory(r io.ReadSeeker) error {
	var dir section.Directory
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.TGI.Type != tgi.TypeDirectory {
			kept = append(kept, e)
			continue
		}

		data, err := e.Data(r)
		if err != nil {
			return fmt.Errorf("directory %s: %w", e.TGI, err)
		}
		raw, err := data.Decompressed()
		if err != nil {
			return fmt.Errorf("%w: directory %s: %w", errs.ErrIndexCorruption, e.TGI, err)
		}
		rows, err := section.ParseDirectory(raw, f.header.IndexMinor)
		if err != nil {
			return fmt.Errorf("directory %s: %w", e.TGI, err)
		}
		dir = append(dir, rows...)
	}
	f.entries = kept

	if len(dir) == 0 {
		return nil
	}

	sizes := dir.Sizes()
	compressed := 0
	for _, e := range f.entries {
		if size, ok := sizes[e.TGI]; ok {
			e.compression = format.CompressionRefPack
			e.handle.SetArgs(format.CompressionRefPack, int(size))
			compressed++
		}
	}
	f.logger.Debug("applied directory",
		slog.Int("rows", len(dir)),
		slog.Int("compressed_entries", compressed))

	return nil
}

func (f *File) readCurrentIndex(r io.ReadSeeker) error {
	count := int(f.header.IndexCount)
	if count == 0 {
		return nil
	}

	if _, err := r.Seek(int64(f.header.IndexPosition()), io.SeekStart); err != nil { //nolint: gosec
		return err
	}
	raw, it, err := section.ReadCurrentIndex(bufio.NewReader(r), count)
	if err != nil {
		return err
	}

	f.entries = make([]*Entry, 0, len(raw))
	for _, ce := range raw {
		f.entries = append(f.entries, &Entry{
			TGI:         ce.TGI,
			compression: ce.Compression,
			handle: resource.NewHandle(int64(ce.Location), resource.Args{
				Length:           ce.Size,
				Kind:             ce.Compression,
				DecompressedSize: int(ce.DecompressedSize),
				Type:             ce.TGI.Type,
			}, f.env),
		})
	}
	f.logger.Debug("read current index", slog.String("index_type", it.String()))

	return nil
}
