package dbpf

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/internal/pool"
	"github.com/arloliu/dbpf/resource"
	"github.com/arloliu/dbpf/section"
	"github.com/arloliu/dbpf/tgi"
)

// directoryGroup and directoryInstance are the fixed group and instance of a
// synthesized legacy directory resource.
const (
	directoryGroup    = 0xE86B1EEF
	directoryInstance = 0x286B1F03
)

// placed is one payload as laid out in the output.
type placed struct {
	entry    *Entry
	location uint32
	stored   resource.Compressed
}

// Write serializes the file to w, reading unresolved payloads from src.
//
// Each entry is converted to its target compression and its payload written
// contiguously after the header; the index follows the payloads. Offsets and
// sizes are regenerated and the hole table is cleared. Legacy files get a
// directory resource listing exactly the RefPack entries, or none when there
// are no RefPack entries.
//
// Every entry is resolved during the write, so afterwards the File no longer
// needs src. w must not be the stream src reads from.
//
// Returns:
//   - error: ErrUnsupportedCompression when the legacy layout cannot store an
//     entry's kind, or the first codec error; the output is then incomplete
func (f *File) Write(w io.WriteSeeker, src io.ReadSeeker) error {
	legacy := f.header.Version.IsLegacy()
	if legacy {
		if err := f.checkLegacyKinds(); err != nil {
			return err
		}
		f.widenLegacyInstances()
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.Write(make([]byte, section.HeaderSize)); err != nil {
		return err
	}

	pos := uint64(section.HeaderSize)
	out := make([]placed, 0, len(f.entries))
	for _, e := range f.entries {
		stored, err := f.storedForm(e, src)
		if err != nil {
			return &EntryError{TGI: e.TGI, Err: err}
		}
		if pos+uint64(len(stored.Bytes)) > math.MaxUint32 {
			return fmt.Errorf("%w: payload of %s ends past 4 GiB", errs.ErrIndexCorruption, e.TGI)
		}
		if _, err := w.Write(stored.Bytes); err != nil {
			return err
		}
		out = append(out, placed{entry: e, location: uint32(pos), stored: stored})
		pos += uint64(len(stored.Bytes))
	}

	var (
		index []byte
		count int
		err   error
	)
	buf := pool.GetIndexBuffer()
	defer pool.PutIndexBuffer(buf)

	if legacy {
		index, count, pos, err = f.appendLegacyIndex(buf.B, w, out, pos)
		if err != nil {
			return err
		}
	} else {
		index, count = f.appendCurrentIndex(buf.B, out), len(out)
	}
	buf.B = index

	if _, err := buf.WriteTo(w); err != nil {
		return err
	}

	h := f.header
	h.IndexCount = uint32(count)    //nolint: gosec
	h.IndexSize = uint32(buf.Len()) //nolint: gosec
	h.HoleCount, h.HoleLocation, h.HoleSize = 0, 0, 0
	if legacy {
		h.IndexLocation = uint32(pos)
		h.IndexOffset = 0
	} else {
		h.IndexLocation = 0
		h.IndexOffset = pos
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	if _, err := w.Write(h.Bytes()); err != nil {
		return err
	}
	if _, err := w.Seek(int64(pos)+int64(buf.Len()), io.SeekStart); err != nil { //nolint: gosec
		return err
	}

	f.header = h
	f.holes = nil
	for _, p := range out {
		p.entry.handle.Relocate(int64(p.location), resource.Args{
			Length:           uint32(len(p.stored.Bytes)),
			Kind:             p.stored.Kind,
			DecompressedSize: p.stored.DecompressedSize,
			Type:             p.entry.TGI.Type,
		})
	}

	f.logger.Debug("wrote dbpf file",
		slog.String("version", h.Version.String()),
		slog.Int("entries", count),
		slog.Uint64("index_position", pos),
		slog.Uint64("size", pos+uint64(buf.Len())))

	return nil
}

func (f *File) checkLegacyKinds() error {
	for _, e := range f.entries {
		switch e.compression {
		case format.CompressionNone, format.CompressionRefPack:
		default:
			return &EntryError{
				TGI: e.TGI,
				Err: fmt.Errorf("%w: legacy layout cannot store %s", errs.ErrUnsupportedCompression, e.compression),
			}
		}
	}

	return nil
}

// widenLegacyInstances switches to 64-bit legacy entries when an instance
// does not fit in 32 bits.
func (f *File) widenLegacyInstances() {
	if section.WideInstances(f.header.IndexMinor) {
		return
	}
	for _, e := range f.entries {
		if e.TGI.InstanceHigh() != 0 {
			f.logger.Debug("widening legacy index to 64-bit instances", slog.String("tgi", e.TGI.String()))
			f.header.IndexMinor = format.IndexMinorV2

			return
		}
	}
}

// storedForm resolves e and converts it to its target compression with a
// known decompressed size.
func (f *File) storedForm(e *Entry, src io.ReadSeeker) (resource.Compressed, error) {
	data, err := e.Data(src)
	if err != nil {
		return resource.Compressed{}, err
	}
	stored, err := data.Compressed(e.compression)
	if err != nil {
		return resource.Compressed{}, err
	}

	if stored.DecompressedSize < 0 {
		if e.compression.IsOpaque() {
			stored.DecompressedSize = len(stored.Bytes)
		} else {
			raw, err := data.Peek()
			if err != nil {
				return resource.Compressed{}, err
			}
			stored.DecompressedSize = len(raw)
		}
	}

	return stored, nil
}

func (f *File) appendLegacyIndex(dst []byte, w io.Writer, out []placed, pos uint64) ([]byte, int, uint64, error) {
	minor := f.header.IndexMinor

	var dir section.Directory
	for _, p := range out {
		if p.stored.Kind == format.CompressionRefPack {
			dir = append(dir, section.DirectoryEntry{TGI: p.entry.TGI, DecompressedSize: uint32(p.stored.DecompressedSize)}) //nolint: gosec
		}
	}

	count := len(out)
	if len(dir) > 0 {
		payload := dir.Append(nil, minor)
		if _, err := w.Write(payload); err != nil {
			return nil, 0, 0, err
		}
		dirEntry := section.LegacyEntry{
			TGI:      tgi.New(tgi.TypeDirectory, directoryGroup, directoryInstance),
			Location: uint32(pos),
			Size:     uint32(len(payload)),
		}
		dst = dirEntry.AppendLegacy(dst, minor)
		pos += uint64(len(payload))
		count++
	}

	for _, p := range out {
		dst = section.LegacyEntry{
			TGI:      p.entry.TGI,
			Location: p.location,
			Size:     uint32(len(p.stored.Bytes)),
		}.AppendLegacy(dst, minor)
	}

	return dst, count, pos, nil
}

func (f *File) appendCurrentIndex(dst []byte, out []placed) []byte {
	entries := make([]section.CurrentEntry, len(out))
	for i, p := range out {
		entries[i] = section.CurrentEntry{
			TGI:              p.entry.TGI,
			Location:         p.location,
			Size:             uint32(len(p.stored.Bytes)),
			DecompressedSize: uint32(p.stored.DecompressedSize),
			Compression:      p.stored.Kind,
			Extended:         true,
			Committed:        1,
		}
	}

	return section.AppendCurrentIndex(dst, section.ChooseIndexType(entries), entries)
}
