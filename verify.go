package dbpf

import (
	"io"
	"log/slog"
)

// Verify resolves and decompresses every entry without changing its cached
// state and returns one EntryError per entry that failed. Failures are
// confined to their entry; the index stays usable.
func (f *File) Verify(r io.ReadSeeker) []*EntryError {
	var failed []*EntryError
	for _, e := range f.entries {
		data, err := e.Data(r)
		if err == nil {
			_, err = data.Peek()
		}
		if err != nil {
			f.logger.Debug("entry failed verification", slog.String("tgi", e.TGI.String()), slog.Any("error", err))
			failed = append(failed, &EntryError{TGI: e.TGI, Err: err})
		}
	}

	return failed
}
