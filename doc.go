// Package dbpf reads and writes DBPF ("DataBase Packed File") containers, the
// resource archives used by The Sims 2, The Sims 3, The Sims 4, SimCity and
// Spore.
//
// A DBPF file holds many typed resources addressed by a (Type, Group,
// Instance) key (tgi.TGI). Each resource may be stored uncompressed, ZLib
// compressed or RefPack compressed.
//
// # Core Features
//
//   - Legacy (major version 1) and current (major versions 2 and 3) layouts
//   - Lazy payload access: Read parses only the header and index
//   - Per-entry state cache between compressed, decompressed and decoded forms
//   - Multi-dialect RefPack decoding with a configurable trial order
//   - Rewriting with regenerated offsets and a synthesized legacy directory
//
// # Basic Usage
//
//	src, _ := os.Open("Objects.package")
//	defer src.Close()
//
//	file, err := dbpf.Read(src, dbpf.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	for _, e := range file.Entries() {
//	    data, err := e.Data(src)
//	    if err != nil {
//	        return err
//	    }
//	    raw, err := data.Decompressed()
//	    ...
//	}
//
// Recompressing everything as ZLib into a new current-layout file:
//
//	_ = file.SetVersion(format.VersionCurrent)
//	for _, e := range file.Entries() {
//	    e.SetCompression(format.CompressionZLib)
//	}
//	out, _ := os.Create("Objects.new.package")
//	err = file.Write(out, src)
//
// # Errors
//
// Structural errors (errs.ErrHeaderFormat, errs.ErrIndexCorruption) abort
// Read. Codec and decode errors are confined to the entry that produced them
// and are reported as *EntryError by Verify and Write.
//
// # Package Structure
//
// The root package ties together section (binary layout), resource (lazy
// handles and state cache), compress (codecs) and tgi (keys and the type
// registry).
package dbpf
