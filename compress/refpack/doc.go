// Package refpack implements RefPack, the LZ77-family codec used by EA games
// to compress DBPF resources.
//
// # Stream layout
//
// A RefPack blob is a small header followed by a sequence of control codes.
// Each control code copies 0..3 literal bytes (or a literal run of 4..112
// bytes) from the stream and then copies a back-reference from the output:
//
//	Code     | Bytes | Literals | Length   | Offset
//	---------|-------|----------|----------|------------
//	Short    | 2     | 0-3      | 3-10     | 1-1024
//	Medium   | 3     | 0-3      | 4-67     | 1-16384
//	Long     | 4     | 0-3      | 5-1028   | 1-131072
//	Literal  | 1     | 4-112    | -        | -
//	Stop     | 1     | 0-3      | -        | -
//
// # Variants
//
// Several historically incompatible header dialects share the same on-disk
// compression tag, and a DBPF index does not record which one produced a
// blob. Decoder therefore tries an ordered list of Variants and accepts the
// first that parses without structural error:
//
//   - Maxis: u32 little-endian total length, 0x10 0xFB, u24 big-endian size
//   - SimEA: flags, 0xFB, u24/u32 big-endian size, optional compressed size
//   - Reference: flags, 0xFB, u24/u32 big-endian size
//
// DefaultVariants orders them from most to least restrictive. The order is
// a heuristic: a blob may parse under more than one variant, and
// Decoder.DetectAmbiguity reports when that happens.
//
// Encoder always emits a single canonical variant, Maxis by default.
package refpack
