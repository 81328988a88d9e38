// Package resource holds the per-entry payload machinery of a DBPF file: the
// lazy handle that defers reading a payload until first access, the state
// cache that moves a payload between its compressed, decompressed and
// decoded forms, and the contract per-type decoders implement.
//
// # States
//
//	          Decompressed()              Decoded()
//	Compressed ─────────────► Decompressed ─────────► Decoded
//	     ▲                        │  ▲                   │
//	     └────── Compressed(k) ───┘  └──── Decompressed()┘
//
// Exactly one representation is held at a time. A failed transition leaves
// the previous state in place, so one corrupt entry never poisons another.
//
// A Data is not safe for concurrent use.
package resource
