// Package endian provides byte order utilities for DBPF encoding and decoding.
//
// DBPF headers and index tables are little-endian, while the size fields of
// RefPack stream headers are big-endian and often only 24 bits wide. This
// package combines encoding/binary's ByteOrder and AppendByteOrder into a
// single EndianEngine and adds the 24-bit helpers the RefPack headers need.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	count := engine.Uint32(header[36:40])
//	buf = engine.AppendUint32(buf, count)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
package endian

import "encoding/binary"

// MaxUint24 is the largest value a 24-bit size field can hold.
const MaxUint24 = 1<<24 - 1

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used for DBPF tables.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine used for RefPack headers.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Uint24 decodes a big-endian 24-bit value from the first three bytes of b.
func Uint24(b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// PutUint24 encodes the low 24 bits of v into b in big-endian order.
func PutUint24(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

// AppendUint24 appends the low 24 bits of v to b in big-endian order.
func AppendUint24(b []byte, v uint32) []byte {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}

// SizeField decodes a big-endian size field that is 3 or 4 bytes wide.
func SizeField(b []byte, wide bool) uint32 {
	if wide {
		return binary.BigEndian.Uint32(b)
	}

	return Uint24(b)
}

// AppendSizeField appends v as a 3 or 4 byte big-endian size field.
func AppendSizeField(b []byte, v uint32, wide bool) []byte {
	if wide {
		return binary.BigEndian.AppendUint32(b, v)
	}

	return AppendUint24(b, v)
}
