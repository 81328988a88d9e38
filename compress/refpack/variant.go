package refpack

import (
	"fmt"
	"strings"

	"github.com/arloliu/dbpf/endian"
)

const (
	magic = 0xFB // second byte of every RefPack header

	flagWide           = 0x80 // size fields are 4 bytes instead of 3
	flagUnknown        = 0x40
	flagStandard       = 0x10
	flagCompressedSize = 0x01 // a compressed size field follows the decompressed size

	maxisHeaderSize = 9
)

// Header is a parsed RefPack stream header.
type Header struct {
	// DecompressedSize is the declared size of the decoded output.
	DecompressedSize int
	// Size is the number of header bytes preceding the control codes.
	Size int
}

// Variant is one RefPack header dialect.
type Variant interface {
	// Name returns a stable lower-case identifier.
	Name() string
	// ParseHeader validates and parses the header at the start of src.
	ParseHeader(src []byte) (Header, error)
	// AppendHeader appends a header for a body of bodyLen bytes that decodes to size bytes.
	AppendHeader(dst []byte, size, bodyLen int) ([]byte, error)
}

var (
	// Maxis is the dialect written by The Sims 2. Its header carries the total blob length,
	// which must match exactly, making it the most restrictive variant.
	Maxis Variant = maxisVariant{}
	// SimEA is the dialect of later EA titles with a flags byte and optional compressed size.
	SimEA Variant = simEAVariant{}
	// Reference is the original dialect; it accepts any flags byte.
	Reference Variant = referenceVariant{}
)

// DefaultVariants is the decoding trial order, from most to least restrictive.
var DefaultVariants = []Variant{Maxis, SimEA, Reference}

// VariantByName looks up a built-in variant by its Name.
func VariantByName(name string) (Variant, error) {
	for _, v := range DefaultVariants {
		if strings.EqualFold(v.Name(), name) {
			return v, nil
		}
	}

	return nil, fmt.Errorf("unknown refpack variant %q", name)
}

// ParseVariants parses a comma separated list of variant names.
func ParseVariants(list string) ([]Variant, error) {
	var variants []Variant
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		v, err := VariantByName(name)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	if len(variants) == 0 {
		return nil, fmt.Errorf("empty refpack variant list %q", list)
	}

	return variants, nil
}

type maxisVariant struct{}

func (maxisVariant) Name() string { return "maxis" }

func (maxisVariant) ParseHeader(src []byte) (Header, error) {
	if len(src) < maxisHeaderSize {
		return Header{}, fmt.Errorf("maxis header needs %d bytes, have %d", maxisHeaderSize, len(src))
	}
	if src[4] != flagStandard || src[5] != magic {
		return Header{}, fmt.Errorf("maxis magic mismatch: %02X %02X", src[4], src[5])
	}
	total := endian.GetLittleEndianEngine().Uint32(src[0:4])
	if int64(total) != int64(len(src)) {
		return Header{}, fmt.Errorf("maxis length field %d does not match blob length %d", total, len(src))
	}

	return Header{DecompressedSize: int(endian.Uint24(src[6:9])), Size: maxisHeaderSize}, nil
}

func (maxisVariant) AppendHeader(dst []byte, size, bodyLen int) ([]byte, error) {
	if size > endian.MaxUint24 {
		return nil, fmt.Errorf("maxis header cannot declare %d bytes", size)
	}
	dst = endian.GetLittleEndianEngine().AppendUint32(dst, uint32(maxisHeaderSize+bodyLen)) //nolint: gosec
	dst = append(dst, flagStandard, magic)

	return endian.AppendUint24(dst, uint32(size)), nil //nolint: gosec
}

type simEAVariant struct{}

func (simEAVariant) Name() string { return "simea" }

func (simEAVariant) ParseHeader(src []byte) (Header, error) {
	if len(src) < 2 {
		return Header{}, fmt.Errorf("simea header truncated")
	}
	flags := src[0]
	if src[1] != magic {
		return Header{}, fmt.Errorf("simea magic mismatch: %02X", src[1])
	}
	if flags&^(flagWide|flagUnknown|flagStandard|flagCompressedSize) != 0 {
		return Header{}, fmt.Errorf("simea flags %02X have unknown bits", flags)
	}

	wide := flags&flagWide != 0
	width := 3
	if wide {
		width = 4
	}
	headerSize := 2 + width
	if flags&flagCompressedSize != 0 {
		headerSize += width
	}
	if len(src) < headerSize {
		return Header{}, fmt.Errorf("simea header needs %d bytes, have %d", headerSize, len(src))
	}

	return Header{DecompressedSize: int(endian.SizeField(src[2:], wide)), Size: headerSize}, nil
}

func (simEAVariant) AppendHeader(dst []byte, size, _ int) ([]byte, error) {
	flags := byte(flagStandard)
	wide := size > endian.MaxUint24
	if wide {
		flags |= flagWide
	}
	dst = append(dst, flags, magic)

	return endian.AppendSizeField(dst, uint32(size), wide), nil //nolint: gosec
}

type referenceVariant struct{}

func (referenceVariant) Name() string { return "reference" }

func (referenceVariant) ParseHeader(src []byte) (Header, error) {
	if len(src) < 2 || src[1] != magic {
		return Header{}, fmt.Errorf("reference magic missing")
	}
	wide := src[0]&flagWide != 0
	headerSize := 5
	if wide {
		headerSize = 6
	}
	if len(src) < headerSize {
		return Header{}, fmt.Errorf("reference header needs %d bytes, have %d", headerSize, len(src))
	}

	return Header{DecompressedSize: int(endian.SizeField(src[2:], wide)), Size: headerSize}, nil
}

func (referenceVariant) AppendHeader(dst []byte, size, _ int) ([]byte, error) {
	return simEAVariant{}.AppendHeader(dst, size, 0)
}
