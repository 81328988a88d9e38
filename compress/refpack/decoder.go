package refpack

import (
	"errors"
	"fmt"

	"github.com/arloliu/dbpf/errs"
)

// Result is the outcome of a successful Decoder.Decode.
type Result struct {
	// Data is the decompressed payload.
	Data []byte
	// Variant is the first variant in trial order that decoded the blob.
	Variant Variant
	// Matches lists every variant that decoded the blob. It is only
	// populated when ambiguity detection is enabled.
	Matches []Variant
	// Ambiguous reports that more than one variant decoded the blob.
	// Only set when ambiguity detection is enabled.
	Ambiguous bool
}

// Decoder decompresses RefPack blobs by trying an ordered list of variants.
//
// The zero value uses DefaultVariants without ambiguity detection.
// A Decoder is safe for concurrent use.
type Decoder struct {
	// Variants is the trial order. Nil means DefaultVariants.
	Variants []Variant
	// DetectAmbiguity makes Decode try every variant instead of stopping at
	// the first success, and report disagreements in Result.Ambiguous.
	DetectAmbiguity bool
}

// Decompress decodes src with the default variant order.
func Decompress(src []byte) ([]byte, error) {
	res, err := (&Decoder{}).Decode(src)
	if err != nil {
		return nil, err
	}

	return res.Data, nil
}

// Decode parses src under each configured variant in order and returns the
// first successful result. When every variant fails the returned error wraps
// errs.ErrCodec and errs.ErrRefPackFormat and joins the per-variant causes.
func (d *Decoder) Decode(src []byte) (Result, error) {
	return d.DecodeSized(src, -1)
}

// DecodeSized is Decode with the decompressed size the caller expects.
// A variant whose header declares a different size is rejected before any
// output is allocated. A negative size means unknown.
func (d *Decoder) DecodeSized(src []byte, size int) (Result, error) {
	variants := d.Variants
	if variants == nil {
		variants = DefaultVariants
	}
	if len(variants) == 0 {
		return Result{}, fmt.Errorf("%w: %w: no variants configured", errs.ErrCodec, errs.ErrRefPackFormat)
	}

	var (
		res   Result
		found bool
		fails []error
	)
	for _, v := range variants {
		data, err := decodeVariant(v, src, size)
		if err != nil {
			fails = append(fails, fmt.Errorf("%s: %w", v.Name(), err))
			continue
		}

		if !found {
			res = Result{Data: data, Variant: v}
			found = true
			if !d.DetectAmbiguity {
				return res, nil
			}
		}
		res.Matches = append(res.Matches, v)
		res.Ambiguous = len(res.Matches) > 1
	}

	if !found {
		return Result{}, fmt.Errorf("%w: %w: %w", errs.ErrCodec, errs.ErrRefPackFormat, errors.Join(fails...))
	}

	return res, nil
}

func decodeVariant(v Variant, src []byte, size int) ([]byte, error) {
	hdr, err := v.ParseHeader(src)
	if err != nil {
		return nil, err
	}
	if size >= 0 && hdr.DecompressedSize != size {
		if hdr.DecompressedSize > size {
			return nil, fmt.Errorf("%w: header declares %d bytes, expected %d",
				errs.ErrSizeExceeded, hdr.DecompressedSize, size)
		}

		return nil, fmt.Errorf("header declares %d bytes, expected %d", hdr.DecompressedSize, size)
	}

	return DecodeBody(src[hdr.Size:], hdr.DecompressedSize)
}

// MaxExpansion is the most output a single body byte can produce: a 4-byte
// long back-reference copies at most 1028 bytes.
const MaxExpansion = 257

// initialCap bounds the up-front output allocation; larger outputs grow by append.
const initialCap = 1 << 20

var errTruncated = errors.New("control code truncated")

// DecodeBody decodes a header-less stream of control codes into exactly size bytes.
//
// Every literal and back-reference is bounds checked; malformed input returns
// an error and never panics. A size that body could not possibly expand to is
// rejected before anything is allocated.
func DecodeBody(body []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative declared size %d", size)
	}
	if size > len(body)*MaxExpansion {
		return nil, fmt.Errorf("declared size %d unreachable from %d body bytes: %w", size, len(body), errTruncated)
	}

	out := make([]byte, 0, min(size, len(body)*MaxExpansion, initialCap))
	pos := 0
	for {
		if pos >= len(body) {
			if len(out) == size {
				return out, nil
			}

			return nil, fmt.Errorf("stream ended at %d of %d bytes: %w", len(out), size, errTruncated)
		}

		b0 := int(body[pos])
		var literals, length, offset int
		stop := false

		switch {
		case b0 < 0x80: // short
			if pos+2 > len(body) {
				return nil, errTruncated
			}
			b1 := int(body[pos+1])
			literals = b0 & 0x03
			length = ((b0 >> 2) & 0x07) + 3
			offset = ((b0 & 0x60) << 3) + b1 + 1
			pos += 2
		case b0 < 0xC0: // medium
			if pos+3 > len(body) {
				return nil, errTruncated
			}
			b1, b2 := int(body[pos+1]), int(body[pos+2])
			length = (b0 & 0x3F) + 4
			literals = b1 >> 6
			offset = ((b1 & 0x3F) << 8) + b2 + 1
			pos += 3
		case b0 < 0xE0: // long
			if pos+4 > len(body) {
				return nil, errTruncated
			}
			b1, b2, b3 := int(body[pos+1]), int(body[pos+2]), int(body[pos+3])
			literals = b0 & 0x03
			offset = ((b0 & 0x10) << 12) + (b1 << 8) + b2 + 1
			length = ((b0 & 0x0C) << 6) + b3 + 5
			pos += 4
		case b0 < 0xFC: // literal run
			literals = ((b0 & 0x1F) << 2) + 4
			pos++
		default: // stop
			literals = b0 & 0x03
			stop = true
			pos++
		}

		if pos+literals > len(body) {
			return nil, fmt.Errorf("literal run of %d overruns stream: %w", literals, errTruncated)
		}
		if len(out)+literals > size {
			return nil, fmt.Errorf("literal run of %d exceeds declared size %d", literals, size)
		}
		out = append(out, body[pos:pos+literals]...)
		pos += literals

		if stop {
			if len(out) != size {
				return nil, fmt.Errorf("stop code at %d of %d bytes", len(out), size)
			}

			return out, nil
		}

		if length == 0 {
			continue
		}
		if offset > len(out) {
			return nil, fmt.Errorf("back-reference offset %d before start of output (%d)", offset, len(out))
		}
		if len(out)+length > size {
			return nil, fmt.Errorf("back-reference of %d exceeds declared size %d", length, size)
		}
		// Byte-wise copy: the source may overlap the bytes being produced.
		from := len(out) - offset
		for i := range length {
			out = append(out, out[from+i])
		}
	}
}
