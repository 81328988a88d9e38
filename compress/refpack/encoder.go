package refpack

import (
	"fmt"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/internal/pool"
)

const (
	maxOffset     = 131072
	maxLength     = 1028
	minLength     = 3
	maxLiteralRun = 112

	shortMaxOffset  = 1024
	shortMaxLength  = 10
	mediumMaxOffset = 16384
	mediumMaxLength = 67

	hashBits = 16

	// DefaultChainDepth is the number of hash-chain candidates examined per position.
	DefaultChainDepth = 64
)

// Encoder compresses data into a single canonical RefPack variant.
//
// The zero value writes Maxis headers with DefaultChainDepth.
// An Encoder is safe for concurrent use.
type Encoder struct {
	// Variant selects the header written in front of the stream. Nil means Maxis.
	Variant Variant
	// ChainDepth bounds the match search. Zero or negative means DefaultChainDepth.
	ChainDepth int
}

// Compress encodes src with a zero Encoder.
func Compress(src []byte) ([]byte, error) {
	return (&Encoder{}).Encode(src)
}

// Encode compresses src and prefixes it with the encoder's variant header.
func (e *Encoder) Encode(src []byte) ([]byte, error) {
	v := e.Variant
	if v == nil {
		v = Maxis
	}

	body := e.appendBody(make([]byte, 0, len(src)/2+16), src)

	out := make([]byte, 0, maxisHeaderSize+len(body))
	out, err := v.AppendHeader(out, len(src), len(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCodec, err)
	}

	return append(out, body...), nil
}

func (e *Encoder) appendBody(dst, src []byte) []byte {
	depth := e.ChainDepth
	if depth <= 0 {
		depth = DefaultChainDepth
	}

	n := len(src)
	head, freeHead := pool.GetInt32Slice(1 << hashBits)
	defer freeHead()
	for i := range head {
		head[i] = -1
	}
	prev, freePrev := pool.GetInt32Slice(n)
	defer freePrev()

	insert := func(p int) {
		if p+minLength > n {
			return
		}
		h := hash3(src[p:])
		prev[p] = head[h]
		head[h] = int32(p) //nolint: gosec
	}

	litStart := 0
	pos := 0
	for pos+minLength <= n {
		length, offset := longestMatch(src, pos, head, prev, depth)
		if length == 0 {
			insert(pos)
			pos++

			continue
		}

		dst, litStart = appendLiteralRuns(dst, src, litStart, pos)
		dst = appendMatch(dst, src[litStart:pos], offset, length)
		for k := pos; k < pos+length; k++ {
			insert(k)
		}
		pos += length
		litStart = pos
	}

	dst, litStart = appendLiteralRuns(dst, src, litStart, n)
	dst = append(dst, byte(0xFC|(n-litStart)))

	return append(dst, src[litStart:]...)
}

func hash3(b []byte) uint32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	return (v * 2654435761) >> (32 - hashBits)
}

// minMatch returns the shortest length any control code can express at offset.
func minMatch(offset int) int {
	switch {
	case offset <= shortMaxOffset:
		return 3
	case offset <= mediumMaxOffset:
		return 4
	default:
		return 5
	}
}

func longestMatch(src []byte, pos int, head, prev []int32, depth int) (int, int) {
	limit := min(len(src)-pos, maxLength)
	bestLen, bestOff := 0, 0

	cand := int(head[hash3(src[pos:])])
	for ; depth > 0 && cand >= 0; depth-- {
		offset := pos - cand
		if offset > maxOffset {
			break
		}

		l := 0
		for l < limit && src[cand+l] == src[pos+l] {
			l++
		}
		if l > bestLen && l >= minMatch(offset) {
			bestLen, bestOff = l, offset
			if l == limit {
				break
			}
		}
		cand = int(prev[cand])
	}

	return bestLen, bestOff
}

// appendLiteralRuns emits literal-run codes for src[start:end] in multiples of
// four and returns the start of the 0..3 literals left for the next code.
func appendLiteralRuns(dst, src []byte, start, end int) ([]byte, int) {
	for end-start >= 4 {
		run := min((end-start)&^3, maxLiteralRun)
		dst = append(dst, byte(0xE0|((run-4)>>2)))
		dst = append(dst, src[start:start+run]...)
		start += run
	}

	return dst, start
}

func appendMatch(dst, literals []byte, offset, length int) []byte {
	lit := len(literals)
	o := offset - 1

	switch {
	case offset <= shortMaxOffset && length <= shortMaxLength:
		dst = append(dst,
			byte(((o>>3)&0x60)|((length-3)<<2)|lit),
			byte(o),
		)
	case offset <= mediumMaxOffset && length <= mediumMaxLength:
		dst = append(dst,
			byte(0x80|(length-4)),
			byte(lit<<6|(o>>8)),
			byte(o),
		)
	default:
		l := length - 5
		dst = append(dst,
			byte(0xC0|((o>>16)&1)<<4|((l>>8)&3)<<2|lit),
			byte(o>>8),
			byte(o),
			byte(l),
		)
	}

	return append(dst, literals...)
}
