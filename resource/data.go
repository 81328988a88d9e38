package resource

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/dbpf/compress"
	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/format"
	"github.com/arloliu/dbpf/tgi"
)

// State identifies the representation a Data currently holds.
type State uint8

const (
	StateCompressed State = iota
	StateDecompressed
	StateDecoded
)

func (s State) String() string {
	switch s {
	case StateCompressed:
		return "compressed"
	case StateDecompressed:
		return "decompressed"
	case StateDecoded:
		return "decoded"
	default:
		return "unknown"
	}
}

// Env carries the collaborators a Data needs for state transitions.
// A nil *Env uses the built-in codecs and no decoder.
type Env struct {
	Codecs  *compress.Set
	Decoder Decoder
	Logger  *slog.Logger
}

func (e *Env) codec(kind format.CompressionType) (compress.Codec, error) {
	if e == nil {
		return compress.GetCodec(kind)
	}

	return e.Codecs.Codec(kind)
}

func (e *Env) decoder() Decoder {
	if e == nil {
		return nil
	}

	return e.Decoder
}

func (e *Env) logger() *slog.Logger {
	if e == nil || e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return e.Logger
}

func errNoDecoder(t tgi.TypeCode) error {
	return fmt.Errorf("%w: no decoder for type %s", errs.ErrDecode, t)
}

// Compressed is the on-disk form of a payload.
type Compressed struct {
	Bytes []byte
	Kind  format.CompressionType
	// DecompressedSize is the declared decompressed length; negative when unknown.
	DecompressedSize int
}

// Data is the state cache of one resource payload.
type Data struct {
	typ tgi.TypeCode
	env *Env

	state        State
	compressed   Compressed
	decompressed []byte
	decoded      Value
}

// NewCompressed creates a Data holding on-disk bytes.
func NewCompressed(t tgi.TypeCode, c Compressed, env *Env) *Data {
	return &Data{typ: t, env: env, state: StateCompressed, compressed: c}
}

// NewDecompressed creates a Data holding raw payload bytes.
func NewDecompressed(t tgi.TypeCode, b []byte, env *Env) *Data {
	return &Data{typ: t, env: env, state: StateDecompressed, decompressed: b}
}

// State returns the current representation.
func (d *Data) State() State {
	return d.state
}

// Type returns the resource type the payload belongs to.
func (d *Data) Type() tgi.TypeCode {
	return d.typ
}

// CompressedForm returns the held on-disk form. The boolean is false unless
// the state is StateCompressed.
func (d *Data) CompressedForm() (Compressed, bool) {
	return d.compressed, d.state == StateCompressed
}

// Decompressed returns the raw payload bytes, transitioning the cache to
// StateDecompressed. From StateCompressed the payload is decompressed with the
// codec for its kind; from StateDecoded the value is re-encoded with the
// decoder. On error the state is unchanged.
func (d *Data) Decompressed() ([]byte, error) {
	b, err := d.peekDecompressed()
	if err != nil {
		return nil, err
	}
	d.SetDecompressed(b)

	return b, nil
}

// Peek returns the raw payload bytes like Decompressed but never changes the
// state, so an entry that is only being checked keeps its on-disk form.
func (d *Data) Peek() ([]byte, error) {
	return d.peekDecompressed()
}

func (d *Data) peekDecompressed() ([]byte, error) {
	switch d.state {
	case StateDecompressed:
		return d.decompressed, nil
	case StateCompressed:
		codec, err := d.env.codec(d.compressed.Kind)
		if err != nil {
			return nil, err
		}

		return codec.Decompress(d.compressed.Bytes, d.compressed.DecompressedSize)
	case StateDecoded:
		dec := d.env.decoder()
		if dec == nil {
			return nil, errNoDecoder(d.typ)
		}
		b, err := dec.Encode(d.typ, d.decoded)
		if err != nil {
			return nil, fmt.Errorf("%w: encode %s: %w", errs.ErrDecode, d.typ, err)
		}

		return b, nil
	default:
		return nil, fmt.Errorf("invalid resource state %d", d.state)
	}
}

// Decoded returns the typed value of the payload, transitioning the cache to
// StateDecoded. The boolean is false when no decoder handles the type; the
// cache is then left decompressed. A decoder failure returns errs.ErrDecode
// and leaves the cache decompressed.
func (d *Data) Decoded() (Value, bool, error) {
	if d.state == StateDecoded {
		return d.decoded, true, nil
	}

	b, err := d.Decompressed()
	if err != nil {
		return nil, false, err
	}

	dec := d.env.decoder()
	if dec == nil {
		return nil, false, nil
	}

	v, ok, err := dec.Decode(d.typ, b)
	if err != nil {
		d.env.logger().Debug("resource decode failed", slog.String("type", d.typ.String()), slog.Any("error", err))
		return nil, false, fmt.Errorf("%w: %s: %w", errs.ErrDecode, d.typ, err)
	}
	if !ok {
		return nil, false, nil
	}
	d.SetDecoded(v)

	return v, true, nil
}

// Compressed returns the payload compressed with kind, transitioning the
// cache to StateCompressed. It is a no-op when the cache already holds that
// kind. On error the state is unchanged.
func (d *Data) Compressed(kind format.CompressionType) (Compressed, error) {
	if d.state == StateCompressed && d.compressed.Kind == kind {
		return d.compressed, nil
	}

	b, err := d.peekDecompressed()
	if err != nil {
		return Compressed{}, err
	}

	codec, err := d.env.codec(kind)
	if err != nil {
		return Compressed{}, err
	}
	out, err := codec.Compress(b)
	if err != nil {
		return Compressed{}, err
	}

	d.compressed = Compressed{Bytes: out, Kind: kind, DecompressedSize: len(b)}
	d.decompressed = nil
	d.decoded = nil
	d.state = StateCompressed

	return d.compressed, nil
}

// SetDecompressed replaces the payload with raw bytes.
func (d *Data) SetDecompressed(b []byte) {
	d.decompressed = b
	d.compressed = Compressed{}
	d.decoded = nil
	d.state = StateDecompressed
}

// SetDecoded replaces the payload with a typed value.
func (d *Data) SetDecoded(v Value) {
	d.decoded = v
	d.compressed = Compressed{}
	d.decompressed = nil
	d.state = StateDecoded
}

func (d *Data) setCompressedArgs(kind format.CompressionType, size int) {
	if d.state == StateCompressed {
		d.compressed.Kind = kind
		d.compressed.DecompressedSize = size
	}
}
