package resource

import (
	"bytes"

	"github.com/arloliu/dbpf/tgi"
)

// Value is a decoded resource as produced by a Decoder.
type Value any

// Decoder converts decompressed resource bytes to typed values and back.
type Decoder interface {
	// Decode decodes data of type t. The boolean is false when the decoder
	// has no support for t; it is not an error.
	Decode(t tgi.TypeCode, data []byte) (Value, bool, error)
	// Encode serializes a value previously produced by Decode for type t.
	Encode(t tgi.TypeCode, v Value) ([]byte, error)
}

// TypeDecoder handles a single resource type.
type TypeDecoder interface {
	Decode(data []byte) (Value, error)
	Encode(v Value) ([]byte, error)
}

// Funcs adapts a pair of functions to TypeDecoder.
type Funcs struct {
	DecodeFunc func(data []byte) (Value, error)
	EncodeFunc func(v Value) ([]byte, error)
}

func (f Funcs) Decode(data []byte) (Value, error) { return f.DecodeFunc(data) }

func (f Funcs) Encode(v Value) ([]byte, error) { return f.EncodeFunc(v) }

// Registry is a Decoder that dispatches on the resource type.
type Registry struct {
	decoders map[tgi.TypeCode]TypeDecoder
}

var _ Decoder = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[tgi.TypeCode]TypeDecoder)}
}

// Register installs d for type t, replacing any previous decoder.
func (r *Registry) Register(t tgi.TypeCode, d TypeDecoder) *Registry {
	r.decoders[t] = d
	return r
}

// Decode implements Decoder.
func (r *Registry) Decode(t tgi.TypeCode, data []byte) (Value, bool, error) {
	d, ok := r.decoders[t]
	if !ok {
		return nil, false, nil
	}
	v, err := d.Decode(data)
	if err != nil {
		return nil, true, err
	}

	return v, true, nil
}

// Encode implements Decoder.
func (r *Registry) Encode(t tgi.TypeCode, v Value) ([]byte, error) {
	d, ok := r.decoders[t]
	if !ok {
		return nil, errNoDecoder(t)
	}

	return d.Encode(v)
}

// EmbeddedNameSize is the length of the NUL-padded name field that prefixes
// resources whose type has Properties.EmbeddedFilename set.
const EmbeddedNameSize = 0x40

// EmbeddedName returns the name stored at the start of data for types that
// embed one.
func EmbeddedName(t tgi.TypeCode, data []byte) (string, bool) {
	props, ok := t.Properties()
	if !ok || !props.EmbeddedFilename || len(data) < EmbeddedNameSize {
		return "", false
	}

	name := data[:EmbeddedNameSize]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	if len(name) == 0 {
		return "", false
	}

	return string(name), true
}
