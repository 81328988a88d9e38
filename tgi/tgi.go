// Package tgi identifies DBPF resources.
//
// Every resource in a package is addressed by a TGI: its Type code, a Group id
// and an Instance id. Type codes are plain uint32 values; a code is "known"
// when the registry in this package has properties for it. Equality and
// hashing always use the raw code, so known and unknown codes mix freely as
// map keys.
package tgi

import (
	"fmt"
	"slices"
)

// TypeCode is the numeric type id of a resource.
type TypeCode uint32

// Properties describes a known resource type.
type Properties struct {
	// Name is a human readable name, subject to change at any time.
	Name string
	// Abbreviation is a short tag of at most a few characters. Not guaranteed to be unique.
	Abbreviation string
	// Extensions lists file extensions for exported resources; the first is preferred.
	Extensions []string
	// EmbeddedFilename reports whether the resource starts with a 64-byte file name.
	EmbeddedFilename bool
}

// Code returns the raw numeric code.
func (c TypeCode) Code() uint32 {
	return uint32(c)
}

// Known reports whether c is in the type registry.
func (c TypeCode) Known() bool {
	_, ok := knownTypes[c]
	return ok
}

// Properties returns the registry entry for c.
func (c TypeCode) Properties() (Properties, bool) {
	p, ok := knownTypes[c]
	return p, ok
}

// Name returns the human readable name, or the hex code for unknown types.
func (c TypeCode) Name() string {
	if p, ok := knownTypes[c]; ok {
		return p.Name
	}

	return c.hex()
}

// Abbreviation returns the short tag, or the hex code for unknown types.
func (c TypeCode) Abbreviation() string {
	if p, ok := knownTypes[c]; ok {
		return p.Abbreviation
	}

	return c.hex()
}

// Extensions returns the possible file extensions for c.
// Unknown types get their hex code as the only extension.
func (c TypeCode) Extensions() []string {
	if p, ok := knownTypes[c]; ok {
		return slices.Clone(p.Extensions)
	}

	return []string{c.hex()}
}

// Extension returns the preferred extension, falling back to the abbreviation.
func (c TypeCode) Extension() string {
	p, ok := knownTypes[c]
	if !ok {
		return c.hex()
	}
	if len(p.Extensions) > 0 {
		return p.Extensions[0]
	}

	return p.Abbreviation
}

func (c TypeCode) String() string {
	return c.Abbreviation()
}

func (c TypeCode) hex() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// KnownTypes returns every registered type code in ascending order.
func KnownTypes() []TypeCode {
	codes := make([]TypeCode, 0, len(knownTypes))
	for c := range knownTypes {
		codes = append(codes, c)
	}
	slices.Sort(codes)

	return codes
}

// TGI is the Type/Group/Instance key of a resource.
type TGI struct {
	Type     TypeCode
	Group    uint32
	Instance uint64
}

// New builds a TGI.
func New(typeID TypeCode, group uint32, instance uint64) TGI {
	return TGI{Type: typeID, Group: group, Instance: instance}
}

// InstanceLow returns the low 32 bits of the instance id.
func (t TGI) InstanceLow() uint32 {
	return uint32(t.Instance) //nolint: gosec
}

// InstanceHigh returns the high 32 bits of the instance id.
func (t TGI) InstanceHigh() uint32 {
	return uint32(t.Instance >> 32) //nolint: gosec
}

// Compare orders TGIs by type, group, then instance.
func (t TGI) Compare(o TGI) int {
	switch {
	case t.Type != o.Type:
		if t.Type < o.Type {
			return -1
		}
		return 1
	case t.Group != o.Group:
		if t.Group < o.Group {
			return -1
		}
		return 1
	case t.Instance != o.Instance:
		if t.Instance < o.Instance {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func (t TGI) String() string {
	return fmt.Sprintf("%s %08X:%08X:%016X", t.Type.Abbreviation(), uint32(t.Type), t.Group, t.Instance)
}
