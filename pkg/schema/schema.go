// Package schema implements the schema-driven payload codec described in
// spec §4.7: scalars, strings, variable- and fixed-length sequences, and
// nested records, encoded into and decoded out of a crosslink object
// frame's payload.
//
// Per spec §9's reflection-replacement note, each user type registers a
// Descriptor -- a compile-time list of Field accessors tagged with a
// Shape -- instead of relying on runtime reflection or a code generation
// step. A Descriptor is typically built by a small function sitting next
// to the type it describes, the same place the original C++ source's
// REFL_AUTO macro invocation sits next to its struct.
package schema

import (
	"errors"

	"github.com/strand-protocol/crosslink/pkg/wire"
)

// ErrFixedCountMismatch is returned when a fixed-length sequence's on-wire
// count field disagrees with the compile-time length the field was
// registered with (spec §9: surfaced as an error, never an assertion).
var ErrFixedCountMismatch = errors.New("schema: fixed-length sequence count does not match registered length")

// Shape tags the on-wire encoding rule a Field follows (spec §4.7).
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeString
	ShapeSequence
	ShapeFixedSequence
	ShapeRecord
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeString:
		return "string"
	case ShapeSequence:
		return "sequence"
	case ShapeFixedSequence:
		return "fixed_sequence"
	case ShapeRecord:
		return "record"
	default:
		return "unknown"
	}
}

// Field is one entry in a Descriptor: a shape tag plus the ability to
// size, encode, and decode the corresponding field on a concrete owner
// instance. owner is always a pointer to the Go struct the Descriptor was
// built for; field implementations recover the concrete type with a type
// assertion in their get/set closures.
type Field interface {
	Shape() Shape
	Size(owner interface{}) int
	Encode(owner interface{}, w *wire.Writer)
	Decode(owner interface{}, r *wire.Reader) error
}

// Descriptor is the ordered list of Fields for one registered type,
// encoded/decoded in declared order (spec §3 "Record").
type Descriptor []Field

// Size returns the total encoded byte count of owner according to d.
func Size(d Descriptor, owner interface{}) int {
	total := 0
	for _, f := range d {
		total += f.Size(owner)
	}
	return total
}

// Encode writes owner's fields, in declared order, into w.
func Encode(d Descriptor, owner interface{}, w *wire.Writer) {
	for _, f := range d {
		f.Encode(owner, w)
	}
}

// Decode reads owner's fields, in declared order, from r. It stops at the
// first field that fails to decode.
func Decode(d Descriptor, owner interface{}, r *wire.Reader) error {
	for _, f := range d {
		if err := f.Decode(owner, r); err != nil {
			return err
		}
	}
	return nil
}
