package schema

import "github.com/strand-protocol/crosslink/pkg/wire"

// elemField adapts an ElemCodec[T] plus a get/set accessor pair into a
// Field: the bridge between "how to code a bare T" and "where a T lives
// on an owner struct". Every public Field constructor below is a thin
// call into this one generic type.
type elemField[T any] struct {
	shape Shape
	get   func(owner interface{}) T
	set   func(owner interface{}, v T)
	elem  ElemCodec[T]
}

func (f elemField[T]) Shape() Shape { return f.shape }

func (f elemField[T]) Size(owner interface{}) int {
	return f.elem.Size(f.get(owner))
}

func (f elemField[T]) Encode(owner interface{}, w *wire.Writer) {
	f.elem.Encode(f.get(owner), w)
}

func (f elemField[T]) Decode(owner interface{}, r *wire.Reader) error {
	v, err := f.elem.Decode(r)
	if err != nil {
		return err
	}
	f.set(owner, v)
	return nil
}

// -- scalar fields ------------------------------------------------------

func Uint8Field(get func(owner interface{}) uint8, set func(owner interface{}, v uint8)) Field {
	return elemField[uint8]{shape: ShapeScalar, get: get, set: set, elem: Uint8}
}

func Uint16Field(get func(owner interface{}) uint16, set func(owner interface{}, v uint16)) Field {
	return elemField[uint16]{shape: ShapeScalar, get: get, set: set, elem: Uint16}
}

func Uint32Field(get func(owner interface{}) uint32, set func(owner interface{}, v uint32)) Field {
	return elemField[uint32]{shape: ShapeScalar, get: get, set: set, elem: Uint32}
}

func Uint64Field(get func(owner interface{}) uint64, set func(owner interface{}, v uint64)) Field {
	return elemField[uint64]{shape: ShapeScalar, get: get, set: set, elem: Uint64}
}

func Int16Field(get func(owner interface{}) int16, set func(owner interface{}, v int16)) Field {
	return elemField[int16]{shape: ShapeScalar, get: get, set: set, elem: Int16}
}

func Int32Field(get func(owner interface{}) int32, set func(owner interface{}, v int32)) Field {
	return elemField[int32]{shape: ShapeScalar, get: get, set: set, elem: Int32}
}

func Int64Field(get func(owner interface{}) int64, set func(owner interface{}, v int64)) Field {
	return elemField[int64]{shape: ShapeScalar, get: get, set: set, elem: Int64}
}

func Float32Field(get func(owner interface{}) float32, set func(owner interface{}, v float32)) Field {
	return elemField[float32]{shape: ShapeScalar, get: get, set: set, elem: Float32}
}

func Float64Field(get func(owner interface{}) float64, set func(owner interface{}, v float64)) Field {
	return elemField[float64]{shape: ShapeScalar, get: get, set: set, elem: Float64}
}

// StringField describes a u16-length-prefixed string field (spec §3).
func StringField(get func(owner interface{}) string, set func(owner interface{}, v string)) Field {
	return elemField[string]{shape: ShapeString, get: get, set: set, elem: String}
}

// -- sequence fields ------------------------------------------------------

// SequenceField describes a variable-length sequence field: a u16 count
// followed by that many elem-encoded values (spec §3 "vector<T>"). elem
// can be one of the built-in scalar/string codecs, or a composite one
// built with SequenceElemOf/FixedSequenceElemOf/RecordElemOf for nested
// sequences and records of sequences.
func SequenceField[T any](get func(owner interface{}) []T, set func(owner interface{}, v []T), elem ElemCodec[T]) Field {
	return elemField[[]T]{shape: ShapeSequence, get: get, set: set, elem: SequenceElemOf(elem)}
}

// FixedSequenceField describes a fixed-length sequence field of
// compile-time length n: a u16 count, which must equal n on decode, then
// n elem-encoded values (spec §3 "array<T, N>"). get/set see a []T of
// length n; for a Go array-typed struct field, slicing the array (e.g.
// arr[:]) in get, and copy(arr[:], v) in set, bridges the two.
func FixedSequenceField[T any](n int, get func(owner interface{}) []T, set func(owner interface{}, v []T), elem ElemCodec[T]) Field {
	return elemField[[]T]{shape: ShapeFixedSequence, get: get, set: set, elem: FixedSequenceElemOf(elem, n)}
}

// -- record fields ------------------------------------------------------

// RecordField describes a nested record field: the concatenation of the
// child type's own fields, in the order fields declares them (spec §3
// "Record"). get/set see the nested value directly, not a pointer.
func RecordField[T any](get func(owner interface{}) T, set func(owner interface{}, v T), fields func(*T) Descriptor) Field {
	return elemField[T]{shape: ShapeRecord, get: get, set: set, elem: RecordElemOf(fields)}
}
