package schema

import "github.com/strand-protocol/crosslink/pkg/wire"

// ElemCodec describes how to size, encode, and decode a bare value of
// type T -- the building block Sequence and FixedSequence fields use for
// their element type, and records use for nested record fields. Unlike
// Field, an ElemCodec operates on a value directly rather than through an
// owner/get/set indirection, which is what lets sequences and records
// nest arbitrarily (spec §3: "vector<vector<T>>", "array<Record, N>").
type ElemCodec[T any] interface {
	Size(v T) int
	Encode(v T, w *wire.Writer)
	Decode(r *wire.Reader) (T, error)
}

// -- scalar element codecs -------------------------------------------------

type uint8Elem struct{}

func (uint8Elem) Size(uint8) int                      { return 1 }
func (uint8Elem) Encode(v uint8, w *wire.Writer)      { w.WriteUint8(v) }
func (uint8Elem) Decode(r *wire.Reader) (uint8, error) { return r.ReadUint8() }

type uint16Elem struct{}

func (uint16Elem) Size(uint16) int                      { return 2 }
func (uint16Elem) Encode(v uint16, w *wire.Writer)      { w.WriteUint16(v) }
func (uint16Elem) Decode(r *wire.Reader) (uint16, error) { return r.ReadUint16() }

type uint32Elem struct{}

func (uint32Elem) Size(uint32) int                      { return 4 }
func (uint32Elem) Encode(v uint32, w *wire.Writer)      { w.WriteUint32(v) }
func (uint32Elem) Decode(r *wire.Reader) (uint32, error) { return r.ReadUint32() }

type uint64Elem struct{}

func (uint64Elem) Size(uint64) int                      { return 8 }
func (uint64Elem) Encode(v uint64, w *wire.Writer)      { w.WriteUint64(v) }
func (uint64Elem) Decode(r *wire.Reader) (uint64, error) { return r.ReadUint64() }

type int16Elem struct{}

func (int16Elem) Size(int16) int                      { return 2 }
func (int16Elem) Encode(v int16, w *wire.Writer)      { w.WriteInt16(v) }
func (int16Elem) Decode(r *wire.Reader) (int16, error) { return r.ReadInt16() }

type int32Elem struct{}

func (int32Elem) Size(int32) int                      { return 4 }
func (int32Elem) Encode(v int32, w *wire.Writer)      { w.WriteInt32(v) }
func (int32Elem) Decode(r *wire.Reader) (int32, error) { return r.ReadInt32() }

type int64Elem struct{}

func (int64Elem) Size(int64) int                      { return 8 }
func (int64Elem) Encode(v int64, w *wire.Writer)      { w.WriteInt64(v) }
func (int64Elem) Decode(r *wire.Reader) (int64, error) { return r.ReadInt64() }

type float32Elem struct{}

func (float32Elem) Size(float32) int                      { return 4 }
func (float32Elem) Encode(v float32, w *wire.Writer)      { w.WriteFloat32(v) }
func (float32Elem) Decode(r *wire.Reader) (float32, error) { return r.ReadFloat32() }

type float64Elem struct{}

func (float64Elem) Size(float64) int                      { return 8 }
func (float64Elem) Encode(v float64, w *wire.Writer)      { w.WriteFloat64(v) }
func (float64Elem) Decode(r *wire.Reader) (float64, error) { return r.ReadFloat64() }

type stringElem struct{}

func (stringElem) Size(v string) int                 { return 2 + len(v) }
func (stringElem) Encode(v string, w *wire.Writer)   { w.WriteString(v) }
func (stringElem) Decode(r *wire.Reader) (string, error) { return r.ReadString() }

// Built-in element codecs for the scalar and string shapes. Pass these as
// the elem argument of SequenceField/FixedSequenceField, or to
// SequenceElemOf/FixedSequenceElemOf when nesting a sequence inside
// another sequence's element type.
var (
	Uint8   ElemCodec[uint8]   = uint8Elem{}
	Uint16  ElemCodec[uint16]  = uint16Elem{}
	Uint32  ElemCodec[uint32]  = uint32Elem{}
	Uint64  ElemCodec[uint64]  = uint64Elem{}
	Int16   ElemCodec[int16]   = int16Elem{}
	Int32   ElemCodec[int32]   = int32Elem{}
	Int64   ElemCodec[int64]   = int64Elem{}
	Float32 ElemCodec[float32] = float32Elem{}
	Float64 ElemCodec[float64] = float64Elem{}
	String  ElemCodec[string]  = stringElem{}
)

// -- composite element codecs -----------------------------------------------

// sequenceElem is the variable-length sequence encoding (spec §3: u16
// count + N encoded elements) expressed as an ElemCodec, so a sequence
// can itself be used as the element type of an outer sequence or fixed
// sequence.
type sequenceElem[T any] struct {
	inner ElemCodec[T]
}

// SequenceElemOf builds an ElemCodec for a variable-length []T, for use
// as the element type of an enclosing sequence or fixed sequence (e.g. a
// fixed-length array of vectors).
func SequenceElemOf[T any](inner ElemCodec[T]) ElemCodec[[]T] {
	return sequenceElem[T]{inner: inner}
}

func (c sequenceElem[T]) Size(v []T) int {
	total := 2
	for _, e := range v {
		total += c.inner.Size(e)
	}
	return total
}

func (c sequenceElem[T]) Encode(v []T, w *wire.Writer) {
	w.WriteCount(uint16(len(v)))
	for _, e := range v {
		c.inner.Encode(e, w)
	}
}

func (c sequenceElem[T]) Decode(r *wire.Reader) ([]T, error) {
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		v, err := c.inner.Decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// fixedSequenceElem is the fixed-length sequence encoding (spec §3: u16
// count that must equal the compile-time length n) expressed as an
// ElemCodec.
type fixedSequenceElem[T any] struct {
	inner ElemCodec[T]
	n     int
}

// FixedSequenceElemOf builds an ElemCodec for a fixed-length []T of
// length n, for use as the element type of an enclosing sequence or
// fixed sequence.
func FixedSequenceElemOf[T any](inner ElemCodec[T], n int) ElemCodec[[]T] {
	return fixedSequenceElem[T]{inner: inner, n: n}
}

func (c fixedSequenceElem[T]) Size(v []T) int {
	total := 2
	for _, e := range v {
		total += c.inner.Size(e)
	}
	return total
}

func (c fixedSequenceElem[T]) Encode(v []T, w *wire.Writer) {
	w.WriteCount(uint16(len(v)))
	for _, e := range v {
		c.inner.Encode(e, w)
	}
}

func (c fixedSequenceElem[T]) Decode(r *wire.Reader) ([]T, error) {
	count, err := r.ReadCount()
	if err != nil {
		return nil, err
	}
	if int(count) != c.n {
		return nil, ErrFixedCountMismatch
	}
	out := make([]T, count)
	for i := range out {
		v, err := c.inner.Decode(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// recordElem embeds a nested record -- any type with its own field
// function -- as the element of a sequence, or as a plain record-shaped
// field via RecordField.
type recordElem[T any] struct {
	fields func(*T) Descriptor
}

// RecordElemOf builds an ElemCodec for a nested record type T, described
// by fields, the same field-function every top-level registered type
// provides.
func RecordElemOf[T any](fields func(*T) Descriptor) ElemCodec[T] {
	return recordElem[T]{fields: fields}
}

func (c recordElem[T]) Size(v T) int {
	return Size(c.fields(&v), &v)
}

func (c recordElem[T]) Encode(v T, w *wire.Writer) {
	Encode(c.fields(&v), &v, w)
}

func (c recordElem[T]) Decode(r *wire.Reader) (T, error) {
	var v T
	if err := Decode(c.fields(&v), &v, r); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
