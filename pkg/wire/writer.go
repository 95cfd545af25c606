package wire

import (
	"encoding/binary"
	"math"
)

// Writer is a growable byte buffer used to assemble a crosslink payload.
// All multi-byte integers are written in little-endian byte order. Writer
// is also used as the frame-assembly scratch buffer by the send path.
type Writer struct {
	data []byte
}

// NewWriter returns a Writer pre-allocated with the given capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{data: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated encoded bytes.
func (w *Writer) Bytes() []byte {
	return w.data
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.data)
}

// Reset clears the buffer for reuse, keeping the underlying array.
func (w *Writer) Reset() {
	w.data = w.data[:0]
}

// grow ensures room for n additional bytes and returns the write offset.
func (w *Writer) grow(n int) int {
	off := len(w.data)
	need := off + n
	if need <= cap(w.data) {
		w.data = w.data[:need]
		return off
	}
	newCap := cap(w.data) * 2
	if newCap < need {
		newCap = need
	}
	tmp := make([]byte, need, newCap)
	copy(tmp, w.data)
	w.data = tmp
	return off
}

// WriteUint8 appends a single byte. No byte swap applies at this width.
func (w *Writer) WriteUint8(v uint8) {
	off := w.grow(1)
	w.data[off] = v
}

// WriteUint16 appends a 16-bit unsigned integer in little-endian order.
func (w *Writer) WriteUint16(v uint16) {
	off := w.grow(2)
	binary.LittleEndian.PutUint16(w.data[off:], v)
}

// WriteUint32 appends a 32-bit unsigned integer in little-endian order.
func (w *Writer) WriteUint32(v uint32) {
	off := w.grow(4)
	binary.LittleEndian.PutUint32(w.data[off:], v)
}

// WriteUint64 appends a 64-bit unsigned integer in little-endian order.
func (w *Writer) WriteUint64(v uint64) {
	off := w.grow(8)
	binary.LittleEndian.PutUint64(w.data[off:], v)
}

// WriteInt16 appends a signed 16-bit integer. The wire bytes are identical
// to WriteUint16(uint16(v)) -- sign is a host-side interpretation only.
func (w *Writer) WriteInt16(v int16) { w.WriteUint16(uint16(v)) }

// WriteInt32 appends a signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) { w.WriteUint32(uint32(v)) }

// WriteInt64 appends a signed 64-bit integer.
func (w *Writer) WriteInt64(v int64) { w.WriteUint64(uint64(v)) }

// WriteFloat32 appends a 32-bit IEEE 754 float in little-endian order.
func (w *Writer) WriteFloat32(v float32) { w.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 appends a 64-bit IEEE 754 float in little-endian order.
func (w *Writer) WriteFloat64(v float64) { w.WriteUint64(math.Float64bits(v)) }

// WriteRaw appends p verbatim, with no length prefix. Used for scalar byte
// widths that don't fit the named helpers above (e.g. a [1]byte field).
func (w *Writer) WriteRaw(p []byte) {
	off := w.grow(len(p))
	copy(w.data[off:], p)
}

// WriteString appends a u16-length-prefixed string, per the crosslink wire
// format (spec §3): a 16-bit length N followed by N raw bytes.
func (w *Writer) WriteString(s string) {
	w.WriteUint16(uint16(len(s)))
	off := w.grow(len(s))
	copy(w.data[off:], s)
}

// WriteCount writes a u16 element-count header for a sequence or
// fixed-length sequence. The caller encodes each element immediately after.
func (w *Writer) WriteCount(n uint16) {
	w.WriteUint16(n)
}
