package wire

import (
	"encoding/binary"
	"math"
)

// Reader provides sequential, zero-copy decoding of crosslink payload bytes.
type Reader struct {
	data   []byte
	offset int
}

// NewReader wraps an existing byte slice for decoding. The slice is not
// copied; the caller must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Offset returns the current read position, i.e. the number of bytes
// consumed so far.
func (r *Reader) Offset() int {
	return r.offset
}

// need checks that at least n bytes remain and advances past them,
// returning the offset the caller should read from.
func (r *Reader) need(n int) (int, error) {
	if r.offset+n > len(r.data) {
		return 0, ErrShortBuffer
	}
	off := r.offset
	r.offset += n
	return off, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	off, err := r.need(1)
	if err != nil {
		return 0, err
	}
	return r.data[off], nil
}

// ReadUint16 reads a 16-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint16() (uint16, error) {
	off, err := r.need(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.data[off:]), nil
}

// ReadUint32 reads a 32-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint32() (uint32, error) {
	off, err := r.need(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.data[off:]), nil
}

// ReadUint64 reads a 64-bit unsigned integer in little-endian order.
func (r *Reader) ReadUint64() (uint64, error) {
	off, err := r.need(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.data[off:]), nil
}

// ReadInt16 reads a signed 16-bit integer.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadInt32 reads a signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadInt64 reads a signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a 32-bit IEEE 754 float in little-endian order.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a 64-bit IEEE 754 float in little-endian order.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadRaw reads exactly n raw bytes with no length prefix.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	off, err := r.need(n)
	if err != nil {
		return nil, err
	}
	return r.data[off : off+n], nil
}

// ReadString reads a u16-length-prefixed string. The returned string holds
// its own copy of the bytes (safe to use after the Reader's backing array
// is reused).
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadUint16()
	if err != nil {
		return "", err
	}
	off, err := r.need(int(length))
	if err != nil {
		return "", err
	}
	return string(r.data[off : off+int(length)]), nil
}

// ReadCount reads a u16 element-count header for a sequence or
// fixed-length sequence.
func (r *Reader) ReadCount() (uint16, error) {
	return r.ReadUint16()
}
