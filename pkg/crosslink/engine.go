// Package crosslink implements the receive-side framing engine and send
// path described in spec.md §§4-7: a ring-buffered frame scanner sitting
// in front of a serialport.Port, exposing both raw "generic" bytes and
// CRC-framed, schema-encoded object records.
package crosslink

import (
	"encoding/binary"

	"github.com/strand-protocol/crosslink/pkg/crc16"
	"github.com/strand-protocol/crosslink/pkg/frame"
	"github.com/strand-protocol/crosslink/pkg/ringbuf"
	"github.com/strand-protocol/crosslink/pkg/schema"
	"github.com/strand-protocol/crosslink/pkg/serialport"
	"github.com/strand-protocol/crosslink/pkg/wire"
)

// Engine is a single receive/send endpoint over one Port. It owns its
// ring buffer, scratch buffer, and port exclusively (spec §5: ports are
// not shared) and is not safe for concurrent use by multiple goroutines
// against the same instance.
type Engine struct {
	port    serialport.Port
	buf     *ringbuf.Buffer
	scratch []byte

	overwrite bool
}

// NewEngine constructs an Engine around port, applying opts over the
// defaults (ring capacity 512, scratch capacity 256, overwrite ingestion
// enabled).
func NewEngine(port serialport.Port, opts ...Option) *Engine {
	cfg := config{
		bufferCapacity:  defaultBufferCapacity,
		scratchCapacity: defaultScratchCapacity,
		overwrite:       defaultOverwrite,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		port:      port,
		buf:       ringbuf.New(cfg.bufferCapacity),
		scratch:   make([]byte, cfg.scratchCapacity),
		overwrite: cfg.overwrite,
	}
}

// Ingest pulls as many bytes as the port currently reports available into
// the ring buffer, governed by the engine's configured overwrite policy
// (spec §4.1). A driver loop typically calls Ingest before draining
// generic bytes or attempting an object read.
func (e *Engine) Ingest() (int, error) {
	return e.buf.Ingest(e.port, e.overwrite)
}

// findMarker returns the logical index of the first confirmed two-byte
// marker (0x02, 0x42) within the buffered content, per spec §4.3: only a
// pair fully inside [0, n) counts, so a trailing lone 0x02 is never
// mistaken for a marker.
func (e *Engine) findMarker() (int, bool) {
	n := e.buf.Len()
	for i := 0; i+1 < n; i++ {
		if e.buf.At(i) == frame.MarkerByte0 && e.buf.At(i+1) == frame.MarkerByte1 {
			return i, true
		}
	}
	return 0, false
}

// Available returns the number of generic (non-object) bytes presently
// readable at the head of the buffer (spec §4.3, §4.4).
func (e *Engine) Available() int {
	n := e.buf.Len()
	if n == 0 {
		return 0
	}
	if p, ok := e.findMarker(); ok {
		return p
	}
	if e.buf.At(n-1) == frame.MarkerByte0 {
		return n - 1
	}
	return n
}

// HasObject reports whether a frame marker sits at the head of the
// buffer. Detection only requires the two marker bytes to have arrived
// (spec §9's tightened threshold); callers that need the header's ID and
// length fields should go through ReadObject/SkipObject, which wait for
// the full 6-byte header before inspecting them.
func (e *Engine) HasObject() bool {
	return e.buf.Len() >= frame.MinDetectableBytes &&
		e.buf.At(0) == frame.MarkerByte0 &&
		e.buf.At(1) == frame.MarkerByte1
}

// PeekID returns the object ID of the frame at the head of the buffer, or
// frame.NoObjectID when no frame marker is at the head. It is only
// meaningful once Len() >= frame.MinHeaderBytes; ReadObject and
// SkipObject only call it after establishing that.
func (e *Engine) PeekID() int16 {
	if !e.HasObject() {
		return frame.NoObjectID
	}
	lo, hi := e.buf.At(2), e.buf.At(3)
	return int16(uint16(lo) | uint16(hi)<<8)
}

// PeekLength returns the payload length of the frame at the head of the
// buffer, under the same precondition as PeekID.
func (e *Engine) PeekLength() uint16 {
	lo, hi := e.buf.At(4), e.buf.At(5)
	return uint16(lo) | uint16(hi)<<8
}

// Read copies up to len(dst) generic bytes into dst and consumes them,
// returning the number of bytes copied (spec §4.4).
func (e *Engine) Read(dst []byte) int {
	n := e.Available()
	if n > len(dst) {
		n = len(dst)
	}
	if n == 0 {
		return 0
	}
	e.buf.CopyOut(dst[:n], 0, n)
	e.buf.MarkRead(n)
	return n
}

// Skip discards up to length generic bytes, refreshing the buffer with
// one non-overwrite ingestion pass first so a caller using Skip to break
// out of a stuck state always sees the latest arrivals (spec §4.4).
func (e *Engine) Skip(length int) int {
	e.buf.Ingest(e.port, false)
	n := e.Available()
	if n > length {
		n = length
	}
	if n <= 0 {
		return 0
	}
	e.buf.MarkRead(n)
	return n
}

// ObjectSpec is the schema metadata a user type supplies to bind
// ReadObject/SendObject to it (spec §6): the compile-time object ID and a
// function producing the type's field descriptor for a given instance.
type ObjectSpec[T any] struct {
	ID     int16
	Fields func(*T) schema.Descriptor
}

// ReadObject attempts to decode one frame of type T at the head of the
// buffer into out, following spec §4.5 exactly:
//
//  1. No marker at head -> NoObjectAvailable.
//  2. A non-overwrite ingestion pass tops up the buffer without
//     displacing the frame being read.
//  3. Fewer than 6 buffered bytes -> NotEnoughData, frame untouched.
//  4. ID mismatch -> ObjectIdMismatch, frame untouched.
//  5. Full frame not yet buffered -> NotEnoughData, frame untouched.
//  6. The frame is linearized (directly, or via the scratch buffer if it
//     straddles the ring's wrap boundary).
//  7. mark_read(8+L) unconditionally, so a corrupt frame never wedges
//     the engine on its own.
//  8. CRC mismatch -> CrcError.
//  9. Schema decode error or leftover payload bytes -> ObjectSizeMismatch.
func ReadObject[T any](e *Engine, spec ObjectSpec[T], out *T) (frame.ReadResult, error) {
	if !e.HasObject() {
		return frame.NoObjectAvailable, nil
	}

	e.buf.Ingest(e.port, false)

	n := e.buf.Len()
	if n < frame.MinHeaderBytes {
		return frame.NotEnoughData, nil
	}

	if e.PeekID() != spec.ID {
		return frame.ObjectIdMismatch, nil
	}

	length := e.PeekLength()
	total := frame.Overhead + int(length)
	if total > n {
		return frame.NotEnoughData, nil
	}

	payload, err := e.linearize(total)
	if err != nil {
		e.buf.MarkRead(total)
		return frame.ObjectSizeMismatch, nil
	}

	storedCRC := binary.LittleEndian.Uint16(payload[frame.HeaderSize+int(length):])
	computedCRC := crc16.Checksum(payload[:frame.HeaderSize+int(length)])

	e.buf.MarkRead(total)

	if storedCRC != computedCRC {
		return frame.CrcError, nil
	}

	r := wire.NewReader(payload[frame.HeaderSize : frame.HeaderSize+int(length)])
	if err := schema.Decode(spec.Fields(out), out, r); err != nil {
		return frame.ObjectSizeMismatch, nil
	}
	if r.Remaining() != 0 {
		return frame.ObjectSizeMismatch, nil
	}
	return frame.Success, nil
}

// SkipObject discards the frame at the head of the buffer without
// validating its CRC or binding it to a type (spec §4.5).
func (e *Engine) SkipObject() frame.ReadResult {
	if !e.HasObject() {
		return frame.NoObjectAvailable
	}

	e.buf.Ingest(e.port, false)

	n := e.buf.Len()
	if n < frame.MinHeaderBytes {
		return frame.NotEnoughData
	}

	total := frame.Overhead + int(e.PeekLength())
	if total > n {
		return frame.NotEnoughData
	}

	e.buf.MarkRead(total)
	return frame.Success
}

// linearize returns a contiguous view of the first total logical bytes of
// the buffer: a zero-copy slice if they don't straddle the wrap, or a
// copy into the scratch buffer if they do (spec §4.5 step 6, §9's note on
// never returning a borrowed range that straddles the wrap).
func (e *Engine) linearize(total int) ([]byte, error) {
	if e.buf.Contiguous(0, total) {
		return e.buf.Slice(0, total), nil
	}
	if total > len(e.scratch) {
		return nil, errFrameExceedsScratch
	}
	e.buf.CopyOut(e.scratch[:total], 0, total)
	return e.scratch[:total], nil
}

// SendObject encodes value as a frame and hands it to the port in a
// single write (spec §4.6).
func SendObject[T any](e *Engine, spec ObjectSpec[T], value T) (frame.WriteResult, error) {
	d := spec.Fields(&value)
	length := schema.Size(d, &value)
	total := frame.Overhead + length
	if total > len(e.scratch) {
		return frame.ObjectTooLarge, nil
	}

	w := wire.NewWriter(total)
	w.WriteUint8(frame.MarkerByte0)
	w.WriteUint8(frame.MarkerByte1)
	w.WriteInt16(spec.ID)
	w.WriteUint16(uint16(length))
	schema.Encode(d, &value, w)
	w.WriteUint16(crc16.Checksum(w.Bytes()))

	ok, err := e.port.Write(w.Bytes())
	if err != nil {
		return frame.WriteError, err
	}
	if !ok {
		return frame.WriteError, nil
	}
	return frame.WriteSuccess, nil
}
