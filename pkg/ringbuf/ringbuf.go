// Package ringbuf implements the fixed-capacity circular byte buffer that
// backs crosslink's receive path (spec §3 "Buffer", §4.1).
package ringbuf

// Source is the subset of the serial port capability set (spec §6) that
// ingestion needs: how many bytes are ready, and a non-blocking read of up
// to len(dst) of them.
type Source interface {
	// Available reports the number of bytes immediately readable.
	Available() int
	// Read copies up to len(dst) bytes into dst, returning the number
	// actually copied. Must not block waiting for more than is available.
	Read(dst []byte) (int, error)
}

// Buffer is a fixed-capacity ring of bytes with a read index and a size,
// exactly the (r, n) pair described in spec §3: logical content is
// B[(r+i) mod C] for i in [0, n).
type Buffer struct {
	data     []byte
	r        int // read index, 0 <= r < capacity
	n        int // size, 0 <= n <= capacity
	capacity int
}

// New returns an empty Buffer with the given fixed capacity.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}
	return &Buffer{data: make([]byte, capacity), capacity: capacity}
}

// Cap returns the buffer's fixed capacity C.
func (b *Buffer) Cap() int { return b.capacity }

// Len returns the current logical size n.
func (b *Buffer) Len() int { return b.n }

// ReadIndex returns the current read index r. Exposed for invariant tests
// and diagnostics; not needed by ordinary callers.
func (b *Buffer) ReadIndex() int { return b.r }

// At returns the i-th logical byte, i in [0, Len()).
func (b *Buffer) At(i int) byte {
	return b.data[(b.r+i)%b.capacity]
}

// Contiguous reports whether the logical range [offset, offset+length) can
// be addressed as a single contiguous physical slice without wrapping.
func (b *Buffer) Contiguous(offset, length int) bool {
	return b.r+offset+length <= b.capacity
}

// Slice returns a zero-copy view of the logical range [offset, offset+length)
// when it does not wrap. Callers must check Contiguous first; Slice panics
// if the range would wrap.
func (b *Buffer) Slice(offset, length int) []byte {
	start := b.r + offset
	return b.data[start : start+length]
}

// CopyOut copies the logical range [offset, offset+length) into dst,
// honoring wrap-around. len(dst) must be >= length.
func (b *Buffer) CopyOut(dst []byte, offset, length int) {
	if b.Contiguous(offset, length) {
		copy(dst, b.Slice(offset, length))
		return
	}
	start := (b.r + offset) % b.capacity
	firstRun := b.capacity - start
	copy(dst, b.data[start:])
	copy(dst[firstRun:], b.data[:length-firstRun])
}

// MarkRead advances the read index by count (mod capacity) and shrinks the
// logical size by count, resetting the read index to 0 once the buffer
// empties (spec §4.1, §3 invariant "n = 0 => r = 0").
func (b *Buffer) MarkRead(count int) {
	if count <= 0 {
		return
	}
	b.n -= count
	b.r = (b.r + count) % b.capacity
	if b.n <= 0 {
		b.n = 0
		b.r = 0
	}
}

// Reset clears the buffer to empty.
func (b *Buffer) Reset() {
	b.r = 0
	b.n = 0
}

// Ingest pulls bytes from src into the buffer until src reports no bytes
// available or the ingestion cap is reached (spec §4.1).
//
// In overwrite mode, ingestion may fill up to Cap() bytes; if that would
// be exceeded, the oldest bytes are dropped by advancing the read index.
// One byte is always held in reserve once the buffer is non-empty, so an
// in-flight object-start marker at the tail is never overwritten. In
// non-overwrite mode the cap is Cap()-Len(): new bytes never displace old
// ones.
//
// Ingest returns the number of bytes actually read and the first error
// returned by src.Read, if any (ingestion stops at the first error).
func (b *Buffer) Ingest(src Source, overwrite bool) (int, error) {
	var budget int
	if overwrite {
		if b.n > 0 {
			budget = b.capacity - 1
		} else {
			budget = b.capacity
		}
	} else {
		budget = b.capacity - b.n
	}

	total := 0
	for budget > 0 {
		available := src.Available()
		if available <= 0 {
			break
		}
		index := (b.r + b.n) % b.capacity
		run := b.capacity - index // contiguous run to the end of the array
		if run > available {
			run = available
		}
		if run > budget {
			run = budget
		}
		n, err := src.Read(b.data[index : index+run])
		if n > 0 {
			b.n += n
			total += n
			budget -= n
			if overwrite && b.n > b.capacity {
				b.MarkRead(b.n - b.capacity)
			}
		}
		if err != nil {
			return total, err
		}
		if n == 0 {
			break // port reported availability but returned nothing; avoid spinning
		}
	}
	return total, nil
}
