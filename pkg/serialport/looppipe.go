package serialport

import "sync"

// byteQueue is a mutex-protected growable byte FIFO.
type byteQueue struct {
	mu   sync.Mutex
	data []byte
}

func (q *byteQueue) push(p []byte) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.data = append(q.data, p...)
}

func (q *byteQueue) available() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.data)
}

func (q *byteQueue) pull(dst []byte) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := copy(dst, q.data)
	q.data = q.data[n:]
	return n
}

// LoopPipe is an in-memory, non-blocking Port. Two LoopPipes created by
// NewLoopPipePair share each other's write queues, forming a full-duplex
// in-process link -- the Go analogue of the original library's test
// double that wired two byte vectors to two communicators.
//
// A single LoopPipe can also be used alone (e.g. with Tamper) to simulate
// a one-directional wire for fault-injection tests.
type LoopPipe struct {
	in  *byteQueue // bytes available to Read
	out *byteQueue // bytes handed to Write
}

// NewLoopPipePair returns two LoopPipes wired to each other: bytes written
// to a are read by b, and bytes written to b are read by a.
func NewLoopPipePair() (a, b *LoopPipe) {
	aToB := &byteQueue{}
	bToA := &byteQueue{}
	a = &LoopPipe{in: bToA, out: aToB}
	b = &LoopPipe{in: aToB, out: bToA}
	return a, b
}

// NewLoopPipe returns a standalone LoopPipe whose Write target can be
// inspected and mutated with Tamper -- useful for corrupting a frame
// in transit without a live peer.
func NewLoopPipe() *LoopPipe {
	return &LoopPipe{in: &byteQueue{}, out: &byteQueue{}}
}

// Available reports the number of bytes immediately readable.
func (p *LoopPipe) Available() int { return p.in.available() }

// Read copies up to len(dst) bytes into dst.
func (p *LoopPipe) Read(dst []byte) (int, error) { return p.in.pull(dst), nil }

// Write appends src to the peer's readable queue. Always reports success;
// LoopPipe has no failure mode of its own.
func (p *LoopPipe) Write(src []byte) (bool, error) {
	p.out.push(src)
	return true, nil
}

// InjectIncoming appends p directly to this pipe's own readable queue, as
// if the peer had written it -- used to simulate out-of-band noise on the
// wire (e.g. trailing garbage bytes after a frame).
func (p *LoopPipe) InjectIncoming(b []byte) {
	p.in.push(b)
}

// Tamper locks the queue of bytes this pipe has written but the peer has
// not yet read, and calls fn with a mutable view of it -- used by tests to
// flip a payload byte or otherwise corrupt an in-flight frame before the
// peer ingests it.
func (p *LoopPipe) Tamper(fn func(pending []byte)) {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	fn(p.out.data)
}
