package wire

import (
	"math"
	"testing"
)

func TestUint8RoundTrip(t *testing.T) {
	w := NewWriter(16)
	w.WriteUint8(0)
	w.WriteUint8(127)
	w.WriteUint8(255)

	r := NewReader(w.Bytes())
	for _, want := range []uint8{0, 127, 255} {
		got, err := r.ReadUint8()
		if err != nil {
			t.Fatalf("ReadUint8: %v", err)
		}
		if got != want {
			t.Errorf("ReadUint8 = %d, want %d", got, want)
		}
	}
}

func TestUint16RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []uint16{0, 1, 256, 0xFFFF}
	for _, v := range values {
		w.WriteUint16(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadUint16()
		if err != nil {
			t.Fatalf("ReadUint16: %v", err)
		}
		if got != want {
			t.Errorf("ReadUint16 = %d, want %d", got, want)
		}
	}
}

func TestUint32RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []uint32{0, 1, 1000000, 0xFFFFFFFF}
	for _, v := range values {
		w.WriteUint32(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadUint32()
		if err != nil {
			t.Fatalf("ReadUint32: %v", err)
		}
		if got != want {
			t.Errorf("ReadUint32 = %d, want %d", got, want)
		}
	}
}

func TestUint64RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []uint64{0, 1, 1 << 40, 0xFFFFFFFFFFFFFFFF}
	for _, v := range values {
		w.WriteUint64(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadUint64()
		if err != nil {
			t.Fatalf("ReadUint64: %v", err)
		}
		if got != want {
			t.Errorf("ReadUint64 = %d, want %d", got, want)
		}
	}
}

func TestInt16RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []int16{0, -1, 1, math.MinInt16, math.MaxInt16}
	for _, v := range values {
		w.WriteInt16(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadInt16()
		if err != nil {
			t.Fatalf("ReadInt16: %v", err)
		}
		if got != want {
			t.Errorf("ReadInt16 = %d, want %d", got, want)
		}
	}
}

func TestInt32RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []int32{0, -1, math.MinInt32, math.MaxInt32}
	for _, v := range values {
		w.WriteInt32(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadInt32()
		if err != nil {
			t.Fatalf("ReadInt32: %v", err)
		}
		if got != want {
			t.Errorf("ReadInt32 = %d, want %d", got, want)
		}
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []float32{0, 1.5, -3.14, math.MaxFloat32, math.SmallestNonzeroFloat32}
	for _, v := range values {
		w.WriteFloat32(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadFloat32()
		if err != nil {
			t.Fatalf("ReadFloat32: %v", err)
		}
		if got != want {
			t.Errorf("ReadFloat32 = %v, want %v", got, want)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	w := NewWriter(16)
	values := []float64{0, 1.5, -3.14159265358979, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for _, v := range values {
		w.WriteFloat64(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadFloat64()
		if err != nil {
			t.Fatalf("ReadFloat64: %v", err)
		}
		if got != want {
			t.Errorf("ReadFloat64 = %v, want %v", got, want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter(64)
	values := []string{"", "hello", "Hello, World!", "unicode: äöüß☃"}
	for _, v := range values {
		w.WriteString(v)
	}

	r := NewReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadString()
		if err != nil {
			t.Fatalf("ReadString: %v", err)
		}
		if got != want {
			t.Errorf("ReadString = %q, want %q", got, want)
		}
	}
}

func TestStringUsesU16Length(t *testing.T) {
	w := NewWriter(8)
	w.WriteString("hi")
	got := w.Bytes()
	// 2-byte little-endian length (2), then the 2 payload bytes -- not the
	// 4-byte length strandbuf-style codecs use elsewhere in the corpus.
	want := []byte{0x02, 0x00, 'h', 'i'}
	if len(got) != len(want) {
		t.Fatalf("len(Bytes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte[%d] = 0x%02x, want 0x%02x", i, got[i], want[i])
		}
	}
}

func TestCountRoundTrip(t *testing.T) {
	w := NewWriter(8)
	w.WriteCount(3)
	w.WriteUint32(10)
	w.WriteUint32(20)
	w.WriteUint32(30)

	r := NewReader(w.Bytes())
	count, err := r.ReadCount()
	if err != nil {
		t.Fatalf("ReadCount: %v", err)
	}
	if count != 3 {
		t.Fatalf("ReadCount = %d, want 3", count)
	}
	for i, want := range []uint32{10, 20, 30} {
		got, err := r.ReadUint32()
		if err != nil {
			t.Fatalf("ReadUint32[%d]: %v", i, err)
		}
		if got != want {
			t.Errorf("element[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestReaderShortBuffer(t *testing.T) {
	r := NewReader([]byte{0x01}) // only 1 byte
	_, err := r.ReadUint32()
	if err != ErrShortBuffer {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
}

func TestReadStringTruncatedPayload(t *testing.T) {
	w := NewWriter(8)
	w.WriteUint16(100) // declares 100 bytes but none follow
	r := NewReader(w.Bytes())
	if _, err := r.ReadString(); err != ErrShortBuffer {
		t.Errorf("ReadString with truncated payload: got %v, want ErrShortBuffer", err)
	}
}

func TestWriterGrowth(t *testing.T) {
	w := NewWriter(1) // tiny initial capacity
	for i := 0; i < 1000; i++ {
		w.WriteUint32(uint32(i))
	}
	if w.Len() != 4000 {
		t.Errorf("w.Len() = %d, want 4000", w.Len())
	}

	r := NewReader(w.Bytes())
	for i := 0; i < 1000; i++ {
		got, err := r.ReadUint32()
		if err != nil {
			t.Fatalf("ReadUint32[%d]: %v", i, err)
		}
		if got != uint32(i) {
			t.Errorf("ReadUint32[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestWriterReset(t *testing.T) {
	w := NewWriter(16)
	w.WriteUint32(42)
	if w.Len() != 4 {
		t.Fatalf("before reset: Len = %d", w.Len())
	}
	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("after reset: Len = %d", w.Len())
	}
	w.WriteUint32(99)
	r := NewReader(w.Bytes())
	got, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 after reset: %v", err)
	}
	if got != 99 {
		t.Errorf("got %d, want 99", got)
	}
}

func TestReaderExhaustion(t *testing.T) {
	w := NewWriter(4)
	w.WriteUint32(999)

	r := NewReader(w.Bytes())
	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("first ReadUint32: %v", err)
	}
	if v != 999 {
		t.Errorf("first ReadUint32 = %d, want 999", v)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
	if _, err = r.ReadUint8(); err != ErrShortBuffer {
		t.Errorf("after exhaustion: got %v, want ErrShortBuffer", err)
	}
}

func TestReadRawZeroCopy(t *testing.T) {
	original := []byte{0xAA, 0xBB, 0xCC}
	r := NewReader(original)
	b, err := r.ReadRaw(3)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	b[0] = 0xFF
	if original[0] != 0xFF {
		t.Errorf("ReadRaw did not return a zero-copy sub-slice")
	}
}
