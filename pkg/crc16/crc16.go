// Package crc16 computes the CRC-16 variant used to validate crosslink
// object frames: initial state 0xFFFF, nibble-folded polynomial reduction
// per byte (spec §4.2).
package crc16

// Checksum computes the CRC-16 over data, starting from the fixed initial
// state 0xFFFF.
func Checksum(data []byte) uint16 {
	var h Hash
	h.Write(data)
	return h.Sum16()
}

// Hash is an incremental CRC-16 accumulator. Its zero value is ready to use
// and starts from the same 0xFFFF initial state as Checksum.
type Hash struct {
	crc    uint16
	inited bool
}

// Write folds p into the running CRC. It never returns an error.
func (h *Hash) Write(p []byte) (int, error) {
	if !h.inited {
		h.crc = 0xFFFF
		h.inited = true
	}
	crc := h.crc
	for _, b := range p {
		x := (byte(crc>>8) ^ b)
		x ^= x >> 4
		crc = (crc << 8) ^ (uint16(x) << 12) ^ (uint16(x) << 5) ^ uint16(x)
	}
	h.crc = crc
	return len(p), nil
}

// Sum16 returns the current 16-bit CRC state.
func (h *Hash) Sum16() uint16 {
	if !h.inited {
		return 0xFFFF
	}
	return h.crc
}

// Reset returns the Hash to its initial 0xFFFF state.
func (h *Hash) Reset() {
	h.crc = 0xFFFF
	h.inited = true
}
