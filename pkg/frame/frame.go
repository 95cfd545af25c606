// Package frame defines the crosslink object-frame wire layout constants
// and the read/write result taxonomy (spec §3, §4.8).
package frame

// Wire layout constants for an object frame (spec §3). All offsets are
// relative to the start of the frame.
const (
	// MarkerByte0 and MarkerByte1 are the two literal bytes that begin
	// every object frame.
	MarkerByte0 byte = 0x02
	MarkerByte1 byte = 0x42

	// HeaderSize is the number of bytes before the payload: marker (2) +
	// object ID (2) + payload length (2).
	HeaderSize = 6

	// Overhead is the total non-payload byte count of a frame: HeaderSize
	// plus the trailing 2-byte CRC.
	Overhead = HeaderSize + 2

	// IDOffset is the byte offset of the 2-byte signed object ID.
	IDOffset = 2
	// LengthOffset is the byte offset of the 2-byte unsigned payload length.
	LengthOffset = 4

	// NoObjectID is the sentinel returned by PeekID when no frame is at
	// the head of the buffer.
	NoObjectID int16 = -1

	// MinDetectableBytes is the minimum buffered byte count for HasObject
	// to consider reporting true -- just the 2-byte marker (spec §9's Open
	// Question: tightened from 4 to 2; ReadObject still requires 6 before
	// it will attempt to read the ID and length fields).
	MinDetectableBytes = 2

	// MinHeaderBytes is the minimum buffered byte count before the ID and
	// length fields can be read.
	MinHeaderBytes = HeaderSize
)
