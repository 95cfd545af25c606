package frame

// ReadResult is the outcome of an Engine.ReadObject or Engine.SkipObject
// call (spec §4.8).
type ReadResult uint8

const (
	// Success indicates the object was fully read and validated.
	Success ReadResult = iota
	// NoObjectAvailable means there is no frame head at the buffer's read
	// position. Not an error -- advisory control flow (spec §7).
	NoObjectAvailable
	// NotEnoughData means a frame head was detected but the full header or
	// payload hasn't arrived yet. Not an error; the frame is left in place.
	NotEnoughData
	// CrcError means the frame's trailing CRC didn't match. The frame is
	// consumed before this is returned.
	CrcError
	// ObjectIdMismatch means the frame at the head has a different object
	// ID than the type requested. The frame is retained.
	ObjectIdMismatch
	// ObjectSizeMismatch means the schema decoder consumed a different
	// byte count than the frame's declared payload length. The frame is
	// consumed before this is returned.
	ObjectSizeMismatch
)

var readResultNames = map[ReadResult]string{
	Success:            "Success",
	NoObjectAvailable:  "NoObjectAvailable",
	NotEnoughData:      "NotEnoughData",
	CrcError:           "CrcError",
	ObjectIdMismatch:   "ObjectIdMismatch",
	ObjectSizeMismatch: "ObjectSizeMismatch",
}

// String renders a human-readable label for r, matching the original
// to_string(ReadResult) mapping.
func (r ReadResult) String() string {
	if name, ok := readResultNames[r]; ok {
		return name
	}
	return "UnknownReadResult"
}

// WriteResult is the outcome of an Engine.SendObject call (spec §4.8).
type WriteResult uint8

const (
	// WriteSuccess indicates the frame was fully assembled and handed to
	// the port as a single write that reported success.
	WriteSuccess WriteResult = iota
	// ObjectTooLarge means the assembled frame would not fit in the
	// scratch serialization buffer.
	ObjectTooLarge
	// WriteError means the port's Write call reported failure.
	WriteError
)

var writeResultNames = map[WriteResult]string{
	WriteSuccess:   "Success",
	ObjectTooLarge: "ObjectTooLarge",
	WriteError:     "WriteError",
}

// String renders a human-readable label for r.
func (r WriteResult) String() string {
	if name, ok := writeResultNames[r]; ok {
		return name
	}
	return "UnknownWriteResult"
}
