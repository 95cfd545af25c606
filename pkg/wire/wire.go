// Package wire provides little-endian primitive encoding and decoding for
// crosslink's wire format. All multi-byte integers on the wire are
// little-endian regardless of host byte order; this package is the single
// place that conversion happens.
package wire

import "errors"

// ErrShortBuffer is returned when a Reader has fewer bytes than a requested
// field needs.
var ErrShortBuffer = errors.New("wire: insufficient data in buffer")
