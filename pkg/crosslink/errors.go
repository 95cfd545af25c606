package crosslink

import "errors"

// errFrameExceedsScratch is returned internally by linearize when a
// wrap-straddling frame is larger than the scratch buffer can hold. It
// never escapes the package: ReadObject converts it into
// frame.ObjectSizeMismatch after consuming the offending frame.
var errFrameExceedsScratch = errors.New("crosslink: straddling frame exceeds scratch buffer capacity")
