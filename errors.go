package coordmap

import "errors"

// ErrInvalidArgument reports invalid constructor arguments: a lookup table
// with fewer than two entries, a zero increment, a degenerate window, or a
// malformed or unrecognized options string. Test with errors.Is.
var ErrInvalidArgument = errors.New("coordmap: invalid argument")

// ErrNoInverse reports an inverse transform request on a mapping that has
// no inverse, such as a LutMap built from a non-monotonic table.
// Test with errors.Is.
var ErrNoInverse = errors.New("coordmap: mapping has no inverse transform")
