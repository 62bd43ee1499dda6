package special

import "errors"

// ErrLengthMismatch is returned by the block kernels when dst and src differ
// in length. The check runs once, before any element is written, so a failed
// call leaves dst untouched. It is the only error condition in this package;
// numeric edge cases (NaN, ±Inf) are valid outputs, not errors.
var ErrLengthMismatch = errors.New("special: dst and src must have same length")
