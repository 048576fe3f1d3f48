package cards

import "errors"

var (
	// ErrInvalidArgument reports malformed or out-of-range caller input,
	// such as a rank outside [1, 14] or an empty randomness range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports an operation that does not apply to the current
	// state, such as sampling from an empty sequence.
	ErrOutOfRange = errors.New("out of range")
)
