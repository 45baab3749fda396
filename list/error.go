package list

import "errors"

var (
	// ErrInvalidArgument indicates an argument outside the operation's domain,
	// such as a negative position or a range end that is not reachable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNilElement indicates that a required element was nil.
	ErrNilElement = errors.New("nil element")
)
