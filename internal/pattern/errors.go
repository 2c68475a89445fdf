package pattern

import "errors"

var (
	// ErrEmptyPattern is returned when an operation is asked to work
	// from an empty pattern string.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrNestedVariable is returned by Compile when a %-field opens
	// while another is still open.
	ErrNestedVariable = errors.New("nested %-variables are not supported")

	// ErrUnknownVariable reports a variable token with no valid
	// interpretation (e.g. "%0v"). Reaching it from a compiled token
	// stream is an internal invariant violation.
	ErrUnknownVariable = errors.New("unrecognized pattern variable")
)
