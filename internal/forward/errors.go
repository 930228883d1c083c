package forward

import "errors"

var (
	// ErrInvalidArgument is returned by Add when either number is malformed or
	// both are equal. The registry is not modified.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfMemory is returned when a configured limit would be exceeded.
	// Add leaves the registry exactly as it was; queries return no partial set.
	ErrOutOfMemory = errors.New("out of memory")
)
