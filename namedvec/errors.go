package namedvec

import "errors"

// Sentinel errors returned by the error-reporting accessors.
var (
	// ErrNameNotFound is returned when a name lookup has no matching element.
	ErrNameNotFound = errors.New("namedvec: name not found")

	// ErrIndexOutOfRange is returned when a position is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("namedvec: index out of range")

	// ErrEmptyVec is returned when an operation requires at least one
	// element but the vec is empty.
	ErrEmptyVec = errors.New("namedvec: operation on empty vec")
)
