package enum

import "errors"

// Sentinel errors returned by [Invoke].
var (
	// ErrMethodNotFound is returned when an element has no method with the
	// requested name.
	ErrMethodNotFound = errors.New("enum: method not found")

	// ErrNotCallable is returned when Invoke is asked to call an element as
	// a function (empty method name) and the element is not a func.
	ErrNotCallable = errors.New("enum: element is not callable")
)
