package widget

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a required attribute is left empty.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSerialization matches any *SerializationError.
var ErrSerialization = errors.New("serialization failed")

// SerializationError reports a deferred value that failed while props were built.
type SerializationError struct {
	Field string // Props key whose value failed to resolve
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Is matches ErrSerialization.
func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}
