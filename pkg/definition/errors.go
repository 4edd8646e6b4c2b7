package definition

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a spec names a widget type Build does not know.
	ErrUnknownType = errors.New("unknown widget type")
	// ErrInvalidSpec is returned when a spec is structurally wrong.
	ErrInvalidSpec = errors.New("invalid widget spec")
)

// UnknownTypeError carries the offending type and the closest known one, if any.
type UnknownTypeError struct {
	Type       string
	Suggestion string
}

func (e *UnknownTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown widget type %q (did you mean %q?)", e.Type, e.Suggestion)
	}
	return fmt.Sprintf("unknown widget type %q", e.Type)
}

// Is matches ErrUnknownType.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
