package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidProps matches every AggregateError returned by Validate.
var ErrInvalidProps = errors.New("invalid props")

// ValidationError is one prop that does not satisfy its contract.
type ValidationError struct {
	Key    string // dotted prop path, e.g. "polling.interval"
	Reason string
	Value  any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError collects every ValidationError of one props map.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation errors:", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err)
	}
	return b.String()
}

// Is reports whether target is ErrInvalidProps.
func (e *AggregateError) Is(target error) bool {
	return target == ErrInvalidProps
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns the failures carried by err, or nil when err does not
// wrap an AggregateError.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
