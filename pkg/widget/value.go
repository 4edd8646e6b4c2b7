package widget

import (
	"fmt"
	"reflect"
)

// Value is either a literal or a deferred computation resolved at serialization time.
type Value struct {
	literal any
	fn      func() (any, error)
}

// Literal wraps a plain value.
func Literal(v any) Value {
	return Value{literal: v}
}

// Deferred wraps a function evaluated each time props are built.
func Deferred(fn func() (any, error)) Value {
	return Value{fn: fn}
}

// DeferredFunc wraps a function that cannot fail.
func DeferredFunc(fn func() any) Value {
	return Value{fn: func() (any, error) { return fn(), nil }}
}

// IsDeferred reports whether the value is computed lazily.
func (v Value) IsDeferred() bool {
	return v.fn != nil
}

// Resolve returns the literal, or invokes the deferred function exactly once.
func (v Value) Resolve() (any, error) {
	if v.fn == nil {
		return v.literal, nil
	}
	return v.fn()
}

var errorType = reflect.TypeFor[error]()

// valueOf normalizes the accepted shapes of a value argument.
func valueOf(v any) Value {
	if d, ok := deferredOf(v); ok {
		return d
	}
	return Literal(v)
}

// deferredOf recognizes Value and any zero-argument function returning one
// result or a (result, error) pair. Functions of other shapes resolve to an
// ErrInvalidArgument so they never reach the props map.
func deferredOf(v any) (Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func && rv.IsNil() {
		return Literal(nil), true
	}

	switch val := v.(type) {
	case Value:
		return val, true
	case func() (any, error):
		return Deferred(val), true
	case func() any:
		return DeferredFunc(val), true
	}

	if rv.Kind() != reflect.Func {
		return Value{}, false
	}

	t := rv.Type()
	switch {
	case t.NumIn() == 0 && t.NumOut() == 1 && t.Out(0) != errorType:
		return Deferred(func() (any, error) {
			return rv.Call(nil)[0].Interface(), nil
		}), true
	case t.NumIn() == 0 && t.NumOut() == 2 && t.Out(1) == errorType:
		return Deferred(func() (any, error) {
			out := rv.Call(nil)
			if err, _ := out[1].Interface().(error); err != nil {
				return nil, err
			}
			return out[0].Interface(), nil
		}), true
	default:
		return Deferred(func() (any, error) {
			return nil, fmt.Errorf("%w: %s is not a zero-argument value function", ErrInvalidArgument, t)
		}), true
	}
}

// resolveField resolves v and tags any failure with the props key it belongs to.
func resolveField(field string, v Value) (any, error) {
	out, err := v.Resolve()
	if err != nil {
		return nil, &SerializationError{Field: field, Err: err}
	}
	return out, nil
}

// String renders literals for logs; deferred values are not evaluated.
func (v Value) String() string {
	if v.fn != nil {
		return "<deferred>"
	}
	return fmt.Sprint(v.literal)
}
