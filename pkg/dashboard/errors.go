package dashboard

import "errors"

// ErrWidgetNotFound is returned when no widget is registered under the requested id.
var ErrWidgetNotFound = errors.New("widget not found")

// ErrDuplicateWidget is returned when an id is registered twice.
var ErrDuplicateWidget = errors.New("duplicate widget id")
