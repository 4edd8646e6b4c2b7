package widget

// DefaultPollingInterval is the refresh interval, in seconds, used by Polling
// when no interval is given.
const DefaultPollingInterval = 10

// Base holds the attributes shared by every widget kind.
//
// T is the concrete widget pointer returned by each setter. Constructors must call
// Bind before any setter is used:
//
//	type RecentOrders struct {
//		widget.Base[*RecentOrders]
//	}
//
//	func NewRecentOrders() *RecentOrders {
//		w := &RecentOrders{}
//		w.Bind(w)
//		return w
//	}
type Base[T any] struct {
	self T

	heading         *string
	description     *string
	icon            *string
	color           *string
	extraAttributes *string

	pollingEnabled  bool
	pollingInterval *int
}

// Bind records the concrete widget returned by the fluent setters.
func (b *Base[T]) Bind(self T) {
	b.self = self
}

// Heading sets the widget title.
func (b *Base[T]) Heading(text string) T {
	b.heading = &text
	return b.self
}

// Description sets the text shown under the heading.
func (b *Base[T]) Description(text string) T {
	b.description = &text
	return b.self
}

// Icon sets the icon name. Any string is accepted.
func (b *Base[T]) Icon(name string) T {
	b.icon = &name
	return b.self
}

// Color sets the color token. Any string is accepted.
func (b *Base[T]) Color(token string) T {
	b.color = &token
	return b.self
}

// ExtraAttributes stores raw attributes for custom render components.
// Built-in widgets do not serialize them.
func (b *Base[T]) ExtraAttributes(attrs string) T {
	b.extraAttributes = &attrs
	return b.self
}

// Polling enables client-side refresh. Without an argument the interval is
// DefaultPollingInterval seconds.
func (b *Base[T]) Polling(interval ...int) T {
	seconds := DefaultPollingInterval
	if len(interval) > 0 {
		seconds = interval[0]
	}
	b.pollingEnabled = true
	b.pollingInterval = &seconds
	return b.self
}

// HeadingText returns the heading, or "" when unset.
func (b *Base[T]) HeadingText() string {
	if b.heading == nil {
		return ""
	}
	return *b.heading
}

// Attributes returns the value given to ExtraAttributes, or "" when unset.
func (b *Base[T]) Attributes() string {
	if b.extraAttributes == nil {
		return ""
	}
	return *b.extraAttributes
}

// PollingProps returns the polling sub-map carried by every widget.
// The interval is nil until Polling is called.
func (b *Base[T]) PollingProps() Props {
	return Props{
		"enabled":  b.pollingEnabled,
		"interval": optInt(b.pollingInterval),
	}
}

// BaseProps returns the keys every widget serializes: component, heading,
// description and polling. Custom widgets extend the returned map.
func (b *Base[T]) BaseProps(component string) Props {
	return Props{
		"component":   component,
		"heading":     optString(b.heading),
		"description": optString(b.description),
		"polling":     b.PollingProps(),
	}
}
