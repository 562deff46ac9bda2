package insertlogo

import "errors"

var (
	// ErrUnknownProperty is returned by the property accessors for names the
	// filter does not expose.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidPropertyValue is returned when a property value has the wrong
	// type or shape. The stored value is left unchanged.
	ErrInvalidPropertyValue = errors.New("invalid property value")
)
