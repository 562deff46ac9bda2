package policy

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the overlay can raise.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrConfig indicates an option value outside its allowed set or range.
	ErrConfig = errors.New("invalid configuration")

	// ErrAsset indicates the overlay file is missing, unreadable, or in the wrong format.
	ErrAsset = errors.New("invalid overlay asset")

	// ErrGeometry indicates a negative or out-of-bounds coordinate, or an
	// overlay too large for the frame.
	ErrGeometry = errors.New("invalid overlay geometry")

	// ErrCaps indicates the frame geometry is unavailable or unparseable.
	ErrCaps = errors.New("frame geometry unavailable")
)

// Violation describes a single rule an option, asset, or frame broke.
//
// Kind is one of the sentinel errors above, so callers can use errors.Is on
// a *Violation directly.
type Violation struct {
	Kind   error
	Option string
	Value  interface{}
	Reason string
}

// NewViolation creates a violation of the given kind.
func NewViolation(kind error, option string, value interface{}, reason string) *Violation {
	return &Violation{
		Kind:   kind,
		Option: option,
		Value:  value,
		Reason: reason,
	}
}

// Error implements the error interface.
func (v *Violation) Error() string {
	if v.Option == "" {
		return fmt.Sprintf("%v: %s", v.Kind, v.Reason)
	}
	return fmt.Sprintf("%v: %s '%v': %s", v.Kind, v.Option, v.Value, v.Reason)
}

// Unwrap returns the sentinel kind.
func (v *Violation) Unwrap() error {
	return v.Kind
}
