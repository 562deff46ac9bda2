// Package placement resolves where the overlay's top-left corner lands on the
// frame, reconciling the requested coordinate with the frame and overlay
// geometry under the strict or lenient policy.
package placement

import (
	"fmt"

	"github.com/opd-ai/insertlogo/config"
	"github.com/opd-ai/insertlogo/limits"
	"github.com/opd-ai/insertlogo/policy"
)

// Kind tags how a placement was obtained.
type Kind int

const (
	// Unresolved means no frame has been placed yet.
	Unresolved Kind = iota
	// Explicit means the requested coordinate was accepted as given.
	Explicit
	// Default means the top-right default was computed and latched.
	Default
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case Explicit:
		return "explicit"
	case Default:
		return "default"
	default:
		return "unresolved"
	}
}

// Geometry is a width and height in pixels.
type Geometry struct {
	Width  int
	Height int
}

// State is the overlay position carried from frame to frame.
//
// Once resolved, X and Y are owned by the active animation: scrolling moves X,
// and rotation shifts Y once through CenterPivot. Animated modes may leave X
// or Y outside the frame; the compositor wraps them.
type State struct {
	Kind Kind
	X    int
	Y    int

	// Centered records that the rotation pivot correction has been applied.
	Centered bool
}

// Resolved reports whether the state has been placed.
func (s State) Resolved() bool {
	return s.Kind != Unresolved
}

// DefaultPosition returns the top-right placement for an overlay, inset by a
// margin proportional to the overlay height. Y is at least 1.
func DefaultPosition(frame, overlay Geometry) (x, y int) {
	margin := limits.Margin(overlay.Height)
	x = frame.Width - overlay.Width - margin
	y = margin
	if y < 1 {
		y = 1
	}
	return x, y
}

// Resolve computes the placement for the current frame.
//
// A resolved prior state is returned unchanged, so defaults are computed once
// and do not drift as animations move the overlay. Otherwise, in order:
//
//  1. A requested coordinate with any negative component is rejected. Both
//     components are discarded even if only one is negative.
//  2. A requested coordinate beyond the frame (x > width or y > height) is
//     rejected.
//  3. An accepted coordinate becomes an Explicit placement.
//  4. Anything else becomes the latched Default placement.
//
// Under the strict policy a rejection is returned as a geometry error. Under
// the lenient policy it is returned in the violations list and the default
// placement is used; the caller is expected to log it.
func Resolve(requested *config.Coordinate, frame, overlay Geometry, prior State, p policy.Policy) (State, []*policy.Violation, error) {
	if prior.Resolved() {
		return prior, nil, nil
	}

	var violations []*policy.Violation

	if requested != nil {
		var v *policy.Violation
		switch {
		case requested.Negative():
			v = policy.NewViolation(policy.ErrGeometry, "coordinate",
				formatCoordinate(*requested),
				"negative coordinate; valid values are positive integer numbers")
		case requested.X > frame.Width || requested.Y > frame.Height:
			v = policy.NewViolation(policy.ErrGeometry, "coordinate",
				formatCoordinate(*requested),
				fmt.Sprintf("coordinate out of bounds; valid values are within %dx%d", frame.Width, frame.Height))
		}

		if v == nil {
			return State{Kind: Explicit, X: requested.X, Y: requested.Y}, nil, nil
		}
		if p.IsStrict() {
			return prior, nil, v
		}
		violations = append(violations, v)
	}

	x, y := DefaultPosition(frame, overlay)
	return State{Kind: Default, X: x, Y: y}, violations, nil
}

// CenterPivot shifts Y up by half the rotation canvas so the spinning overlay
// stays centered on the resolved placement. It applies once per state; if Y
// goes negative it wraps to frameHeight + Y + sourceHeight/2.
func CenterPivot(s State, frameHeight, canvasSide, sourceHeight int) State {
	if s.Centered || !s.Resolved() {
		return s
	}

	s.Y -= canvasSide / 2
	if s.Y < 0 {
		s.Y = frameHeight + s.Y + sourceHeight/2
	}
	s.Centered = true

	return s
}

func formatCoordinate(c config.Coordinate) string {
	return fmt.Sprintf("<%d, %d>", c.X, c.Y)
}
