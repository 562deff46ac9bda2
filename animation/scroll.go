package animation

import (
	"github.com/opd-ai/insertlogo/config"
)

// ScrollStep returns the horizontal distance in pixels moved per frame.
func ScrollStep(speed config.Speed) int {
	switch speed {
	case config.SpeedMedium:
		return 3
	case config.SpeedFast:
		return 4
	default:
		return 2
	}
}

// Scroll moves the overlay horizontally across the frame.
//
// The direction is fixed for the lifetime of the instance; only the position
// changes. The y coordinate is never touched.
type Scroll struct {
	mode config.ScrollMode
	step int
}

// NewScroll creates a scroll state machine.
func NewScroll(mode config.ScrollMode, speed config.Speed) *Scroll {
	return &Scroll{
		mode: mode,
		step: ScrollStep(speed),
	}
}

// Mode returns the scroll direction.
func (s *Scroll) Mode() config.ScrollMode {
	return s.mode
}

// Step returns the per-frame step in pixels.
func (s *Scroll) Step() int {
	return s.step
}

// Advance returns the x coordinate for the next frame.
//
// Left-to-right wraps to -overlayWidth once x reaches frameWidth+overlayWidth;
// right-to-left wraps to frameWidth+overlayWidth once x reaches -overlayWidth.
// The compositor wraps intermediate values around the frame, so the overlay
// passes through the edge instead of bouncing.
func (s *Scroll) Advance(x, frameWidth, overlayWidth int) int {
	switch s.mode {
	case config.ScrollLeftToRight:
		x += s.step
		if x >= frameWidth+overlayWidth {
			x = -overlayWidth
		}
	case config.ScrollRightToLeft:
		x -= s.step
		if x <= -overlayWidth {
			x = frameWidth + overlayWidth
		}
	}
	return x
}
