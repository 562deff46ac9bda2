// Package animation implements the per-frame state machines for the two
// animated overlay modes.
//
// # Scrolling
//
// [Scroll] moves the overlay's x coordinate by 2, 3 or 4 pixels per frame
// (slow, medium, fast). Once the overlay has fully left the frame it wraps to
// the opposite side:
//
//	scroll := animation.NewScroll(config.ScrollLeftToRight, config.SpeedSlow)
//	state.X = scroll.Advance(state.X, frameWidth, logoWidth)
//
// # Rotation
//
// [Rotation] accumulates 0.5, 1.5 or 2.5 degrees per frame, clockwise adding
// and counter-clockwise subtracting, and resets to zero after a full turn:
//
//	rotation := animation.NewRotation(config.RotationClockwise, config.SpeedFast)
//	degrees := rotation.Advance()
//
// Both state machines are created once from validated settings; their
// direction never changes at runtime.
package animation
