package animation

import (
	"math"

	"github.com/opd-ai/insertlogo/config"
)

// FullTurn is the accumulated angle at which rotation resets to zero.
const FullTurn = 360.0

// RotationStep returns the angle in degrees added or removed per frame.
func RotationStep(speed config.Speed) float64 {
	switch speed {
	case config.SpeedMedium:
		return 1.5
	case config.SpeedFast:
		return 2.5
	default:
		return 0.5
	}
}

// Rotation spins the overlay about its own center.
//
// The angle is not kept in a canonical range: it accumulates and resets to
// zero once it reaches a full turn in the direction of rotation.
type Rotation struct {
	mode    config.RotationMode
	step    float64
	degrees float64
}

// NewRotation creates a rotation state machine starting at zero degrees.
func NewRotation(mode config.RotationMode, speed config.Speed) *Rotation {
	return &Rotation{
		mode: mode,
		step: RotationStep(speed),
	}
}

// Mode returns the rotation direction.
func (r *Rotation) Mode() config.RotationMode {
	return r.mode
}

// Degrees returns the current angle.
func (r *Rotation) Degrees() float64 {
	return r.degrees
}

// SetDegrees overrides the current angle.
func (r *Rotation) SetDegrees(degrees float64) {
	r.degrees = degrees
}

// Radians returns the current angle in radians.
func (r *Rotation) Radians() float64 {
	return r.degrees * (math.Pi / 180.0)
}

// Advance moves the angle one step and returns it.
func (r *Rotation) Advance() float64 {
	switch r.mode {
	case config.RotationClockwise:
		r.degrees += r.step
		if r.degrees >= FullTurn {
			r.degrees = 0
		}
	case config.RotationCounterClockwise:
		r.degrees -= r.step
		if r.degrees <= -FullTurn {
			r.degrees = 0
		}
	}
	return r.degrees
}
