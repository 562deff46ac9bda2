package transport

import (
	"github.com/opd-ai/insertlogo/av/video"
)

// FrameProcessor is the overlay as seen by a frame host.
// *insertlogo.Filter satisfies it.
type FrameProcessor interface {
	// SetGeometry records the negotiated frame size. A non-positive size
	// is a caps failure.
	SetGeometry(width, height int) error

	// ProcessFrame writes into the frame in place for the duration of the call.
	ProcessFrame(frame *video.Frame) error

	// Err returns the latched fatal error, if any.
	Err() error
}
