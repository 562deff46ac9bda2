package config

import (
	"github.com/opd-ai/insertlogo/limits"
	"github.com/opd-ai/insertlogo/policy"
)

// Default property values.
const (
	DefaultRotation  = "no-rotate"
	DefaultSpeed     = "slow"
	DefaultScrolling = "off"
	DefaultAlpha     = limits.AlphaUnset
)

// Field is a user-settable value together with whether the caller set it
// explicitly. Only explicit fields are validated.
type Field[T any] struct {
	Value T
	Set   bool
}

// Explicit returns a field marked as set by the caller.
func Explicit[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// reset restores the default value and clears the explicit flag.
func (f *Field[T]) reset(v T) {
	f.Value = v
	f.Set = false
}

// Coordinate is the requested top-left position of the overlay in frame pixels.
type Coordinate struct {
	X int
	Y int
}

// Negative reports whether either component is negative.
//
// A single negative component discards the whole coordinate, so the
// overlay falls back to default placement on both axes.
func (c Coordinate) Negative() bool {
	return c.X < 0 || c.Y < 0
}

// Options holds the raw user-facing overlay settings.
//
// Values are stored as given, including invalid ones; Validate normalizes
// them once before the first frame.
type Options struct {
	Silent     bool
	Coordinate Field[Coordinate]
	Rotation   Field[string]
	Speed      Field[string]
	Scrolling  Field[string]
	StrictMode bool
	Alpha      Field[int]
	LogoFile   Field[string]

	// DefaultLogoFile is the asset used when no valid logo file is given.
	// Empty selects asset.DefaultPath().
	DefaultLogoFile string
}

// NewOptions creates options holding every documented default.
func NewOptions() *Options {
	return &Options{
		Rotation:  Field[string]{Value: DefaultRotation},
		Speed:     Field[string]{Value: DefaultSpeed},
		Scrolling: Field[string]{Value: DefaultScrolling},
		Alpha:     Field[int]{Value: DefaultAlpha},
	}
}

// Clone returns a copy of the options.
func (o *Options) Clone() *Options {
	c := *o
	return &c
}

// Settings is the validated, typed snapshot every compositing component reads.
// It is produced once by Validate and never changes afterwards, except for the
// alpha sentinel which resolves on first read.
type Settings struct {
	Policy   policy.Policy
	Silent   bool
	Rotation RotationMode
	Scroll   ScrollMode
	Speed    Speed

	// Coordinate is nil when the overlay should use default placement.
	Coordinate *Coordinate

	// Alpha is limits.AlphaUnset until ResolveAlpha is called.
	Alpha int

	LogoFile    string
	DefaultLogo bool
}

// Mode returns the compositing mode. Scroll and rotation are mutually
// exclusive after validation.
func (s *Settings) Mode() Mode {
	switch {
	case s.Scroll != ScrollOff:
		return ModeScroll
	case s.Rotation != RotationNone:
		return ModeRotate
	default:
		return ModeStatic
	}
}

// ResolveAlpha latches an unset alpha to fully opaque and returns the percentage.
func (s *Settings) ResolveAlpha() int {
	s.Alpha = limits.ResolveAlpha(s.Alpha)
	return s.Alpha
}

// AlphaFactor returns the resolved alpha as a factor in [0, 1].
func (s *Settings) AlphaFactor() float64 {
	return float64(s.ResolveAlpha()) / 100.0
}
