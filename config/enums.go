package config

// ScrollMode selects horizontal scrolling of the overlay.
type ScrollMode int

const (
	// ScrollOff keeps the overlay in place.
	ScrollOff ScrollMode = iota
	// ScrollLeftToRight moves the overlay towards the right edge.
	ScrollLeftToRight
	// ScrollRightToLeft moves the overlay towards the left edge.
	ScrollRightToLeft
)

var scrollNames = map[ScrollMode]string{
	ScrollOff:         "off",
	ScrollLeftToRight: "ltr",
	ScrollRightToLeft: "rtl",
}

// String returns the property value for the scroll mode.
func (m ScrollMode) String() string {
	if name, ok := scrollNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseScrollMode parses a "scrolling" property value.
func ParseScrollMode(s string) (ScrollMode, bool) {
	for mode, name := range scrollNames {
		if name == s {
			return mode, true
		}
	}
	return ScrollOff, false
}

// RotationMode selects continuous rotation of the overlay.
type RotationMode int

const (
	// RotationNone disables rotation.
	RotationNone RotationMode = iota
	// RotationClockwise increases the angle every frame.
	RotationClockwise
	// RotationCounterClockwise decreases the angle every frame.
	RotationCounterClockwise
)

var rotationNames = map[RotationMode]string{
	RotationNone:             "no-rotate",
	RotationClockwise:        "clockwise",
	RotationCounterClockwise: "counter-clockwise",
}

// String returns the property value for the rotation mode.
func (m RotationMode) String() string {
	if name, ok := rotationNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseRotationMode parses a "rotation" property value.
func ParseRotationMode(s string) (RotationMode, bool) {
	for mode, name := range rotationNames {
		if name == s {
			return mode, true
		}
	}
	return RotationNone, false
}

// Speed selects the animation step size.
type Speed int

const (
	// SpeedSlow is the default animation speed.
	SpeedSlow Speed = iota
	// SpeedMedium is the intermediate animation speed.
	SpeedMedium
	// SpeedFast is the highest animation speed.
	SpeedFast
)

var speedNames = map[Speed]string{
	SpeedSlow:   "slow",
	SpeedMedium: "medium",
	SpeedFast:   "fast",
}

// String returns the property value for the speed.
func (s Speed) String() string {
	if name, ok := speedNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSpeed parses a "speed" property value.
func ParseSpeed(s string) (Speed, bool) {
	for speed, name := range speedNames {
		if name == s {
			return speed, true
		}
	}
	return SpeedSlow, false
}

// Mode is the compositing mode a validated configuration selects.
type Mode int

const (
	// ModeStatic composites the overlay at a fixed position.
	ModeStatic Mode = iota
	// ModeScroll moves the overlay horizontally every frame.
	ModeScroll
	// ModeRotate spins the overlay about its own center every frame.
	ModeRotate
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeScroll:
		return "scroll"
	case ModeRotate:
		return "rotate"
	default:
		return "static"
	}
}
