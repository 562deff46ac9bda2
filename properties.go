package insertlogo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/insertlogo/config"
)

// Property names exposed by the filter.
const (
	PropSilent     = "silent"
	PropCoordinate = "coordinate"
	PropRotation   = "rotation"
	PropSpeed      = "speed"
	PropScrolling  = "scrolling"
	PropStrictMode = "strict-mode"
	PropAlpha      = "alpha"
	PropLogoFile   = "logo-file"
)

// PropertyInfo describes one property for help output.
type PropertyInfo struct {
	Name        string
	Default     string
	Description string
}

// Properties lists the properties in declaration order.
func Properties() []PropertyInfo {
	return []PropertyInfo{
		{PropSilent, "false", "Produce verbose output"},
		{PropCoordinate, "top right", "Top-left corner of the logo as <x, y>"},
		{PropRotation, config.DefaultRotation, "Rotate the logo (no-rotate, clockwise, counter-clockwise); disabled when scrolling is enabled"},
		{PropSpeed, config.DefaultSpeed, "Animation speed (slow, medium, fast)"},
		{PropScrolling, config.DefaultScrolling, "Scroll the logo (off, ltr, rtl)"},
		{PropStrictMode, "false", "Abort on invalid properties instead of falling back to defaults"},
		{PropAlpha, "-1", "Logo opacity in percent (0 to 100); -1 means fully opaque"},
		{PropLogoFile, "logo.png", "PNG logo file"},
	}
}

// SetProperty sets a property by name and marks it as explicitly set.
//
// Accepted value types are bool for silent and strict-mode, string for the
// enumerations and logo-file, int for alpha, and []int, [2]int or
// config.Coordinate for coordinate. A coordinate with other than two
// components is rejected and the stored value is kept.
//
// Properties set after the first frame are stored but the frozen
// configuration does not change.
func (f *Filter) SetProperty(name string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	o := f.options
	switch name {
	case PropSilent:
		b, ok := value.(bool)
		if !ok {
			return invalidValue(name, value)
		}
		o.Silent = b
		f.log = f.instanceEntry(b)
	case PropCoordinate:
		c, err := toCoordinate(value)
		if err != nil {
			return err
		}
		o.Coordinate = config.Explicit(c)
	case PropRotation, PropSpeed, PropScrolling, PropLogoFile:
		s, ok := value.(string)
		if !ok {
			return invalidValue(name, value)
		}
		f.setString(name, s)
	case PropStrictMode:
		b, ok := value.(bool)
		if !ok {
			return invalidValue(name, value)
		}
		o.StrictMode = b
	case PropAlpha:
		n, ok := value.(int)
		if !ok {
			return invalidValue(name, value)
		}
		o.Alpha = config.Explicit(n)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}

	entry := f.log.WithFields(logrus.Fields{
		"function": "Filter.SetProperty",
		"property": name,
		"value":    value,
	})
	if f.settings != nil {
		entry.Warn("Property set after the first frame; the running configuration is unchanged")
	} else {
		entry.Info("Property set")
	}

	return nil
}

func (f *Filter) setString(name, s string) {
	o := f.options
	switch name {
	case PropRotation:
		o.Rotation = config.Explicit(s)
	case PropSpeed:
		o.Speed = config.Explicit(s)
	case PropScrolling:
		o.Scrolling = config.Explicit(s)
	case PropLogoFile:
		o.LogoFile = config.Explicit(s)
	}
}

// SetPropertyString parses a textual value the way a launch line would
// write it and sets the property. Coordinates are written "x,y".
func (f *Filter) SetPropertyString(name, raw string) error {
	switch name {
	case PropSilent, PropStrictMode:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return invalidValue(name, raw)
		}
		return f.SetProperty(name, b)
	case PropAlpha:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return invalidValue(name, raw)
		}
		return f.SetProperty(name, n)
	case PropCoordinate:
		c, err := ParseCoordinate(raw)
		if err != nil {
			return err
		}
		return f.SetProperty(name, c)
	default:
		return f.SetProperty(name, raw)
	}
}

// GetProperty returns the current value of a property.
//
// Values reflect normalization: after the first frame an invalid option
// reads back as its default, and an unset alpha reads back as 100 once it
// has been used.
func (f *Filter) GetProperty(name string) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o := f.options
	switch name {
	case PropSilent:
		return o.Silent, nil
	case PropCoordinate:
		c := o.Coordinate.Value
		return []int{c.X, c.Y}, nil
	case PropRotation:
		return o.Rotation.Value, nil
	case PropSpeed:
		return o.Speed.Value, nil
	case PropScrolling:
		return o.Scrolling.Value, nil
	case PropStrictMode:
		return o.StrictMode, nil
	case PropAlpha:
		if f.settings != nil {
			return f.settings.Alpha, nil
		}
		return o.Alpha.Value, nil
	case PropLogoFile:
		return o.LogoFile.Value, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
}

// ParseCoordinate parses "x,y", "<x, y>" or "x y".
func ParseCoordinate(raw string) (config.Coordinate, error) {
	s := strings.Trim(strings.TrimSpace(raw), "<>")
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) != 2 {
		return config.Coordinate{}, invalidValue(PropCoordinate, raw)
	}

	x, errX := strconv.Atoi(parts[0])
	y, errY := strconv.Atoi(parts[1])
	if errX != nil || errY != nil {
		return config.Coordinate{}, invalidValue(PropCoordinate, raw)
	}

	return config.Coordinate{X: x, Y: y}, nil
}

func toCoordinate(value interface{}) (config.Coordinate, error) {
	switch v := value.(type) {
	case config.Coordinate:
		return v, nil
	case [2]int:
		return config.Coordinate{X: v[0], Y: v[1]}, nil
	case []int:
		if len(v) != 2 {
			return config.Coordinate{}, fmt.Errorf("%w: coordinate needs exactly two values, got %d",
				ErrInvalidPropertyValue, len(v))
		}
		return config.Coordinate{X: v[0], Y: v[1]}, nil
	default:
		return config.Coordinate{}, invalidValue(PropCoordinate, value)
	}
}

func invalidValue(name string, value interface{}) error {
	return fmt.Errorf("%w: %s = %v (%T)", ErrInvalidPropertyValue, name, value, value)
}
