package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/insertlogo/asset"
	"github.com/opd-ai/insertlogo/limits"
	"github.com/opd-ai/insertlogo/policy"
)

// Validate normalizes every explicitly set option and resolves conflicts.
//
// Checks run in a fixed order: logo file, rotation, speed, scrolling, alpha,
// then the scroll/rotation mutual exclusion. Under the strict policy the first
// violation is returned and opts is left as validated so far. Under the
// lenient policy each violation is logged on log, the option is reset to its
// default and marked as no longer explicit. Options that were never set take
// their default whatever their stored value, so a zero Options is valid.
//
// Validate mutates opts in place and returns the typed snapshot. Calling it
// again on the normalized options yields the same settings.
func Validate(opts *Options, log *logrus.Entry) (*Settings, error) {
	if opts == nil {
		return nil, fmt.Errorf("%w: options cannot be nil", policy.ErrConfig)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	p := policy.FromStrict(opts.StrictMode)
	settings := &Settings{
		Policy: p,
		Silent: opts.Silent,
	}

	if err := validateLogoFile(opts, settings, p, log); err != nil {
		return nil, err
	}
	if err := validateRotation(opts, settings, p, log); err != nil {
		return nil, err
	}
	if err := validateSpeed(opts, settings, p, log); err != nil {
		return nil, err
	}
	if err := validateScrolling(opts, settings, p, log); err != nil {
		return nil, err
	}
	if err := validateAlpha(opts, settings, p, log); err != nil {
		return nil, err
	}
	if err := validateExclusion(opts, settings, p, log); err != nil {
		return nil, err
	}

	if opts.Coordinate.Set {
		c := opts.Coordinate.Value
		settings.Coordinate = &c
	}

	log.WithFields(logrus.Fields{
		"function":  "Validate",
		"policy":    p.String(),
		"mode":      settings.Mode().String(),
		"rotation":  settings.Rotation.String(),
		"scrolling": settings.Scroll.String(),
		"speed":     settings.Speed.String(),
		"alpha":     settings.Alpha,
		"logo_file": settings.LogoFile,
	}).Debug("Overlay options validated")

	return settings, nil
}

// validateLogoFile checks existence first, then the extension. Either failure
// under the lenient policy selects the default logo.
func validateLogoFile(opts *Options, s *Settings, p policy.Policy, log *logrus.Entry) error {
	useDefault := !opts.LogoFile.Set || opts.LogoFile.Value == ""

	if !useDefault {
		path := opts.LogoFile.Value
		var v *policy.Violation
		switch {
		case !asset.Exists(path):
			v = policy.NewViolation(policy.ErrAsset, "logo-file", path,
				"file does not exist; only files with the extension .png are valid")
		case !asset.HasPNGExtension(path):
			v = policy.NewViolation(policy.ErrAsset, "logo-file", path,
				"invalid logo file format; only PNG files are supported")
		}
		if v != nil {
			if err := p.Enforce(log, v); err != nil {
				return err
			}
			useDefault = true
		}
	}

	if !useDefault {
		s.LogoFile = opts.LogoFile.Value
		return nil
	}

	path := opts.DefaultLogoFile
	if path == "" {
		path = asset.DefaultPath()
	}
	opts.LogoFile.reset(path)
	s.LogoFile = path
	s.DefaultLogo = true

	log.WithFields(logrus.Fields{
		"function":  "validateLogoFile",
		"logo_file": path,
	}).Info("Using default logo")

	return nil
}

func validateRotation(opts *Options, s *Settings, p policy.Policy, log *logrus.Entry) error {
	if !opts.Rotation.Set {
		opts.Rotation.reset(DefaultRotation)
	}
	mode, ok := ParseRotationMode(opts.Rotation.Value)
	if opts.Rotation.Set && !ok {
		v := policy.NewViolation(policy.ErrConfig, "rotation", opts.Rotation.Value,
			"valid values are 'no-rotate', 'clockwise', or 'counter-clockwise'")
		if err := p.Enforce(log, v); err != nil {
			return err
		}
		opts.Rotation.reset(DefaultRotation)
		mode = RotationNone
		logDefault(log, "rotation", DefaultRotation)
	}
	s.Rotation = mode
	return nil
}

func validateSpeed(opts *Options, s *Settings, p policy.Policy, log *logrus.Entry) error {
	if !opts.Speed.Set {
		opts.Speed.reset(DefaultSpeed)
	}
	speed, ok := ParseSpeed(opts.Speed.Value)
	if opts.Speed.Set && !ok {
		v := policy.NewViolation(policy.ErrConfig, "speed", opts.Speed.Value,
			"valid values are 'slow', 'medium', or 'fast'")
		if err := p.Enforce(log, v); err != nil {
			return err
		}
		opts.Speed.reset(DefaultSpeed)
		speed = SpeedSlow
		logDefault(log, "speed", DefaultSpeed)
	}
	s.Speed = speed
	return nil
}

func validateScrolling(opts *Options, s *Settings, p policy.Policy, log *logrus.Entry) error {
	if !opts.Scrolling.Set {
		opts.Scrolling.reset(DefaultScrolling)
	}
	mode, ok := ParseScrollMode(opts.Scrolling.Value)
	if opts.Scrolling.Set && !ok {
		v := policy.NewViolation(policy.ErrConfig, "scrolling", opts.Scrolling.Value,
			"valid values are 'off', 'ltr', or 'rtl'")
		if err := p.Enforce(log, v); err != nil {
			return err
		}
		opts.Scrolling.reset(DefaultScrolling)
		mode = ScrollOff
		logDefault(log, "scrolling", DefaultScrolling)
	}
	s.Scroll = mode
	return nil
}

func validateAlpha(opts *Options, s *Settings, p policy.Policy, log *logrus.Entry) error {
	if !opts.Alpha.Set {
		opts.Alpha.reset(DefaultAlpha)
	}
	alpha := opts.Alpha.Value
	if opts.Alpha.Set && !limits.ValidAlpha(alpha) {
		v := policy.NewViolation(policy.ErrConfig, "alpha", alpha,
			"valid values are '-1 (default)' or '0 to 100 (integer)'")
		if err := p.Enforce(log, v); err != nil {
			return err
		}
		opts.Alpha.reset(DefaultAlpha)
		alpha = DefaultAlpha
		logDefault(log, "alpha", DefaultAlpha)
	}
	s.Alpha = alpha
	return nil
}

// validateExclusion disables rotation when both animations are requested.
func validateExclusion(opts *Options, s *Settings, p policy.Policy, log *logrus.Entry) error {
	if s.Scroll == ScrollOff || s.Rotation == RotationNone {
		return nil
	}

	v := policy.NewViolation(policy.ErrConfig, "rotation", s.Rotation.String(),
		"rotation and scrolling are both enabled; only one animation can run at a time")
	if err := p.Enforce(log, v); err != nil {
		return err
	}
	s.Rotation = RotationNone
	opts.Rotation.reset(DefaultRotation)

	log.WithFields(logrus.Fields{
		"function":  "validateExclusion",
		"scrolling": s.Scroll.String(),
	}).Info("Rotation disabled, scrolling kept")

	return nil
}

func logDefault(log *logrus.Entry, option string, value interface{}) {
	log.WithFields(logrus.Fields{
		"function": "Validate",
		"option":   option,
		"value":    value,
	}).Info("Default value set")
}
