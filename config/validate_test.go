package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/insertlogo/policy"
)

// createLogoFile writes an empty file with the given name into a temp dir.
func createLogoFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
	return path
}

func newTestEntry() (*logrus.Entry, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logrus.NewEntry(logger), hook
}

func warnings(hook *test.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			n++
		}
	}
	return n
}

func TestValidate_Defaults(t *testing.T) {
	log, hook := newTestEntry()
	opts := NewOptions()
	opts.DefaultLogoFile = "/opt/brand/logo.png"

	settings, err := Validate(opts, log)
	require.NoError(t, err)

	assert.Equal(t, policy.Lenient, settings.Policy)
	assert.Equal(t, RotationNone, settings.Rotation)
	assert.Equal(t, ScrollOff, settings.Scroll)
	assert.Equal(t, SpeedSlow, settings.Speed)
	assert.Equal(t, -1, settings.Alpha)
	assert.Nil(t, settings.Coordinate)
	assert.True(t, settings.DefaultLogo)
	assert.Equal(t, "/opt/brand/logo.png", settings.LogoFile)
	assert.Equal(t, ModeStatic, settings.Mode())
	assert.Zero(t, warnings(hook))
}

func TestValidate_InvalidRotation(t *testing.T) {
	t.Run("lenient resets to no-rotate", func(t *testing.T) {
		log, hook := newTestEntry()
		opts := NewOptions()
		opts.Rotation = Explicit("diagonal")

		settings, err := Validate(opts, log)
		require.NoError(t, err)

		assert.Equal(t, RotationNone, settings.Rotation)
		assert.Equal(t, "no-rotate", opts.Rotation.Value)
		assert.False(t, opts.Rotation.Set, "reset option must no longer be explicit")
		assert.Equal(t, 1, warnings(hook))
	})

	t.Run("strict rejects", func(t *testing.T) {
		log, _ := newTestEntry()
		opts := NewOptions()
		opts.StrictMode = true
		opts.Rotation = Explicit("diagonal")

		settings, err := Validate(opts, log)
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.True(t, errors.Is(err, policy.ErrConfig))

		var v *policy.Violation
		require.True(t, errors.As(err, &v))
		assert.Equal(t, "rotation", v.Option)
		assert.Equal(t, "diagonal", v.Value)
	})
}

func TestValidate_OptionTable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Options)
		check  func(t *testing.T, s *Settings, o *Options)
		option string
	}{
		{
			name:   "speed",
			mutate: func(o *Options) { o.Speed = Explicit("warp") },
			check: func(t *testing.T, s *Settings, o *Options) {
				assert.Equal(t, SpeedSlow, s.Speed)
				assert.Equal(t, "slow", o.Speed.Value)
			},
			option: "speed",
		},
		{
			name:   "scrolling",
			mutate: func(o *Options) { o.Scrolling = Explicit("up") },
			check: func(t *testing.T, s *Settings, o *Options) {
				assert.Equal(t, ScrollOff, s.Scroll)
				assert.Equal(t, "off", o.Scrolling.Value)
			},
			option: "scrolling",
		},
		{
			name:   "alpha above range",
			mutate: func(o *Options) { o.Alpha = Explicit(150) },
			check: func(t *testing.T, s *Settings, o *Options) {
				assert.Equal(t, -1, s.Alpha)
				assert.Equal(t, 100, s.ResolveAlpha())
			},
			option: "alpha",
		},
		{
			name:   "alpha below sentinel",
			mutate: func(o *Options) { o.Alpha = Explicit(-5) },
			check: func(t *testing.T, s *Settings, o *Options) {
				assert.Equal(t, -1, o.Alpha.Value)
			},
			option: "alpha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" lenient", func(t *testing.T) {
			log, hook := newTestEntry()
			opts := NewOptions()
			tt.mutate(opts)

			settings, err := Validate(opts, log)
			require.NoError(t, err)
			tt.check(t, settings, opts)
			assert.Equal(t, 1, warnings(hook))
		})

		t.Run(tt.name+" strict", func(t *testing.T) {
			log, _ := newTestEntry()
			opts := NewOptions()
			opts.StrictMode = true
			tt.mutate(opts)

			_, err := Validate(opts, log)
			require.Error(t, err)
			assert.True(t, errors.Is(err, policy.ErrConfig))

			var v *policy.Violation
			require.True(t, errors.As(err, &v))
			assert.Equal(t, tt.option, v.Option)
		})
	}
}

func TestValidate_ValidValues(t *testing.T) {
	logo := createLogoFile(t, "brand.png")
	log, hook := newTestEntry()

	opts := NewOptions()
	opts.StrictMode = true
	opts.Rotation = Explicit("counter-clockwise")
	opts.Speed = Explicit("medium")
	opts.Alpha = Explicit(0)
	opts.LogoFile = Explicit(logo)
	opts.Coordinate = Explicit(Coordinate{X: 10, Y: 20})

	settings, err := Validate(opts, log)
	require.NoError(t, err)

	assert.Equal(t, policy.Strict, settings.Policy)
	assert.Equal(t, RotationCounterClockwise, settings.Rotation)
	assert.Equal(t, SpeedMedium, settings.Speed)
	assert.Equal(t, 0, settings.ResolveAlpha())
	assert.Equal(t, 0.0, settings.AlphaFactor())
	assert.Equal(t, logo, settings.LogoFile)
	assert.False(t, settings.DefaultLogo)
	require.NotNil(t, settings.Coordinate)
	assert.Equal(t, Coordinate{X: 10, Y: 20}, *settings.Coordinate)
	assert.Equal(t, ModeRotate, settings.Mode())
	assert.Zero(t, warnings(hook))
}

func TestValidate_MutualExclusion(t *testing.T) {
	t.Run("lenient disables rotation", func(t *testing.T) {
		log, hook := newTestEntry()
		opts := NewOptions()
		opts.Scrolling = Explicit("ltr")
		opts.Rotation = Explicit("clockwise")

		settings, err := Validate(opts, log)
		require.NoError(t, err)

		assert.Equal(t, RotationNone, settings.Rotation)
		assert.Equal(t, ScrollLeftToRight, settings.Scroll)
		assert.Equal(t, ModeScroll, settings.Mode())
		assert.Equal(t, 1, warnings(hook))
		assert.Equal(t, DefaultRotation, opts.Rotation.Value, "read-back reflects the disabled rotation")
		assert.False(t, opts.Rotation.Set)
	})

	t.Run("strict rejects", func(t *testing.T) {
		log, _ := newTestEntry()
		opts := NewOptions()
		opts.StrictMode = true
		opts.Scrolling = Explicit("rtl")
		opts.Rotation = Explicit("clockwise")

		_, err := Validate(opts, log)
		require.Error(t, err)
		assert.True(t, errors.Is(err, policy.ErrConfig))
	})
}

func TestValidate_ZeroOptions(t *testing.T) {
	log, hook := newTestEntry()
	opts := &Options{DefaultLogoFile: "/opt/brand/logo.png"}

	settings, err := Validate(opts, log)
	require.NoError(t, err)

	assert.Equal(t, DefaultAlpha, settings.Alpha)
	assert.Equal(t, 100, settings.ResolveAlpha())
	assert.Equal(t, RotationNone, settings.Rotation)
	assert.Equal(t, ScrollOff, settings.Scroll)
	assert.Equal(t, SpeedSlow, settings.Speed)
	assert.Equal(t, ModeStatic, settings.Mode())
	assert.Zero(t, warnings(hook))

	assert.Equal(t, DefaultAlpha, opts.Alpha.Value)
	assert.Equal(t, DefaultRotation, opts.Rotation.Value)
	assert.Equal(t, DefaultSpeed, opts.Speed.Value)
	assert.Equal(t, DefaultScrolling, opts.Scrolling.Value)
}

func TestValidate_UnsetValuesIgnored(t *testing.T) {
	log, hook := newTestEntry()
	opts := NewOptions()
	opts.DefaultLogoFile = "/opt/brand/logo.png"
	opts.Alpha.Value = 0
	opts.Rotation.Value = "clockwise"
	opts.Scrolling.Value = "sideways"
	opts.Speed.Value = "fast"

	settings, err := Validate(opts, log)
	require.NoError(t, err)

	assert.Equal(t, DefaultAlpha, settings.Alpha)
	assert.Equal(t, RotationNone, settings.Rotation)
	assert.Equal(t, ScrollOff, settings.Scroll)
	assert.Equal(t, SpeedSlow, settings.Speed)
	assert.Zero(t, warnings(hook))
}

func TestValidate_LogoFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")
	wrongExt := createLogoFile(t, "brand.jpg")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", missing},
		{"wrong extension", wrongExt},
	}

	for _, tt := range tests {
		t.Run(tt.name+" lenient falls back", func(t *testing.T) {
			log, hook := newTestEntry()
			opts := NewOptions()
			opts.DefaultLogoFile = "/opt/brand/logo.png"
			opts.LogoFile = Explicit(tt.path)

			settings, err := Validate(opts, log)
			require.NoError(t, err)
			assert.True(t, settings.DefaultLogo)
			assert.Equal(t, "/opt/brand/logo.png", settings.LogoFile)
			assert.Equal(t, "/opt/brand/logo.png", opts.LogoFile.Value)
			assert.False(t, opts.LogoFile.Set)
			assert.Equal(t, 1, warnings(hook))
		})

		t.Run(tt.name+" strict fails", func(t *testing.T) {
			log, _ := newTestEntry()
			opts := NewOptions()
			opts.StrictMode = true
			opts.LogoFile = Explicit(tt.path)

			_, err := Validate(opts, log)
			require.Error(t, err)
			assert.True(t, errors.Is(err, policy.ErrAsset))
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	log, _ := newTestEntry()
	opts := NewOptions()
	opts.DefaultLogoFile = "/opt/brand/logo.png"
	opts.Rotation = Explicit("diagonal")
	opts.Scrolling = Explicit("rtl")

	first, err := Validate(opts, log)
	require.NoError(t, err)

	second, err := Validate(opts, log)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidate_NilOptions(t *testing.T) {
	_, err := Validate(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, policy.ErrConfig))
}

func TestEnumParsing(t *testing.T) {
	for _, mode := range []ScrollMode{ScrollOff, ScrollLeftToRight, ScrollRightToLeft} {
		parsed, ok := ParseScrollMode(mode.String())
		assert.True(t, ok)
		assert.Equal(t, mode, parsed)
	}
	for _, mode := range []RotationMode{RotationNone, RotationClockwise, RotationCounterClockwise} {
		parsed, ok := ParseRotationMode(mode.String())
		assert.True(t, ok)
		assert.Equal(t, mode, parsed)
	}
	for _, speed := range []Speed{SpeedSlow, SpeedMedium, SpeedFast} {
		parsed, ok := ParseSpeed(speed.String())
		assert.True(t, ok)
		assert.Equal(t, speed, parsed)
	}

	_, ok := ParseScrollMode("LTR")
	assert.False(t, ok, "parsing is case-sensitive")
}

func TestCoordinate_Negative(t *testing.T) {
	assert.False(t, Coordinate{X: 0, Y: 0}.Negative())
	assert.True(t, Coordinate{X: -1, Y: 5}.Negative())
	assert.True(t, Coordinate{X: 5, Y: -1}.Negative())
}
