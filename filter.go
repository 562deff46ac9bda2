package insertlogo

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"

	"github.com/opd-ai/insertlogo/animation"
	"github.com/opd-ai/insertlogo/asset"
	"github.com/opd-ai/insertlogo/av/video"
	"github.com/opd-ai/insertlogo/config"
	"github.com/opd-ai/insertlogo/placement"
	"github.com/opd-ai/insertlogo/policy"
)

// Filter burns a logo into NV12 frames.
//
// A Filter is configured through its options or the property surface, then
// fed one frame at a time. The first frame freezes the configuration. A fatal
// error is latched: every later call returns it and no frame is touched.
type Filter struct {
	mu sync.Mutex

	id      uuid.UUID
	logger  *logrus.Logger
	log     *logrus.Entry
	decoder asset.Decoder

	options  *config.Options
	settings *config.Settings
	mode     video.Effect

	frame       placement.Geometry
	haveCaps    bool
	state       placement.State
	scroll      *animation.Scroll
	rotation    *animation.Rotation
	fingerprint *[blake2b.Size256]byte

	frames uint64
	fatal  error
}

// Option customizes a Filter.
type Option func(*Filter)

// WithDecoder replaces the PNG file decoder.
func WithDecoder(d asset.Decoder) Option {
	return func(f *Filter) {
		if d != nil {
			f.decoder = d
		}
	}
}

// WithLogger replaces the standard logrus logger.
func WithLogger(l *logrus.Logger) Option {
	return func(f *Filter) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a filter. The options are copied; nil selects the defaults.
func New(options *config.Options, opts ...Option) *Filter {
	if options == nil {
		options = config.NewOptions()
	}

	f := &Filter{
		id:      uuid.New(),
		logger:  logrus.StandardLogger(),
		decoder: asset.FileDecoder{},
		options: options.Clone(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.instanceEntry(f.options.Silent)

	f.log.WithFields(logrus.Fields{
		"function": "New",
		"strict":   f.options.StrictMode,
	}).Debug("Filter created")

	return f
}

// ID returns the instance identifier used in log fields.
func (f *Filter) ID() uuid.UUID {
	return f.id
}

// GetName implements video.Effect.
func (f *Filter) GetName() string {
	return "InsertLogo(" + f.id.String()[:8] + ")"
}

// Apply implements video.Effect so filters can be stacked in a chain.
func (f *Filter) Apply(frame *video.Frame) error {
	return f.ProcessFrame(frame)
}

// Err returns the latched fatal error, if any.
func (f *Filter) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fatal
}

// Settings returns a copy of the validated settings, or nil before the
// first frame.
func (f *Filter) Settings() *config.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settings == nil {
		return nil
	}
	s := *f.settings
	return &s
}

// Placement returns the current overlay placement.
func (f *Filter) Placement() placement.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Degrees returns the current rotation angle; zero when not rotating.
func (f *Filter) Degrees() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rotation == nil {
		return 0
	}
	return f.rotation.Degrees()
}

// Frames returns the number of frames processed without a fatal error.
func (f *Filter) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// SetGeometry records the negotiated frame size.
//
// Non-positive dimensions are a caps failure and fatal under both policies.
// A changed size resets placement so defaults are recomputed for the new
// frame; the animation phase is kept.
func (f *Filter) SetGeometry(width, height int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fatal != nil {
		return f.fatal
	}
	return f.setGeometry(width, height)
}

func (f *Filter) setGeometry(width, height int) error {
	if width <= 0 || height <= 0 {
		return f.latch(policy.NewViolation(policy.ErrCaps, "caps",
			fmt.Sprintf("%dx%d", width, height),
			"failed to retrieve frame geometry from caps"))
	}

	g := placement.Geometry{Width: width, Height: height}
	if f.haveCaps && g == f.frame {
		return nil
	}

	if f.haveCaps {
		f.log.WithFields(logrus.Fields{
			"function":   "Filter.SetGeometry",
			"old_width":  f.frame.Width,
			"old_height": f.frame.Height,
			"width":      width,
			"height":     height,
		}).Info("Frame geometry changed, placement reset")
		f.state = placement.State{}
	} else {
		f.log.WithFields(logrus.Fields{
			"function": "Filter.SetGeometry",
			"width":    width,
			"height":   height,
		}).Info("Frame geometry set")
	}

	f.frame = g
	f.haveCaps = true
	return nil
}

// Validate runs the one-shot configuration check. It is called implicitly by
// the first ProcessFrame and does nothing once it has succeeded.
func (f *Filter) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fatal != nil {
		return f.fatal
	}
	return f.validate()
}

func (f *Filter) validate() error {
	if f.settings != nil {
		return nil
	}

	settings, err := config.Validate(f.options, f.log)
	if err != nil {
		return f.latch(err)
	}
	f.settings = settings

	switch settings.Mode() {
	case config.ModeScroll:
		f.scroll = animation.NewScroll(settings.Scroll, settings.Speed)
		f.mode = &scrollOverlay{f: f}
	case config.ModeRotate:
		f.rotation = animation.NewRotation(settings.Rotation, settings.Speed)
		f.mode = &rotateOverlay{f: f}
	default:
		f.mode = &staticOverlay{f: f}
	}

	f.log.WithFields(logrus.Fields{
		"function":  "Filter.Validate",
		"mode":      settings.Mode().String(),
		"policy":    settings.Policy.String(),
		"logo_file": settings.LogoFile,
	}).Info("Configuration frozen")

	return nil
}

// ProcessFrame composites the logo into frame in place.
//
// The frame is only borrowed for the duration of the call. A frame whose
// planes do not match its geometry is rejected without being modified and
// without latching. Any other returned error is fatal for the instance.
// Under the lenient policy an undecodable logo leaves the frame untouched
// and returns nil.
func (f *Filter) ProcessFrame(frame *video.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fatal != nil {
		return f.fatal
	}
	if err := f.validate(); err != nil {
		return err
	}
	if err := frame.Validate(); err != nil {
		f.log.WithFields(logrus.Fields{
			"function": "Filter.ProcessFrame",
			"error":    err.Error(),
		}).Error("Frame rejected")
		return fmt.Errorf("frame %d: %w", f.frames, err)
	}
	if err := f.setGeometry(frame.Width, frame.Height); err != nil {
		return err
	}

	if err := f.mode.Apply(frame); err != nil {
		return f.latch(err)
	}
	f.frames++

	return nil
}

// latch records the first fatal error and returns it.
func (f *Filter) latch(err error) error {
	if f.fatal == nil {
		f.fatal = err
		fields := logrus.Fields{
			"function": "Filter.latch",
			"error":    err.Error(),
		}
		var v *policy.Violation
		if errors.As(err, &v) {
			fields["kind"] = v.Kind.Error()
			fields["option"] = v.Option
		}
		f.log.WithFields(fields).Error("Processing halted")
	}
	return f.fatal
}
