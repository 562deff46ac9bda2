package insertlogo

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/insertlogo/asset"
	"github.com/opd-ai/insertlogo/av/video"
	"github.com/opd-ai/insertlogo/limits"
	"github.com/opd-ai/insertlogo/placement"
	"github.com/opd-ai/insertlogo/policy"
)

// loadLogo decodes the configured logo for the current frame. A nil image
// with a nil error means the lenient policy chose to skip this frame.
func (f *Filter) loadLogo() (*image.NRGBA, error) {
	path := f.settings.LogoFile
	img, err := f.decoder.Decode(path)
	if err != nil {
		v := policy.NewViolation(policy.ErrAsset, "logo-file", path,
			fmt.Sprintf("error loading logo image: %v", err))
		if err := f.settings.Policy.Enforce(f.log, v); err != nil {
			return nil, err
		}
		return nil, nil
	}

	f.trackFingerprint(img)
	return img, nil
}

// trackFingerprint warns when the logo content changes between frames.
// Placement stays latched to the geometry of the first decoded logo.
func (f *Filter) trackFingerprint(img *image.NRGBA) {
	sum := asset.Fingerprint(img)
	if f.fingerprint == nil {
		f.fingerprint = &sum
		f.log.WithFields(asset.FingerprintFields(sum)).WithFields(logrus.Fields{
			"function": "Filter.trackFingerprint",
			"width":    img.Rect.Dx(),
			"height":   img.Rect.Dy(),
		}).Debug("Logo loaded")
		return
	}
	if *f.fingerprint == sum {
		return
	}

	*f.fingerprint = sum
	f.log.WithFields(asset.FingerprintFields(sum)).WithFields(logrus.Fields{
		"function": "Filter.trackFingerprint",
		"frame":    f.frames,
	}).Warn("Logo file content changed; placement is kept")
}

// resolvePlacement reconciles the configured coordinate with the frame.
func (f *Filter) resolvePlacement(overlay placement.Geometry) error {
	prior := f.state.Kind
	state, violations, err := placement.Resolve(f.settings.Coordinate, f.frame, overlay, f.state, f.settings.Policy)
	if err != nil {
		return err
	}
	for _, v := range violations {
		// Lenient only: Enforce logs and returns nil
		_ = f.settings.Policy.Enforce(f.log, v)
	}
	f.state = state

	if prior == placement.Unresolved && state.Kind == placement.Default {
		f.log.WithFields(logrus.Fields{
			"function": "Filter.resolvePlacement",
			"x":        state.X,
			"y":        state.Y,
		}).Info("Default (top right) placement set")
	}
	return nil
}

func geometryOf(img *image.NRGBA) placement.Geometry {
	return placement.Geometry{Width: img.Rect.Dx(), Height: img.Rect.Dy()}
}

// staticOverlay composites the logo at a fixed position.
type staticOverlay struct {
	f *Filter
}

func (o *staticOverlay) Apply(frame *video.Frame) error {
	f := o.f

	img, err := f.loadLogo()
	if err != nil || img == nil {
		return err
	}

	g := geometryOf(img)
	if err := f.resolvePlacement(g); err != nil {
		return err
	}
	if err := limits.ValidateOverlaySize(g.Width, g.Height, f.frame.Width, f.frame.Height); err != nil {
		return err
	}

	return video.Blend(frame, img, f.state.X, f.state.Y, f.settings.ResolveAlpha())
}

func (o *staticOverlay) GetName() string {
	return "StaticOverlay"
}

// scrollOverlay moves the logo horizontally every frame.
type scrollOverlay struct {
	f *Filter
}

func (o *scrollOverlay) Apply(frame *video.Frame) error {
	f := o.f

	img, err := f.loadLogo()
	if err != nil || img == nil {
		return err
	}

	g := geometryOf(img)
	if err := f.resolvePlacement(g); err != nil {
		return err
	}
	f.state.X = f.scroll.Advance(f.state.X, f.frame.Width, g.Width)

	if err := limits.ValidateOverlaySize(g.Width, g.Height, f.frame.Width, f.frame.Height); err != nil {
		return err
	}

	f.log.WithFields(logrus.Fields{
		"function": "scrollOverlay.Apply",
		"x":        f.state.X,
		"y":        f.state.Y,
	}).Trace("Scroll position")

	return video.Blend(frame, img, f.state.X, f.state.Y, f.settings.ResolveAlpha())
}

func (o *scrollOverlay) GetName() string {
	return "ScrollOverlay(" + o.f.scroll.Mode().String() + ")"
}

// rotateOverlay spins the logo about its own center every frame.
type rotateOverlay struct {
	f *Filter
}

func (o *rotateOverlay) Apply(frame *video.Frame) error {
	f := o.f

	f.rotation.Advance()

	img, err := f.loadLogo()
	if err != nil || img == nil {
		return err
	}

	canvas := video.RenderRotated(img, f.rotation.Radians())
	if err := f.resolvePlacement(geometryOf(canvas)); err != nil {
		return err
	}
	f.state = placement.CenterPivot(f.state, f.frame.Height, canvas.Rect.Dx(), img.Rect.Dy())

	// The size rule applies to the logo itself, not the padded canvas
	if err := limits.ValidateOverlaySize(img.Rect.Dx(), img.Rect.Dy(), f.frame.Width, f.frame.Height); err != nil {
		return err
	}

	return video.Blend(frame, canvas, f.state.X, f.state.Y, f.settings.ResolveAlpha())
}

func (o *rotateOverlay) GetName() string {
	return "RotateOverlay(" + o.f.rotation.Mode().String() + ")"
}
