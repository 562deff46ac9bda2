// Package insertlogo burns a PNG logo into NV12 video frames.
//
// The logo can sit at a fixed position, scroll horizontally across the frame,
// or spin about its own center. Options are validated once, before the first
// frame, under either a lenient policy (warn and fall back to the default) or
// a strict policy (stop processing with a typed error).
//
// # Getting Started
//
//	options := config.NewOptions()
//	options.LogoFile = config.Explicit("/srv/brand/logo.png")
//	options.Scrolling = config.Explicit("ltr")
//
//	filter := insertlogo.New(options)
//	if err := filter.SetGeometry(1920, 1080); err != nil {
//	    log.Fatal(err)
//	}
//
//	for frame := range frames {
//	    if err := filter.ProcessFrame(frame); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Properties
//
// The filter also exposes its options by name, using the same names as the
// YAML options file:
//
//	filter.SetProperty("rotation", "clockwise")
//	filter.SetProperty("coordinate", []int{40, 20})
//	filter.SetPropertyString("alpha", "80")
//
//	value, err := filter.GetProperty("speed")
//
// # Errors
//
// Configuration, asset and geometry problems are reported as
// [*policy.Violation] values wrapping [policy.ErrConfig], [policy.ErrAsset]
// or [policy.ErrGeometry]; missing frame geometry wraps [policy.ErrCaps].
// The first fatal error stops the instance: every later call returns it and
// frames are left untouched.
//
// # Logo size
//
// Each logo dimension must be less than one sixth of the frame dimension.
// This check is fatal under both policies.
package insertlogo
