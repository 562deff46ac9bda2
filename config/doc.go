// Package config holds the user-facing overlay options and the validator that
// normalizes them before the first frame.
//
// # Options and Settings
//
// [Options] stores the raw values a caller supplied, each paired with an
// "explicitly set" flag. Only explicit values are checked. [Validate] turns
// Options into an immutable [Settings] snapshot that every compositing
// component reads:
//
//	opts := config.NewOptions()
//	opts.Rotation = config.Explicit("clockwise")
//	opts.Speed = config.Explicit("fast")
//
//	settings, err := config.Validate(opts, log)
//	if err != nil {
//	    // strict policy: err wraps policy.ErrConfig or policy.ErrAsset
//	}
//
// # Severity Policies
//
// With StrictMode set, the first invalid value aborts validation with an
// error. Otherwise the value is reset to its default, a warning is logged and
// the option is marked as no longer explicit so it is not checked again.
//
// Scrolling and rotation are mutually exclusive: when both are requested the
// strict policy rejects the options and the lenient policy disables rotation.
//
// # Options Files
//
// [LoadFile] reads a YAML document whose keys mirror the property names
// (silent, coordinate, rotation, speed, scrolling, strict-mode, alpha,
// logo-file, default-logo-file).
package config
