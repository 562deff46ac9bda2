package transport

import (
	"fmt"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/opd-ai/insertlogo/policy"
)

const (
	rawVideoCaps = "video/x-raw"
	formatNV12   = "NV12"
)

// CapsGeometry extracts width and height from negotiated NV12 caps.
// Failures wrap policy.ErrCaps.
func CapsGeometry(caps *gst.Caps) (width, height int, err error) {
	if caps == nil || caps.GetSize() == 0 {
		return 0, 0, fmt.Errorf("%w: no negotiated caps", policy.ErrCaps)
	}

	structure := caps.GetStructureAt(0)
	if structure == nil {
		return 0, 0, fmt.Errorf("%w: empty caps structure", policy.ErrCaps)
	}

	format, _ := structure.GetValue("format")
	if err := checkFormat(structure.Name(), format); err != nil {
		return 0, 0, err
	}

	width, err = dimension("width")(structure.GetValue("width"))
	if err != nil {
		return 0, 0, err
	}
	height, err = dimension("height")(structure.GetValue("height"))
	if err != nil {
		return 0, 0, err
	}

	return width, height, nil
}

func checkFormat(name string, format interface{}) error {
	if name != rawVideoCaps {
		return fmt.Errorf("%w: media type %q is not %s", policy.ErrCaps, name, rawVideoCaps)
	}
	if s, ok := format.(string); !ok || s != formatNV12 {
		return fmt.Errorf("%w: format %v is not %s", policy.ErrCaps, format, formatNV12)
	}
	return nil
}

// dimension converts a caps field value to a positive int.
func dimension(field string) func(interface{}, error) (int, error) {
	return func(val interface{}, err error) (int, error) {
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", policy.ErrCaps, field, err)
		}

		var n int
		switch v := val.(type) {
		case int:
			n = v
		case int32:
			n = int(v)
		case int64:
			n = int(v)
		case uint:
			n = int(v)
		case uint32:
			n = int(v)
		default:
			return 0, fmt.Errorf("%w: %s has type %T", policy.ErrCaps, field, val)
		}

		if n <= 0 {
			return 0, fmt.Errorf("%w: %s is %d", policy.ErrCaps, field, n)
		}
		return n, nil
	}
}
