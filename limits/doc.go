// Package limits provides centralized geometry and opacity limits for the
// logo overlay. This package ensures the validator, the placement resolver and
// the compositing modes all enforce the same numbers.
//
// # Overlay Size
//
// An overlay is only composited when both of its dimensions are strictly less
// than one-sixth of the frame's:
//
//	err := limits.ValidateOverlaySize(logoW, logoH, frameW, frameH)
//	if err != nil {
//	    // err wraps policy.ErrGeometry; it is fatal regardless of policy
//	}
//
// For the rotation mode the check is made against the original asset
// dimensions, not against the padded square canvas.
//
// # Alpha
//
// Alpha is a percentage in [0, 100]. The value -1 (AlphaUnset) means the
// option was never configured and resolves to 100 on first use:
//
//	limits.ValidAlpha(-1)    // true
//	limits.ValidAlpha(101)   // false
//	limits.ResolveAlpha(-1)  // 100
//
// # Placement Margin
//
// Default placement keeps the overlay off the frame edge by a margin that
// scales with the overlay height (height / 30).
package limits
