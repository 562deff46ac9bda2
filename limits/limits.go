// Package limits provides centralized geometry and opacity limits for the logo overlay.
// This ensures consistent validation across the validator, the placement resolver
// and every compositing mode.
package limits

import (
	"fmt"

	"github.com/opd-ai/insertlogo/policy"
)

const (
	// MaxOverlayFraction bounds the overlay size: each overlay dimension must be
	// strictly less than the frame dimension divided by this value.
	MaxOverlayFraction = 6

	// AlphaUnset is the sentinel alpha value meaning "not configured".
	// It resolves to AlphaOpaque the first time it is read.
	AlphaUnset = -1

	// AlphaTransparent is the lowest valid alpha percentage.
	AlphaTransparent = 0

	// AlphaOpaque is the highest valid alpha percentage.
	AlphaOpaque = 100

	// MarginDivisor scales the default placement margin with the overlay height.
	MarginDivisor = 30
)

// ValidateOverlaySize checks the overlay against the frame using the one-sixth rule.
// Returns a geometry error with the actual and maximum sizes. This check is fatal
// under both policies.
func ValidateOverlaySize(overlayWidth, overlayHeight, frameWidth, frameHeight int) error {
	maxWidth := frameWidth / MaxOverlayFraction
	maxHeight := frameHeight / MaxOverlayFraction

	if overlayWidth < maxWidth && overlayHeight < maxHeight {
		return nil
	}

	return policy.NewViolation(policy.ErrGeometry, "logo-file",
		fmt.Sprintf("%dx%d", overlayWidth, overlayHeight),
		fmt.Sprintf("logo size must be less than one-sixth of the frame size (%dx%d, limit %dx%d)",
			frameWidth, frameHeight, maxWidth, maxHeight))
}

// ValidAlpha reports whether alpha is the unset sentinel or a percentage in range.
func ValidAlpha(alpha int) bool {
	return alpha == AlphaUnset || (alpha >= AlphaTransparent && alpha <= AlphaOpaque)
}

// ResolveAlpha maps the unset sentinel to fully opaque.
func ResolveAlpha(alpha int) int {
	if alpha == AlphaUnset {
		return AlphaOpaque
	}
	return alpha
}

// Margin returns the placement margin for an overlay of the given height.
func Margin(overlayHeight int) int {
	return overlayHeight / MarginDivisor
}
