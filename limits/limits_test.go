package limits

import (
	"errors"
	"testing"

	"github.com/opd-ai/insertlogo/policy"
)

// TestValidateOverlaySize verifies the one-sixth rule on both axes
func TestValidateOverlaySize(t *testing.T) {
	tests := []struct {
		name           string
		logoW, logoH   int
		frameW, frameH int
		wantErr        bool
	}{
		{"small logo on 1080p", 100, 50, 1920, 1080, false},
		{"width at limit", 320, 50, 1920, 1080, true},
		{"height at limit", 100, 180, 1920, 1080, true},
		{"just below limits", 319, 179, 1920, 1080, false},
		{"oversized square", 400, 400, 1920, 1080, true},
		{"tiny frame", 1, 1, 6, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOverlaySize(tt.logoW, tt.logoH, tt.frameW, tt.frameH)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateOverlaySize(%d, %d, %d, %d) = nil, want error",
						tt.logoW, tt.logoH, tt.frameW, tt.frameH)
				}
				if !errors.Is(err, policy.ErrGeometry) {
					t.Errorf("error %v does not wrap ErrGeometry", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateOverlaySize() unexpected error: %v", err)
			}
		})
	}
}

// TestAlphaRange verifies the accepted alpha values and sentinel resolution
func TestAlphaRange(t *testing.T) {
	for _, alpha := range []int{-1, 0, 50, 100} {
		if !ValidAlpha(alpha) {
			t.Errorf("ValidAlpha(%d) = false, want true", alpha)
		}
	}
	for _, alpha := range []int{-2, 101, 1000} {
		if ValidAlpha(alpha) {
			t.Errorf("ValidAlpha(%d) = true, want false", alpha)
		}
	}

	if got := ResolveAlpha(AlphaUnset); got != AlphaOpaque {
		t.Errorf("ResolveAlpha(-1) = %d, want %d", got, AlphaOpaque)
	}
	if got := ResolveAlpha(40); got != 40 {
		t.Errorf("ResolveAlpha(40) = %d, want 40", got)
	}
}

// TestMargin verifies the margin scales with overlay height
func TestMargin(t *testing.T) {
	if got := Margin(50); got != 1 {
		t.Errorf("Margin(50) = %d, want 1", got)
	}
	if got := Margin(29); got != 0 {
		t.Errorf("Margin(29) = %d, want 0", got)
	}
	if got := Margin(90); got != 3 {
		t.Errorf("Margin(90) = %d, want 3", got)
	}
}
