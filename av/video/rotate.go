package video

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// CanvasSide returns the side of the square canvas a rotated overlay is
// rendered into.
func CanvasSide(width, height int) int {
	if width > height {
		return width
	}
	return height
}

// RenderRotated draws src rotated by radians about its own center onto a
// transparent square canvas of side max(width, height).
//
// Positive angles turn clockwise in image coordinates. Corners that leave the
// canvas are cut off; the source is sampled bilinearly.
func RenderRotated(src *image.NRGBA, radians float64) *image.NRGBA {
	b := src.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	side := CanvasSide(b.Dx(), b.Dy())
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))

	sin, cos := math.Sincos(radians)
	half := float64(side) / 2

	// Maps source pixels to canvas pixels: translate the source center to the
	// origin, rotate, then move the origin to the canvas center.
	cx := w/2 + float64(b.Min.X)
	cy := h/2 + float64(b.Min.Y)
	s2d := f64.Aff3{
		cos, -sin, half - (cos*cx - sin*cy),
		sin, cos, half - (sin*cx + cos*cy),
	}

	draw.BiLinear.Transform(canvas, s2d, src, b, draw.Over, nil)
	return canvas
}
