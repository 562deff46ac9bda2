package video

import (
	"fmt"
	"image"
)

// Video range offsets for BT.601 studio swing.
const (
	lumaOffset   = 16
	chromaOffset = 128
)

// ConvertRGB converts a full range RGB color to BT.601 studio range YUV.
//
// Coefficients are kept in thousandths so the truncating conversion is exact;
// the numerators are positive for every 8-bit input.
func ConvertRGB(r, g, b uint8) (y, u, v uint8) {
	R, G, B := int(r), int(g), int(b)

	y = uint8((257*R + 504*G + 98*B + lumaOffset*1000) / 1000)
	u = uint8((439*R - 368*G - 71*B + chromaOffset*1000) / 1000)
	v = uint8((-148*R - 291*G + 439*B + chromaOffset*1000) / 1000)

	return y, u, v
}

// EffectiveAlpha scales an 8-bit pixel alpha by a global percentage.
func EffectiveAlpha(a8 uint8, alphaPercent int) int {
	return int(a8) * alphaPercent / 100
}

// mix blends a source sample over a destination sample with an 8-bit alpha.
func mix(dst, src uint8, ae int) uint8 {
	return uint8(((255-ae)*int(dst) + ae*int(src)) / 255)
}

// wrap reduces v into [0, n).
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// Blend composites src onto frame with its top-left corner at (x, y).
//
// Destination coordinates wrap around the frame on both axes, so any x and y
// are accepted. Chroma is written once per 2x2 block, from the source pixel
// that lands on the block's even/even luma position. When x or y is odd the
// overlay's first column or row of source pixels covers only the odd half of
// its blocks, so those blocks keep the destination chroma; the same applies
// to a trailing column or row ending on an even position. alphaPercent at or
// below 0 is a no-op and above 100 is treated as 100. The caller is
// responsible for the overlay size check.
func Blend(frame *Frame, src *image.NRGBA, x, y, alphaPercent int) error {
	if err := frame.Validate(); err != nil {
		return err
	}
	if src == nil {
		return fmt.Errorf("overlay source: %w", ErrNilFrame)
	}
	if alphaPercent <= 0 {
		return nil
	}
	if alphaPercent > 100 {
		alphaPercent = 100
	}

	b := src.Rect
	for j := 0; j < b.Dy(); j++ {
		dy := wrap(j+y, frame.Height)
		yRow := dy * frame.YStride
		uvRow := (dy / 2) * frame.UVStride
		evenRow := dy%2 == 0

		s := src.PixOffset(b.Min.X, b.Min.Y+j)
		for i := 0; i < b.Dx(); i, s = i+1, s+4 {
			ae := EffectiveAlpha(src.Pix[s+3], alphaPercent)
			if ae == 0 {
				continue
			}

			ys, us, vs := ConvertRGB(src.Pix[s], src.Pix[s+1], src.Pix[s+2])

			dx := wrap(i+x, frame.Width)
			yi := yRow + dx
			frame.Y[yi] = mix(frame.Y[yi], ys, ae)

			if evenRow && dx%2 == 0 {
				ci := uvRow + dx
				frame.UV[ci] = mix(frame.UV[ci], us, ae)
				frame.UV[ci+1] = mix(frame.UV[ci+1], vs, ae)
			}
		}
	}

	return nil
}
