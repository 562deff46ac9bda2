// Package video provides the NV12 frame model and the compositing kernel
// used to burn an RGBA overlay into video frames.
//
// # Frames
//
// A [Frame] is a view over caller-owned planes. The Y plane holds one byte
// per pixel; the UV plane holds one interleaved U,V pair per 2x2 luma block:
//
//	frame := &video.Frame{
//	    Width:    1920,
//	    Height:   1080,
//	    Y:        yPlane,
//	    YStride:  1920,
//	    UV:       uvPlane,
//	    UVStride: 1920,
//	}
//	if err := frame.Validate(); err != nil {
//	    return err
//	}
//
// # Compositing
//
// [Blend] converts each source pixel to BT.601 studio range and mixes it
// into the frame with a truncating integer blend:
//
//	Y  = 0.257R + 0.504G + 0.098B + 16
//	U  = 0.439R - 0.368G - 0.071B + 128
//	V  = -0.148R - 0.291G + 0.439B + 128
//	out = ((255-Ae)*dst + Ae*src) / 255
//
// where Ae is the pixel alpha scaled by a global percentage. Destination
// coordinates wrap around the frame edges, so an overlay placed partly
// outside the frame reappears on the opposite side. Blend never allocates.
//
// # Rotation
//
// [RenderRotated] draws an overlay rotated about its own center onto a
// transparent square canvas, ready to be passed to Blend.
//
// # Effect Chains
//
// Overlay modes implement [Effect] and can be stacked in an [EffectChain]:
//
//	chain := video.NewEffectChain(background, logo)
//	if err := chain.Apply(frame); err != nil {
//	    return fmt.Errorf("compositing failed: %w", err)
//	}
//
// Effects operate in place on the same buffer.
package video
