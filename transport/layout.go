package transport

import (
	"errors"
	"fmt"

	"github.com/opd-ai/insertlogo/av/video"
)

var (
	// ErrShortBuffer is returned when a mapped buffer is smaller than the layout.
	ErrShortBuffer = errors.New("buffer smaller than the NV12 layout")

	// ErrLayoutMismatch is returned when a mapped buffer's size shows it does
	// not use the expected plane layout.
	ErrLayoutMismatch = errors.New("buffer size does not match the NV12 layout")
)

// Layout describes where the planes of one NV12 buffer live.
type Layout struct {
	Width    int
	Height   int
	YStride  int
	UVOffset int
	UVStride int
	Size     int
}

func roundUp2(v int) int { return (v + 1) &^ 1 }
func roundUp4(v int) int { return (v + 3) &^ 3 }

// NV12Layout returns the default GStreamer layout for an NV12 frame:
// rows padded to four bytes, chroma starting after an even number of
// luma rows. Buffers carrying custom strides or plane offsets in their
// video meta do not follow it.
func NV12Layout(width, height int) Layout {
	stride := roundUp4(width)
	uvOffset := stride * roundUp2(height)
	return Layout{
		Width:    width,
		Height:   height,
		YStride:  stride,
		UVOffset: uvOffset,
		UVStride: stride,
		Size:     uvOffset + stride*roundUp2(height)/2,
	}
}

// PackedLayout returns a layout without row padding, as written by raw
// NV12 dumps.
func PackedLayout(width, height int) Layout {
	uvOffset := width * height
	return Layout{
		Width:    width,
		Height:   height,
		YStride:  width,
		UVOffset: uvOffset,
		UVStride: video.ChromaRowBytes(width),
		Size:     uvOffset + video.ChromaRowBytes(width)*video.ChromaHeight(height),
	}
}

// Frame returns a frame whose planes alias data. Nothing is copied, so the
// frame is only valid while data is.
func (l Layout) Frame(data []byte) (*video.Frame, error) {
	if len(data) < l.Size {
		return nil, fmt.Errorf("%w: have %d bytes, need %d for %dx%d",
			ErrShortBuffer, len(data), l.Size, l.Width, l.Height)
	}

	return &video.Frame{
		Width:    l.Width,
		Height:   l.Height,
		Y:        data[:l.UVOffset:l.UVOffset],
		YStride:  l.YStride,
		UV:       data[l.UVOffset:l.Size:l.Size],
		UVStride: l.UVStride,
	}, nil
}
