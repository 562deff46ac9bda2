package video

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFrame is returned when a nil frame or nil plane is passed in.
	ErrNilFrame = errors.New("frame cannot be nil")

	// ErrPlaneTooSmall is returned when a plane buffer cannot hold the
	// declared geometry.
	ErrPlaneTooSmall = errors.New("plane buffer too small for frame geometry")

	// ErrInvalidGeometry is returned for non-positive dimensions or strides
	// narrower than a row.
	ErrInvalidGeometry = errors.New("invalid frame geometry")
)

// Frame is a mutable view over an NV12 picture.
//
// Y holds one luma byte per pixel with rows YStride bytes apart. UV holds one
// interleaved U,V pair per 2x2 luma block with rows UVStride bytes apart. The
// chroma plane has ceil(Height/2) rows. Both planes are written in place.
type Frame struct {
	Width    int
	Height   int
	Y        []byte
	YStride  int
	UV       []byte
	UVStride int
}

// NewFrame allocates a tightly packed NV12 frame.
func NewFrame(width, height int) *Frame {
	if width <= 0 || height <= 0 {
		return nil
	}
	uvStride := ChromaRowBytes(width)
	return &Frame{
		Width:    width,
		Height:   height,
		Y:        make([]byte, width*height),
		YStride:  width,
		UV:       make([]byte, uvStride*ChromaHeight(height)),
		UVStride: uvStride,
	}
}

// ChromaHeight returns the number of chroma rows for a luma height.
func ChromaHeight(height int) int {
	return (height + 1) / 2
}

// ChromaRowBytes returns the number of meaningful bytes in one chroma row.
func ChromaRowBytes(width int) int {
	return ((width + 1) / 2) * 2
}

// Validate checks that the planes can hold the declared geometry.
func (f *Frame) Validate() error {
	if f == nil || f.Y == nil || f.UV == nil {
		return ErrNilFrame
	}

	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, f.Width, f.Height)
	}

	rowBytes := ChromaRowBytes(f.Width)
	if f.YStride < f.Width || f.UVStride < rowBytes {
		return fmt.Errorf("%w: strides %d/%d for width %d",
			ErrInvalidGeometry, f.YStride, f.UVStride, f.Width)
	}

	ySize := f.YStride*(f.Height-1) + f.Width
	if len(f.Y) < ySize {
		return fmt.Errorf("%w: Y plane %d bytes, need %d", ErrPlaneTooSmall, len(f.Y), ySize)
	}

	uvSize := f.UVStride*(ChromaHeight(f.Height)-1) + rowBytes
	if len(f.UV) < uvSize {
		return fmt.Errorf("%w: UV plane %d bytes, need %d", ErrPlaneTooSmall, len(f.UV), uvSize)
	}

	return nil
}

// Fill sets every pixel to a single YUV color.
func (f *Frame) Fill(y, u, v uint8) {
	for row := 0; row < f.Height; row++ {
		line := f.Y[row*f.YStride : row*f.YStride+f.Width]
		for i := range line {
			line[i] = y
		}
	}

	rowBytes := ChromaRowBytes(f.Width)
	for row := 0; row < ChromaHeight(f.Height); row++ {
		line := f.UV[row*f.UVStride : row*f.UVStride+rowBytes]
		for i := 0; i < len(line); i += 2 {
			line[i] = u
			line[i+1] = v
		}
	}
}

// LumaAt returns the luma sample at (x, y).
func (f *Frame) LumaAt(x, y int) uint8 {
	return f.Y[y*f.YStride+x]
}

// ChromaAt returns the U,V pair of the 2x2 block containing (x, y).
func (f *Frame) ChromaAt(x, y int) (uint8, uint8) {
	i := (y/2)*f.UVStride + (x/2)*2
	return f.UV[i], f.UV[i+1]
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	if f == nil {
		return nil
	}

	c := *f
	c.Y = make([]byte, len(f.Y))
	copy(c.Y, f.Y)
	c.UV = make([]byte, len(f.UV))
	copy(c.UV, f.UV)

	return &c
}
