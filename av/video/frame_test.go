package video

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	frame := NewFrame(6, 5)
	require.NotNil(t, frame)

	assert.Equal(t, 6, frame.YStride)
	assert.Equal(t, 6, frame.UVStride)
	assert.Len(t, frame.Y, 30)
	assert.Len(t, frame.UV, 18, "odd height rounds chroma rows up")
	assert.NoError(t, frame.Validate())

	assert.Nil(t, NewFrame(0, 10))
	assert.Nil(t, NewFrame(10, -1))
}

func TestChromaGeometry(t *testing.T) {
	assert.Equal(t, 540, ChromaHeight(1080))
	assert.Equal(t, 2, ChromaHeight(3))
	assert.Equal(t, 1920, ChromaRowBytes(1920))
	assert.Equal(t, 8, ChromaRowBytes(7))
}

func TestFrame_Validate(t *testing.T) {
	tests := []struct {
		name    string
		frame   *Frame
		wantErr error
	}{
		{
			name:    "nil frame",
			frame:   nil,
			wantErr: ErrNilFrame,
		},
		{
			name:    "nil chroma",
			frame:   &Frame{Width: 4, Height: 2, Y: make([]byte, 8), YStride: 4},
			wantErr: ErrNilFrame,
		},
		{
			name:    "zero width",
			frame:   &Frame{Height: 2, Y: []byte{}, UV: []byte{}},
			wantErr: ErrInvalidGeometry,
		},
		{
			name: "stride narrower than row",
			frame: &Frame{
				Width: 4, Height: 2,
				Y: make([]byte, 8), YStride: 3,
				UV: make([]byte, 4), UVStride: 4,
			},
			wantErr: ErrInvalidGeometry,
		},
		{
			name: "short luma plane",
			frame: &Frame{
				Width: 4, Height: 2,
				Y: make([]byte, 7), YStride: 4,
				UV: make([]byte, 4), UVStride: 4,
			},
			wantErr: ErrPlaneTooSmall,
		},
		{
			name: "short chroma plane",
			frame: &Frame{
				Width: 4, Height: 4,
				Y: make([]byte, 16), YStride: 4,
				UV: make([]byte, 6), UVStride: 4,
			},
			wantErr: ErrPlaneTooSmall,
		},
		{
			name: "padded strides",
			frame: &Frame{
				Width: 4, Height: 2,
				Y: make([]byte, 12), YStride: 8,
				UV: make([]byte, 4), UVStride: 8,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.frame.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestFrame_FillAndClone(t *testing.T) {
	frame := NewFrame(4, 3)
	frame.Fill(16, 128, 129)

	assert.Equal(t, uint8(16), frame.LumaAt(3, 2))
	u, v := frame.ChromaAt(3, 2)
	assert.Equal(t, uint8(128), u)
	assert.Equal(t, uint8(129), v)

	clone := frame.Clone()
	clone.Y[0] = 200
	assert.Equal(t, uint8(16), frame.Y[0], "clone must not share planes")
	assert.Nil(t, (*Frame)(nil).Clone())
}
