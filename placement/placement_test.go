package placement

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/insertlogo/config"
	"github.com/opd-ai/insertlogo/policy"
)

var (
	hd   = Geometry{Width: 1920, Height: 1080}
	logo = Geometry{Width: 100, Height: 50}
)

func TestDefaultPosition(t *testing.T) {
	tests := []struct {
		name         string
		overlay      Geometry
		wantX, wantY int
	}{
		{"margin below one clamps y", Geometry{Width: 100, Height: 20}, 1820, 1},
		{"margin of one", logo, 1819, 1},
		{"margin of three", Geometry{Width: 150, Height: 90}, 1767, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := DefaultPosition(hd, tt.overlay)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestResolve_Unset(t *testing.T) {
	state, violations, err := Resolve(nil, hd, logo, State{}, policy.Strict)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, Default, state.Kind)
	assert.Equal(t, 1819, state.X)
	assert.Equal(t, 1, state.Y)
}

func TestResolve_Explicit(t *testing.T) {
	c := &config.Coordinate{X: 40, Y: 20}
	state, violations, err := Resolve(c, hd, logo, State{}, policy.Strict)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, State{Kind: Explicit, X: 40, Y: 20}, state)
}

func TestResolve_EdgeIsInBounds(t *testing.T) {
	c := &config.Coordinate{X: 1920, Y: 1080}
	state, _, err := Resolve(c, hd, logo, State{}, policy.Strict)
	require.NoError(t, err)
	assert.Equal(t, Explicit, state.Kind)
}

func TestResolve_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		coord config.Coordinate
	}{
		{"both negative", config.Coordinate{X: -5, Y: -5}},
		{"only x negative discards both", config.Coordinate{X: -1, Y: 300}},
		{"only y negative discards both", config.Coordinate{X: 300, Y: -1}},
		{"x beyond width", config.Coordinate{X: 1921, Y: 10}},
		{"y beyond height", config.Coordinate{X: 10, Y: 1081}},
	}

	for _, tt := range tests {
		t.Run(tt.name+" strict", func(t *testing.T) {
			c := tt.coord
			state, _, err := Resolve(&c, hd, logo, State{}, policy.Strict)
			require.Error(t, err)
			assert.True(t, errors.Is(err, policy.ErrGeometry))
			assert.False(t, state.Resolved())
		})

		t.Run(tt.name+" lenient", func(t *testing.T) {
			c := tt.coord
			state, violations, err := Resolve(&c, hd, logo, State{}, policy.Lenient)
			require.NoError(t, err)
			require.Len(t, violations, 1)
			assert.True(t, errors.Is(violations[0], policy.ErrGeometry))
			assert.Equal(t, State{Kind: Default, X: 1819, Y: 1}, state)
		})
	}
}

func TestResolve_LatchedState(t *testing.T) {
	prior := State{Kind: Default, X: -100, Y: 1}

	// A moved default must not be recomputed
	state, violations, err := Resolve(nil, hd, logo, prior, policy.Strict)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, prior, state)

	// A latched lenient fallback must not warn again
	c := &config.Coordinate{X: -1, Y: -1}
	state, violations, err = Resolve(c, hd, logo, prior, policy.Lenient)
	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, prior, state)
}

func TestCenterPivot(t *testing.T) {
	t.Run("shift within frame", func(t *testing.T) {
		s := CenterPivot(State{Kind: Explicit, X: 40, Y: 200}, 1080, 100, 60)
		assert.Equal(t, 150, s.Y)
		assert.True(t, s.Centered)
	})

	t.Run("wraps when negative", func(t *testing.T) {
		s := CenterPivot(State{Kind: Default, X: 1819, Y: 1}, 1080, 100, 50)
		// 1 - 50 = -49 -> 1080 - 49 + 25
		assert.Equal(t, 1056, s.Y)
	})

	t.Run("applies once", func(t *testing.T) {
		s := CenterPivot(State{Kind: Explicit, Y: 200}, 1080, 100, 60)
		s = CenterPivot(s, 1080, 100, 60)
		assert.Equal(t, 150, s.Y)
	})

	t.Run("unresolved untouched", func(t *testing.T) {
		s := CenterPivot(State{}, 1080, 100, 60)
		assert.False(t, s.Centered)
		assert.Zero(t, s.Y)
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unresolved", Unresolved.String())
	assert.Equal(t, "explicit", Explicit.String())
	assert.Equal(t, "default", Default.String())
}
