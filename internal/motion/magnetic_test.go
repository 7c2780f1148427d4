package motion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagneticOffset(t *testing.T) {
	button := Rect{X: 10, Y: 4, W: 10, H: 4}

	off := MagneticOffset(Point{X: 19, Y: 7}, button, MagneticStrength)
	require.InDelta(t, 1.2, off.X, 1e-9)
	require.InDelta(t, 0.3, off.Y, 1e-9)

	require.Equal(t, Point{}, MagneticOffset(Point{X: 40, Y: 7}, button, MagneticStrength))
	require.Equal(t, Point{}, MagneticOffset(button.Center(), button, MagneticStrength))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 2, W: 3, H: 1}
	require.True(t, r.Contains(2, 2))
	require.True(t, r.Contains(4, 2))
	require.False(t, r.Contains(5, 2))
	require.False(t, r.Contains(2, 3))
}

func TestPointerOr(t *testing.T) {
	fallback := Point{X: 40, Y: 12}
	require.Equal(t, fallback, Pointer{}.Or(fallback))
	require.Equal(t, Point{X: 1, Y: 2}, Pointer{Point: Point{X: 1, Y: 2}, Present: true}.Or(fallback))
}
