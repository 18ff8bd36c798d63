package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointLess(t *testing.T) {
	require.True(t, Point{1, 2}.Less(Point{2, 0}))
	require.True(t, Point{1, 2}.Less(Point{1, 3}))
	require.False(t, Point{1, 2}.Less(Point{1, 2}))
	require.False(t, Point{2, 0}.Less(Point{1, 2}))
}

func TestCrossOrientation(t *testing.T) {
	o := PointF{0, 0}
	a := PointF{1, 0}
	b := PointF{1, 1}
	require.Greater(t, Cross(o, a, b), 0.0, "counter-clockwise turn should be positive")
	require.Less(t, Cross(o, b, a), 0.0, "reversing the turn should flip the sign")
	require.Equal(t, 0.0, Cross(o, a, PointF{2, 0}), "collinear points cross to zero")
}

func TestCircumcenter(t *testing.T) {
	// Isoceles triangle: x = 5 by symmetry, and equidistance from (0,0)
	// and (5,10) gives 25 + y² = (y-10)², so y = 3.75.
	c, err := Circumcenter(PointF{0, 0}, PointF{10, 0}, PointF{5, 10})
	require.NoError(t, err)
	require.InDelta(t, 5, c.X, 1e-9)
	require.InDelta(t, 3.75, c.Y, 1e-9)

	// Equidistance must actually hold at the returned center.
	for _, p := range []PointF{{10, 0}, {5, 10}} {
		require.InDelta(t, Distance(c, PointF{0, 0}), Distance(c, p), 1e-9)
	}
}

func TestCircumcenterCollinear(t *testing.T) {
	_, err := Circumcenter(PointF{0, 0}, PointF{1, 0}, PointF{2, 0})
	require.ErrorIs(t, err, ErrCollinear)
}

func TestDistance(t *testing.T) {
	require.Equal(t, 5.0, Distance(PointF{0, 0}, PointF{3, 4}))
}

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	require.True(t, r.Contains(5, 5))
	require.False(t, r.Contains(0, 5), "boundary is not contained (strict)")
	require.False(t, r.Contains(11, 5))
}
