// Package geom holds the geometry primitives the sweepline and beachline
// build on: integer and floating-point points, the orientation cross
// product, circumcenters and distances.
package geom

import "math"

// Point is an integer-coordinate site or vertex. Sites are always given on
// integer coordinates; Voronoi vertices stay as PointF on the edges and
// are not rounded, and PointF.Round narrows one to a Point where an
// integer point is needed.
type Point struct {
	X, Y int
}

// Less orders points lexicographically by (X, Y), matching the original
// source's Point::operator<.
func (p Point) Less(o Point) bool {
	return p.X < o.X || (p.X == o.X && p.Y < o.Y)
}

// PointF is a floating-point point, used for every geometric computation
// performed while the sweep is running (parabola intersections,
// circumcenters).
type PointF struct {
	X, Y float64
}

// ToF widens an integer Point to a PointF.
func (p Point) ToF() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// Round narrows a PointF to the nearest integer Point.
func (p PointF) Round() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b PointF) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Cross returns the cross product of vectors o->a and o->b. Its sign gives
// the orientation of the turn o -> a -> b: positive for counter-clockwise,
// negative for clockwise, zero for collinear.
func Cross(o, a, b PointF) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Circumcenter finds the center of the circle through r1, r2 and r3. It
// returns ErrCollinear when the three points are collinear (the
// determinant of the linear system is zero), in which case no circle
// exists.
func Circumcenter(r1, r2, r3 PointF) (PointF, error) {
	ax := r1.X*r1.X + r1.Y*r1.Y
	bx := r2.X*r2.X + r2.Y*r2.Y
	cx := r3.X*r3.X + r3.Y*r3.Y

	dx := det3(
		ax, r1.Y, 1,
		bx, r2.Y, 1,
		cx, r3.Y, 1,
	)
	dy := det3(
		r1.X, ax, 1,
		r2.X, bx, 1,
		r3.X, cx, 1,
	)
	dd := det3(
		r1.X, r1.Y, 1,
		r2.X, r2.Y, 1,
		r3.X, r3.Y, 1,
	)
	if dd == 0 {
		return PointF{}, ErrCollinear
	}
	return PointF{X: dx / (2 * dd), Y: dy / (2 * dd)}, nil
}

func det3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float64,
) float64 {
	return (m00*m11*m22 + m01*m12*m20 + m02*m10*m21) -
		(m02*m11*m20 + m01*m10*m22 + m00*m12*m21)
}
