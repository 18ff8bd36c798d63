package geom

// Rectangle is the axis-aligned bounding box a diagram is built within,
// carrying an explicit origin alongside width/height so a consumer can
// test point containment without re-deriving cell polygons.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate of the rectangle's right edge.
func (r Rectangle) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate of the rectangle's bottom edge.
func (r Rectangle) Bottom() int { return r.Y + r.Height }

// Contains reports whether (x, y) lies strictly inside the rectangle.
func (r Rectangle) Contains(x, y int) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}
