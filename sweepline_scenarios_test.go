package voronoi

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

func runSites(t *testing.T, width, height int, sites [][2]int) *Voronoi {
	t.Helper()
	v := New(width, height)
	for _, p := range sites {
		_, err := v.AddSite(p[0], p[1])
		require.NoError(t, err)
	}
	sl := NewSweepLine()
	sl.Load(v)
	require.NoError(t, sl.Run())
	return v
}

// distinctEdges collects every edge of the diagram once; shared edges
// appear in both bordering cells' lists but are a single object.
func distinctEdges(v *Voronoi) []*Edge {
	seen := make(map[*Edge]bool)
	var out []*Edge
	for _, cell := range v.Cells() {
		for _, e := range cell.Edges() {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// endpointsNear counts how many of e's endpoints lie within tol of p.
func endpointsNear(e *Edge, p geom.PointF, tol float64) int {
	n := 0
	for _, ep := range []*geom.PointF{e.A, e.B} {
		if math.Abs(ep.X-p.X) < tol && math.Abs(ep.Y-p.Y) < tol {
			n++
		}
	}
	return n
}

// Two horizontally separated sites: both cells share the single bisector
// edge on x = 200, and its finished endpoints lie well past the bounding
// box on either side.
func TestScenarioTwoSiteBisector(t *testing.T) {
	v := runSites(t, 400, 400, [][2]int{{100, 100}, {300, 100}})

	cells := v.Cells()
	require.Len(t, cells, 2)
	require.Len(t, cells[0].Edges(), 1)
	require.Same(t, cells[0].Edges()[0], cells[1].Edges()[0])

	e := cells[0].Edges()[0]
	require.True(t, e.Closed())
	require.InDelta(t, 200, e.A.X, 1e-6)
	require.InDelta(t, 200, e.B.X, 1e-6)

	lo, hi := e.A.Y, e.B.Y
	if lo > hi {
		lo, hi = hi, lo
	}
	m := float64(v.Bounds.Width + v.Bounds.Height)
	require.LessOrEqual(t, lo, -m, "lower endpoint must clear the box")
	require.GreaterOrEqual(t, hi, m, "upper endpoint must clear the box")
}

// Isoceles triangle: one Voronoi vertex at the circumcenter, three edges
// emanating from it along the perpendicular bisectors.
func TestScenarioTriangleVertexAtCircumcenter(t *testing.T) {
	v := runSites(t, 100, 100, [][2]int{{0, 0}, {10, 0}, {5, 10}})

	center, err := geom.Circumcenter(
		geom.PointF{X: 0, Y: 0}, geom.PointF{X: 10, Y: 0}, geom.PointF{X: 5, Y: 10})
	require.NoError(t, err)
	require.InDelta(t, 5, center.X, 1e-9)
	require.InDelta(t, 3.75, center.Y, 1e-9)

	edges := distinctEdges(v)
	require.Len(t, edges, 3)
	for _, e := range edges {
		require.True(t, e.Closed())
		require.Equal(t, 1, endpointsNear(e, center, 1e-6),
			"each edge is a ray out of the single Voronoi vertex")
	}
}

// Vertical site pair: the bisector is the horizontal line midway between
// the foci, entering as an open ray whose `a` endpoint keeps the
// minus-infinity sentinel while `b` is closed far beyond the box.
func TestScenarioVerticalPairHorizontalBisector(t *testing.T) {
	v := runSites(t, 400, 400, [][2]int{{100, 100}, {100, 300}})

	edges := distinctEdges(v)
	require.Len(t, edges, 1)
	e := edges[0]
	require.True(t, e.Closed())
	require.True(t, math.IsInf(e.A.X, -1), "ray anchor keeps the sentinel")
	require.InDelta(t, 200, e.A.Y, 1e-9)
	require.InDelta(t, 200, e.B.Y, 1e-6)
	require.Greater(t, e.B.X, float64(v.Bounds.Width), "far endpoint clears the box")
}

// Three cocircular sites: a single Voronoi vertex at the shared
// circumcenter with three incident edges — including the horizontal ray
// the vertically coincident pair contributes.
func TestScenarioCocircularTriple(t *testing.T) {
	v := runSites(t, 100, 100, [][2]int{{0, 10}, {10, 0}, {0, -10}})

	center := geom.PointF{X: 0, Y: 0}
	edges := distinctEdges(v)
	require.Len(t, edges, 3)
	for _, e := range edges {
		require.True(t, e.Closed())
		require.Equal(t, 1, endpointsNear(e, center, 1e-6))
	}
}

// A 10x10 integer grid at spacing 50: every interior cell closes into
// the axis-aligned square of side 50 centered on its site, despite the
// four-cocircular degeneracy at every interior grid vertex.
func TestScenarioGridOfSquares(t *testing.T) {
	v := New(600, 600)
	for x := 50; x <= 500; x += 50 {
		for y := 50; y <= 500; y += 50 {
			_, err := v.AddSite(x, y)
			require.NoError(t, err)
		}
	}
	sl := NewSweepLine()
	sl.Load(v)
	require.NoError(t, sl.Run())

	require.Len(t, v.Cells(), 100)
	for _, cell := range v.Cells() {
		for _, e := range cell.Edges() {
			require.True(t, e.Closed(), "open edge on cell at %v", cell.Focus)
		}
		interior := cell.Focus.X >= 100 && cell.Focus.X <= 450 &&
			cell.Focus.Y >= 100 && cell.Focus.Y <= 450
		if !interior {
			continue
		}
		require.True(t, cell.IsComplete(), "interior cell at %v incomplete", cell.Focus)

		corners := make(map[geom.Point]bool)
		for _, e := range cell.Edges() {
			corners[e.A.Round()] = true
			corners[e.B.Round()] = true
		}
		f := cell.Focus
		want := map[geom.Point]bool{
			{X: f.X - 25, Y: f.Y - 25}: true,
			{X: f.X - 25, Y: f.Y + 25}: true,
			{X: f.X + 25, Y: f.Y - 25}: true,
			{X: f.X + 25, Y: f.Y + 25}: true,
		}
		require.Equal(t, want, corners, "cell at %v is not the centered square", f)
	}
}

// Incremental scenario: run two sites, mutate the map, re-Load and run
// again. The second run discards the first diagram entirely and yields
// the three-cell diagram with its vertex at the new circumcenter.
func TestScenarioIncrementalReload(t *testing.T) {
	v := New(400, 400)
	_, err := v.AddSite(100, 100)
	require.NoError(t, err)
	_, err = v.AddSite(300, 100)
	require.NoError(t, err)

	sl := NewSweepLine()
	sl.Load(v)
	require.NoError(t, sl.Run())
	require.Len(t, distinctEdges(v), 1)

	_, err = v.AddSite(200, 50)
	require.NoError(t, err)
	sl.Load(v)
	require.NoError(t, sl.Run())

	require.Len(t, v.Cells(), 3)
	edges := distinctEdges(v)
	require.Len(t, edges, 3)
	vertex := geom.PointF{X: 200, Y: 175}
	for _, e := range edges {
		require.True(t, e.Closed())
		require.Equal(t, 1, endpointsNear(e, vertex, 1e-6))
	}
}

// hullSize returns the number of points on the convex hull of pts
// (Andrew's monotone chain; collinear boundary points excluded).
func hullSize(pts []geom.Point) int {
	sorted := append([]geom.Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	build := func(points []geom.Point) []geom.Point {
		var chain []geom.Point
		for _, p := range points {
			for len(chain) >= 2 &&
				geom.Cross(chain[len(chain)-2].ToF(), chain[len(chain)-1].ToF(), p.ToF()) <= 0 {
				chain = chain[:len(chain)-1]
			}
			chain = append(chain, p)
		}
		return chain
	}
	lower := build(sorted)
	reversed := append([]geom.Point(nil), sorted...)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	upper := build(reversed)
	return len(lower) + len(upper) - 2
}

// For n sites in general position the diagram has exactly 2n - 2 - h
// Voronoi vertices, h of them on the convex hull — the count of Delaunay
// triangles under Euler's formula. A Voronoi vertex is an endpoint shared
// by at least two edges; finish_edges endpoints are each unique to their
// edge.
func TestVoronoiVertexCountMatchesEuler(t *testing.T) {
	sites := [][2]int{
		{13, 17}, {71, 23}, {41, 59}, {89, 67},
		{23, 83}, {61, 97}, {97, 31}, {7, 53},
	}
	v := runSites(t, 200, 200, sites)

	counts := make(map[geom.PointF]int)
	for _, e := range distinctEdges(v) {
		require.True(t, e.Closed())
		counts[*e.A]++
		counts[*e.B]++
	}
	vertices := 0
	for _, n := range counts {
		if n >= 2 {
			vertices++
		}
	}

	pts := make([]geom.Point, len(sites))
	for i, s := range sites {
		pts[i] = geom.Point{X: s[0], Y: s[1]}
	}
	h := hullSize(pts)
	require.Equal(t, 2*len(sites)-2-h, vertices)
}

// diagramSignature reduces a finished diagram to a per-focus, order-free
// description of its edges, for comparing runs against each other.
func diagramSignature(v *Voronoi) map[geom.Point][]string {
	sig := make(map[geom.Point][]string)
	for _, cell := range v.Cells() {
		edges := make([]string, 0, len(cell.Edges()))
		for _, e := range cell.Edges() {
			a, b := e.A.Round(), e.B.Round()
			if b.Less(a) {
				a, b = b, a
			}
			edges = append(edges, fmt.Sprintf("%v-%v", a, b))
		}
		sort.Strings(edges)
		sig[cell.Focus] = edges
	}
	return sig
}

// The site queue orders events by focus, so the finished diagram cannot
// depend on the order sites were added in.
func TestRunIndependentOfInsertionOrder(t *testing.T) {
	sites := [][2]int{
		{13, 17}, {71, 23}, {41, 59}, {89, 67},
		{23, 83}, {61, 97}, {97, 31}, {7, 53},
	}
	forward := runSites(t, 200, 200, sites)

	backward := append([][2]int(nil), sites...)
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}
	reversed := runSites(t, 200, 200, backward)

	require.Equal(t, diagramSignature(forward), diagramSignature(reversed))
}
