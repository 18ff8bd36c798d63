package voronoi

import (
	"math"
	"sort"

	"github.com/xswzaq44321/Voronoi-Diagram/errs"
	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

// negInf marks the sentinel "minus infinity" x-coordinate of an open
// ray's `a` endpoint. The original source represents this with a very
// large magnitude float (LMAXVALUE); the Go port uses math.Inf(-1)
// directly since every consumer here already deals in float64.
// finish_edges fills the ray's `b` endpoint and leaves the sentinel in
// `a`, so a finished ray is closed but still reports isOpenRay.
var negInf = math.Inf(-1)

// Edge is an ordered pair of optional endpoints on the perpendicular
// bisector of two adjacent sites. Endpoints are filled at most once
// each, in whichever order the sweep discovers them; once both are
// set the edge is closed. An edge whose `a` endpoint is the negInf
// sentinel is a ray; finish_edges sets its `b` endpoint and the sentinel
// stays in `a`.
type Edge struct {
	A, B    *geom.PointF
	cellOne *Cell
	cellTwo *Cell
}

// newOpenEdge creates an edge with no endpoints set yet.
func newOpenEdge() *Edge {
	return &Edge{}
}

// setEndpoint fills the first empty endpoint slot with p. It panics if
// both slots are already full — that would mean the driver tried to close
// an edge a third time, which is an algorithm bug, not a recoverable
// condition.
func (e *Edge) setEndpoint(p geom.PointF) {
	if e.A == nil {
		e.A = &p
		return
	}
	if e.B == nil {
		e.B = &p
		return
	}
	panic("voronoi: edge already has both endpoints set")
}

// startRay sets the `a` endpoint to the minus-infinity sentinel, marking
// this edge as an open ray (used by the vertical-coincidence special case
// in site-event handling).
func (e *Edge) startRay(y float64) {
	e.A = &geom.PointF{X: negInf, Y: y}
}

// isOpenRay reports whether this edge's `a` endpoint is still the
// sentinel ray marker.
func (e *Edge) isOpenRay() bool {
	return e.A != nil && math.IsInf(e.A.X, -1)
}

// Closed reports whether both endpoints of the edge have been filled.
func (e *Edge) Closed() bool {
	return e.A != nil && e.B != nil
}

// registerWith records that this edge bounds cell c, appending it to c's
// boundary edge list. An edge between two adjacent cells is registered
// with both.
func (e *Edge) registerWith(c *Cell) {
	if e.cellOne == nil {
		e.cellOne = c
	} else if e.cellTwo == nil {
		e.cellTwo = c
	}
	c.edges = append(c.edges, e)
}

// Cells returns the two cells this edge borders, in registration order.
// A finished edge always has both set; consumers that build an external
// graph from a completed diagram (dcelgraph) use this to find the two
// faces a bisector separates.
func (e *Edge) Cells() (*Cell, *Cell) {
	return e.cellOne, e.cellTwo
}

// Cell (a.k.a. Polygon) is the region of the plane nearer to its
// focus site than to any other site. It accumulates boundary edges as the
// sweep discovers them and can organize those edges into a
// counter-clockwise fan once the diagram is complete.
type Cell struct {
	Focus     geom.Point
	edges     []*Edge
	organized bool
	handle    cellHandle
}

func newCell(focus geom.Point) *Cell {
	return &Cell{Focus: focus}
}

// Edges returns the cell's boundary edges in whatever order they were
// discovered, or — after Organize — in counter-clockwise order around the
// focus.
func (c *Cell) Edges() []*Edge {
	return c.edges
}

// clearEdges drops every boundary edge the cell has accumulated so far,
// used by SweepLine.Load when re-running the algorithm on a mutated site
// set (original source's clear_edges_of).
func (c *Cell) clearEdges() {
	c.edges = nil
	c.organized = false
}

// Unorganize marks the cell's edge fan as stale. Callers must call this
// (or rely on clearEdges) whenever edges change after a prior Organize.
func (c *Cell) Unorganize() {
	c.organized = false
}

// IsComplete reports whether every endpoint of every boundary edge is
// non-sentinel and the multiset of endpoints has every point occurring an
// even number of times — i.e. the edges form closed loops.
func (c *Cell) IsComplete() bool {
	counts := make(map[geom.Point]int)
	for _, e := range c.edges {
		if !e.Closed() || e.isOpenRay() {
			return false
		}
		counts[e.A.Round()]++
		counts[e.B.Round()]++
	}
	for _, n := range counts {
		if n%2 != 0 {
			return false
		}
	}
	return true
}

// Organize sorts the cell's boundary edges by the angle of their midpoint
// relative to the focus, canonicalizing each edge's endpoint order so
// walking the sorted edges traces the boundary counter-clockwise.
// Every edge must already have both endpoints set (ErrNotComplete
// otherwise); the edges need not form a closed loop, so the open-chain
// cells along the convex hull organize too, the way the renderer draws
// them. On a cell that also satisfies IsComplete, the sorted edges trace
// a counter-clockwise cycle around the focus. Ties on angle break by
// edge identity (stable sort over the discovery order), matching the
// original source's pairsort.
func (c *Cell) Organize() error {
	for _, e := range c.edges {
		if !e.Closed() {
			return errs.ErrNotComplete
		}
	}
	type scored struct {
		edge  *Edge
		angle float64
	}
	items := make([]scored, len(c.edges))
	focus := c.Focus.ToF()
	for i, e := range c.edges {
		ta := math.Atan2(e.A.Y-focus.Y, e.A.X-focus.X)
		tb := math.Atan2(e.B.Y-focus.Y, e.B.X-focus.X)
		angle := (ta + tb) / 2
		if math.Abs(ta-tb) > math.Pi {
			angle += math.Pi
			for angle > math.Pi {
				angle -= 2 * math.Pi
			}
			for angle <= -math.Pi {
				angle += 2 * math.Pi
			}
		}
		// Canonicalize a/b so that, behind the focus, wraparound doesn't
		// flip the walk direction.
		if angle < -math.Pi/2 || angle > math.Pi/2 {
			if tb > 0 && ta < 0 {
				ta += 2 * math.Pi
			} else if ta > 0 && tb < 0 {
				tb += 2 * math.Pi
			}
		}
		if ta >= tb {
			e.A, e.B = e.B, e.A
		}
		items[i] = scored{edge: e, angle: angle}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].angle < items[j].angle })
	for i, it := range items {
		c.edges[i] = it.edge
	}
	c.organized = true
	return nil
}

// Contains reports whether p lies within the cell's organized boundary
// (original source's Polygon::contains). Organize must have been called
// on a complete cell first.
func (c *Cell) Contains(p geom.Point) (bool, error) {
	if !c.organized {
		return false, errs.ErrNotOrganized
	}
	pf := p.ToF()
	for _, e := range c.edges {
		if geom.Cross(*e.A, *e.B, pf) < 0 {
			return false, nil
		}
	}
	return true, nil
}

// Distance returns the perpendicular distance from p to the infinite line
// through e's two endpoints (original source's Edge::distance).
func (e *Edge) Distance(p geom.Point) float64 {
	pf := p.ToF()
	num := math.Abs((e.B.Y-e.A.Y)*pf.X - (e.B.X-e.A.X)*pf.Y + e.B.X*e.A.Y - e.B.Y*e.A.X)
	den := math.Hypot(e.B.Y-e.A.Y, e.B.X-e.A.X)
	return num / den
}
