// Package dcelgraph materializes a finished Voronoi map into a
// doubly-connected edge list, for consumers that want a half-edge mesh
// (adjacent-face walks, twin traversal) rather than the sweep's own
// per-cell edge-fan representation.
//
// This is a post-processing step only: Build is meant to run once, after
// SweepLine.Run has completed. It is not part of the sweep's hot path.
package dcelgraph

import (
	"math"

	"github.com/quasoft/dcel"

	"github.com/xswzaq44321/Voronoi-Diagram/errs"
	voronoi "github.com/xswzaq44321/Voronoi-Diagram"
)

// Build walks every cell in v and assembles a *dcel.DCEL through the
// package's own NewFace/NewVertex/NewEdge factory methods — the
// construction surface the teacher's own DCEL usage
// (wanghanting-voronoi's Shamos.go: v.DCEL.NewFace(), v.DCEL.NewVertex(x,
// y), v.DCEL.NewEdge(face1, face2, vertex)) demonstrates, rather than
// building dcel.Vertex/Face/HalfEdge values as struct literals and
// appending them to the DCEL's slices by hand.
//
// Every cell gets a Face and every edge a twinned half-edge pair, but
// only cells that satisfy IsComplete — closed boundary loops — get a
// Next/Prev ring and a face HalfEdge. The convex-hull cells of any
// bounded diagram are open chains (this library has no boundary
// clipping to close them), and wiring an open chain into a cycle would
// fabricate vertex adjacencies that do not exist; their faces keep a
// nil HalfEdge instead.
//
// A half-edge's direction is derived from its own face's organized edge
// sequence: walking a complete cell counter-clockwise, each edge's
// destination is the vertex it shares with the next edge. The shared
// Edge.A/B fields are deliberately not trusted for direction — Organize
// canonicalizes them relative to whichever bordering cell organized
// last, and the two cells of an interior edge walk it in opposite
// directions.
//
// Edges missing an endpoint (a run that never reached FinishEdges) and
// edges still anchored at the minus-infinity ray sentinel are rejected
// with errs.ErrNotComplete, since the mesh has no representation for an
// unbounded ray.
func Build(v *voronoi.Voronoi) (*dcel.DCEL, error) {
	graph := dcel.NewDCEL()

	faces := make(map[*voronoi.Cell]*dcel.Face, v.Len())
	for _, cell := range v.Cells() {
		for _, e := range cell.Edges() {
			if !e.Closed() || math.IsInf(e.A.X, -1) {
				return nil, errs.ErrNotComplete
			}
		}
		face := graph.NewFace()
		face.Data = cell.Focus
		faces[cell] = face
	}

	key := func(x, y float64) [2]int {
		return [2]int{int(math.Round(x)), int(math.Round(y))}
	}
	vertices := make(map[[2]int]*dcel.Vertex)
	vertexFor := func(x, y float64) *dcel.Vertex {
		k := key(x, y)
		if vx, ok := vertices[k]; ok {
			return vx
		}
		vx := graph.NewVertex(k[0], k[1])
		vertices[k] = vx
		return vx
	}

	// One twinned half-edge pair per distinct Edge object, shared between
	// the two cells that reference it. Each half-edge's origin vertex is
	// stored in its Target field: it starts out as A for one half (the
	// A->B reading) and B for its twin (B->A); the ring pass below
	// re-orients the halves of complete faces.
	halves := make(map[*voronoi.Edge][2]*dcel.HalfEdge)
	halfFor := func(e *voronoi.Edge, face *dcel.Face) *dcel.HalfEdge {
		pair, seen := halves[e]
		if !seen {
			c1, c2 := e.Cells()
			h1, h2 := graph.NewEdge(faces[c1], faces[c2], vertexFor(e.A.X, e.A.Y))
			h1.Face = faces[c1]
			h2.Face = faces[c2]
			h1.Target = vertexFor(e.A.X, e.A.Y)
			h2.Target = vertexFor(e.B.X, e.B.Y)
			pair = [2]*dcel.HalfEdge{h1, h2}
			halves[e] = pair
		}
		if pair[0].Face == face {
			return pair[0]
		}
		return pair[1]
	}

	for _, cell := range v.Cells() {
		for _, e := range cell.Edges() {
			halfFor(e, faces[cell])
		}
	}

	ringed := make(map[*dcel.HalfEdge]bool)
	for _, cell := range v.Cells() {
		if !cell.IsComplete() {
			continue
		}
		if err := cell.Organize(); err != nil {
			return nil, err
		}
		face := faces[cell]
		edges := cell.Edges()
		ring := make([]*dcel.HalfEdge, len(edges))
		for i, e := range edges {
			ring[i] = halfFor(e, face)
		}
		for i, e := range edges {
			next := edges[(i+1)%len(edges)]
			// The vertex this edge shares with the next one in the walk is
			// this half-edge's destination, so its origin is the other
			// endpoint.
			ka, kb := key(e.A.X, e.A.Y), key(e.B.X, e.B.Y)
			origin := ka
			if kb != key(next.A.X, next.A.Y) && kb != key(next.B.X, next.B.Y) {
				origin = kb
			}
			ring[i].Target = vertexFor(float64(origin[0]), float64(origin[1]))
			ringed[ring[i]] = true
		}
		for i := range ring {
			ring[i].Next = ring[(i+1)%len(ring)]
			ring[i].Prev = ring[(i-1+len(ring))%len(ring)]
		}
		face.HalfEdge = ring[0]
	}

	// Halves owned by open-chain faces never went through a ring pass; if
	// the twin did, re-orient them so twins still run in opposite
	// directions.
	for e, pair := range halves {
		va := vertexFor(e.A.X, e.A.Y)
		vb := vertexFor(e.B.X, e.B.Y)
		for i, h := range pair {
			twin := pair[1-i]
			if ringed[h] || !ringed[twin] {
				continue
			}
			if twin.Target == va {
				h.Target = vb
			} else {
				h.Target = va
			}
		}
	}

	return graph, nil
}
