package voronoi

import (
	"github.com/xswzaq44321/Voronoi-Diagram/events"
	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

// siteEvent is the moment a site is first encountered by the sweep: key =
// (x, y) lexicographic, the same ordering geom.Point uses for sites.
type siteEvent struct {
	focus geom.Point
	cell  *Cell
}

func siteEventLess(a, b siteEvent) bool {
	return a.focus.Less(b.focus)
}

// circleEvent is the moment three consecutive arcs' foci define a circle
// tangent to the sweep line. x is the sweep parameter at which the middle
// arc vanishes; center is the resulting Voronoi vertex.
type circleEvent struct {
	x      float64
	center geom.PointF
	arc    *Arc
}

func circleEventLess(a, b circleEvent) bool {
	return a.x < b.x
}

// newSiteQueue/newCircleQueue wrap events.Queue with this package's
// concrete element types and comparators.
func newSiteQueue() *events.Queue[siteEvent]     { return events.New(siteEventLess) }
func newCircleQueue() *events.Queue[circleEvent] { return events.New(circleEventLess) }
