package voronoi

import (
	"log"
	"math"

	"github.com/xswzaq44321/Voronoi-Diagram/errs"
	"github.com/xswzaq44321/Voronoi-Diagram/events"
	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

// state is the driver's state machine: Unloaded -> (Load) ->
// Idle -> (Step/Run) -> Running -> (queues empty) -> Finishing ->
// (finishEdges) -> Done. Load is callable from any state.
type state int

const (
	stateUnloaded state = iota
	stateIdle
	stateRunning
	stateFinishing
	stateDone
)

// DoneL is the sentinel Step returns once both event queues have
// drained, mirroring the original source's LMAXVALUE sweep-position
// sentinel.
var DoneL = math.Inf(1)

// Verbose enables per-event tracing of the driver through the standard
// log package, the same granularity the original source's debug prints
// had. Off by default so a run costs nothing when tracing is not wanted.
var Verbose bool

func logf(format string, args ...any) {
	if Verbose {
		log.Printf(format, args...)
	}
}

// SweepLine is Fortune's-algorithm driver: it consumes site and circle
// events, inserts/removes beachline arcs, emits edges, and finalizes
// open edges against the bounding box once both queues drain.
//
// It is single-threaded and cooperative: Step/Run never block
// on I/O, and no event suspends partway through — each event is atomic
// with respect to the queues and the beachline. The caller must not
// mutate the loaded Voronoi map between Load and a completed Run/Step
// sequence; any such mutation requires a fresh Load.
type SweepLine struct {
	L float64

	vmap    *Voronoi
	beach   *beachline
	siteQ   *events.Queue[siteEvent]
	circleQ *events.Queue[circleEvent]
	state   state
}

// NewSweepLine constructs an unloaded driver.
func NewSweepLine() *SweepLine {
	sl := &SweepLine{state: stateUnloaded}
	sl.beach = newBeachline(&sl.L)
	return sl
}

// Load snapshots vmap's cells, clears their edges, seeds the site-event
// queue, and clears the beachline and circle-event queue. Callable from
// any state; it always returns the driver to Idle.
func (sl *SweepLine) Load(v *Voronoi) {
	sl.vmap = v
	sl.L = 0
	sl.beach.clear()
	sl.siteQ = newSiteQueue()
	sl.circleQ = newCircleQueue()
	for _, cell := range v.Cells() {
		cell.clearEdges()
		sl.siteQ.Insert(siteEvent{focus: cell.Focus, cell: cell})
	}
	sl.state = stateIdle
}

// Step processes the next event and returns the new sweep position. Once
// both queues are empty it returns (DoneL, true) without touching the
// beachline further; callers that want the finished diagram must still
// call Run or FinishEdges once Step reports done.
//
// Step recovers an *errs.InvariantViolation panic — raised when a circle
// event references an arc that is not an interior arc, a programming
// error class that should be unreachable given correct event
// invalidation — and returns it as an error instead of crashing the
// process, leaving the driver's state inspectable.
func (sl *SweepLine) Step() (l float64, done bool, err error) {
	if sl.vmap == nil {
		return DoneL, true, nil
	}
	if sl.state == stateIdle {
		sl.state = stateRunning
	}
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*errs.InvariantViolation); ok {
				err = iv
				return
			}
			panic(r)
		}
	}()

	if sl.siteQ.Empty() && sl.circleQ.Empty() {
		sl.state = stateFinishing
		return DoneL, true, nil
	}

	useSite := false
	if !sl.siteQ.Empty() {
		if sl.circleQ.Empty() {
			useSite = true
		} else {
			siteTop, _ := sl.siteQ.Top()
			circleTop, _ := sl.circleQ.Top()
			// Site event wins ties deterministically: a circle event
			// fires first only under strict < on event-x.
			useSite = float64(siteTop.focus.X) <= circleTop.x
		}
	}

	if useSite {
		se, _ := sl.siteQ.PopMin()
		sl.L = float64(se.focus.X)
		sl.handleSiteEvent(se)
	} else {
		ce, _ := sl.circleQ.PopMin()
		sl.L = ce.x
		sl.handleCircleEvent(ce)
	}
	return sl.L, false, nil
}

// Run drives Step to completion and then finalizes open edges.
func (sl *SweepLine) Run() error {
	for {
		_, done, err := sl.Step()
		if err != nil {
			return err
		}
		if done {
			break
		}
	}
	sl.FinishEdges()
	return nil
}

// FinishEdges extends L to 2*(width+height), past the bounding box, and
// fills the remaining empty endpoint of each adjacent arc pair's shared
// edge with the two parabolas' intersection at that L: a finite point
// outside the bounding box.
func (sl *SweepLine) FinishEdges() {
	if sl.vmap == nil {
		return
	}
	sl.L = 2 * float64(sl.vmap.Bounds.Width+sl.vmap.Bounds.Height)
	for a := sl.beach.begin(); a != nil && a.next != nil; a = a.next {
		p := parabolaIntersect(a.Focus, a.next.Focus, sl.L)
		a.BottomEdge.setEndpoint(p)
	}
	sl.state = stateDone
}

// handleSiteEvent implements the site-event algorithm.
func (sl *SweepLine) handleSiteEvent(se siteEvent) {
	focus := se.focus.ToF()
	logf("site event at %v", se.focus)

	if sl.beach.empty() {
		sl.beach.insertSole(newArc(focus, se.cell))
		return
	}

	above := sl.beach.findArcAbove(focus.Y)

	if above.Focus.X == focus.X {
		// Vertical-coincidence special case: the bisector is horizontal.
		edge := newOpenEdge()
		edge.startRay((above.Focus.Y + focus.Y) / 2)
		edge.registerWith(above.Cell)
		edge.registerWith(se.cell)

		newArcNode := newArc(focus, se.cell)
		if focus.Y < above.Focus.Y {
			// newArcNode is upper: goes before `above`.
			newArcNode.BottomEdge = edge
			above.TopEdge = edge
			sl.beach.insertBefore(above, newArcNode)
		} else {
			above.BottomEdge = edge
			newArcNode.TopEdge = edge
			sl.beach.insertAfter(above, newArcNode)
		}
		return
	}

	sl.invalidateCircleEvent(above)

	// General case: split `above` into a prev-side
	// copy (keeps above's old TopEdge/upper neighbour) and a next-side
	// copy (keeps above's old BottomEdge/lower neighbour), with the new
	// arc N between them sharing one fresh edge on both of its sides.
	prevSide := newArc(above.Focus, above.Cell)
	nextSide := newArc(above.Focus, above.Cell)
	n := newArc(focus, se.cell)

	shared := newOpenEdge()
	shared.registerWith(above.Cell)
	shared.registerWith(se.cell)

	prevSide.TopEdge = above.TopEdge
	prevSide.BottomEdge = shared
	n.TopEdge = shared
	n.BottomEdge = shared
	nextSide.TopEdge = shared
	nextSide.BottomEdge = above.BottomEdge

	beforeAbove := above.prev
	sl.beach.erase(above)
	switch {
	case beforeAbove != nil:
		sl.beach.insertAfter(beforeAbove, prevSide)
	case sl.beach.empty():
		// `above` was the only arc in the beachline.
		sl.beach.insertSole(prevSide)
	default:
		// `above` was the head arc but others still follow it: splice
		// prevSide in front of the (now-first) remaining arc rather than
		// resetting head/tail via insertSole, which would orphan them.
		sl.beach.insertBefore(sl.beach.begin(), prevSide)
	}
	sl.beach.insertAfter(prevSide, n)
	sl.beach.insertAfter(n, nextSide)

	sl.checkCircle(prevSide)
	sl.checkCircle(nextSide)
}

// handleCircleEvent implements the circle-event algorithm.
func (sl *SweepLine) handleCircleEvent(ce circleEvent) {
	q := ce.arc
	if q.prev == nil || q.next == nil {
		panic(errs.NewInvariantViolation("circle event target arc is not interior"))
	}
	pi, pk := q.prev, q.next
	logf("circle event at x=%v center=%v", ce.x, ce.center)

	// The new edge between the arcs that become adjacent once q is
	// removed: Pi's edge-to-next and Pk's edge-to-prev are the same
	// object (one bisector shared by both).
	newEdge := newOpenEdge()
	newEdge.setEndpoint(ce.center)
	pi.BottomEdge = newEdge
	pk.TopEdge = newEdge
	newEdge.registerWith(pi.Cell)
	newEdge.registerWith(pk.Cell)

	q.TopEdge.setEndpoint(ce.center)
	q.BottomEdge.setEndpoint(ce.center)

	sl.invalidateCircleEvent(pi)
	sl.invalidateCircleEvent(pk)
	sl.beach.erase(q)

	sl.checkCircle(pi)
	sl.checkCircle(pk)
}

// checkCircle implements the check-circle subroutine.
func (sl *SweepLine) checkCircle(q *Arc) {
	sl.invalidateCircleEvent(q)

	if q.prev == nil || q.next == nil {
		return
	}
	p, r := q.prev, q.next
	if geom.Cross(p.Focus, q.Focus, r.Focus) >= 0 {
		return
	}
	center, err := geom.Circumcenter(p.Focus, q.Focus, r.Focus)
	if err != nil {
		// Collinear triple: caught by the cross-product test above in
		// every real case, kept here as a guard against a degenerate
		// Circumcenter call slipping past it.
		return
	}
	x := center.X + geom.Distance(q.Focus, center)
	h := sl.circleQ.Insert(circleEvent{x: x, center: center, arc: q})
	q.circleHandle = h
	q.hasCircle = true
}

func (sl *SweepLine) invalidateCircleEvent(a *Arc) {
	if a.hasCircle {
		sl.circleQ.Erase(a.circleHandle)
		a.hasCircle = false
	}
}
