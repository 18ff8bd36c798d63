package voronoi

import (
	"math"

	"github.com/google/btree"
	"github.com/xswzaq44321/Voronoi-Diagram/events"
	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

// Arc is one parabolic-arc element of the beachline: a focus, the cell
// it belongs to, the two edges separating it from its upper and lower
// neighbours, and a handle into the circle-event queue for its pending
// "death" event, if any.
//
// Arcs form a doubly-linked sequence (prev/next) for O(1) neighbour
// access, and are simultaneously indexed by *beachline's btree for
// O(log n) site location — the same arc object is both a list node and a
// tree item.
type Arc struct {
	Focus      geom.PointF
	Cell       *Cell
	TopEdge    *Edge
	BottomEdge *Edge

	circleHandle events.Handle[circleEvent]
	hasCircle    bool

	prev, next *Arc

	// isProbe/probeY turn Arc into the "transparent comparator" key used
	// by findArcAbove: a probe is never inserted into the list or tree,
	// it exists only for the duration of one comparison against real
	// arcs (mirroring the original source's IterCompare, which overloads
	// comparison between a real iterator and a bare key_type).
	isProbe bool
	probeY  float64
}

func newArc(focus geom.PointF, cell *Cell) *Arc {
	return &Arc{Focus: focus, Cell: cell}
}

// Prev returns the arc immediately above this one in the beachline, or
// nil if this is the first arc.
func (a *Arc) Prev() *Arc { return a.prev }

// Next returns the arc immediately below this one in the beachline, or
// nil if this is the last arc.
func (a *Arc) Next() *Arc { return a.next }

// beachline maintains the ordered sequence of arcs P1..Pk: a doubly-linked
// list for neighbour access plus a btree keyed on the y-coordinate at
// which a probe site would land, evaluated against the *current* sweep
// position L.
type beachline struct {
	head, tail *Arc
	size       int
	tree       *btree.BTreeG[*Arc]
	l          *float64 // shared with the driver; read on every comparison
}

func newBeachline(l *float64) *beachline {
	bl := &beachline{l: l}
	bl.tree = btree.NewG(32, bl.less)
	return bl
}

// rangeStartY returns the y-coordinate at which a's interval on the
// beachline begins: the intersection of a with its previous neighbour,
// or -inf if a is the first arc. This is non-decreasing along the list;
// equal neighbouring keys occur only transiently (see less, which breaks
// such ties by list position).
func (bl *beachline) rangeStartY(a *Arc) float64 {
	if a.prev == nil {
		return math.Inf(-1)
	}
	return parabolaIntersectY(a.prev.Focus, a.Focus, *bl.l)
}

func (bl *beachline) less(a, b *Arc) bool {
	if a == b {
		return false
	}
	var ay, by float64
	if a.isProbe {
		ay = a.probeY
	} else {
		ay = bl.rangeStartY(a)
	}
	if b.isProbe {
		by = b.probeY
	} else {
		by = bl.rangeStartY(b)
	}
	if ay != by {
		return ay < by
	}
	if a.isProbe || b.isProbe {
		// A probe sitting exactly on an arc's range start compares equal
		// to it, so DescendLessOrEqual still visits that arc.
		return false
	}
	// Equal keys occur transiently: the instant a site splits an arc, the
	// new arc and the lower split copy both start at the site's y; at the
	// moment a circle event fires, the vanishing arc and its lower
	// neighbour share the circle center's y. The tree's order must agree
	// with the list's, so break the tie by list position.
	for x := a.next; x != nil; x = x.next {
		if x == b {
			return true
		}
	}
	return false
}

func (bl *beachline) empty() bool { return bl.size == 0 }
func (bl *beachline) count() int  { return bl.size }

func (bl *beachline) clear() {
	bl.head, bl.tail = nil, nil
	bl.size = 0
	bl.tree.Clear(false)
}

func (bl *beachline) begin() *Arc { return bl.head }
func (bl *beachline) end() *Arc   { return nil }

// findArcAbove returns the arc under which a new site at (L, y) would
// land: the unique arc whose y-range (rangeStartY(arc), rangeStartY(next))
// straddles y.
func (bl *beachline) findArcAbove(y float64) *Arc {
	if bl.size == 0 {
		return nil
	}
	probe := &Arc{isProbe: true, probeY: y}
	var found *Arc
	bl.tree.DescendLessOrEqual(probe, func(a *Arc) bool {
		found = a
		return false
	})
	if found == nil {
		found = bl.head
	}
	return found
}

func (bl *beachline) insertSole(a *Arc) {
	a.prev, a.next = nil, nil
	bl.head, bl.tail = a, a
	bl.size++
	bl.tree.ReplaceOrInsert(a)
}

// insertAfter splices a immediately after at in the list and indexes it
// in the tree. at must be non-nil (use insertSole for the first arc).
func (bl *beachline) insertAfter(at, a *Arc) {
	a.prev = at
	a.next = at.next
	if at.next != nil {
		at.next.prev = a
	} else {
		bl.tail = a
	}
	at.next = a
	bl.size++
	bl.tree.ReplaceOrInsert(a)
}

// insertBefore splices a immediately before at in the list and indexes
// it in the tree.
func (bl *beachline) insertBefore(at, a *Arc) {
	a.next = at
	a.prev = at.prev
	if at.prev != nil {
		at.prev.next = a
	} else {
		bl.head = a
	}
	at.prev = a
	bl.size++
	bl.tree.ReplaceOrInsert(a)
}

// erase removes a from both the list and the tree. The tree delete must
// happen while a is still linked: its key is evaluated against a.prev,
// and unlinking first would collapse the key to -inf and let Delete
// match the head arc instead. At the instant an arc vanishes its key and
// its next neighbour's agree only up to floating-point rounding, so the
// tree search can miss a; the index is then rebuilt from the list so no
// unlinked arc stays behind in it.
func (bl *beachline) erase(a *Arc) {
	_, indexed := bl.tree.Delete(a)
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		bl.head = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	} else {
		bl.tail = a.prev
	}
	a.prev, a.next = nil, nil
	bl.size--
	if !indexed {
		bl.tree.Clear(false)
		for x := bl.head; x != nil; x = x.next {
			bl.tree.ReplaceOrInsert(x)
		}
	}
}

// parabolaIntersectY returns the y-coordinate of the breakpoint between
// the arc focused at A and the arc focused at B that follows it (larger
// y), with directrix x = L: the lower of the two parabola intersections
// when B.X > A.X, the upper one when B.X < A.X. When A.X == B.X the
// parabolas meet once, at the y midpoint; the x of that point is finite
// unless both foci lie on the directrix (A.X == B.X == L) or coincide
// (A == B, forbidden by duplicate-site rejection), in which case the
// sentinel -inf is used for x.
func parabolaIntersectY(A, B geom.PointF, L float64) float64 {
	return parabolaIntersect(A, B, L).Y
}

// parabolaIntersect is parabolaIntersectY's full-point counterpart, used
// by finish_edges which needs both coordinates of the final intersection.
func parabolaIntersect(A, B geom.PointF, L float64) geom.PointF {
	ka, ha, ca := A.Y, (L+A.X)/2.0, -(L-A.X)/2.0
	kb, hb, cb := B.Y, (L+B.X)/2.0, -(L-B.X)/2.0

	a := cb - ca
	b := -2 * (cb*ka - ca*kb)
	c := -(4*ca*cb*(hb-ha) - cb*ka*ka + ca*kb*kb)

	if a == 0 {
		if b == 0 {
			// A.x == B.x == L (both foci on the directrix), or A == B,
			// which never legitimately occurs: duplicate foci are
			// rejected before they reach the beachline.
			return geom.PointF{X: math.Inf(-1), Y: (A.Y + B.Y) / 2}
		}
		y := -c / b
		x := (y-ka)*(y-ka)/(4*ca) + ha
		return geom.PointF{X: x, Y: y}
	}
	discriminant := b*b - 4*a*c
	y := (-b - math.Sqrt(discriminant)) / (2 * a)
	x := (y-ka)*(y-ka)/(4*ca) + ha
	return geom.PointF{X: x, Y: y}
}
