package voronoi

import (
	"github.com/xswzaq44321/Voronoi-Diagram/errs"
	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

// CellHandle is the external, opaque reference to a cell returned by
// AddSite and accepted by RemoveSite/MoveSite. It stays valid
// across unrelated mutations of the map; it becomes invalid the moment
// its own cell is removed (see RemoveSite).
type CellHandle = cellHandle

// Voronoi is the container of cells, one per site, that the sweepline
// driver fills in. Duplicate foci are rejected at AddSite.
type Voronoi struct {
	Bounds  geom.Rectangle
	arena   cellArena
	byFocus map[geom.Point]CellHandle
}

// New creates an empty Voronoi map bounded by the given width and height,
// with its origin at (0, 0).
func New(width, height int) *Voronoi {
	return NewWithBounds(geom.Rectangle{Width: width, Height: height})
}

// NewWithBounds creates an empty Voronoi map with an explicit bounding
// rectangle: original_source's Rectangle carries an origin, not just
// width/height.
func NewWithBounds(bounds geom.Rectangle) *Voronoi {
	return &Voronoi{
		Bounds:  bounds,
		byFocus: make(map[geom.Point]CellHandle),
	}
}

// AddSite inserts a new cell focused at (x, y) and returns its handle.
// Re-adding an existing focus reports ErrDuplicateSite and leaves the map
// unchanged.
func (v *Voronoi) AddSite(x, y int) (CellHandle, error) {
	focus := geom.Point{X: x, Y: y}
	if _, exists := v.byFocus[focus]; exists {
		return CellHandle{}, errs.ErrDuplicateSite
	}
	cell := newCell(focus)
	h := v.arena.alloc(cell)
	cell.handle = h
	v.byFocus[focus] = h
	return h, nil
}

// RemoveSite removes the cell referred to by h and releases its edges.
// It reports ErrNotFound if h does not refer to a live cell.
func (v *Voronoi) RemoveSite(h CellHandle) error {
	cell, ok := v.arena.get(h)
	if !ok {
		return errs.ErrNotFound
	}
	delete(v.byFocus, cell.Focus)
	v.arena.free_(h)
	return nil
}

// MoveSite relocates the site at h to (x, y). It is equivalent to
// RemoveSite followed by AddSite: the handle is invalidated and
// a new one is returned.
func (v *Voronoi) MoveSite(h CellHandle, x, y int) (CellHandle, error) {
	if err := v.RemoveSite(h); err != nil {
		return CellHandle{}, err
	}
	return v.AddSite(x, y)
}

// Cell resolves a handle to its live cell, if any.
func (v *Voronoi) Cell(h CellHandle) (*Cell, bool) {
	return v.arena.get(h)
}

// Cells returns every live cell in arena slot order. Without removals
// that is insertion order; a site added after a RemoveSite takes the most
// recently freed slot, and with it that slot's position, rather than
// going last. The slice is owned by the caller; mutating it does not
// affect the map.
func (v *Voronoi) Cells() []*Cell {
	return v.arena.liveInOrder()
}

// Len returns the number of live cells.
func (v *Voronoi) Len() int {
	return len(v.byFocus)
}
