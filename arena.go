package voronoi

// cellHandle is a generation-checked index into the Voronoi map's cell
// arena, replacing ad-hoc shared handles with a central arena. A handle
// becomes stale once RemoveSite/MoveSite frees its slot, which bumps the
// slot's generation — the arena then treats the old handle as unknown,
// even after a later AddSite reuses the slot, rather than silently
// returning the wrong cell.
//
// Edges are simpler: they are always owned by the one or two cells that
// reference them directly (plain *Edge pointers, as in the original
// source's shared_ptr<Edge>) and are never independently looked up by an
// external handle, so they get no arena of their own.
type cellHandle struct {
	index int
	gen   uint32
}

type cellSlot struct {
	cell *Cell
	gen  uint32
	live bool
}

// cellArena owns the live Cells of a Voronoi map. A slot freed by
// RemoveSite is marked dead, drops its cell and has its generation
// bumped, so stale handles are detected rather than dereferenced; the
// slot goes on a free list and is reused by the next alloc.
type cellArena struct {
	slots []cellSlot
	free  []int
}

func (a *cellArena) alloc(c *Cell) cellHandle {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].cell = c
		a.slots[idx].live = true
		return cellHandle{index: idx, gen: a.slots[idx].gen}
	}
	a.slots = append(a.slots, cellSlot{cell: c, live: true})
	return cellHandle{index: len(a.slots) - 1, gen: 0}
}

func (a *cellArena) get(h cellHandle) (*Cell, bool) {
	if h.index < 0 || h.index >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return s.cell, true
}

func (a *cellArena) free_(h cellHandle) {
	if h.index < 0 || h.index >= len(a.slots) {
		return
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return
	}
	s.live = false
	s.cell = nil
	s.gen++
	a.free = append(a.free, h.index)
}

func (a *cellArena) liveInOrder() []*Cell {
	out := make([]*Cell, 0, len(a.slots))
	for i := range a.slots {
		if a.slots[i].live {
			out = append(out, a.slots[i].cell)
		}
	}
	return out
}

