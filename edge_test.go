package voronoi

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xswzaq44321/Voronoi-Diagram/errs"
	"github.com/xswzaq44321/Voronoi-Diagram/geom"
)

func newClosedEdge(a, b geom.PointF) *Edge {
	e := newOpenEdge()
	e.setEndpoint(a)
	e.setEndpoint(b)
	return e
}

func TestEdgeSetEndpointPanicsOnThird(t *testing.T) {
	e := newClosedEdge(geom.PointF{X: 0, Y: 0}, geom.PointF{X: 1, Y: 1})
	require.Panics(t, func() { e.setEndpoint(geom.PointF{X: 2, Y: 2}) })
}

func TestEdgeIsOpenRay(t *testing.T) {
	e := newOpenEdge()
	require.False(t, e.isOpenRay())
	e.startRay(5)
	require.True(t, e.isOpenRay())
	require.False(t, e.Closed())
}

func triangleCell(focus geom.Point, a, b, c geom.PointF) *Cell {
	cell := newCell(focus)
	e1 := newClosedEdge(a, b)
	e2 := newClosedEdge(b, c)
	e3 := newClosedEdge(c, a)
	e1.registerWith(cell)
	e2.registerWith(cell)
	e3.registerWith(cell)
	return cell
}

func TestCellIsCompleteAndOrganize(t *testing.T) {
	cell := triangleCell(geom.Point{X: 0, Y: 0},
		geom.PointF{X: 2, Y: 0}, geom.PointF{X: -1, Y: 2}, geom.PointF{X: -1, Y: -2})
	require.True(t, cell.IsComplete())
	require.NoError(t, cell.Organize())
	require.Len(t, cell.Edges(), 3)
}

func TestCellOrganizeRejectsIncomplete(t *testing.T) {
	cell := newCell(geom.Point{X: 0, Y: 0})
	e := newOpenEdge()
	e.setEndpoint(geom.PointF{X: 1, Y: 0})
	e.registerWith(cell)
	require.False(t, cell.IsComplete())
	require.ErrorIs(t, cell.Organize(), errs.ErrNotComplete)
}

func TestCellContainsRequiresOrganize(t *testing.T) {
	cell := triangleCell(geom.Point{X: 0, Y: 0},
		geom.PointF{X: 2, Y: 0}, geom.PointF{X: -1, Y: 2}, geom.PointF{X: -1, Y: -2})

	_, err := cell.Contains(geom.Point{X: 0, Y: 0})
	require.ErrorIs(t, err, errs.ErrNotOrganized)

	require.NoError(t, cell.Organize())
	inside, err := cell.Contains(geom.Point{X: 0, Y: 0})
	require.NoError(t, err)
	require.True(t, inside)

	outside, err := cell.Contains(geom.Point{X: 10, Y: 10})
	require.NoError(t, err)
	require.False(t, outside)
}

func TestEdgeDistance(t *testing.T) {
	e := newClosedEdge(geom.PointF{X: 0, Y: 0}, geom.PointF{X: 10, Y: 0})
	require.InDelta(t, 5, e.Distance(geom.Point{X: 5, Y: 5}), 1e-9)
	require.InDelta(t, 0, e.Distance(geom.Point{X: 3, Y: 0}), 1e-9)
}
