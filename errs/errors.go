// Package errs collects the sentinel error values raised across the
// module, following the style katalvlaran-lvlath uses in its algorithm
// packages (package-level sentinels, wrapped with call-site context via
// fmt.Errorf("%w: ...")).
package errs

import "errors"

// ErrDuplicateSite is returned by Voronoi.AddSite when a cell with an
// equal focus already exists. The input is rejected outright; nothing is
// mutated.
var ErrDuplicateSite = errors.New("voronoi: a site already exists at that focus")

// ErrNotFound is returned by Voronoi.RemoveSite/MoveSite when the given
// handle does not refer to a live cell.
var ErrNotFound = errors.New("voronoi: cell handle is stale or unknown")

// ErrNotOrganized is returned by Cell.Contains when called before
// Cell.Organize has been run on a completed cell.
var ErrNotOrganized = errors.New("voronoi: cell has not been organized")

// ErrNotComplete is returned by Cell.Organize when invoked on a cell whose
// boundary edges are not all closed.
var ErrNotComplete = errors.New("voronoi: cell is not complete")

// InvariantViolation marks a programming-error class: a circle event
// referenced an arc that was not an interior arc of the beachline. It
// should be unreachable given correct event invalidation;
// SweepLine.Step recovers it from a panic and turns it into this typed
// error rather than letting the process crash the same way the original
// source's assertm() aborted the run.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "voronoi: invariant violation: " + e.Msg
}

// NewInvariantViolation constructs an InvariantViolation with the given
// message.
func NewInvariantViolation(msg string) *InvariantViolation {
	return &InvariantViolation{Msg: msg}
}
