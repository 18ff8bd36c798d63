package geom

import "errors"

// ErrCollinear is returned by Circumcenter when the three input points are
// collinear and therefore do not determine a circle. check-circle always
// filters this case via Cross before calling Circumcenter, so callers
// outside this package should never observe it.
var ErrCollinear = errors.New("geom: three points are collinear")
