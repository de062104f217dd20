package hull

import (
	"errors"
	"fmt"
)

// Error kinds. Every construction failure wraps one of these two, so callers
// can route on errors.Is without matching message text.
var (
	// ErrDegenerateInput covers point sets no tetrahedron can be built from:
	// too few points, or all of them coincident, collinear or coplanar.
	ErrDegenerateInput = errors.New("hull: degenerate input")

	// ErrInvariant reports mesh corruption detected mid-construction. A hull
	// that trips this is abandoned; no partial result is returned.
	ErrInvariant = errors.New("hull: invariant violation")
)

// Specific failures, each wrapping its kind.
var (
	// ErrTooFewPoints: fewer than the 4 points a tetrahedron needs.
	ErrTooFewPoints = fmt.Errorf("%w: at least 4 points required", ErrDegenerateInput)

	// ErrPointsCoincident: every point occupies the same location.
	ErrPointsCoincident = fmt.Errorf("%w: points are coincident", ErrDegenerateInput)

	// ErrPointsCollinear: every point lies on one line.
	ErrPointsCollinear = fmt.Errorf("%w: points are collinear", ErrDegenerateInput)

	// ErrPointsCoplanar: every point lies on one plane.
	ErrPointsCoplanar = fmt.Errorf("%w: points are coplanar", ErrDegenerateInput)

	// ErrNonManifoldEdge: an edge ended up bordered by more than two faces.
	ErrNonManifoldEdge = fmt.Errorf("%w: edge bordered by more than two faces", ErrInvariant)
)
