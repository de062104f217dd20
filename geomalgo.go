// Package geomalgo bundles computational geometry routines behind flat,
// marshaling-friendly interfaces. The algorithms themselves live in
// subpackages; this package adapts them to plain coordinate buffers.
package geomalgo

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/xpnguyen/GeomAlgoLib/hull"
)

// ConvexHull computes the convex hull of n points packed as 3n coordinates
// (x0, y0, z0, x1, y1, z1, ...). It returns the hull as a freshly allocated
// flat buffer of 3F vertex indices, three per outward-wound triangle, each
// index referring to the packed input. The caller owns the returned buffer.
//
// At least 4 points are required and they must not all lie on one plane,
// line or location; degenerate input is reported with an error wrapping
// hull.ErrDegenerateInput and no buffer is produced.
func ConvexHull(coords []float64) ([]int, error) {
	if len(coords)%3 != 0 {
		return nil, fmt.Errorf("geomalgo: coordinate count %d is not a multiple of 3", len(coords))
	}

	pts := make([]mgl64.Vec3, len(coords)/3)
	for i := range pts {
		pts[i] = mgl64.Vec3{coords[3*i], coords[3*i+1], coords[3*i+2]}
	}

	h, err := hull.New(pts)
	if err != nil {
		return nil, err
	}
	return h.FaceIndices(), nil
}
