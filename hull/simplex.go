package hull

import "math"

// seedSimplex bootstraps the hull with a tetrahedron spanning the point set:
// it selects four vertices, orients the four faces away from their centroid,
// prunes the outside set down to the points the tetrahedron does not already
// enclose, and queues the seed faces for expansion.
func (b *builder) seedSimplex() error {
	best, err := b.selectSimplex()
	if err != nil {
		return err
	}

	// Centroid of the four vertices, the only interior reference the
	// registry ever sees. Seed faces are flipped against it; every later
	// face takes its orientation from the horizon winding instead.
	center := b.pts[best[0]].
		Add(b.pts[best[1]]).
		Add(b.pts[best[2]]).
		Add(b.pts[best[3]]).
		Mul(1.0 / 4.0)

	seedFaces := [4][3]int{
		{best[0], best[1], best[2]},
		{best[0], best[2], best[3]},
		{best[1], best[2], best[3]},
		{best[0], best[1], best[3]},
	}

	b.created = b.created[:0]
	for _, tri := range seedFaces {
		face, err := b.reg.AddFaceOutward(tri[0], tri[1], tri[2], center)
		if err != nil {
			return err
		}
		b.created = append(b.created, face)
		b.faceQ = append(b.faceQ, face.ID)
	}

	b.pruneSeedOutside(best)
	return nil
}

// selectSimplex picks the four tetrahedron vertices:
//  1. Collect the extreme point of each axis direction (6 candidates).
//  2. First two vertices: the farthest-apart pair of those candidates.
//  3. Third vertex: the point farthest from the line through the first two.
//  4. Fourth vertex: the point farthest from the plane of the first three.
//
// Each stage keeps the first strict maximum it sees, so ties resolve to the
// lowest point index. A stage with no positive maximum means the input has
// collapsed by one dimension too many; the error names which.
func (b *builder) selectSimplex() ([4]int, error) {
	best := [4]int{None, None, None, None}
	pts := b.pts

	// Extreme point per axis direction: even slots track minima, odd slots
	// track maxima.
	boundIdx := [6]int{None, None, None, None, None, None}
	var boundVal [6]float64
	for i := range boundVal {
		if i%2 == 0 {
			boundVal[i] = math.MaxFloat64
		} else {
			boundVal[i] = -math.MaxFloat64
		}
	}
	for pi, p := range pts {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < boundVal[2*axis] {
				boundVal[2*axis] = p[axis]
				boundIdx[2*axis] = pi
			}
			if p[axis] > boundVal[2*axis+1] {
				boundVal[2*axis+1] = p[axis]
				boundIdx[2*axis+1] = pi
			}
		}
	}

	// Farthest-apart pair among the extreme candidates.
	maxD := -math.MaxFloat64
	for i := 0; i < len(boundIdx); i++ {
		for j := i + 1; j < len(boundIdx); j++ {
			sep := pts[boundIdx[j]].Sub(pts[boundIdx[i]])
			if d := sep.Dot(sep); d > maxD {
				maxD = d
				best[0], best[1] = boundIdx[i], boundIdx[j]
			}
		}
	}
	if maxD <= 0 {
		return best, ErrPointsCoincident
	}

	// Farthest point from the line through the first two.
	ref := pts[best[0]]
	lineDir := unit(pts[best[1]].Sub(ref))
	maxD = -math.MaxFloat64
	for pi, p := range pts {
		v := p.Sub(ref)
		perp := v.Sub(lineDir.Mul(lineDir.Dot(v)))
		if d := perp.Dot(perp); d > maxD {
			maxD = d
			best[2] = pi
		}
	}
	if maxD <= 0 {
		return best, ErrPointsCollinear
	}

	// Farthest point from the plane of the first three, either side.
	planeNormal := unit(pts[best[1]].Sub(ref).Cross(pts[best[2]].Sub(ref)))
	maxD = -math.MaxFloat64
	for pi, p := range pts {
		if d := math.Abs(planeNormal.Dot(p.Sub(ref))); d > maxD {
			maxD = d
			best[3] = pi
		}
	}
	if maxD <= 0 {
		return best, ErrPointsCoplanar
	}

	return best, nil
}

// pruneSeedOutside drops the simplex vertices and every point the seed
// tetrahedron already encloses. Expects the four seed faces in b.created.
func (b *builder) pruneSeedOutside(vertices [4]int) {
	b.removals = b.removals[:0]
	for _, pi := range b.outside.indices {
		if pi == vertices[0] || pi == vertices[1] || pi == vertices[2] || pi == vertices[3] {
			b.removals = append(b.removals, pi)
			continue
		}
		pt := b.pts[pi]
		visible := false
		for _, face := range b.created {
			if b.reg.Visible(face, pt) {
				visible = true
				break
			}
		}
		if !visible {
			b.removals = append(b.removals, pi)
		}
	}
	b.outside.remove(b.removals)
}
