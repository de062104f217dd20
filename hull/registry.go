package hull

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceRegistry owns the live faces of a hull in progress. It assigns face
// ids, computes face normals, and maintains the edge map answering "which
// two faces border this edge". The mesh it describes is a closed 2-manifold
// between expansions: every edge is shared by exactly two faces.
type FaceRegistry struct {
	pts       []mgl64.Vec3
	tol       float64
	faces     map[int]HullFace
	edgeFaces map[IndexPair]IndexPair // canonical edge -> bordering face ids
	nextID    int
}

// NewFaceRegistry creates an empty registry over pts. tol is the plane
// distance below which a point counts as lying on a face plane.
func NewFaceRegistry(pts []mgl64.Vec3, tol float64) *FaceRegistry {
	return &FaceRegistry{
		pts:       pts,
		tol:       tol,
		faces:     make(map[int]HullFace),
		edgeFaces: make(map[IndexPair]IndexPair),
	}
}

// Len returns the number of live faces.
func (r *FaceRegistry) Len() int {
	return len(r.faces)
}

// AddFace registers the triangle (a, b, c), taking its orientation from the
// winding order alone: the normal is unit((b-a) x (c-a)), or Vec3Unset when
// the triangle has no area. The returned face carries the assigned id.
func (r *FaceRegistry) AddFace(a, b, c int) (HullFace, error) {
	return r.insert(r.newFace(a, b, c))
}

// AddFaceOutward registers the triangle (a, b, c) flipped, if necessary, so
// that its normal faces away from the given interior point. Only the seed
// tetrahedron needs this; every later face inherits its orientation from the
// horizon winding.
func (r *FaceRegistry) AddFaceOutward(a, b, c int, interior mgl64.Vec3) (HullFace, error) {
	face := r.newFace(a, b, c)
	if r.Visible(face, interior) {
		face.Flip()
	}
	return r.insert(face)
}

// Face returns the face with the given id. The second result is false when
// the id is unknown, which is distinct from a registered-but-broken face.
func (r *FaceRegistry) Face(id int) (HullFace, bool) {
	face, ok := r.faces[id]
	if !ok {
		return FaceUnset, false
	}
	return face, true
}

// PopFace removes the face with the given id and releases its three edge
// slots. It returns the removed face (FaceUnset when the id is already
// gone), the three directed edges, and a snapshot of the face left standing
// across each edge (FaceUnset where the far side was already popped).
func (r *FaceRegistry) PopFace(id int) (HullFace, [3]IndexPair, [3]HullFace) {
	edges := [3]IndexPair{PairUnset, PairUnset, PairUnset}
	adjacent := [3]HullFace{FaceUnset, FaceUnset, FaceUnset}

	face, ok := r.faces[id]
	if !ok {
		return FaceUnset, edges, adjacent
	}
	delete(r.faces, id)

	for i, edge := range face.Edges() {
		edges[i] = edge

		key := edge.Canonical()
		pair, ok := r.edgeFaces[key]
		if !ok || !pair.Contains(id) {
			continue
		}
		pair.Unset(id)
		if pair.Empty() {
			delete(r.edgeFaces, key)
		} else {
			r.edgeFaces[key] = pair
		}

		otherID := pair.P
		if otherID == None {
			otherID = pair.Q
		}
		if other, ok := r.faces[otherID]; ok {
			adjacent[i] = other
		}
	}
	return face, edges, adjacent
}

// PlaneDist returns the signed distance from pt to the face plane, positive
// on the side the normal points to.
func (r *FaceRegistry) PlaneDist(face HullFace, pt mgl64.Vec3) float64 {
	return pt.Sub(r.pts[face.A]).Dot(face.Normal)
}

// Visible reports whether pt lies in front of the face, strictly beyond
// tolerance. Faces without a usable normal are never visible, so degenerate
// triangles sit passively in the mesh until a flood removes them.
func (r *FaceRegistry) Visible(face HullFace, pt mgl64.Vec3) bool {
	if !Vec3Valid(face.Normal) {
		return false
	}
	return r.PlaneDist(face, pt) > r.tol
}

// Faces returns the live faces in ascending id order.
func (r *FaceRegistry) Faces() []HullFace {
	ids := make([]int, 0, len(r.faces))
	for id := range r.faces {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	faces := make([]HullFace, len(ids))
	for i, id := range ids {
		faces[i] = r.faces[id]
	}
	return faces
}

// newFace builds a face with a fresh id and a winding-order normal.
func (r *FaceRegistry) newFace(a, b, c int) HullFace {
	face := HullFace{ID: r.nextID, A: a, B: b, C: c}
	r.nextID++

	pa := r.pts[a]
	face.Normal = unit(r.pts[b].Sub(pa).Cross(r.pts[c].Sub(pa)))
	return face
}

// insert stores the face and claims a slot on each of its three edges.
func (r *FaceRegistry) insert(face HullFace) (HullFace, error) {
	r.faces[face.ID] = face

	for _, edge := range face.Edges() {
		key := edge.Canonical()

		// A missing entry must start as two empty slots. The zero value of
		// IndexPair would claim face id 0 already borders every new edge.
		pair, ok := r.edgeFaces[key]
		if !ok {
			pair = PairUnset
		}
		if !pair.Add(face.ID) {
			return FaceUnset, fmt.Errorf("edge (%d,%d): %w", edge.P, edge.Q, ErrNonManifoldEdge)
		}
		r.edgeFaces[key] = pair
	}
	return face, nil
}
