// Package hull computes convex hulls of 3D point sets with an incremental
// face-flipping algorithm of the quickhull family.
//
// Construction seeds a tetrahedron from extreme points, then repeatedly takes
// a face that still has points in front of it, walks the whole region of
// faces visible from the farthest such point, removes that region and
// stitches new faces from its horizon edges back to the point. The face mesh
// stays a closed outward-oriented 2-manifold throughout, and the set of
// candidate outside points only ever shrinks, so the loop terminates when no
// face sees an outside point.
//
// References:
//   - Barber, Dobkin, Huhdanpaa: "The Quickhull Algorithm for Convex Hulls" (1996)
//   - Preparata, Shamos: "Computational Geometry: An Introduction" (1985), ch. 3
package hull

import (
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// PlaneDistTol is the default plane-distance tolerance. A point closer
	// than this to a face plane counts as on the plane: it can never be
	// picked as a farthest point and never keeps a face in the work queue.
	PlaneDistTol = 1e-10

	// DefaultWorkers is the worker count used when no option overrides it.
	// One worker keeps construction fully sequential.
	DefaultWorkers = 1

	// minNormalLength is the vector length below which normalization gives
	// up and returns the unset sentinel instead of dividing.
	minNormalLength = 1e-8

	// parallelScanMinPoints is the outside-set size below which chunking a
	// farthest-point scan costs more than it saves.
	parallelScanMinPoints = 2048
)

// Option tunes hull construction.
type Option func(*config)

type config struct {
	tol     float64
	workers int
}

// WithTolerance overrides the plane-distance tolerance. Values at or below
// zero are ignored.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol > 0 {
			c.tol = tol
		}
	}
}

// WithWorkers sets how many goroutines a large farthest-point scan may use.
// The result is identical for any worker count. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// Hull is a finished convex hull: the point set it was built from plus the
// outward-oriented triangle mesh wrapped around it.
type Hull struct {
	pts []mgl64.Vec3
	reg *FaceRegistry
}

// New computes the convex hull of pts. It needs at least 4 points in general
// position; inputs that collapse to a point, line or plane fail with an
// error wrapping ErrDegenerateInput. The input slice is copied, never
// mutated, and indices in the result refer to it.
func New(pts []mgl64.Vec3, opts ...Option) (*Hull, error) {
	cfg := config{tol: PlaneDistTol, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(pts) < 4 {
		return nil, ErrTooFewPoints
	}

	b := builderPool.Get().(*builder)
	defer builderPool.Put(b)
	b.reset(pts, cfg)

	if err := b.compute(); err != nil {
		return nil, err
	}
	return &Hull{pts: b.pts, reg: b.reg}, nil
}

// NumPoints returns how many points the hull was built from.
func (h *Hull) NumPoints() int {
	return len(h.pts)
}

// Point returns the point with the given index; ok is false out of range.
func (h *Hull) Point(i int) (mgl64.Vec3, bool) {
	if i < 0 || i >= len(h.pts) {
		return Vec3Unset, false
	}
	return h.pts[i], true
}

// NumFaces returns the number of triangles in the mesh.
func (h *Hull) NumFaces() int {
	return h.reg.Len()
}

// Faces returns the mesh triangles in ascending id order.
func (h *Hull) Faces() []HullFace {
	return h.reg.Faces()
}

// FaceIndices returns the mesh as a freshly allocated flat buffer of vertex
// indices, three per triangle in ascending face id order.
func (h *Hull) FaceIndices() []int {
	faces := h.reg.Faces()
	out := make([]int, 0, 3*len(faces))
	for _, f := range faces {
		out = append(out, f.A, f.B, f.C)
	}
	return out
}

// Vertices returns the sorted indices of the points the mesh actually uses.
// Points inside the hull, or on it but not needed by any face, are absent.
func (h *Hull) Vertices() []int {
	seen := make(map[int]bool)
	for _, f := range h.reg.faces {
		seen[f.A] = true
		seen[f.B] = true
		seen[f.C] = true
	}

	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// FaceCenter returns the centroid of a face's three vertices, or Vec3Unset
// when the face refers to vertices this hull does not have.
func (h *Hull) FaceCenter(f HullFace) mgl64.Vec3 {
	a, aok := h.Point(f.A)
	b, bok := h.Point(f.B)
	c, cok := h.Point(f.C)
	if !aok || !bok || !cok {
		return Vec3Unset
	}
	return a.Add(b).Add(c).Mul(1.0 / 3.0)
}

// builder carries the in-progress hull plus the scratch buffers one
// expansion iteration reuses. Builders are recycled through a pool.
type builder struct {
	pts     []mgl64.Vec3
	reg     *FaceRegistry
	outside outsideSet
	workers int

	faceQ       []int       // FIFO of face ids awaiting a farthest-point test
	popQ        []int       // flood frontier inside one expansion
	horizon     []IndexPair // directed horizon edges of the current cavity
	popped      []HullFace  // faces removed by the current flood
	created     []HullFace  // faces stitched onto the current horizon
	removals    []int       // outside points to drop after the update
	recheck     []int       // outside points owed a re-test against created faces
	scanResults []scanResult
}

var builderPool = sync.Pool{
	New: func() interface{} {
		return &builder{}
	},
}

// reset prepares a pooled builder for a fresh run. The points copy and the
// registry are allocated anew because the finished Hull keeps them; the
// scratch buffers are reused.
func (b *builder) reset(pts []mgl64.Vec3, cfg config) {
	b.pts = append([]mgl64.Vec3(nil), pts...)
	b.reg = NewFaceRegistry(b.pts, cfg.tol)
	b.workers = cfg.workers
	b.outside.reset(len(b.pts))

	b.faceQ = b.faceQ[:0]
	b.popQ = b.popQ[:0]
	b.horizon = b.horizon[:0]
	b.popped = b.popped[:0]
	b.created = b.created[:0]
	b.removals = b.removals[:0]
	b.recheck = b.recheck[:0]

	if cap(b.scanResults) < b.workers {
		b.scanResults = make([]scanResult, b.workers)
	}
	b.scanResults = b.scanResults[:b.workers]
}

// compute runs the expansion loop until no face has an outside point in
// front of it.
func (b *builder) compute() error {
	if err := b.seedSimplex(); err != nil {
		return err
	}

	for len(b.faceQ) > 0 {
		id := b.faceQ[0]
		b.faceQ = b.faceQ[1:]

		// The face may have been swallowed by an earlier cavity.
		face, ok := b.reg.Face(id)
		if !ok {
			continue
		}
		// A face with nothing beyond tolerance in front of it is settled.
		farPt, farIdx, ok := b.farthestPoint(face)
		if !ok {
			continue
		}

		b.floodCavity(id, farPt)
		if err := b.stitchHorizon(farIdx); err != nil {
			return err
		}
		b.updateOutside()
	}
	return nil
}

// floodCavity pops every face visible from pt, flooding outward from the
// face with the given id, and records the directed horizon edges where
// visibility ends.
func (b *builder) floodCavity(id int, pt mgl64.Vec3) {
	b.popQ = append(b.popQ[:0], id)
	b.popped = b.popped[:0]
	b.horizon = b.horizon[:0]

	for len(b.popQ) > 0 {
		next := b.popQ[0]
		b.popQ = b.popQ[1:]

		face, edges, adjacent := b.reg.PopFace(next)
		if !face.IsValid() {
			// Already popped through another path of the flood.
			continue
		}
		b.popped = append(b.popped, face)

		for i := 0; i < 3; i++ {
			if !adjacent[i].IsValid() {
				continue
			}
			if b.reg.Visible(adjacent[i], pt) {
				b.popQ = append(b.popQ, adjacent[i].ID)
			} else {
				// The neighbor keeps standing: this edge is on the horizon.
				b.horizon = append(b.horizon, edges[i])
			}
		}
	}
}

// stitchHorizon closes the cavity with a fan of new faces from the apex
// point to each horizon edge. Each edge keeps the direction its popped face
// gave it, which winds every new face outward without consulting any
// interior point.
func (b *builder) stitchHorizon(apex int) error {
	b.created = b.created[:0]
	for _, edge := range b.horizon {
		face, err := b.reg.AddFace(apex, edge.P, edge.Q)
		if err != nil {
			return err
		}
		b.faceQ = append(b.faceQ, face.ID)
		b.created = append(b.created, face)
	}
	return nil
}

// updateOutside reclassifies outside points after a cavity rebuild. Vertices
// of popped faces are done. Points that could see a popped face survive only
// if they can still see one of the created faces. Points no popped face
// could see were never challenged and keep their status.
func (b *builder) updateOutside() {
	b.removals = b.removals[:0]
	b.recheck = b.recheck[:0]

	for _, pi := range b.outside.indices {
		pt := b.pts[pi]
		for _, face := range b.popped {
			if face.ContainsVertex(pi) {
				b.removals = append(b.removals, pi)
				break
			}
			if b.reg.Visible(face, pt) {
				b.recheck = append(b.recheck, pi)
				break
			}
		}
	}

	for _, pi := range b.recheck {
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

	sort.Ints(b.removals)
	b.outside.remove(b.removals)
}
