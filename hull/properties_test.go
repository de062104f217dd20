package hull

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// requireHullInvariants asserts the structural properties every finished
// hull has: a closed triangle mesh with the Euler characteristic of a
// sphere, unit outward normals, and no input point in front of any face.
func requireHullInvariants(t *testing.T, h *Hull) {
	t.Helper()

	faces := h.Faces()
	require.NotEmpty(t, faces)

	counts := meshEdgeCounts(faces)
	for edge, n := range counts {
		require.Equalf(t, 2, n, "faces bordering edge %v", edge)
	}

	v := len(h.Vertices())
	e := len(counts)
	f := len(faces)
	require.Equal(t, 2*e, 3*f, "directed edge tally of a triangle mesh")
	require.Equal(t, 2, v-e+f, "euler characteristic")

	for _, vi := range h.Vertices() {
		require.GreaterOrEqual(t, vi, 0)
		require.Less(t, vi, h.NumPoints())
	}

	for _, face := range faces {
		require.Truef(t, isNormalized(face.Normal, 1e-9),
			"face %d normal %v", face.ID, face.Normal)
		for _, vi := range []int{face.A, face.B, face.C} {
			pt, ok := h.Point(vi)
			require.True(t, ok)
			require.InDeltaf(t, 0, h.reg.PlaneDist(face, pt), 1e-9,
				"vertex %d off the plane of its face %d", vi, face.ID)
		}
		for i := 0; i < h.NumPoints(); i++ {
			pt, ok := h.Point(i)
			require.True(t, ok)
			require.LessOrEqualf(t, h.reg.PlaneDist(face, pt), h.reg.tol,
				"point %d in front of face %d", i, face.ID)
		}
	}
}

func TestHullInvariantsRandomClouds(t *testing.T) {
	for _, n := range []int{8, 64, 512, 4096} {
		t.Run(fmt.Sprintf("%dpoints", n), func(t *testing.T) {
			h, err := New(randomCloud(n, int64(n)))
			require.NoError(t, err)
			requireHullInvariants(t, h)
		})
	}
}

func TestHullInvariantsSpherePoints(t *testing.T) {
	// On a sphere every point is extreme, so all of them must survive into
	// the mesh.
	r := rand.New(rand.NewSource(5))
	pts := make([]mgl64.Vec3, 500)
	for i := range pts {
		pts[i] = unit(mgl64.Vec3{r.NormFloat64(), r.NormFloat64(), r.NormFloat64()})
	}

	h, err := New(pts)
	require.NoError(t, err)
	requireHullInvariants(t, h)
	require.Len(t, h.Vertices(), len(pts))
}

// TestHullIdempotent rebuilds a hull from its own vertex points. The vertex
// and face counts must survive the round trip even though face ids and
// triangulation order need not.
func TestHullIdempotent(t *testing.T) {
	first, err := New(randomCloud(1000, 17))
	require.NoError(t, err)

	verts := first.Vertices()
	pts := make([]mgl64.Vec3, 0, len(verts))
	for _, vi := range verts {
		pt, ok := first.Point(vi)
		require.True(t, ok)
		pts = append(pts, pt)
	}

	second, err := New(pts)
	require.NoError(t, err)
	requireHullInvariants(t, second)
	require.Len(t, second.Vertices(), len(verts))
	require.Equal(t, first.NumFaces(), second.NumFaces())
}

// TestHullSwallowsInterior wraps a noise cloud in a strictly larger cube.
// Only the cube corners may surface in the mesh.
func TestHullSwallowsInterior(t *testing.T) {
	pts := randomCloud(256, 23)
	base := len(pts)
	for _, x := range []float64{-2, 2} {
		for _, y := range []float64{-2, 2} {
			for _, z := range []float64{-2, 2} {
				pts = append(pts, mgl64.Vec3{x, y, z})
			}
		}
	}

	h, err := New(pts)
	require.NoError(t, err)
	requireHullInvariants(t, h)

	require.Equal(t, 12, h.NumFaces())
	want := []int{base, base + 1, base + 2, base + 3, base + 4, base + 5, base + 6, base + 7}
	require.Equal(t, want, h.Vertices())
}

// TestWithToleranceFlattens bumps one point a hair above a cube face. The
// default tolerance resolves the bump into an extra vertex; a coarser one
// flattens it into the face.
func TestWithToleranceFlattens(t *testing.T) {
	pts := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		{0.5, 0.5, 1 + 1e-6},
	}

	sharp, err := New(pts)
	require.NoError(t, err)
	requireHullInvariants(t, sharp)
	require.Equal(t, 14, sharp.NumFaces())
	require.Contains(t, sharp.Vertices(), 8)

	flat, err := New(pts, WithTolerance(1e-3))
	require.NoError(t, err)
	requireHullInvariants(t, flat)
	require.Equal(t, 12, flat.NumFaces())
	require.NotContains(t, flat.Vertices(), 8)
}
