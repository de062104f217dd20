package main

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/xpnguyen/GeomAlgoLib"
	"github.com/xpnguyen/GeomAlgoLib/hull"
)

// ScenePoints builds a unit cube plus a handful of interior points the hull
// has to swallow.
func ScenePoints() []mgl64.Vec3 {
	pts := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 12; i++ {
		pts = append(pts, mgl64.Vec3{
			0.1 + 0.8*r.Float64(),
			0.1 + 0.8*r.Float64(),
			0.1 + 0.8*r.Float64(),
		})
	}
	return pts
}

func main() {
	pts := ScenePoints()

	h, err := hull.New(pts)
	if err != nil {
		fmt.Printf("hull construction failed: %v\n", err)
		return
	}

	fmt.Printf("input points:  %d\n", h.NumPoints())
	fmt.Printf("hull faces:    %d\n", h.NumFaces())
	fmt.Printf("hull vertices: %v\n", h.Vertices())
	fmt.Println()

	for _, face := range h.Faces() {
		fmt.Printf("face %2d: (%d %d %d) center=%v normal=%v\n",
			face.ID, face.A, face.B, face.C, h.FaceCenter(face), face.Normal)
	}
	fmt.Println()

	// The same hull through the flat-buffer interface.
	coords := make([]float64, 0, 3*len(pts))
	for _, p := range pts {
		coords = append(coords, p.X(), p.Y(), p.Z())
	}
	indices, err := geomalgo.ConvexHull(coords)
	if err != nil {
		fmt.Printf("flat interface failed: %v\n", err)
		return
	}
	fmt.Printf("flat buffer: %d indices, %d triangles\n", len(indices), len(indices)/3)

	// Degenerate input is reported, not computed around.
	square := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	if _, err := hull.New(square); err != nil {
		fmt.Printf("coplanar input: %v\n", err)
	}
}
