package hull

import "github.com/go-gl/mathgl/mgl64"

// HullFace is one oriented triangle of the hull mesh. A, B and C index into
// the hull's point set, wound counter-clockwise when seen from outside.
// Normal is the unit outward normal, or Vec3Unset for zero-area triangles.
type HullFace struct {
	ID      int
	A, B, C int
	Normal  mgl64.Vec3
}

// FaceUnset is the "no face" value returned wherever an id resolves to
// nothing.
var FaceUnset = HullFace{ID: None, A: None, B: None, C: None, Normal: Vec3Unset}

// IsValid reports whether the face has an id and three real vertices.
func (f HullFace) IsValid() bool {
	return f.ID != None && f.A != None && f.B != None && f.C != None
}

// Flip reverses the winding (B and C swap) and negates the normal, turning
// the face's back into its front.
func (f *HullFace) Flip() {
	f.B, f.C = f.C, f.B
	f.Normal = f.Normal.Mul(-1)
}

// Edges returns the three directed edges AB, BC, CA in winding order.
func (f HullFace) Edges() [3]IndexPair {
	return [3]IndexPair{
		{P: f.A, Q: f.B},
		{P: f.B, Q: f.C},
		{P: f.C, Q: f.A},
	}
}

// ContainsVertex reports whether vi is one of the face's vertices. None
// never matches, so probing with an empty slot is safe.
func (f HullFace) ContainsVertex(vi int) bool {
	return vi != None && (f.A == vi || f.B == vi || f.C == vi)
}
