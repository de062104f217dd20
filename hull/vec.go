package hull

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3Unset is the "no vector" sentinel. NaN components compare unequal to
// every finite triple and propagate through any arithmetic applied to them.
var Vec3Unset = mgl64.Vec3{math.NaN(), math.NaN(), math.NaN()}

// Vec3Valid reports whether v carries real coordinates (no NaN component).
func Vec3Valid(v mgl64.Vec3) bool {
	return !math.IsNaN(v[0]) && !math.IsNaN(v[1]) && !math.IsNaN(v[2])
}

// unit returns v scaled to length 1, or Vec3Unset when v is too short to
// carry a direction (zero-area cross products land here).
func unit(v mgl64.Vec3) mgl64.Vec3 {
	length := math.Sqrt(v.Dot(v))
	if length < minNormalLength {
		return Vec3Unset
	}
	return v.Mul(1.0 / length)
}
