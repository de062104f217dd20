package hull

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// TestUnit tests normalization and the degenerate-length cutoff
func TestUnit(t *testing.T) {
	tests := []struct {
		name        string
		v           mgl64.Vec3
		expectValid bool
		expected    mgl64.Vec3
	}{
		{
			name:        "axis vector",
			v:           mgl64.Vec3{0, 3, 0},
			expectValid: true,
			expected:    mgl64.Vec3{0, 1, 0},
		},
		{
			name:        "diagonal vector",
			v:           mgl64.Vec3{1, 1, 1},
			expectValid: true,
			expected:    mgl64.Vec3{0.5773502691896258, 0.5773502691896258, 0.5773502691896258},
		},
		{
			name:        "already unit length",
			v:           mgl64.Vec3{-1, 0, 0},
			expectValid: true,
			expected:    mgl64.Vec3{-1, 0, 0},
		},
		{
			name:        "zero vector",
			v:           mgl64.Vec3{0, 0, 0},
			expectValid: false,
		},
		{
			name:        "below the degenerate cutoff",
			v:           mgl64.Vec3{1e-9, 0, 0},
			expectValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unit(tt.v)
			if Vec3Valid(got) != tt.expectValid {
				t.Fatalf("unit(%v) validity = %v, want %v", tt.v, Vec3Valid(got), tt.expectValid)
			}
			if !tt.expectValid {
				return
			}
			if !vec3ApproxEqual(got, tt.expected, 1e-12) {
				t.Errorf("unit(%v) = %v, want %v", tt.v, got, tt.expected)
			}
			if !isNormalized(got, 1e-12) {
				t.Errorf("unit(%v) has length %v, want 1", tt.v, got.Len())
			}
		})
	}
}

// TestVec3Valid tests NaN detection per component
func TestVec3Valid(t *testing.T) {
	if !Vec3Valid(mgl64.Vec3{1, -2, 3}) {
		t.Error("finite vector reported invalid")
	}
	if Vec3Valid(Vec3Unset) {
		t.Error("Vec3Unset reported valid")
	}

	// One poisoned component is enough.
	partial := mgl64.Vec3{1, 2, 3}
	partial[1] = Vec3Unset[1]
	if Vec3Valid(partial) {
		t.Error("vector with one NaN component reported valid")
	}
}
