package core

import (
	"math"
	"testing"
)

func TestAABB_HitFromInside(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	// Ray starts inside and travels outward: entry at t=-1, exit at t=1
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))

	if !box.Hit(ray, NewInterval(0.001, 5)) {
		t.Error("Expected hit for range containing the exit distance")
	}
	if box.Hit(ray, NewInterval(-10, -2)) {
		t.Error("Expected miss when range max is below the entry distance")
	}
	if box.Hit(ray, NewInterval(2, 10)) {
		t.Error("Expected miss when range starts after the exit distance")
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 1, 1), NewVec3(-1, -1, -1))

	tests := []struct {
		name     string
		ray      Ray
		expected bool
	}{
		{"straight on", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), true},
		{"negative direction from far side", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1)), false},
		{"parallel inside slab", NewRay(NewVec3(0.5, 0.5, 5), NewVec3(0, 0, -1)), true},
		{"parallel outside slab", NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1)), false},
		{"diagonal", NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1)), true},
		{"diagonal miss", NewRay(NewVec3(5, 5, 5), NewVec3(-1, 1, -1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, NewInterval(0.001, math.Inf(1))); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_PadAndUnion(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 0, 1))
	padded := flat.Pad()
	if padded.Y.Size() <= 0 {
		t.Errorf("Expected padded Y extent > 0, got %g", padded.Y.Size())
	}
	if padded.X != flat.X || padded.Z != flat.Z {
		t.Error("Pad should not change axes that already have extent")
	}

	// A ray grazing the flat box along its plane normal still registers after padding
	ray := NewRay(NewVec3(0.5, 1, 0.5), NewVec3(0, -1, 0))
	if !padded.Hit(ray, NewInterval(0.001, math.Inf(1))) {
		t.Error("Expected padded flat box to be hit")
	}

	other := NewAABBFromPoints(NewVec3(2, 2, 2), NewVec3(3, 3, 3))
	union := flat.Union(other)
	if union.Min() != NewVec3(0, 0, 0) || union.Max() != NewVec3(3, 3, 3) {
		t.Errorf("Unexpected union %v", union)
	}
	if EmptyAABB.Union(other) != other {
		t.Error("Union with the empty box should be identity")
	}

	moved := other.Add(NewVec3(1, 0, -1))
	if moved.Min() != NewVec3(3, 2, 1) {
		t.Errorf("Unexpected translated box %v", moved)
	}
}
