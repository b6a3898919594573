package geometry

import (
	"math"
	"testing"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

// newTestTriangle builds a right triangle in the z=-3 plane facing +z
func newTestTriangle() *Triangle {
	return NewTriangle(
		core.NewVec3(0, 0, -3),
		core.NewVec3(2, 0, -3),
		core.NewVec3(0, 2, -3),
		material.RedRubber(),
	)
}

func TestTriangle_NormalFromWinding(t *testing.T) {
	triangle := newTestTriangle()
	if triangle.Normal().Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", triangle.Normal())
	}

	// Reversing the winding flips the normal
	reversed := NewTriangle(
		core.NewVec3(0, 0, -3),
		core.NewVec3(0, 2, -3),
		core.NewVec3(2, 0, -3),
		material.RedRubber(),
	)
	if reversed.Normal().Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", reversed.Normal())
	}
}

func TestTriangle_Hit(t *testing.T) {
	triangle := newTestTriangle()

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
		expectHit    bool
		expectedT    float64
	}{
		{
			name:         "interior hit",
			rayOrigin:    core.NewVec3(0.5, 0.5, 0),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    true,
			expectedT:    3.0,
		},
		{
			name:         "outside first edge",
			rayOrigin:    core.NewVec3(-0.5, 0.5, 0),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
		{
			name:         "outside hypotenuse",
			rayOrigin:    core.NewVec3(1.5, 1.5, 0),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
		{
			name:         "parallel to triangle plane",
			rayOrigin:    core.NewVec3(0.5, 0.5, 0),
			rayDirection: core.NewVec3(1, 0, 0),
			expectHit:    false,
		},
		{
			name:         "triangle behind ray",
			rayOrigin:    core.NewVec3(0.5, 0.5, -5),
			rayDirection: core.NewVec3(0, 0, -1),
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := triangle.Hit(ray, 0.001, 1000.0)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestTriangle_Hit_BackFace(t *testing.T) {
	triangle := newTestTriangle()

	// Approaching from behind still hits; the normal flips toward the ray
	ray := core.NewRay(core.NewVec3(0.5, 0.5, -6), core.NewVec3(0, 0, 1))
	hit, isHit := triangle.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected back face hit, but got miss")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
}
