package geometry

import (
	"math"
	"testing"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

// newTestMesh builds two parallel triangles at z=-2 and z=-5
func newTestMesh(options *MeshOptions) *TriangleMesh {
	vertices := []core.Vec3{
		{X: -1, Y: -1, Z: -2}, {X: 1, Y: -1, Z: -2}, {X: 0, Y: 1, Z: -2},
		{X: -1, Y: -1, Z: -5}, {X: 1, Y: -1, Z: -5}, {X: 0, Y: 1, Z: -5},
	}
	faces := []int{0, 1, 2, 3, 4, 5}
	return NewTriangleMesh(vertices, faces, material.Glass(), options)
}

func TestTriangleMesh_Hit_Nearest(t *testing.T) {
	mesh := newTestMesh(nil)
	if mesh.TriangleCount() != 2 {
		t.Fatalf("Expected 2 triangles, got %d", mesh.TriangleCount())
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := mesh.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected nearest triangle at t=2, got t=%f", hit.T)
	}
}

func TestTriangleMesh_Hit_Miss(t *testing.T) {
	mesh := newTestMesh(nil)
	ray := core.NewRay(core.NewVec3(5, 5, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := mesh.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestTriangleMesh_ScaleAndOffset(t *testing.T) {
	mesh := newTestMesh(&MeshOptions{
		Scale:  2.0,
		Offset: core.NewVec3(0, 0, -1),
	})

	// The near triangle moves from z=-2 to z=-5
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := mesh.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("Expected scaled triangle at t=5, got t=%f", hit.T)
	}
}

func TestTriangleMesh_InvalidFaces(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-multiple-of-3 face indices")
		}
	}()
	NewTriangleMesh([]core.Vec3{{}, {}, {}}, []int{0, 1}, material.Glass(), nil)
}
