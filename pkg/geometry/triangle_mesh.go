package geometry

import (
	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

// TriangleMesh represents a collection of triangles sharing one material.
// Intersection is a linear scan over the triangles keeping the nearest hit.
type TriangleMesh struct {
	triangles []*Triangle
}

// MeshOptions contains optional transforms applied to mesh vertices
type MeshOptions struct {
	Scale  float64   // Uniform scale factor (0 means no scaling)
	Offset core.Vec3 // Translation applied after scaling
}

// NewTriangleMesh creates a new triangle mesh from vertices and face
// indices (each group of 3 indices forms a triangle). Options may be nil.
func NewTriangleMesh(vertices []core.Vec3, faces []int, mat *material.Material, options *MeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("face indices must be a multiple of 3")
	}

	workingVertices := vertices
	if options != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		scale := options.Scale
		if scale == 0 {
			scale = 1
		}
		for i, vertex := range vertices {
			workingVertices[i] = vertex.Multiply(scale).Add(options.Offset)
		}
	}

	triangles := make([]*Triangle, 0, len(faces)/3)
	for i := 0; i+2 < len(faces); i += 3 {
		triangles = append(triangles, NewTriangle(
			workingVertices[faces[i]],
			workingVertices[faces[i+1]],
			workingVertices[faces[i+2]],
			mat,
		))
	}

	return &TriangleMesh{triangles: triangles}
}

// TriangleCount returns the number of triangles in the mesh
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}

// Hit tests the ray against every triangle and returns the nearest hit
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for _, triangle := range m.triangles {
		if hit, isHit := triangle.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
