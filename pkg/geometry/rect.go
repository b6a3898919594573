package geometry

import (
	"math"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

// Rect represents a finite rectangle defined by a corner and two edge
// vectors. The normal follows the right-hand rule from U to V.
type Rect struct {
	Corner   core.Vec3 // Rectangle corner point
	U        core.Vec3 // Edge vector along the first side
	V        core.Vec3 // Edge vector along the second side
	Material *material.Material

	normal  core.Vec3 // Cached unit normal, cross(U, V)
	uLen    float64   // Cached edge lengths
	vLen    float64
	uDir    core.Vec3 // Cached edge directions
	vDir    core.Vec3
}

// NewRect creates a new rectangle from a corner and two edge vectors
func NewRect(corner, u, v core.Vec3, mat *material.Material) *Rect {
	return &Rect{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		normal:   u.Cross(v).Normalize(),
		uLen:     u.Length(),
		vLen:     v.Length(),
		uDir:     u.Normalize(),
		vDir:     v.Normalize(),
	}
}

// Hit tests if a ray intersects with the rectangle. The ray is first
// intersected with the plane containing the rectangle, then the hit point
// is projected onto the edge vectors and rejected if it falls outside.
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(r.normal)

	// Ray is parallel to the rectangle's plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := r.Corner.Subtract(ray.Origin).Dot(r.normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	// Project the hit point onto the edge directions and check bounds
	hitPoint := ray.At(t)
	toHit := hitPoint.Subtract(r.Corner)
	uProj := toHit.Dot(r.uDir)
	vProj := toHit.Dot(r.vDir)
	if uProj < 0 || uProj > r.uLen || vProj < 0 || vProj > r.vLen {
		return nil, false
	}

	hit := &HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, r.normal)

	return hit, true
}
