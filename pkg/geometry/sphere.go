package geometry

import (
	"math"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere using the geometric
// solution: project the center onto the ray and compare the perpendicular
// distance against the radius.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	// Projection of that vector onto the ray direction
	proj := oc.Dot(ray.Direction)

	// Squared distance between the sphere center and the ray
	distSq := oc.LengthSquared() - proj*proj
	if distSq > s.Radius*s.Radius {
		return nil, false
	}

	// Distance from the projection foot to each intersection point
	halfChord := math.Sqrt(s.Radius*s.Radius - distSq)

	// Prefer the nearer root; fall back to the farther one when the
	// nearer is behind the origin (ray starts inside the sphere)
	root := proj - halfChord
	if root < tMin {
		root = proj + halfChord
	}
	if root < tMin || root > tMax {
		return nil, false
	}

	hit := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}
