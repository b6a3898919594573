package renderer

import (
	"math"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/geometry"
	"github.com/ema2159/go-tinyraytracer/pkg/scene"
)

const (
	// MaxDepth is the recursion cutoff for reflection/refraction rays
	MaxDepth = 4

	// intersectLimit bounds the scene: hits beyond it fall through to
	// the background
	intersectLimit = 1000.0

	// selfHitBias offsets secondary ray origins and rejects hits closer
	// than this, so rays never re-hit their originating surface
	selfHitBias = 1e-3

	// ambientStrength scales the light-independent ambient term
	ambientStrength = 0.05
)

// Whitted is a recursive ray caster: local Phong shading plus mirror
// reflection and Snell refraction rays spawned up to MaxDepth. Holds only
// a read-only scene reference and is safe for concurrent use.
type Whitted struct {
	scene *scene.Scene
}

// NewWhitted creates a ray caster for the given scene
func NewWhitted(s *scene.Scene) *Whitted {
	return &Whitted{scene: s}
}

// CastRay returns the color seen along a ray. Top-level callers pass
// depth 0; recursion past MaxDepth returns the background.
func (w *Whitted) CastRay(ray core.Ray, depth int) core.Vec3 {
	if depth >= MaxDepth {
		return w.background(ray.Direction)
	}

	hit, isHit := w.sceneIntersect(ray)
	if !isHit {
		return w.background(ray.Direction)
	}

	return w.shade(ray, hit, depth)
}

// sceneIntersect linearly scans every shape and returns the nearest hit
// within the scene bounds
func (w *Whitted) sceneIntersect(ray core.Ray) (*geometry.HitRecord, bool) {
	var closestHit *geometry.HitRecord
	closestSoFar := intersectLimit

	for _, shape := range w.scene.Shapes {
		if hit, isHit := shape.Hit(ray, selfHitBias, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// background returns the environment map sample for a direction, or the
// scene's flat background color when no environment is configured
func (w *Whitted) background(direction core.Vec3) core.Vec3 {
	if w.scene.Environment != nil {
		return w.scene.Environment.Sample(direction)
	}
	return w.scene.Background
}

// shade computes the Phong local illumination at a hit point and adds the
// weighted reflection and refraction contributions. The weights are the
// material's albedo components; they are applied additively with no
// energy normalization.
func (w *Whitted) shade(ray core.Ray, hit *geometry.HitRecord, depth int) core.Vec3 {
	mat := hit.Material

	var diffuse, specular float64
	for _, light := range w.scene.Lights {
		// A light contributes nothing when an object occludes it
		if w.occluded(hit.Point, light.Position, hit.Normal) {
			continue
		}

		lightDir := light.Position.Subtract(hit.Point).Normalize()
		diffuse += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		reflected := reflect(lightDir, hit.Normal).Dot(ray.Direction)
		specular += math.Pow(math.Max(0, reflected), mat.SpecExponent) * light.Intensity
	}

	baseColor := mat.Color.Evaluate(hit.Point)
	color := baseColor.Multiply(diffuse*mat.Albedo[0] + ambientStrength)
	// Specular highlights are white, not modulated by the diffuse color
	color = color.Add(core.NewVec3(1, 1, 1).Multiply(specular * mat.Albedo[1]))

	if mat.Albedo[2] > 0 {
		reflectDir := reflect(ray.Direction, hit.Normal)
		reflectRay := core.Ray{
			Origin:    offsetOrigin(hit.Point, hit.Normal, reflectDir),
			Direction: reflectDir,
		}
		color = color.Add(w.CastRay(reflectRay, depth+1).Multiply(mat.Albedo[2]))
	}

	if mat.Albedo[3] > 0 {
		// Entering the surface goes from air into the material, exiting
		// goes the other way; the hit normal already faces the ray
		etaRatio := mat.RefractiveIndex
		if hit.FrontFace {
			etaRatio = 1.0 / mat.RefractiveIndex
		}
		if refractDir, ok := refract(ray.Direction, hit.Normal, etaRatio); ok {
			refractRay := core.Ray{
				Origin:    offsetOrigin(hit.Point, hit.Normal, refractDir),
				Direction: refractDir,
			}
			color = color.Add(w.CastRay(refractRay, depth+1).Multiply(mat.Albedo[3]))
		}
	}

	return color
}

// occluded reports whether any object blocks the segment between a surface
// point and a light position
func (w *Whitted) occluded(point, lightPosition, normal core.Vec3) bool {
	toLight := lightPosition.Subtract(point)
	lightDistance := toLight.Length()
	shadowRay := core.Ray{
		Origin:    offsetOrigin(point, normal, toLight),
		Direction: toLight.Multiply(1.0 / lightDistance),
	}

	for _, shape := range w.scene.Shapes {
		if hit, isHit := shape.Hit(shadowRay, selfHitBias, lightDistance); isHit && hit.T < lightDistance {
			return true
		}
	}
	return false
}

// offsetOrigin perturbs a secondary ray origin along the surface normal so
// the ray does not re-intersect the originating object
func offsetOrigin(point, normal, direction core.Vec3) core.Vec3 {
	if direction.Dot(normal) > 0 {
		return point.Add(normal.Multiply(selfHitBias))
	}
	return point.Subtract(normal.Multiply(selfHitBias))
}

// reflect mirrors a direction about a surface normal
func reflect(direction, normal core.Vec3) core.Vec3 {
	return direction.Subtract(normal.Multiply(2 * direction.Dot(normal)))
}

// refract bends a direction through a surface using Snell's law, with the
// normal facing the incoming direction and etaRatio = n1/n2. Returns false
// on total internal reflection.
func refract(direction, normal core.Vec3, etaRatio float64) (core.Vec3, bool) {
	cosIncident := math.Min(1.0, -direction.Dot(normal))

	k := 1 - etaRatio*etaRatio*(1-cosIncident*cosIncident)
	if k < 0 {
		// Total internal reflection, no refraction occurs
		return core.Vec3{}, false
	}

	refracted := direction.Multiply(etaRatio).
		Add(normal.Multiply(etaRatio*cosIncident - math.Sqrt(k)))
	return refracted.Normalize(), true
}
