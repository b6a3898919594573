package material

import (
	"github.com/ema2159/go-tinyraytracer/pkg/core"
)

// Material holds the Phong shading coefficients for a surface. Albedo
// weights the diffuse, specular, reflective and refractive terms in that
// order; the weights are independent and need not sum to 1. Materials are
// immutable value data shared by pointer among shapes with the same look.
type Material struct {
	Color           ColorSource // Diffuse color, solid or procedural
	Albedo          [4]float64  // Diffuse, specular, reflective, refractive weights
	SpecExponent    float64     // Phong specular exponent
	RefractiveIndex float64     // Index of refraction (>= 1), used when Albedo[3] > 0
}

// NewMaterial creates a material with a solid diffuse color
func NewMaterial(color core.Vec3, albedo [4]float64, specExponent, refractiveIndex float64) *Material {
	return &Material{
		Color:           NewSolidColor(color),
		Albedo:          albedo,
		SpecExponent:    specExponent,
		RefractiveIndex: refractiveIndex,
	}
}

// NewTexturedMaterial creates a material whose diffuse color varies with position
func NewTexturedMaterial(color ColorSource, albedo [4]float64, specExponent, refractiveIndex float64) *Material {
	return &Material{
		Color:           color,
		Albedo:          albedo,
		SpecExponent:    specExponent,
		RefractiveIndex: refractiveIndex,
	}
}

// Ivory creates a dull, slightly reflective material
func Ivory() *Material {
	return NewMaterial(core.NewVec3(0.4, 0.4, 0.3), [4]float64{0.6, 0.3, 0.1, 0.0}, 50, 1.0)
}

// RedRubber creates a matte red material with a soft highlight
func RedRubber() *Material {
	return NewMaterial(core.NewVec3(0.3, 0.1, 0.1), [4]float64{0.9, 0.1, 0.0, 0.0}, 10, 1.0)
}

// Mirror creates a near-perfect mirror material
func Mirror() *Material {
	return NewMaterial(core.NewVec3(1.0, 1.0, 1.0), [4]float64{0.0, 10.0, 0.8, 0.0}, 1425, 1.0)
}

// Glass creates a refractive glass material
func Glass() *Material {
	return NewMaterial(core.NewVec3(1.0, 1.0, 1.0), [4]float64{0.0, 0.5, 0.1, 0.8}, 125, 1.5)
}

// CheckerFloor creates the checkered floor material
func CheckerFloor() *Material {
	checker := NewCheckerTexture(core.NewVec3(0.3, 0.3, 0.3), core.NewVec3(0.3, 0.2, 0.1))
	return NewTexturedMaterial(checker, [4]float64{0.9, 0.1, 0.0, 0.0}, 10, 1.0)
}
