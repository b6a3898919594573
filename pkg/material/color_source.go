package material

import (
	"math"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
)

// ColorSource provides spatially-varying diffuse colors for materials
type ColorSource interface {
	// Evaluate returns the color at a 3D surface point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates two colors in a checkerboard pattern over the
// XZ plane, with 2x2 world-unit squares
type CheckerTexture struct {
	Color0 core.Vec3
	Color1 core.Vec3
}

// NewCheckerTexture creates a new checkerboard color source
func NewCheckerTexture(color0, color1 core.Vec3) *CheckerTexture {
	return &CheckerTexture{Color0: color0, Color1: color1}
}

// Evaluate returns one of the two colors based on the checker square the
// point falls in. The large offset keeps the parity stable for negative
// coordinates.
func (c *CheckerTexture) Evaluate(point core.Vec3) core.Vec3 {
	check := int(math.Floor(0.5*point.X+1000)) + int(math.Floor(0.5*point.Z+1000))
	if check%2 == 0 {
		return c.Color0
	}
	return c.Color1
}
