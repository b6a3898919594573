package lights

import (
	"github.com/ema2159/go-tinyraytracer/pkg/core"
)

// Light represents a point light source
type Light struct {
	Position  core.Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}
