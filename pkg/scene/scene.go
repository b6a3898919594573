package scene

import (
	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/geometry"
	"github.com/ema2159/go-tinyraytracer/pkg/lights"
)

// CameraConfig describes the viewpoint used to generate primary rays
type CameraConfig struct {
	Position core.Vec3 // Camera position
	FOV      float64   // Vertical field of view in radians
	Width    int       // Image width in pixels
	Height   int       // Image height in pixels
}

// Scene contains all the elements needed for rendering. Once constructed
// it is read-only for the duration of a render and safe to share across
// render workers.
type Scene struct {
	Shapes       []geometry.Shape // Objects in the scene, in intersection scan order
	Lights       []lights.Light   // Point lights
	Background   core.Vec3        // Flat background color, used when Environment is nil
	Environment  *Environment     // Optional environment map sampled on ray miss
	CameraConfig CameraConfig
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// PrimitiveCount returns the total number of primitives in the scene,
// counting each mesh triangle individually
func (s *Scene) PrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if mesh, ok := shape.(*geometry.TriangleMesh); ok {
			count += mesh.TriangleCount()
		} else {
			count++
		}
	}
	return count
}
