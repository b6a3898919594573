package scene

import (
	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/geometry"
	"github.com/ema2159/go-tinyraytracer/pkg/lights"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

// NewDefaultScene creates the classic scene: four spheres with ivory,
// glass, rubber and mirror materials over a checkered floor, lit by three
// point lights. The camera sits at the origin looking down -Z.
func NewDefaultScene() *Scene {
	s := &Scene{
		Background: core.NewVec3(0.2, 0.7, 0.8),
		CameraConfig: CameraConfig{
			Position: core.NewVec3(0, 0, 0),
			FOV:      1.0, // Radians
			Width:    1024,
			Height:   768,
		},
	}

	ivory := material.Ivory()
	glass := material.Glass()
	redRubber := material.RedRubber()
	mirror := material.Mirror()

	s.AddShape(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, glass))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber))
	s.AddShape(geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror))

	// Checkered floor: 20x20 rectangle at y=-4 in front of the camera
	s.AddShape(geometry.NewRect(
		core.NewVec3(-10, -4, -10),
		core.NewVec3(20, 0, 0),
		core.NewVec3(0, 0, -20),
		material.CheckerFloor(),
	))

	s.AddLight(lights.NewLight(core.NewVec3(-20, 20, 20), 1.5))
	s.AddLight(lights.NewLight(core.NewVec3(30, 50, -25), 1.8))
	s.AddLight(lights.NewLight(core.NewVec3(30, 20, 30), 1.7))

	return s
}
