package renderer

import (
	"math"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/scene"
)

// Camera generates primary rays for rendering using a perspective
// projection looking down -Z
type Camera struct {
	position core.Vec3
	width    int
	height   int
	xFov     float64 // tan(fov/2) scaled by the aspect ratio
	yFov     float64 // tan(fov/2)
}

// NewCamera creates a camera from a scene camera configuration
func NewCamera(config scene.CameraConfig) *Camera {
	yFov := math.Tan(config.FOV / 2)
	xFov := yFov * float64(config.Width) / float64(config.Height)

	return &Camera{
		position: config.Position,
		width:    config.Width,
		height:   config.Height,
		xFov:     xFov,
		yFov:     yFov,
	}
}

// GetRay generates the ray through the center of pixel (x, y). Pixel
// (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(x, y int) core.Ray {
	i := (2*(float64(x)+0.5)/float64(c.width) - 1) * c.xFov
	j := -(2*(float64(y)+0.5)/float64(c.height) - 1) * c.yFov

	return core.NewRay(c.position, core.NewVec3(i, j, -1))
}
