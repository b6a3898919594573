package scene

import (
	"fmt"
	"math"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/loaders"
)

// Environment is a 2D image sampled by ray direction to supply the
// background color when a ray misses every object
type Environment struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewEnvironment wraps loaded image data as an environment map. The image
// is flipped vertically so v=0 maps to the bottom row.
func NewEnvironment(img *loaders.ImageData) *Environment {
	img.FlipVertical()
	return &Environment{
		Width:  img.Width,
		Height: img.Height,
		Pixels: img.Pixels,
	}
}

// LoadEnvironment loads an environment map from an image file
func LoadEnvironment(filename string) (*Environment, error) {
	img, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment map: %w", err)
	}
	return NewEnvironment(img), nil
}

// Sample returns the environment color along a direction using an
// equirectangular spherical mapping: the azimuth maps to u and the polar
// angle to v
func (e *Environment) Sample(direction core.Vec3) core.Vec3 {
	dir := direction.Normalize()

	u := math.Atan2(dir.Z, dir.X)/(2*math.Pi) + 0.5
	v := math.Acos(max(-1, min(1, dir.Y))) / math.Pi

	x := int(u * float64(e.Width))
	y := int(v * float64(e.Height))
	if x < 0 {
		x = 0
	} else if x >= e.Width {
		x = e.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= e.Height {
		y = e.Height - 1
	}

	return e.Pixels[y*e.Width+x]
}
