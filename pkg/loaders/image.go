package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
)

// ImageData contains loaded image data as a row-major Vec3 color grid
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Pixels[y*Width + x]
}

// LoadImage loads a PNG or JPEG image and converts it to a Vec3 color grid
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// FlipVertical mirrors the image rows in place
func (d *ImageData) FlipVertical() {
	for y := 0; y < d.Height/2; y++ {
		top := d.Pixels[y*d.Width : (y+1)*d.Width]
		bottom := d.Pixels[(d.Height-1-y)*d.Width : (d.Height-y)*d.Width]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
}
