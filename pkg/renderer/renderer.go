package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	NumWorkers int // Number of parallel row workers (0 = use CPU count)
}

// Renderer renders a scene into a pixel buffer by casting one ray per
// pixel through the Whitted ray caster
type Renderer struct {
	scene   *scene.Scene
	camera  *Camera
	whitted *Whitted
	config  Config
	logger  core.Logger
}

// NewRenderer creates a renderer for the given scene
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:   s,
		camera:  NewCamera(s.CameraConfig),
		whitted: NewWhitted(s),
		config:  config,
		logger:  logger,
	}
}

// Render casts one ray per pixel and returns the resulting image. Rows
// are rendered in parallel: the scene is read-only during rendering and
// each worker writes a disjoint set of rows, so no locking is needed.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width := r.scene.CameraConfig.Width
	height := r.scene.CameraConfig.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	startTime := time.Now()

	eg, ctx := errgroup.WithContext(ctx)
	rows := make(chan int, height)
	for y := 0; y < height; y++ {
		rows <- y
	}
	close(rows)

	for worker := 0; worker < numWorkers; worker++ {
		eg.Go(func() error {
			for y := range rows {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := 0; x < width; x++ {
					ray := r.camera.GetRay(x, y)
					img.SetRGBA(x, y, vec3ToColor(r.whitted.CastRay(ray, 0)))
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:      width,
		Height:     height,
		Primitives: r.scene.PrimitiveCount(),
		Workers:    numWorkers,
		Elapsed:    time.Since(startTime),
	}
	r.logger.Printf("Rendered %dx%d (%d primitives) in %v with %d workers\n",
		stats.Width, stats.Height, stats.Primitives, stats.Elapsed, stats.Workers)

	return img, stats, nil
}

// vec3ToColor converts a color vector to 8-bit RGBA, clamping each channel
// to [0, 1]. This is the only place output colors are clamped.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
