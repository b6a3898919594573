package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width      int           // Image width in pixels
	Height     int           // Image height in pixels
	Primitives int           // Number of primitives scanned per ray
	Workers    int           // Number of parallel row workers used
	Elapsed    time.Duration // Wall-clock render time
}
