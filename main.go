package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/geometry"
	"github.com/ema2159/go-tinyraytracer/pkg/loaders"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
	"github.com/ema2159/go-tinyraytracer/pkg/renderer"
	"github.com/ema2159/go-tinyraytracer/pkg/scene"
)

func main() {
	sceneFile := flag.String("scene-file", "", "Path to a TOML scene description file")
	assetsDir := flag.String("assets", "", "Assets directory with duck.obj and envmap.jpg for the default scene")
	outputDir := flag.String("output", "output", "Output directory for rendered images")
	workers := flag.Int("workers", 0, "Number of parallel render workers (0 = CPU count)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Tiny Raytracer")
		fmt.Println("Usage: go-tinyraytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Without -scene-file the built-in default scene is rendered.")
		fmt.Println("With -assets the default scene picks up duck.obj and envmap.jpg.")
		fmt.Println(scene.ConfigHelp)
		return
	}

	selectedScene, err := createScene(*sceneFile, *assetsDir)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(selectedScene, renderer.Config{NumWorkers: *workers}, renderer.NewDefaultLogger())
	img, _, err := r.Render(context.Background())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the scene to render: a TOML scene file when given,
// otherwise the built-in default scene, optionally enriched with the duck
// mesh and environment map from the assets directory.
func createScene(sceneFile, assetsDir string) (*scene.Scene, error) {
	if sceneFile != "" {
		return scene.LoadFile(sceneFile)
	}

	s := scene.NewDefaultScene()
	if assetsDir == "" {
		return s, nil
	}

	obj, err := loaders.LoadOBJ(filepath.Join(assetsDir, "duck.obj"))
	if err != nil {
		return nil, err
	}
	duck := geometry.NewTriangleMesh(obj.Vertices, obj.Faces, material.Glass(), &geometry.MeshOptions{
		Scale:  1.0,
		Offset: core.NewVec3(-1.5, -3.5, -16),
	})
	s.AddShape(duck)

	env, err := scene.LoadEnvironment(filepath.Join(assetsDir, "envmap.jpg"))
	if err != nil {
		return nil, err
	}
	s.Environment = env

	return s, nil
}
