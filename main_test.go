package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateScene_Default(t *testing.T) {
	s, err := createScene("", "")
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}

	if got := s.PrimitiveCount(); got != 5 {
		t.Errorf("Expected 5 primitives in the default scene, got %d", got)
	}
	if got := len(s.Lights); got != 3 {
		t.Errorf("Expected 3 lights in the default scene, got %d", got)
	}
	if s.Environment != nil {
		t.Error("Expected no environment map without an assets directory")
	}
}

func TestCreateScene_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	config := `
[camera]
position = [0.0, 0.0, 0.0]
fov = 1.0
width = 64
height = 48

[materials.plain]
color = [0.4, 0.4, 0.3]
albedo = [0.6, 0.3, 0.1, 0.0]
spec_exponent = 50.0
refractive_index = 1.0

[[spheres]]
center = [0.0, 0.0, -10.0]
radius = 2.0
material = "plain"

[[lights]]
position = [10.0, 10.0, 0.0]
intensity = 1.5
`
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatalf("Failed to write scene file: %v", err)
	}

	s, err := createScene(path, "")
	if err != nil {
		t.Fatalf("createScene failed: %v", err)
	}
	if got := s.PrimitiveCount(); got != 1 {
		t.Errorf("Expected 1 primitive, got %d", got)
	}
	if s.CameraConfig.Width != 64 || s.CameraConfig.Height != 48 {
		t.Errorf("Expected 64x48 camera, got %dx%d", s.CameraConfig.Width, s.CameraConfig.Height)
	}
}

func TestCreateScene_MissingFile(t *testing.T) {
	if _, err := createScene(filepath.Join(t.TempDir(), "missing.toml"), ""); err == nil {
		t.Error("Expected an error for a missing scene file")
	}
}

func TestCreateScene_MissingAssets(t *testing.T) {
	if _, err := createScene("", t.TempDir()); err == nil {
		t.Error("Expected an error when the assets directory has no duck.obj")
	}
}
