package scene

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
	"github.com/ema2159/go-tinyraytracer/pkg/geometry"
	"github.com/ema2159/go-tinyraytracer/pkg/lights"
	"github.com/ema2159/go-tinyraytracer/pkg/loaders"
	"github.com/ema2159/go-tinyraytracer/pkg/material"
)

const ConfigHelp = `
The scene file format is TOML. Materials are declared in a named table and
referenced by name from the objects that use them:

[camera]
  position = [0.0, 0.0, 0.0]
  fov = 1.0
  width = 1024
  height = 768

background = [0.2, 0.7, 0.8]
environment = "envmap.jpg"   # optional, relative to the scene file

[materials.rubber]
  color = [0.3, 0.1, 0.1]
  albedo = [0.9, 0.1, 0.0, 0.0]
  spec_exponent = 10.0
  refractive_index = 1.0

[materials.floor]
  checker = [[0.3, 0.3, 0.3], [0.3, 0.2, 0.1]]
  albedo = [0.9, 0.1, 0.0, 0.0]
  spec_exponent = 10.0

[[spheres]]
  center = [1.5, -0.5, -18.0]
  radius = 3.0
  material = "rubber"

[[planes]]
  point = [0.0, -4.0, 0.0]
  normal = [0.0, 1.0, 0.0]
  material = "floor"

[[rects]]
  corner = [-10.0, -4.0, -10.0]
  u = [20.0, 0.0, 0.0]
  v = [0.0, 0.0, -20.0]
  material = "floor"

[[meshes]]
  file = "duck.obj"            # relative to the scene file
  material = "rubber"
  scale = 1.0
  offset = [0.0, 0.0, -15.0]

[[lights]]
  position = [-20.0, 20.0, 20.0]
  intensity = 1.5
`

// ConfigFile is the top-level TOML scene description
type ConfigFile struct {
	Camera      CameraSection              `toml:"camera"`
	Background  []float64                  `toml:"background"`
	Environment string                     `toml:"environment"`
	Materials   map[string]MaterialSection `toml:"materials"`
	Spheres     []SphereSection            `toml:"spheres"`
	Planes      []PlaneSection             `toml:"planes"`
	Rects       []RectSection              `toml:"rects"`
	Triangles   []TriangleSection          `toml:"triangles"`
	Meshes      []MeshSection              `toml:"meshes"`
	Lights      []LightSection             `toml:"lights"`
}

type CameraSection struct {
	Position []float64 `toml:"position"`
	FOV      float64   `toml:"fov"`
	Width    int       `toml:"width"`
	Height   int       `toml:"height"`
}

type MaterialSection struct {
	Color           []float64   `toml:"color"`
	Checker         [][]float64 `toml:"checker"`
	Albedo          []float64   `toml:"albedo"`
	SpecExponent    float64     `toml:"spec_exponent"`
	RefractiveIndex float64     `toml:"refractive_index"`
}

type SphereSection struct {
	Center   []float64 `toml:"center"`
	Radius   float64   `toml:"radius"`
	Material string    `toml:"material"`
}

type PlaneSection struct {
	Point    []float64 `toml:"point"`
	Normal   []float64 `toml:"normal"`
	Material string    `toml:"material"`
}

type RectSection struct {
	Corner   []float64 `toml:"corner"`
	U        []float64 `toml:"u"`
	V        []float64 `toml:"v"`
	Material string    `toml:"material"`
}

type TriangleSection struct {
	V0       []float64 `toml:"v0"`
	V1       []float64 `toml:"v1"`
	V2       []float64 `toml:"v2"`
	Material string    `toml:"material"`
}

type MeshSection struct {
	File     string    `toml:"file"`
	Material string    `toml:"material"`
	Scale    float64   `toml:"scale"`
	Offset   []float64 `toml:"offset"`
}

type LightSection struct {
	Position  []float64 `toml:"position"`
	Intensity float64   `toml:"intensity"`
}

// LoadFile parses a TOML scene file and materializes the scene it
// describes. Asset paths (environment map, mesh files) are resolved
// relative to the scene file's directory.
func LoadFile(path string) (*Scene, error) {
	var config ConfigFile
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}
	return config.Build(filepath.Dir(path))
}

// Build materializes a parsed scene description, resolving asset paths
// against assetsDir
func (c *ConfigFile) Build(assetsDir string) (*Scene, error) {
	s := &Scene{
		Background: core.NewVec3(0.2, 0.7, 0.8),
		CameraConfig: CameraConfig{
			FOV:    1.0,
			Width:  1024,
			Height: 768,
		},
	}

	if c.Camera.Position != nil {
		position, err := vec3Of(c.Camera.Position, "camera.position")
		if err != nil {
			return nil, err
		}
		s.CameraConfig.Position = position
	}
	if c.Camera.FOV > 0 {
		s.CameraConfig.FOV = c.Camera.FOV
	}
	if c.Camera.Width > 0 {
		s.CameraConfig.Width = c.Camera.Width
	}
	if c.Camera.Height > 0 {
		s.CameraConfig.Height = c.Camera.Height
	}

	if c.Background != nil {
		background, err := vec3Of(c.Background, "background")
		if err != nil {
			return nil, err
		}
		s.Background = background
	}

	if c.Environment != "" {
		env, err := LoadEnvironment(filepath.Join(assetsDir, c.Environment))
		if err != nil {
			return nil, err
		}
		s.Environment = env
	}

	materials := make(map[string]*material.Material, len(c.Materials))
	for name, section := range c.Materials {
		mat, err := section.build(name)
		if err != nil {
			return nil, err
		}
		materials[name] = mat
	}

	lookup := func(name, owner string) (*material.Material, error) {
		mat, ok := materials[name]
		if !ok {
			return nil, fmt.Errorf("%s references unknown material %q", owner, name)
		}
		return mat, nil
	}

	for i, section := range c.Spheres {
		owner := fmt.Sprintf("spheres[%d]", i)
		center, err := vec3Of(section.Center, owner+".center")
		if err != nil {
			return nil, err
		}
		if section.Radius <= 0 {
			return nil, fmt.Errorf("%s: radius must be positive", owner)
		}
		mat, err := lookup(section.Material, owner)
		if err != nil {
			return nil, err
		}
		s.AddShape(geometry.NewSphere(center, section.Radius, mat))
	}

	for i, section := range c.Planes {
		owner := fmt.Sprintf("planes[%d]", i)
		point, err := vec3Of(section.Point, owner+".point")
		if err != nil {
			return nil, err
		}
		normal, err := vec3Of(section.Normal, owner+".normal")
		if err != nil {
			return nil, err
		}
		if normal == (core.Vec3{}) {
			return nil, fmt.Errorf("%s: normal must be non-zero", owner)
		}
		mat, err := lookup(section.Material, owner)
		if err != nil {
			return nil, err
		}
		s.AddShape(geometry.NewPlane(point, normal, mat))
	}

	for i, section := range c.Rects {
		owner := fmt.Sprintf("rects[%d]", i)
		corner, err := vec3Of(section.Corner, owner+".corner")
		if err != nil {
			return nil, err
		}
		u, err := vec3Of(section.U, owner+".u")
		if err != nil {
			return nil, err
		}
		v, err := vec3Of(section.V, owner+".v")
		if err != nil {
			return nil, err
		}
		mat, err := lookup(section.Material, owner)
		if err != nil {
			return nil, err
		}
		s.AddShape(geometry.NewRect(corner, u, v, mat))
	}

	for i, section := range c.Triangles {
		owner := fmt.Sprintf("triangles[%d]", i)
		v0, err := vec3Of(section.V0, owner+".v0")
		if err != nil {
			return nil, err
		}
		v1, err := vec3Of(section.V1, owner+".v1")
		if err != nil {
			return nil, err
		}
		v2, err := vec3Of(section.V2, owner+".v2")
		if err != nil {
			return nil, err
		}
		mat, err := lookup(section.Material, owner)
		if err != nil {
			return nil, err
		}
		s.AddShape(geometry.NewTriangle(v0, v1, v2, mat))
	}

	for i, section := range c.Meshes {
		owner := fmt.Sprintf("meshes[%d]", i)
		mat, err := lookup(section.Material, owner)
		if err != nil {
			return nil, err
		}
		obj, err := loaders.LoadOBJ(filepath.Join(assetsDir, section.File))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", owner, err)
		}
		options := &geometry.MeshOptions{Scale: section.Scale}
		if section.Offset != nil {
			offset, err := vec3Of(section.Offset, owner+".offset")
			if err != nil {
				return nil, err
			}
			options.Offset = offset
		}
		s.AddShape(geometry.NewTriangleMesh(obj.Vertices, obj.Faces, mat, options))
	}

	for i, section := range c.Lights {
		owner := fmt.Sprintf("lights[%d]", i)
		position, err := vec3Of(section.Position, owner+".position")
		if err != nil {
			return nil, err
		}
		if section.Intensity <= 0 {
			return nil, fmt.Errorf("%s: intensity must be positive", owner)
		}
		s.AddLight(lights.NewLight(position, section.Intensity))
	}

	return s, nil
}

// build converts a material section into a material value
func (m *MaterialSection) build(name string) (*material.Material, error) {
	var color material.ColorSource
	switch {
	case m.Checker != nil:
		if len(m.Checker) != 2 {
			return nil, fmt.Errorf("material %q: checker needs exactly 2 colors", name)
		}
		color0, err := vec3Of(m.Checker[0], fmt.Sprintf("material %q checker[0]", name))
		if err != nil {
			return nil, err
		}
		color1, err := vec3Of(m.Checker[1], fmt.Sprintf("material %q checker[1]", name))
		if err != nil {
			return nil, err
		}
		color = material.NewCheckerTexture(color0, color1)
	case m.Color != nil:
		solid, err := vec3Of(m.Color, fmt.Sprintf("material %q color", name))
		if err != nil {
			return nil, err
		}
		color = material.NewSolidColor(solid)
	default:
		return nil, fmt.Errorf("material %q: needs either color or checker", name)
	}

	var albedo [4]float64
	if len(m.Albedo) > 4 {
		return nil, fmt.Errorf("material %q: albedo has at most 4 components", name)
	}
	copy(albedo[:], m.Albedo)

	refractiveIndex := m.RefractiveIndex
	if refractiveIndex == 0 {
		refractiveIndex = 1.0
	}
	if refractiveIndex < 1 {
		return nil, fmt.Errorf("material %q: refractive index must be >= 1", name)
	}

	return material.NewTexturedMaterial(color, albedo, m.SpecExponent, refractiveIndex), nil
}

// vec3Of converts a 3-element TOML array into a Vec3
func vec3Of(values []float64, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
