package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ema2159/go-tinyraytracer/pkg/core"
)

// OBJData contains the raw data loaded from a Wavefront OBJ file
type OBJData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // Triangle indices (3 per triangle)
}

// LoadOBJ loads a Wavefront OBJ file and returns vertex positions and
// triangulated face indices. Only 'v' and 'f' records are consumed;
// normals, texture coordinates and grouping directives are skipped.
// Polygons with more than three vertices are triangulated as a fan.
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data := &OBJData{}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNum)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				coords[i], err = strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q: %w", lineNum, fields[i+1], err)
				}
			}
			data.Vertices = append(data.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNum)
			}
			indices := make([]int, 0, len(fields)-1)
			for _, field := range fields[1:] {
				index, err := parseFaceIndex(field, len(data.Vertices))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				indices = append(indices, index)
			}
			// Fan triangulation for polygons
			for i := 1; i+1 < len(indices); i++ {
				data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	return data, nil
}

// parseFaceIndex parses one face vertex reference ("7", "7/1", "7//3" or a
// negative relative index) into a zero-based vertex index
func parseFaceIndex(field string, vertexCount int) (int, error) {
	if slash := strings.IndexByte(field, '/'); slash >= 0 {
		field = field[:slash]
	}
	index, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", field, err)
	}
	if index < 0 {
		// Negative indices are relative to the end of the vertex list
		index = vertexCount + index
	} else {
		// OBJ indices are 1-based
		index--
	}
	if index < 0 || index >= vertexCount {
		return 0, fmt.Errorf("face index %q out of range", field)
	}
	return index, nil
}
