package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/solterm/planetarium/pkg/math3d"
)

// LoadOBJ loads a Wavefront .obj file. Positions, texture coordinates
// and normals are supported; faces with more than three vertices are
// fan-triangulated. Material libraries and groups are ignored.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh := NewMesh(filepath.Base(path))

	var (
		positions []math3d.Vec3
		uvs       []math3d.Vec2
		normals   []math3d.Vec3
	)

	// OBJ indices are global per-attribute; vertices are deduplicated
	// per unique v/vt/vn triple.
	vertexCache := make(map[string]int)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed vertex", lineNo)
			}
			v, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			positions = append(positions, v)

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: malformed texcoord", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			w, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: malformed texcoord", lineNo)
			}
			uvs = append(uvs, math3d.V2(u, w))

		case "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: malformed normal", lineNo)
			}
			n, err := parseVec3(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			normals = append(normals, n)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face with fewer than 3 vertices", lineNo)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, spec := range fields[1:] {
				vi, err := resolveVertex(mesh, vertexCache, spec, positions, uvs, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				idx = append(idx, vi)
			}
			// Fan triangulation for quads and n-gons.
			for i := 1; i+1 < len(idx); i++ {
				mesh.Faces = append(mesh.Faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	if len(normals) == 0 {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()

	return mesh, nil
}

// resolveVertex parses a face vertex spec (v, v/vt, v//vn or v/vt/vn)
// and returns its index in the mesh, appending a new vertex for an
// unseen triple.
func resolveVertex(mesh *Mesh, cache map[string]int, spec string, positions []math3d.Vec3, uvs []math3d.Vec2, normals []math3d.Vec3) (int, error) {
	if i, ok := cache[spec]; ok {
		return i, nil
	}

	parts := strings.Split(spec, "/")

	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return 0, fmt.Errorf("vertex %q: %w", spec, err)
	}

	v := MeshVertex{Position: positions[pi]}

	if len(parts) > 1 && parts[1] != "" {
		ti, err := objIndex(parts[1], len(uvs))
		if err != nil {
			return 0, fmt.Errorf("vertex %q: %w", spec, err)
		}
		v.UV = uvs[ti]
	}
	if len(parts) > 2 && parts[2] != "" {
		ni, err := objIndex(parts[2], len(normals))
		if err != nil {
			return 0, fmt.Errorf("vertex %q: %w", spec, err)
		}
		v.Normal = normals[ni]
	}

	mesh.Vertices = append(mesh.Vertices, v)
	i := len(mesh.Vertices) - 1
	cache[spec] = i
	return i, nil
}

// objIndex converts a 1-based (or negative, counting from the end) OBJ
// index into a 0-based slice index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	if i < 0 {
		i += n
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %q out of range", s)
	}
	return i, nil
}

func parseVec3(fields []string) (math3d.Vec3, error) {
	x, err1 := strconv.ParseFloat(fields[0], 64)
	y, err2 := strconv.ParseFloat(fields[1], 64)
	z, err3 := strconv.ParseFloat(fields[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return math3d.Vec3{}, fmt.Errorf("malformed coordinates")
	}
	return math3d.V3(x, y, z), nil
}
