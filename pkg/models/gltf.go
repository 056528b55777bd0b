package models

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg" // embedded texture decoding
	_ "image/png"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/solterm/planetarium/pkg/math3d"
)

// LoadGLB loads a binary glTF (.glb or .gltf) file. All triangle
// primitives of every mesh are merged into one Mesh; normals are
// computed when the file carries none.
func LoadGLB(path string) (*Mesh, error) {
	mesh, _, err := LoadGLBWithTexture(path)
	return mesh, err
}

// LoadGLBWithTexture loads a binary glTF file and additionally decodes
// the first embedded image, when one is present, so a textured craft
// model works out of a single file. The image is nil when the file has
// no usable embedded texture.
func LoadGLBWithTexture(path string) (*Mesh, image.Image, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open glb: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))
	hasNormals := false

	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			// Mode zero is an unset field, which also means triangles.
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			ok, err := appendPrimitive(doc, prim, mesh)
			if err != nil {
				return nil, nil, fmt.Errorf("mesh %q: %w", gm.Name, err)
			}
			hasNormals = hasNormals || ok
		}
	}

	if !hasNormals {
		mesh.CalculateSmoothNormals()
	}
	mesh.CalculateBounds()

	return mesh, firstEmbeddedImage(doc), nil
}

// appendPrimitive merges one triangle primitive into the mesh and
// reports whether it carried normals.
func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) (bool, error) {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return false, fmt.Errorf("primitive without positions")
	}
	positions, err := readVec3Accessor(doc, posIdx)
	if err != nil {
		return false, fmt.Errorf("positions: %w", err)
	}

	var normals []math3d.Vec3
	if idx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if normals, err = readVec3Accessor(doc, idx); err != nil {
			return false, fmt.Errorf("normals: %w", err)
		}
	}

	var uvs []math3d.Vec2
	if idx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if uvs, err = readVec2Accessor(doc, idx); err != nil {
			return false, fmt.Errorf("uvs: %w", err)
		}
	}

	base := len(mesh.Vertices)
	for i, pos := range positions {
		v := MeshVertex{Position: pos}
		if i < len(normals) {
			v.Normal = normals[i]
		}
		if i < len(uvs) {
			// glTF V=0 is the top of the image; flip to the
			// bottom-origin convention the sampler expects.
			v.UV = math3d.V2(uvs[i].X, 1-uvs[i].Y)
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices != nil {
		indices, err := readIndexAccessor(doc, *prim.Indices)
		if err != nil {
			return false, fmt.Errorf("indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{V: [3]int{
				base + indices[i],
				base + indices[i+1],
				base + indices[i+2],
			}})
		}
	} else {
		for i := 0; i+2 < len(positions); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{V: [3]int{
				base + i,
				base + i + 1,
				base + i + 2,
			}})
		}
	}

	return len(normals) > 0, nil
}

// firstEmbeddedImage decodes the first image stored inside the binary
// buffer. External image URIs are ignored.
func firstEmbeddedImage(doc *gltf.Document) image.Image {
	for _, img := range doc.Images {
		if img.BufferView == nil {
			continue
		}
		data, err := viewBytes(doc, *img.BufferView)
		if err != nil {
			continue
		}
		decoded, _, err := image.Decode(bytes.NewReader(data))
		if err == nil {
			return decoded
		}
	}
	return nil
}

// viewBytes returns the raw bytes of a buffer view.
func viewBytes(doc *gltf.Document, viewIdx int) ([]byte, error) {
	if viewIdx < 0 || viewIdx >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", viewIdx)
	}
	view := doc.BufferViews[viewIdx]
	buf := doc.Buffers[view.Buffer]
	if buf.Data == nil {
		return nil, fmt.Errorf("buffer %d has no embedded data", view.Buffer)
	}
	end := view.ByteOffset + view.ByteLength
	if end > len(buf.Data) {
		return nil, fmt.Errorf("buffer view %d exceeds buffer", viewIdx)
	}
	return buf.Data[view.ByteOffset:end], nil
}

// accessorBytes returns the buffer slice an accessor reads from, plus
// its element stride.
func accessorBytes(doc *gltf.Document, accessorIdx, elemSize int) ([]byte, int, *gltf.Accessor, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, 0, nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	acc := doc.Accessors[accessorIdx]
	if acc.BufferView == nil {
		return nil, 0, nil, fmt.Errorf("accessor %d has no buffer view", accessorIdx)
	}

	data, err := viewBytes(doc, *acc.BufferView)
	if err != nil {
		return nil, 0, nil, err
	}

	stride := doc.BufferViews[*acc.BufferView].ByteStride
	if stride == 0 {
		stride = elemSize
	}

	start := acc.ByteOffset
	need := start + (acc.Count-1)*stride + elemSize
	if need > len(data) {
		return nil, 0, nil, fmt.Errorf("accessor %d exceeds buffer view", accessorIdx)
	}
	return data[start:], stride, acc, nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	data, stride, acc, err := accessorBytes(doc, accessorIdx, 12)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("accessor %d is not a float VEC3", accessorIdx)
	}

	out := make([]math3d.Vec3, acc.Count)
	for i := range out {
		off := i * stride
		out[i] = math3d.V3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return out, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec2, error) {
	data, stride, acc, err := accessorBytes(doc, accessorIdx, 8)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorVec2 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("accessor %d is not a float VEC2", accessorIdx)
	}

	out := make([]math3d.Vec2, acc.Count)
	for i := range out {
		off := i * stride
		out[i] = math3d.V2(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
		)
	}
	return out, nil
}

// readIndexAccessor reads scalar indices of any of the three component
// widths glTF allows.
func readIndexAccessor(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	var elemSize int
	switch doc.Accessors[accessorIdx].ComponentType {
	case gltf.ComponentUbyte:
		elemSize = 1
	case gltf.ComponentUshort:
		elemSize = 2
	case gltf.ComponentUint:
		elemSize = 4
	default:
		return nil, fmt.Errorf("accessor %d has a non-index component type", accessorIdx)
	}

	data, stride, acc, err := accessorBytes(doc, accessorIdx, elemSize)
	if err != nil {
		return nil, err
	}
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("accessor %d is not a SCALAR", accessorIdx)
	}

	out := make([]int, acc.Count)
	for i := range out {
		off := i * stride
		switch elemSize {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
