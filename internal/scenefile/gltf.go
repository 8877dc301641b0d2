// Package scenefile loads a read-only scene snapshot from a glTF/GLB
// document. It reads a flat node list — positions, rotations, a
// camera, and triangulated meshes — into the core's scene.Scene type.
// It does not preserve or expose the document's node hierarchy.
package scenefile

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/kestrelgfx/rastercore/geom"
	"github.com/kestrelgfx/rastercore/scene"
	"github.com/kestrelgfx/rastercore/vecmath"
)

// Load opens a .gltf or .glb file and builds a Scene from it. The
// first node carrying a camera becomes scene.Camera; every node
// carrying a mesh becomes a scene.Object. DirectionalLightRot is left
// at its zero value — lights are not part of the glTF schema this
// loader reads.
func Load(path string) (scene.Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("scenefile: open %q: %w", path, err)
	}
	return FromDocument(doc)
}

// FromDocument builds a Scene from an already-parsed glTF document.
func FromDocument(doc *gltf.Document) (scene.Scene, error) {
	var s scene.Scene
	var haveCamera bool

	for _, node := range doc.Nodes {
		position, rotation := nodeTransform(node)

		if node.Camera != nil && !haveCamera {
			cam, err := readCamera(doc, *node.Camera)
			if err != nil {
				return scene.Scene{}, err
			}
			cam.Position = position
			cam.Rotation = rotation
			s.Camera = cam
			haveCamera = true
		}

		if node.Mesh != nil {
			mesh, err := readMesh(doc, doc.Meshes[*node.Mesh])
			if err != nil {
				return scene.Scene{}, fmt.Errorf("scenefile: node %q: %w", node.Name, err)
			}
			s.Objects = append(s.Objects, scene.Object{
				Mesh:     mesh,
				Position: position,
				Rotation: rotation,
			})
		}
	}

	return s, nil
}

func nodeTransform(node *gltf.Node) (vecmath.V3, vecmath.V3) {
	t := node.Translation
	position := vecmath.V3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])}

	q := node.Rotation
	rotation := quaternionToEulerDeg(float32(q[0]), float32(q[1]), float32(q[2]), float32(q[3]))
	return position, rotation
}

// quaternionToEulerDeg converts a glTF quaternion (x,y,z,w) into the
// XYZ Euler-degree triple that vecmath.Rotation reproduces, by
// building the equivalent rotation matrix and reading off the same
// element formulas vecmath.Rotation3 uses to build it.
func quaternionToEulerDeg(x, y, z, w float32) vecmath.V3 {
	m00 := 1 - 2*(y*y+z*z)
	m10 := 2*(x*y + w*z)
	m20 := 2*(x*z - w*y)
	m21 := 2*(y*z + w*x)
	m22 := 1 - 2*(x*x+y*y)

	yRad := math.Asin(float64(-clampUnit(m20)))
	cosY := math.Cos(yRad)

	var xRad, zRad float64
	if math.Abs(cosY) > 1e-6 {
		xRad = math.Atan2(float64(m21), float64(m22))
		zRad = math.Atan2(float64(m10), float64(m00))
	} else {
		m01 := 2*(x*y - w*z)
		m11 := 1 - 2*(x*x+z*z)
		sinY := -clampUnit(m20)
		xRad = math.Atan2(float64(sinY*m01), float64(m11))
		zRad = 0
	}

	toDeg := 180 / math.Pi
	return vecmath.V3{
		X: float32(xRad * toDeg),
		Y: float32(yRad * toDeg),
		Z: float32(zRad * toDeg),
	}
}

func clampUnit(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func readCamera(doc *gltf.Document, idx int) (scene.Camera, error) {
	cam := doc.Cameras[idx]
	if cam.Perspective == nil {
		return scene.Camera{}, fmt.Errorf("scenefile: only perspective cameras are supported")
	}
	p := cam.Perspective
	zFar := float32(1000)
	if p.Zfar != nil {
		zFar = float32(*p.Zfar)
	}
	return scene.Camera{
		VerticalFovDeg: float32(p.Yfov) * 180 / float32(math.Pi),
		ZNear:          float32(p.Znear),
		ZFar:           zFar,
	}, nil
}

func readMesh(doc *gltf.Document, m *gltf.Mesh) (*geom.Mesh, error) {
	var triangles []geom.Triangle

	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readPositions(doc, posIdx)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := positions[indices[i]], positions[indices[i+1]], positions[indices[i+2]]
			triangles = append(triangles, geom.NewTriangle(a, b, c))
		}
	}

	return geom.NewMesh(triangles), nil
}

func readPositions(doc *gltf.Document, accessorIdx int) ([]vecmath.V4, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3 position accessor, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float position components, got %v", accessor.ComponentType)
	}

	raw, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	out := make([]vecmath.V4, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		x := math.Float32frombits(binary.LittleEndian.Uint32(raw[off : off+4]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(raw[off+4 : off+8]))
		z := math.Float32frombits(binary.LittleEndian.Uint32(raw[off+8 : off+12]))
		out[i] = vecmath.NewPoint(x, y, z)
	}
	return out, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	var componentSize int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		componentSize = 1
	case gltf.ComponentUshort:
		componentSize = 2
	case gltf.ComponentUint:
		componentSize = 4
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}

	raw, stride, err := accessorBytes(doc, accessor, componentSize)
	if err != nil {
		return nil, err
	}

	out := make([]int, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		off := i * stride
		switch componentSize {
		case 1:
			out[i] = int(raw[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(raw[off : off+2]))
		case 4:
			out[i] = int(binary.LittleEndian.Uint32(raw[off : off+4]))
		}
	}
	return out, nil
}

// accessorBytes returns the accessor's backing bytes and its
// effective per-element stride (bufferView stride, or elementSize if
// the view is tightly packed).
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elementSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if len(buffer.Data) == 0 {
		return nil, 0, fmt.Errorf("external glTF buffers are not supported")
	}

	start := view.ByteOffset + accessor.ByteOffset
	stride := elementSize
	if view.ByteStride != 0 {
		stride = view.ByteStride
	}
	end := start + stride*accessor.Count
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor reads past end of buffer")
	}
	return buffer.Data[start:end], stride, nil
}
