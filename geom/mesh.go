package geom

// Mesh is an ordered list of object-local triangles.
type Mesh struct {
	Triangles []Triangle
}

// NewMesh wraps a triangle slice as a Mesh.
func NewMesh(triangles []Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}
