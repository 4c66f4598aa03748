package render

import "github.com/philpax/opensaft/sdf"

// Vertex is one mesh vertex: world-space position, material color, and
// the normalized central-difference gradient of the field there.
type Vertex struct {
	Position sdf.Vec3
	Color    sdf.Vec3
	Normal   sdf.Vec3
}

// Mesh is an indexed triangle mesh: Indices is a flat list of triples
// into Vertices. Winding is CCW viewed from outside the surface (spec
// §3).
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
