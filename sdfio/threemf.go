package sdfio

import (
	"io"

	"github.com/hpinc/go3mf"

	"github.com/philpax/opensaft/render"
)

// WriteThreeMF encodes a mesh as a single-object 3MF model. Per-vertex
// colors don't survive into the core 3MF mesh resource, so the mesh's
// average color is recorded as the object's single base material — a 3MF
// reader gets a uniformly-tinted solid rather than the renderer's
// smoothly-shaded preview.
func WriteThreeMF(w io.Writer, m *render.Mesh) error {
	model := &go3mf.Model{}
	model.Resources.Assets = append(model.Resources.Assets, &go3mf.BaseMaterialsResource{
		ID: 1,
		Materials: []go3mf.BaseMaterial{
			{Name: "material", Color: averageColor(m)},
		},
	})

	mesh := &go3mf.Mesh{}
	mesh.Vertices.Vertex = make([]go3mf.Point3D, len(m.Vertices))
	for i, v := range m.Vertices {
		mesh.Vertices.Vertex[i] = go3mf.Point3D{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)}
	}
	mesh.Triangles.Triangle = make([]go3mf.Triangle, m.TriangleCount())
	for i := range mesh.Triangles.Triangle {
		mesh.Triangles.Triangle[i] = go3mf.Triangle{
			V1: int(m.Indices[i*3+0]),
			V2: int(m.Indices[i*3+1]),
			V3: int(m.Indices[i*3+2]),
			PID: 1,
			P1:  0,
		}
	}

	obj := &go3mf.Object{
		ID:   2,
		Type: go3mf.ObjectTypeModel,
		Mesh: mesh,
	}
	model.Resources.Objects = append(model.Resources.Objects, obj)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: 2})

	return go3mf.NewEncoder(w).Encode(model)
}

func averageColor(m *render.Mesh) go3mf.Color {
	if len(m.Vertices) == 0 {
		return go3mf.Color{R: 255, G: 255, B: 255, A: 255}
	}
	var r, g, b float64
	for _, v := range m.Vertices {
		r += v.Color.X
		g += v.Color.Y
		b += v.Color.Z
	}
	n := float64(len(m.Vertices))
	return go3mf.Color{
		R: uint8(clamp01(r/n) * 255),
		G: uint8(clamp01(g/n) * 255),
		B: uint8(clamp01(b/n) * 255),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
