// Package sdfio exports render output to interchange formats: 3MF meshes
// for printing/viewing, and DXF/SVG cross-sections for 2D tooling.
package sdfio

import (
	"github.com/philpax/opensaft/render"
	"github.com/philpax/opensaft/sdf"
)

// Segment is one line segment of a planar cross-section.
type Segment struct {
	A, B sdf.Vec3
}

// msCase lists, for each of the 16 marching-squares corner-sign patterns,
// the pairs of cell edges (0=bottom,1=right,2=top,3=left) that the zero
// contour crosses. Cases 5 and 10 are the ambiguous saddle patterns; this
// picks one fixed diagonal resolution rather than sampling the cell
// center, the same simplification most 2D contouring code makes.
var msCase = [16][][2]int{
	{},
	{{3, 0}},
	{{0, 1}},
	{{3, 1}},
	{{1, 2}},
	{{3, 0}, {1, 2}},
	{{0, 2}},
	{{3, 2}},
	{{3, 2}},
	{{0, 2}},
	{{3, 0}, {1, 2}},
	{{1, 2}},
	{{3, 1}},
	{{0, 1}},
	{{3, 0}},
	{},
}

// Slice extracts the zero-distance contour of grid layer z (a Z grid-point
// index, not a world coordinate) as a set of 2D line segments via
// marching squares, the 2D analogue of the mesher's marching cubes.
func Slice(g *render.Grid, z int) []Segment {
	var segs []Segment
	cw, ch, _ := g.CellCount()
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			segs = append(segs, sliceCell(g, x, y, z)...)
		}
	}
	return segs
}

var msCorner = [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func sliceCell(g *render.Grid, cx, cy, z int) []Segment {
	var d [4]float64
	var p [4]sdf.Vec3
	index := 0
	for i, off := range msCorner {
		gx, gy := cx+off[0], cy+off[1]
		d[i] = g.At(gx, gy, z).D
		p[i] = g.Point(gx, gy, z)
		if d[i] < 0 {
			index |= 1 << uint(i)
		}
	}

	pairs := msCase[index]
	if len(pairs) == 0 {
		return nil
	}

	edgePoint := func(e int) sdf.Vec3 {
		a, b := e, (e+1)%4
		va, vb := d[a], d[b]
		t := va / (va - vb)
		return sdf.Vec3{
			X: p[a].X + t*(p[b].X-p[a].X),
			Y: p[a].Y + t*(p[b].Y-p[a].Y),
			Z: p[a].Z,
		}
	}

	segs := make([]Segment, 0, len(pairs))
	for _, pr := range pairs {
		segs = append(segs, Segment{A: edgePoint(pr[0]), B: edgePoint(pr[1])})
	}
	return segs
}
