package sdfio

import (
	"github.com/yofu/dxf"

	"github.com/philpax/opensaft/render"
)

// SliceDXF extracts grid layer z's zero-crossing contour and writes it to
// path as a 2D DXF drawing, one LINE entity per segment.
func SliceDXF(path string, g *render.Grid, z int) error {
	segs := Slice(g, z)

	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	d.AddLayer("section", dxf.DefaultColor, dxf.DefaultLineType, true)
	for _, s := range segs {
		d.Line(s.A.X, s.A.Y, 0, s.B.X, s.B.Y, 0)
	}
	return d.SaveAs(path)
}
