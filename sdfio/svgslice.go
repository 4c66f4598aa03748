package sdfio

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/philpax/opensaft/render"
	"github.com/philpax/opensaft/sdf"
)

// SliceSVG extracts grid layer z's zero-crossing contour and renders it
// onto an SVG canvas of width x height pixels, mapping the grid's world
// bounds [min,max] onto it (Y is flipped, since SVG's origin is
// top-left and the field's is bottom-left).
func SliceSVG(w io.Writer, g *render.Grid, z int, min, max sdf.Vec3, width, height int) {
	segs := Slice(g, z)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	sx := float64(width) / (max.X - min.X)
	sy := float64(height) / (max.Y - min.Y)

	project := func(p sdf.Vec3) (int, int) {
		x := int((p.X - min.X) * sx)
		y := height - int((p.Y-min.Y)*sy)
		return x, y
	}

	for _, s := range segs {
		x1, y1 := project(s.A)
		x2, y2 := project(s.B)
		canvas.Line(x1, y1, x2, y2, "stroke:black;stroke-width:1")
	}
	canvas.End()
}
