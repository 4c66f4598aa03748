// Command opensaft builds a handful of example SDF programs, discretizes
// and meshes them, and writes the result out as a 3MF solid plus a DXF
// and SVG cross-section — the runnable caller spec.md leaves as an
// external collaborator, in the spirit of the teacher's examples/
// directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/philpax/opensaft/render"
	"github.com/philpax/opensaft/sdf"
	"github.com/philpax/opensaft/sdfb"
	"github.com/philpax/opensaft/sdfio"
)

// options are the CLI's tuning knobs, gathered into a struct so they can
// be passed around as one value instead of threading five flags through
// every function signature.
type options struct {
	example  string
	cells    int
	maxCells int
	workers  int
	outDir   string
}

func parseFlags() options {
	opt := options{}
	flag.StringVar(&opt.example, "example", "sphere", "example program: sphere, snowman, or difference")
	flag.IntVar(&opt.cells, "cells", 64, "grid cells along the longest bounding-box axis")
	flag.IntVar(&opt.maxCells, "max-cells", 8_000_000, "grid size ceiling (0 disables the guard)")
	flag.IntVar(&opt.workers, "workers", 4, "discretizer goroutine count")
	flag.StringVar(&opt.outDir, "out", ".", "output directory for .3mf/.dxf/.svg")
	flag.Parse()
	return opt
}

func main() {
	opt := parseFlags()

	node, ok := examples[opt.example]
	if !ok {
		log.Fatalf("opensaft: unknown example %q", opt.example)
	}

	prog, err := sdfb.Compile(node)
	if err != nil {
		log.Fatalf("opensaft: compile: %v", err)
	}

	bounds := sdf.Bounds(prog)
	if bounds.Empty() {
		log.Fatalf("opensaft: %s has empty bounds", opt.example)
	}

	cellSize := bounds.Size().X
	if s := bounds.Size().Y; s > cellSize {
		cellSize = s
	}
	if s := bounds.Size().Z; s > cellSize {
		cellSize = s
	}
	cellSize /= float64(opt.cells)

	dims := [3]int{
		int(bounds.Size().X/cellSize) + 1,
		int(bounds.Size().Y/cellSize) + 1,
		int(bounds.Size().Z/cellSize) + 1,
	}

	grid, err := render.DiscretizeParallel(context.Background(), prog, bounds.Min, cellSize, dims, opt.maxCells, opt.workers)
	if err != nil {
		log.Fatalf("opensaft: discretize: %v", err)
	}

	mesh := render.March(grid)
	log.Printf("opensaft: %s -> %d vertices, %d triangles", opt.example, len(mesh.Vertices), mesh.TriangleCount())

	if err := writeOutputs(opt, grid, mesh); err != nil {
		log.Fatalf("opensaft: write: %v", err)
	}
}

func writeOutputs(opt options, grid *render.Grid, mesh *render.Mesh) error {
	if err := os.MkdirAll(opt.outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	threeMFPath := fmt.Sprintf("%s/%s.3mf", opt.outDir, opt.example)
	f, err := os.Create(threeMFPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", threeMFPath, err)
	}
	defer f.Close()
	if err := sdfio.WriteThreeMF(f, mesh); err != nil {
		return fmt.Errorf("writing %s: %w", threeMFPath, err)
	}

	midZ := grid.D / 2
	dxfPath := fmt.Sprintf("%s/%s.dxf", opt.outDir, opt.example)
	if err := sdfio.SliceDXF(dxfPath, grid, midZ); err != nil {
		return fmt.Errorf("writing %s: %w", dxfPath, err)
	}

	svgPath := fmt.Sprintf("%s/%s.svg", opt.outDir, opt.example)
	svgFile, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", svgPath, err)
	}
	defer svgFile.Close()
	min := sdf.Vec3{X: grid.Origin.X, Y: grid.Origin.Y}
	max := grid.Point(grid.W-1, grid.H-1, 0)
	sdfio.SliceSVG(svgFile, grid, midZ, min, max, 512, 512)

	return nil
}

var examples = map[string]sdfb.Node{
	"sphere": sdfb.Colored(
		sdf.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		sdfb.Sphere(sdf.Vec3{}, 10),
	),
	"snowman": sdfb.Union(2,
		sdfb.Sphere(sdf.Vec3{X: 0, Y: 0, Z: 0}, 10),
		sdfb.Sphere(sdf.Vec3{X: 0, Y: 0, Z: 16}, 7),
		sdfb.Sphere(sdf.Vec3{X: 0, Y: 0, Z: 27}, 5),
	),
	"difference": sdfb.Subtract(
		sdfb.RoundedBox(sdf.Vec3{X: 10, Y: 10, Z: 10}, 1),
		sdfb.Sphere(sdf.Vec3{}, 9),
		0,
	),
}
