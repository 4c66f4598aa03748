// Package render implements the voxelizer (adaptive, Lipschitz-exploiting
// grid sampling) and mesher (marching-cubes surface extraction) that turn
// an sdf.Program into a colored triangle mesh.
package render

import "github.com/philpax/opensaft/sdf"

// Grid is a dense 3D lattice of samples taken at grid points spaced
// CellSize apart: index (x,y,z) -> x + W*y + W*H*z. A mesher cell is the
// small cube between 8 adjacent grid points (x,x+1) x (y,y+1) x (z,z+1),
// so a grid of W x H x D points covers (W-1) x (H-1) x (D-1) cells. It is
// created empty, filled once by Discretize, and consumed once by March.
type Grid struct {
	Origin   sdf.Vec3
	CellSize float64
	W, H, D  int
	Samples  []sdf.Sample
}

// NewGrid allocates an empty grid with w x h x d points.
func NewGrid(origin sdf.Vec3, cellSize float64, w, h, d int) *Grid {
	return &Grid{
		Origin:   origin,
		CellSize: cellSize,
		W:        w,
		H:        h,
		D:        d,
		Samples:  make([]sdf.Sample, w*h*d),
	}
}

func (g *Grid) index(x, y, z int) int {
	return x + g.W*y + g.W*g.H*z
}

// PointIndex returns the flat index of grid point (x,y,z), exported for
// the mesher's edge-weld keys.
func (g *Grid) PointIndex(x, y, z int) int {
	return g.index(x, y, z)
}

// At returns the sample stored at grid point (x,y,z).
func (g *Grid) At(x, y, z int) sdf.Sample {
	return g.Samples[g.index(x, y, z)]
}

// Set stores a sample at grid point (x,y,z).
func (g *Grid) Set(x, y, z int, s sdf.Sample) {
	g.Samples[g.index(x, y, z)] = s
}

// Point returns the world-space position of grid point (x,y,z).
func (g *Grid) Point(x, y, z int) sdf.Vec3 {
	h := g.CellSize
	return sdf.Vec3{
		X: g.Origin.X + float64(x)*h,
		Y: g.Origin.Y + float64(y)*h,
		Z: g.Origin.Z + float64(z)*h,
	}
}

// InBounds reports whether (x,y,z) addresses a valid grid point.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H && z >= 0 && z < g.D
}

// CellCount returns the number of mesher cells along each axis.
func (g *Grid) CellCount() (int, int, int) {
	return g.W - 1, g.H - 1, g.D - 1
}
