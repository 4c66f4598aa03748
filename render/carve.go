package render

import (
	"github.com/dhconnelly/rtreego"
	"github.com/philpax/opensaft/sdf"
)

// carveEntry is a region of space known to be safely represented by a
// single sample, per the sphere-carving optimization of spec §4.5: radius
// is at most center's |distance| minus the surface-band half-width, so by
// the Lipschitz-1 bound every point within radius of center lies outside
// the surface band, on the same side of the surface as center.
type carveEntry struct {
	center sdf.Vec3
	sample sdf.Sample
	radius float64
	bounds *rtreego.Rect
}

func (e *carveEntry) Bounds() *rtreego.Rect {
	return e.bounds
}

// carveIndex is an R-tree of the carved skip-spheres of one Z-plane. A
// single scanline jump (spec §4.5's "jump X forward") only ever helps
// along +X; a plane whose contour has many disjoint pieces carves spheres
// scattered across it, and the R-tree lets any later point in the same
// plane ask "am I already inside a carved sphere" in O(log n) instead of
// re-deriving it from scanline state alone. Discretize and
// DiscretizeParallel start a fresh index for every plane.
type carveIndex struct {
	tree *rtreego.Rtree
}

func newCarveIndex() *carveIndex {
	return &carveIndex{tree: rtreego.NewTree(3, 8, 32)}
}

// insert records that every point within radius of center may safely
// reuse sample.
func (c *carveIndex) insert(center sdf.Vec3, sample sdf.Sample, radius float64) {
	if radius <= 0 {
		return
	}
	lengths := []float64{radius * 2, radius * 2, radius * 2}
	origin := rtreego.Point{center.X - radius, center.Y - radius, center.Z - radius}
	rect, err := rtreego.NewRect(origin, lengths)
	if err != nil {
		return
	}
	c.tree.Insert(&carveEntry{center: center, sample: sample, radius: radius, bounds: rect})
}

// lookup returns a sample safe to reuse at p, if any carved sphere
// contains it. Bounding-box candidates from the R-tree are verified
// against the exact sphere before being accepted.
func (c *carveIndex) lookup(p sdf.Vec3) (sdf.Sample, bool) {
	degenerate, err := rtreego.NewRect(rtreego.Point{p.X, p.Y, p.Z}, []float64{1e-9, 1e-9, 1e-9})
	if err != nil {
		return sdf.Sample{}, false
	}
	for _, candidate := range c.tree.SearchIntersect(degenerate) {
		e := candidate.(*carveEntry)
		dx := p.X - e.center.X
		dy := p.Y - e.center.Y
		dz := p.Z - e.center.Z
		distSq := dx*dx + dy*dy + dz*dz
		if distSq <= e.radius*e.radius {
			return e.sample, true
		}
	}
	return sdf.Sample{}, false
}
