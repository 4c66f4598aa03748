package render

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/philpax/opensaft/sdf"
)

// kLipschitz is the k in spec §4.5: at a grid point c with spacing h, a
// |d| > k*h means every point of the neighboring cells is safely far
// from the surface. sqrt(3)/2 is the distance from a cube's center to
// its corner for a unit cube, the tightest k that is still always safe.
const kLipschitz = 0.8660254037844386 // sqrt(3)/2

// carveEpsilon shrinks the radius recorded for a carved sphere slightly
// below the exact Lipschitz bound, so floating-point error at a sphere's
// edge can never cause a point just outside the true safe region to be
// misclassified as inside it.
const carveEpsilon = 1e-9

// DiscretizeError is returned when the requested grid would exceed
// maxCells, a memory guard (spec §7).
type DiscretizeError struct {
	Requested int
	Max       int
}

func (e *DiscretizeError) Error() string {
	return fmt.Sprintf("render: discretize error: requested %d cells exceeds ceiling of %d", e.Requested, e.Max)
}

// Discretize fills a grid of the given cell dimensions (so W+1,H+1,D+1
// grid points) with samples of prog's field, exploiting the Lipschitz-1
// property to skip evaluating points that a nearby sample already proves
// are far from the surface (spec §4.5). maxCells<=0 disables the memory
// guard.
func Discretize(prog *sdf.Program, origin sdf.Vec3, cellSize float64, cellDims [3]int, maxCells int) (*Grid, error) {
	pw, ph, pd := cellDims[0]+1, cellDims[1]+1, cellDims[2]+1
	total := pw * ph * pd
	if maxCells > 0 && total > maxCells {
		return nil, &DiscretizeError{Requested: total, Max: maxCells}
	}

	g := NewGrid(origin, cellSize, pw, ph, pd)

	for z := 0; z < pd; z++ {
		carve := newCarveIndex()
		for y := 0; y < ph; y++ {
			discretizeRow(prog, g, carve, y, z, cellSize)
		}
	}
	return g, nil
}

// discretizeRow fills one X row of grid points at (y,z), implementing the
// scanline-jump strategy of spec §4.5: an acceptable traversal order is
// X then Y then Z, jumping X forward by floor((|d|-k*h)/h) whenever a
// sample proves its neighborhood is safe.
func discretizeRow(prog *sdf.Program, g *Grid, carve *carveIndex, y, z int, cellSize float64) {
	x := 0
	for x < g.W {
		c := g.Point(x, y, z)

		if s, ok := carve.lookup(c); ok {
			g.Set(x, y, z, s)
			x++
			continue
		}

		s := sdf.Eval(prog, c)
		g.Set(x, y, z, s)

		ad := math.Abs(s.D)
		if ad > kLipschitz*cellSize {
			carve.insert(c, s, ad-kLipschitz*cellSize-carveEpsilon)

			skip := int(math.Floor((ad - kLipschitz*cellSize) / cellSize))
			for i := 0; i < skip && x+1 < g.W; i++ {
				x++
				g.Set(x, y, z, s)
			}
		}
		x++
	}
}

// DiscretizeParallel is the tiled variant of Discretize from spec §5: the
// grid is split into Z-tiles, each filled by its own goroutine. Every
// Z-plane is filled from its own carve index, so a plane's samples depend
// only on the (immutable) program and the plane's coordinates: tiles never
// alias each other's writes, and the result equals Discretize's. Cancelling ctx
// is checked once per Z-plane rather than once per point — the teacher's
// worker pool in the pack's march3.go batches per-point work the same
// way, trading finer cancellation granularity for less coordination
// overhead.
func DiscretizeParallel(ctx context.Context, prog *sdf.Program, origin sdf.Vec3, cellSize float64, cellDims [3]int, maxCells, workers int) (*Grid, error) {
	pw, ph, pd := cellDims[0]+1, cellDims[1]+1, cellDims[2]+1
	total := pw * ph * pd
	if maxCells > 0 && total > maxCells {
		return nil, &DiscretizeError{Requested: total, Max: maxCells}
	}
	if workers < 1 {
		workers = 1
	}

	g := NewGrid(origin, cellSize, pw, ph, pd)

	var wg sync.WaitGroup
	tileSize := (pd + workers - 1) / workers
	cancelled := make(chan struct{})
	var once sync.Once

	for t := 0; t < workers; t++ {
		z0 := t * tileSize
		z1 := z0 + tileSize
		if z1 > pd {
			z1 = pd
		}
		if z0 >= z1 {
			continue
		}
		wg.Add(1)
		go func(z0, z1 int) {
			defer wg.Done()
			for z := z0; z < z1; z++ {
				select {
				case <-ctx.Done():
					once.Do(func() { close(cancelled) })
					return
				default:
				}
				carve := newCarveIndex()
				for y := 0; y < ph; y++ {
					discretizeRow(prog, g, carve, y, z, cellSize)
				}
			}
		}(z0, z1)
	}
	wg.Wait()

	select {
	case <-cancelled:
		return g, ctx.Err()
	default:
		return g, nil
	}
}
