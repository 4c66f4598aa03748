package sdfio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philpax/opensaft/render"
	"github.com/philpax/opensaft/sdf"
)

func TestSliceOfSphereIsCircle(t *testing.T) {
	prog, err := sdf.NewBuilder().Sphere(sdf.Vec3{}, 3).Finish()
	require.NoError(t, err)

	g, err := render.Discretize(prog, sdf.Vec3{X: -4, Y: -4, Z: -4}, 0.25, [3]int{32, 32, 32}, 0)
	require.NoError(t, err)

	midZ := g.D / 2
	segs := Slice(g, midZ)
	require.NotEmpty(t, segs)

	z := g.Point(0, 0, midZ).Z
	r := math.Sqrt(9 - z*z)
	for _, s := range segs {
		for _, p := range []sdf.Vec3{s.A, s.B} {
			got := math.Hypot(p.X, p.Y)
			assert.InDelta(t, r, got, 0.4)
		}
	}
}

func TestSliceOfEmptyRegionIsEmpty(t *testing.T) {
	prog, err := sdf.NewBuilder().Sphere(sdf.Vec3{}, 1).Finish()
	require.NoError(t, err)

	g, err := render.Discretize(prog, sdf.Vec3{X: 10, Y: 10, Z: 10}, 0.5, [3]int{4, 4, 4}, 0)
	require.NoError(t, err)

	assert.Empty(t, Slice(g, 2))
}
