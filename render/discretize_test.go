package render

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philpax/opensaft/sdf"
)

func sphereProgram(t *testing.T, r float64) *sdf.Program {
	t.Helper()
	prog, err := sdf.NewBuilder().Sphere(sdf.Vec3{}, r).Finish()
	require.NoError(t, err)
	return prog
}

func TestDiscretizeMatchesDirectEval(t *testing.T) {
	prog := sphereProgram(t, 3)
	g, err := Discretize(prog, sdf.Vec3{X: -4, Y: -4, Z: -4}, 0.25, [3]int{32, 32, 32}, 0)
	require.NoError(t, err)

	for z := 0; z < g.D; z += 5 {
		for y := 0; y < g.H; y += 5 {
			for x := 0; x < g.W; x += 5 {
				p := g.Point(x, y, z)
				want := sdf.Eval(prog, p).D
				got := g.At(x, y, z).D
				if math.Abs(want) <= kLipschitz*g.CellSize {
					// Surface-band points always hold their exact sample.
					assert.InDelta(t, want, got, 1e-9)
				} else {
					// Points outside the band may hold a copy of a nearby
					// sample, which keeps the sign and stays outside the band.
					assert.Equal(t, want < 0, got < 0)
					assert.Greater(t, math.Abs(got), kLipschitz*g.CellSize)
				}
			}
		}
	}
}

func TestDiscretizeRespectsMaxCells(t *testing.T) {
	prog := sphereProgram(t, 1)
	_, err := Discretize(prog, sdf.Vec3{}, 0.1, [3]int{100, 100, 100}, 1000)
	var discErr *DiscretizeError
	require.ErrorAs(t, err, &discErr)
}

func TestDiscretizeParallelMatchesSerial(t *testing.T) {
	prog := sphereProgram(t, 2)
	serial, err := Discretize(prog, sdf.Vec3{X: -3, Y: -3, Z: -3}, 0.2, [3]int{30, 30, 30}, 0)
	require.NoError(t, err)

	parallel, err := DiscretizeParallel(context.Background(), prog, sdf.Vec3{X: -3, Y: -3, Z: -3}, 0.2, [3]int{30, 30, 30}, 0, 4)
	require.NoError(t, err)

	require.Equal(t, len(serial.Samples), len(parallel.Samples))
	for i := range serial.Samples {
		assert.InDelta(t, serial.Samples[i].D, parallel.Samples[i].D, 1e-9)
	}
}

func TestDiscretizeParallelCancellation(t *testing.T) {
	prog := sphereProgram(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DiscretizeParallel(ctx, prog, sdf.Vec3{}, 0.5, [3]int{50, 50, 50}, 0, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCarveIndexReusesSafeSamples(t *testing.T) {
	prog := sphereProgram(t, 1)
	c := newCarveIndex()
	center := sdf.Vec3{X: 10, Y: 10, Z: 10}
	s := sdf.Eval(prog, center)
	radius := math.Abs(s.D) - 1e-9
	c.insert(center, s, radius)

	near := sdf.Vec3{X: 10 + radius/2, Y: 10, Z: 10}
	got, ok := c.lookup(near)
	require.True(t, ok)
	assert.Equal(t, s, got)

	far := sdf.Vec3{X: 10 + radius*2, Y: 10, Z: 10}
	_, ok = c.lookup(far)
	assert.False(t, ok)
}
