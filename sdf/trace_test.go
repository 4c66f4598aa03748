package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceHitsUnitSphere(t *testing.T) {
	prog := mustFinish(t, NewBuilder().Sphere(Vec3{}, 1))
	limits := DefaultTraceLimits()

	hit, ok := Trace(prog, Vec3{X: -5}, Vec3{X: 1}, limits)
	require.True(t, ok)
	assert.InDelta(t, -1, hit.Position.X, limits.EpsHit*10)
	assert.InDelta(t, -1, hit.Normal.X, 1e-3)
}

func TestTraceMissesEmptySpace(t *testing.T) {
	prog := mustFinish(t, NewBuilder().Sphere(Vec3{X: 100}, 1))
	_, ok := Trace(prog, Vec3{}, Vec3{Y: 1}, DefaultTraceLimits())
	assert.False(t, ok)
}

func TestTraceNormalPointsOutward(t *testing.T) {
	prog := mustFinish(t, NewBuilder().Sphere(Vec3{}, 2))
	limits := DefaultTraceLimits()

	for _, dir := range []Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: -1}} {
		hit, ok := Trace(prog, vscale(10, dir), vscale(-1, dir), limits)
		require.True(t, ok)
		assert.Greater(t, vdot(hit.Normal, dir), 0.9)
	}
}
