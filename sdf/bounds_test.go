package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsSphere(t *testing.T) {
	prog := mustFinish(t, NewBuilder().Sphere(Vec3{X: 1, Y: 2, Z: 3}, 5))
	b := Bounds(prog)
	assert.Equal(t, Vec3{X: -4, Y: -3, Z: -2}, b.Min)
	assert.Equal(t, Vec3{X: 6, Y: 7, Z: 8}, b.Max)
}

func TestBoundsTranslation(t *testing.T) {
	prog := mustFinish(t, NewBuilder().
		PushTranslation(Vec3{X: 10}).
		Sphere(Vec3{}, 1).
		PopTransform())
	b := Bounds(prog)
	assert.InDelta(t, 9, b.Min.X, 1e-9)
	assert.InDelta(t, 11, b.Max.X, 1e-9)
}

// Bounds must be conservative: every point the interpreter reports as
// inside or on the surface lies within the reported box.
func TestBoundsConservative(t *testing.T) {
	progs := []*Program{
		mustFinish(t, NewBuilder().Sphere(Vec3{X: 2, Y: -1, Z: 0}, 3)),
		mustFinish(t, NewBuilder().RoundedBox(Vec3{X: 2, Y: 1, Z: 3}, 0.5)),
		mustFinish(t, NewBuilder().Sphere(Vec3{X: -2}, 2).Sphere(Vec3{X: 2}, 2).UnionSmooth(1)),
		mustFinish(t, NewBuilder().
			PushRotation(0, 0, 0.7071067811865476, 0.7071067811865476).
			Sphere(Vec3{X: 3}, 1).
			PopTransform()),
	}

	for _, prog := range progs {
		box := Bounds(prog)
		require.False(t, box.Empty())
		for _, p := range randomPoints(300, 10, 7) {
			if Eval(prog, p).D <= 0 {
				assert.GreaterOrEqual(t, p.X, box.Min.X-boundsEpsilon)
				assert.LessOrEqual(t, p.X, box.Max.X+boundsEpsilon)
				assert.GreaterOrEqual(t, p.Y, box.Min.Y-boundsEpsilon)
				assert.LessOrEqual(t, p.Y, box.Max.Y+boundsEpsilon)
				assert.GreaterOrEqual(t, p.Z, box.Min.Z-boundsEpsilon)
				assert.LessOrEqual(t, p.Z, box.Max.Z+boundsEpsilon)
			}
		}
	}
}

func TestAabbEmpty(t *testing.T) {
	assert.True(t, Aabb{Min: Vec3{X: 1}, Max: Vec3{}}.Empty())
	assert.False(t, Aabb{Min: Vec3{}, Max: Vec3{X: 1}}.Empty())
}
