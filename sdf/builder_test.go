package sdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: a lone unit sphere evaluates to the expected signed distance at
// the center, surface, and outside.
func TestBuilderUnitSphere(t *testing.T) {
	prog, err := NewBuilder().Sphere(Vec3{}, 1).Finish()
	require.NoError(t, err)

	assert.InDelta(t, -1, Eval(prog, Vec3{}).D, 1e-9)
	assert.InDelta(t, 0, Eval(prog, Vec3{X: 1}).D, 1e-9)
	assert.InDelta(t, 1, Eval(prog, Vec3{X: 2}).D, 1e-9)
}

// S2: a translated sphere's surface moves with it.
func TestBuilderTranslatedSphere(t *testing.T) {
	prog, err := NewBuilder().
		PushTranslation(Vec3{X: 5}).
		Sphere(Vec3{}, 1).
		PopTransform().
		Finish()
	require.NoError(t, err)

	assert.InDelta(t, -1, Eval(prog, Vec3{X: 5}).D, 1e-9)
	assert.InDelta(t, 0, Eval(prog, Vec3{X: 6}).D, 1e-9)
}

// S3: Union picks the nearer of two spheres.
func TestBuilderUnion(t *testing.T) {
	prog, err := NewBuilder().
		Sphere(Vec3{X: -5}, 1).
		Sphere(Vec3{X: 5}, 1).
		Union().
		Finish()
	require.NoError(t, err)

	assert.InDelta(t, -1, Eval(prog, Vec3{X: -5}).D, 1e-9)
	assert.InDelta(t, -1, Eval(prog, Vec3{X: 5}).D, 1e-9)
}

// S4: UnionSmooth blends two nearby spheres' distance below either
// sphere's own distance at the midpoint.
func TestBuilderUnionSmooth(t *testing.T) {
	prog, err := NewBuilder().
		Sphere(Vec3{X: -1}, 1).
		Sphere(Vec3{X: 1}, 1).
		UnionSmooth(1).
		Finish()
	require.NoError(t, err)

	mid := Eval(prog, Vec3{}).D
	hard, err := NewBuilder().Sphere(Vec3{X: -1}, 1).Sphere(Vec3{X: 1}, 1).Union().Finish()
	require.NoError(t, err)
	assert.Less(t, mid, Eval(hard, Vec3{}).D)
}

// S5: Material overwrites color without touching distance.
func TestBuilderMaterial(t *testing.T) {
	prog, err := NewBuilder().
		Sphere(Vec3{}, 1).
		Material(Vec3{X: 1, Y: 0, Z: 0}).
		Finish()
	require.NoError(t, err)

	s := Eval(prog, Vec3{})
	assert.InDelta(t, -1, s.D, 1e-9)
	assert.Equal(t, Vec3{X: 1, Y: 0, Z: 0}, s.Rgb)
}

// S6: PushScale(s) multiplies the query point by s and PopScale divides
// the resulting distance by s, so the unit sphere shrinks to radius 1/s.
func TestBuilderScale(t *testing.T) {
	prog, err := NewBuilder().
		PushScale(2).
		Sphere(Vec3{}, 1).
		PopScale().
		Finish()
	require.NoError(t, err)

	assert.InDelta(t, 1.5, Eval(prog, Vec3{X: 2}).D, 1e-9)
	assert.InDelta(t, -0.5, Eval(prog, Vec3{}).D, 1e-6)
}

func TestBuilderUnbalancedTransformFails(t *testing.T) {
	_, err := NewBuilder().
		PushTranslation(Vec3{X: 1}).
		Sphere(Vec3{}, 1).
		Finish()
	require.Error(t, err)
}

func TestBuilderEmptyStackFails(t *testing.T) {
	_, err := NewBuilder().Finish()
	require.Error(t, err)
}

func TestBuilderTwoSamplesLeftFails(t *testing.T) {
	_, err := NewBuilder().Sphere(Vec3{}, 1).Sphere(Vec3{X: 1}, 1).Finish()
	require.Error(t, err)
}

func TestBuilderCombinatorUnderflowFails(t *testing.T) {
	_, err := NewBuilder().Sphere(Vec3{}, 1).Union().Finish()
	require.Error(t, err)
}

func TestBuilderPopScaleWithoutPushFails(t *testing.T) {
	_, err := NewBuilder().Sphere(Vec3{}, 1).PopScale().Finish()
	require.Error(t, err)
}
