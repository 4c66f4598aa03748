package sdfb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philpax/opensaft/sdf"
)

func TestCompileSphere(t *testing.T) {
	prog, err := Compile(Sphere(sdf.Vec3{}, 2))
	require.NoError(t, err)
	assert.InDelta(t, -2, sdf.Eval(prog, sdf.Vec3{}).D, 1e-9)
}

func TestCompileUnionSmooth(t *testing.T) {
	prog, err := Compile(Union(1, Sphere(sdf.Vec3{X: -1}, 1), Sphere(sdf.Vec3{X: 1}, 1)))
	require.NoError(t, err)
	hard, err := Compile(Union(0, Sphere(sdf.Vec3{X: -1}, 1), Sphere(sdf.Vec3{X: 1}, 1)))
	require.NoError(t, err)
	assert.Less(t, sdf.Eval(prog, sdf.Vec3{}).D, sdf.Eval(hard, sdf.Vec3{}).D)
}

func TestCompileSubtractCarvesTool(t *testing.T) {
	prog, err := Compile(Subtract(
		Sphere(sdf.Vec3{}, 3),
		Sphere(sdf.Vec3{}, 1),
		0,
	))
	require.NoError(t, err)

	// Inside the carved cavity: outside the tool distance (positive,
	// since it's now "outside" the subtracted result).
	assert.Greater(t, sdf.Eval(prog, sdf.Vec3{}).D, 0.0)
	// Between the tool and the outer sphere: still inside the result.
	assert.Less(t, sdf.Eval(prog, sdf.Vec3{X: 2}).D, 0.0)
}

func TestCompileTranslate(t *testing.T) {
	prog, err := Compile(Translate(sdf.Vec3{X: 5}, Sphere(sdf.Vec3{}, 1)))
	require.NoError(t, err)
	assert.InDelta(t, -1, sdf.Eval(prog, sdf.Vec3{X: 5}).D, 1e-9)
}

func TestCompileRotateAboutZ(t *testing.T) {
	prog, err := Compile(Rotate(sdf.Vec3{Z: 1}, 3.14159265358979/2, Sphere(sdf.Vec3{X: 3}, 1)))
	require.NoError(t, err)
	// PushRotation rotates the query point by +90 deg about Z before the
	// child sees it, so the sphere's apparent world center is rotated by
	// -90 deg: (3,0,0) -> (0,-3,0).
	assert.InDelta(t, -1, sdf.Eval(prog, sdf.Vec3{Y: -3}).D, 1e-6)
}

func TestCompileScale(t *testing.T) {
	prog, err := Compile(Scale(2, Sphere(sdf.Vec3{}, 1)))
	require.NoError(t, err)
	// The query point is doubled and the distance halved: (4-1)/2 at X=2.
	assert.InDelta(t, 1.5, sdf.Eval(prog, sdf.Vec3{X: 2}).D, 1e-9)
}

func TestCompileColored(t *testing.T) {
	rgb := sdf.Vec3{X: 1, Y: 0.5, Z: 0}
	prog, err := Compile(Colored(rgb, Sphere(sdf.Vec3{}, 1)))
	require.NoError(t, err)
	assert.Equal(t, rgb, sdf.Eval(prog, sdf.Vec3{}).Rgb)
}
