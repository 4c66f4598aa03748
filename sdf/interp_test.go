package sdf

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func randomPoints(n int, extent float64, seed int64) []Vec3 {
	u := distuv.Uniform{Min: -extent, Max: extent, Src: rand.NewSource(seed)}
	pts := make([]Vec3, n)
	for i := range pts {
		pts[i] = Vec3{X: u.Rand(), Y: u.Rand(), Z: u.Rand()}
	}
	return pts
}

// Lipschitz-1: |d(p)-d(q)| <= |p-q| for every primitive and combinator,
// since it's what lets the discretizer skip evaluating safe regions.
func TestEvalIsLipschitz1(t *testing.T) {
	progs := []*Program{
		mustFinish(t, NewBuilder().Sphere(Vec3{}, 3)),
		mustFinish(t, NewBuilder().RoundedBox(Vec3{X: 2, Y: 1, Z: 3}, 0.5)),
		mustFinish(t, NewBuilder().Torus(3, 1)),
		mustFinish(t, NewBuilder().Cone(2, 4)),
		mustFinish(t, NewBuilder().Sphere(Vec3{X: -2}, 2).Sphere(Vec3{X: 2}, 2).UnionSmooth(1)),
		mustFinish(t, NewBuilder().RoundedBox(Vec3{X: 3, Y: 3, Z: 3}, 0).Sphere(Vec3{}, 2).Subtract()),
	}

	pts := randomPoints(200, 10, 1)
	for _, prog := range progs {
		for i := 0; i < len(pts)-1; i++ {
			p, q := pts[i], pts[i+1]
			dp := Eval(prog, p).D
			dq := Eval(prog, q).D
			dist := vnorm(vsub(p, q))
			assert.LessOrEqual(t, math.Abs(dp-dq), dist+1e-9)
		}
	}
}

// Sign consistency: Union's result is negative wherever either operand
// is, Intersect's only where both are.
func TestUnionIntersectSignConsistency(t *testing.T) {
	union := mustFinish(t, NewBuilder().Sphere(Vec3{X: -1}, 1.5).Sphere(Vec3{X: 1}, 1.5).Union())
	intersect := mustFinish(t, NewBuilder().Sphere(Vec3{X: -1}, 1.5).Sphere(Vec3{X: 1}, 1.5).Intersect())
	a := mustFinish(t, NewBuilder().Sphere(Vec3{X: -1}, 1.5))
	b := mustFinish(t, NewBuilder().Sphere(Vec3{X: 1}, 1.5))

	for _, p := range randomPoints(200, 4, 2) {
		da, db := Eval(a, p).D, Eval(b, p).D
		du := Eval(union, p).D
		di := Eval(intersect, p).D
		assert.Equal(t, da < 0 || db < 0, du < 0)
		assert.Equal(t, da < 0 && db < 0, di < 0)
	}
}

// De Morgan: subtracting the union of two tools equals intersecting the
// subtraction of each.
func TestSubtractDeMorgan(t *testing.T) {
	base := func() *Builder { return NewBuilder().RoundedBox(Vec3{X: 4, Y: 4, Z: 4}, 0) }
	lhs := mustFinish(t, base().Sphere(Vec3{X: -1}, 1.2).Sphere(Vec3{X: 1}, 1.2).Union().Subtract())

	for _, p := range randomPoints(100, 3, 3) {
		got := Eval(lhs, p).D
		baseD := Eval(mustFinish(t, base()), p).D
		aD := Eval(mustFinish(t, NewBuilder().Sphere(Vec3{X: -1}, 1.2)), p).D
		bD := Eval(mustFinish(t, NewBuilder().Sphere(Vec3{X: 1}, 1.2)), p).D
		wantUnion := math.Min(aD, bD)
		want := math.Max(baseD, -wantUnion)
		assert.InDelta(t, want, got, 1e-9)
	}
}

// Scale commutes with distance: PushScale(s)/PopScale divides the
// resulting distance by s relative to the unscaled program evaluated at
// the scaled point.
func TestScaleCommutesWithDistance(t *testing.T) {
	unscaled := mustFinish(t, NewBuilder().Sphere(Vec3{}, 1))
	for _, s := range []float64{0.5, 2, 4} {
		scaled := mustFinish(t, NewBuilder().PushScale(s).Sphere(Vec3{}, 1).PopScale())
		for _, p := range randomPoints(30, 5, 4) {
			want := Eval(unscaled, vscale(s, p)).D / s
			got := Eval(scaled, p).D
			assert.InDelta(t, want, got, 1e-6)
		}
	}
}

// Union idempotence: unioning a shape with itself changes nothing.
func TestUnionIdempotent(t *testing.T) {
	sphere := func() *Builder { return NewBuilder().Sphere(Vec3{}, 2) }
	plain := mustFinish(t, sphere())
	doubled := mustFinish(t, sphere().Sphere(Vec3{}, 2).Union())
	for _, p := range randomPoints(50, 5, 5) {
		assert.InDelta(t, Eval(plain, p).D, Eval(doubled, p).D, 1e-9)
	}
}

func TestProgramEncodeDecodeRoundTrip(t *testing.T) {
	prog := mustFinish(t, NewBuilder().
		PushTranslation(Vec3{X: 1, Y: 2, Z: 3}).
		Sphere(Vec3{}, 1.5).
		Material(Vec3{X: 0.2, Y: 0.4, Z: 0.6}).
		PopTransform())

	buf := prog.Encode(nil)
	decoded, err := DecodeProgram(buf)
	require.NoError(t, err)

	for _, p := range randomPoints(20, 5, 6) {
		want := Eval(prog, p)
		got := Eval(decoded, p)
		assert.Equal(t, want, got)
	}
}

func TestDecodeProgramTruncatedBuffer(t *testing.T) {
	_, err := DecodeProgram([]byte{1, 2, 3})
	require.Error(t, err)
}

func mustFinish(t *testing.T, b *Builder) *Program {
	t.Helper()
	prog, err := b.Finish()
	require.NoError(t, err)
	return prog
}
