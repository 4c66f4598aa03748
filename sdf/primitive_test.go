package sdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bruteTaperedCapsule finds the minimum, over the capsule axis parameter t
// in [0,1], of the distance from pos to the axis point at t minus the
// radius linearly interpolated between r0 and r1 at t. This matches the
// round cone's exact distance field and gives an independent numerical
// check on sdTaperedCapsule's closed-form branches.
func bruteTaperedCapsule(pos, p0 Vec3, r0 float64, p1 Vec3, r1 float64) float64 {
	const steps = 20000
	best := math.Inf(1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		center := vadd(p0, vscale(t, vsub(p1, p0)))
		r := r0 + t*(r1-r0)
		d := vnorm(vsub(pos, center)) - r
		if d < best {
			best = d
		}
	}
	return best
}

// Equal end radii reduce a tapered capsule to an ordinary capsule. The
// segment here has non-unit length, so a missing l2 factor in the x^2 term
// would show up as a mismatch against sdCapsule.
func TestTaperedCapsuleMatchesCapsuleForEqualRadii(t *testing.T) {
	p0 := Vec3{X: 1, Y: -2, Z: 0.5}
	p1 := Vec3{X: 1, Y: 3, Z: 0.5}
	r := 0.75

	points := []Vec3{
		{X: 1, Y: 0, Z: 0.5},
		{X: 1.5, Y: 1, Z: 0.5},
		{X: 1, Y: -2, Z: 0.5},
		{X: 1, Y: 3, Z: 0.5},
		{X: 3, Y: 0.4, Z: 0.5},
		{X: 1, Y: 5, Z: 2},
		{X: -2, Y: -3, Z: 1},
	}
	for _, p := range points {
		got := sdTaperedCapsule(p, p0, r, p1, r)
		want := sdCapsule(p, p0, p1, r)
		assert.InDeltaf(t, want, got, 1e-6, "at %v", p)
	}
}

func TestTaperedCapsuleMatchesBruteForce(t *testing.T) {
	p0 := Vec3{X: 0, Y: 0, Z: 0}
	p1 := Vec3{X: 0, Y: 5, Z: 0}
	r0, r1 := 1.5, 0.4

	points := []Vec3{
		{X: 0, Y: 2.5, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: 4.5, Z: 0},
		{X: 2, Y: 2, Z: 0},
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 6, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}
	for _, p := range points {
		got := sdTaperedCapsule(p, p0, r0, p1, r1)
		want := bruteTaperedCapsule(p, p0, r0, p1, r1)
		assert.InDeltaf(t, want, got, 5e-3, "at %v", p)
	}
}

// insideSolidCone is an independent geometric predicate for the finite
// solid cone (base circle of radius r at y=0, apex at y=h), used to check
// sdCone's sign without relying on any of sdCone's own internal math.
func insideSolidCone(pos Vec3, r, h float64) bool {
	if pos.Y < 0 || pos.Y > h {
		return false
	}
	wx := math.Hypot(pos.X, pos.Z)
	limit := r * (h - pos.Y) / h
	return wx < limit
}

func TestConeSignMatchesGeometricPredicate(t *testing.T) {
	r, h := 2.0, 4.0
	const eps = 0.02

	for yi := -10; yi <= 50; yi++ {
		y := float64(yi) * 0.1
		// Skip near the base/apex planes, where the inside/outside
		// predicate is boundary-sensitive regardless of correctness.
		if math.Abs(y) < eps || math.Abs(y-h) < eps {
			continue
		}
		for xi := -30; xi <= 30; xi++ {
			x := float64(xi) * 0.1
			pos := Vec3{X: x, Y: y}

			if y >= 0 && y <= h {
				limit := r * (h - y) / h
				if math.Abs(x-limit) < eps {
					continue
				}
			}

			inside := insideSolidCone(pos, r, h)
			got := sdCone(pos, r, h)
			if inside {
				assert.Lessf(t, got, 0.0, "expected inside at %v", pos)
			} else {
				assert.GreaterOrEqualf(t, got, 0.0, "expected outside at %v", pos)
			}
		}
	}
}

func TestConeApexAndWallRegions(t *testing.T) {
	r, h := 2.0, 4.0

	// Just below the apex, on-axis: inside.
	assert.Less(t, sdCone(Vec3{Y: h - 0.01}, r, h), 0.0)
	// Just above the apex, on-axis: outside.
	assert.Greater(t, sdCone(Vec3{Y: h + 0.01}, r, h), 0.0)

	// Just inside/outside the lateral wall at mid-height.
	midY := h / 2
	wallR := r * (h - midY) / h
	assert.Less(t, sdCone(Vec3{X: wallR - 0.05, Y: midY}, r, h), 0.0)
	assert.Greater(t, sdCone(Vec3{X: wallR + 0.05, Y: midY}, r, h), 0.0)
}
