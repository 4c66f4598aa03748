package sdf

// Aabb is a conservative axis-aligned bounding box in world space: it
// encloses every point at which a program's field may be <= 0. A Min
// component-wise greater than the matching Max component denotes an
// empty box (spec §7: "BoundsError ... returned as an empty AABB, not a
// failure").
type Aabb struct {
	Min, Max Vec3
}

// Empty reports whether the box encloses no points.
func (a Aabb) Empty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

// Size returns Max-Min.
func (a Aabb) Size() Vec3 { return vsub(a.Max, a.Min) }

// Center returns the midpoint of the box.
func (a Aabb) Center() Vec3 { return vscale(0.5, vadd(a.Min, a.Max)) }

// boundsEpsilon is the small inflation applied to rotated boxes: spec §4.4
// only requires the pass be conservative, not exact.
const boundsEpsilon = 1e-6

// pendingTransform records what a Push* opcode did, so its matching Pop
// can apply the inverse to the box computed inside the scope.
type pendingTransform struct {
	translation bool
	rotation    bool
	t           Vec3
	qx, qy, qz, qw float64
}

// Bounds computes a conservative Aabb for prog by a second interpreter
// pass that propagates interval boxes instead of sample points (spec
// §4.4). It never fails: a program with no primitives, or one whose
// Intersect operands' boxes do not overlap, is reported as an Aabb.Empty() box
// rather than a BoundsError — building bounds for a program with no
// primitives is itself an impossible program under the Builder's
// contract, so the only realistic empty case is a degenerate Intersect.
func Bounds(prog *Program) Aabb {
	var boxStack [maxSampleDepth]Aabb
	var transformStack [maxTransformDepth]pendingTransform
	sp, tp := 0, 0
	cp := 0

	ops := prog.opcodes
	consts := prog.constants

	nextf := func() float64 {
		v := float64(consts[cp])
		cp++
		return v
	}
	nextVec3 := func() Vec3 {
		return Vec3{X: nextf(), Y: nextf(), Z: nextf()}
	}

	for _, op := range ops {
		switch {
		case op == OpEnd:
			if sp == 0 {
				return Aabb{Min: Vec3{X: 1}, Max: Vec3{}}
			}
			return boxStack[sp-1]

		case isPrimitive(op):
			boxStack[sp] = primitiveBounds(op, nextf, nextVec3)
			sp++

		case op == OpMaterial:
			nextVec3()

		case isCombinator(op):
			a := boxStack[sp-1]
			b := boxStack[sp-2]
			sp--
			var result Aabb
			if isSmoothCombinator(op) {
				k := nextf()
				switch op {
				case OpUnionSmooth:
					result = inflateAabb(unionAabb(a, b), k)
				case OpSubtractSmooth:
					result = inflateAabb(b, k)
				case OpIntersectSmooth:
					result = inflateAabb(intersectAabb(a, b), k)
				}
			} else {
				switch op {
				case OpUnion:
					result = unionAabb(a, b)
				case OpSubtract:
					result = b
				case OpIntersect:
					result = intersectAabb(a, b)
				}
			}
			boxStack[sp-1] = result

		case op == OpPushTranslation:
			transformStack[tp] = pendingTransform{translation: true, t: nextVec3()}
			tp++

		case op == OpPushRotation:
			qx, qy, qz, qw := nextf(), nextf(), nextf(), nextf()
			transformStack[tp] = pendingTransform{rotation: true, qx: qx, qy: qy, qz: qz, qw: qw}
			tp++

		case op == OpPushScale:
			nextf()
			tp++

		case op == OpPopTransform:
			tp--
			pt := transformStack[tp]
			box := boxStack[sp-1]
			if pt.translation {
				box = Aabb{Min: vsub(box.Min, pt.t), Max: vsub(box.Max, pt.t)}
			} else if pt.rotation {
				box = rotateAabbConservative(box, pt.qx, pt.qy, pt.qz, -pt.qw)
			}
			boxStack[sp-1] = box

		case op == OpPopScale:
			tp--
			invS := nextf()
			box := boxStack[sp-1]
			boxStack[sp-1] = Aabb{Min: vscale(invS, box.Min), Max: vscale(invS, box.Max)}
		}
	}

	if sp == 0 {
		return Aabb{Min: Vec3{X: 1}, Max: Vec3{}}
	}
	return boxStack[sp-1]
}

func unionAabb(a, b Aabb) Aabb {
	return Aabb{Min: vminv(a.Min, b.Min), Max: vmaxv(a.Max, b.Max)}
}

func intersectAabb(a, b Aabb) Aabb {
	return Aabb{Min: vmaxv(a.Min, b.Min), Max: vminv(a.Max, b.Max)}
}

func inflateAabb(a Aabb, k float64) Aabb {
	e := Vec3{X: k, Y: k, Z: k}
	return Aabb{Min: vsub(a.Min, e), Max: vadd(a.Max, e)}
}

// rotateAabbConservative bounds a rotated box by enclosing its
// bounding sphere in an axis-aligned cube: rotation preserves the
// distance from center to corner, so the conservative radius needs no
// further inflation beyond boundsEpsilon for floating-point slop.
func rotateAabbConservative(box Aabb, qx, qy, qz, qw float64) Aabb {
	center := box.Center()
	radius := vnorm(vsub(box.Max, center)) + boundsEpsilon
	rotatedCenter := rotateByQuat(center, qx, qy, qz, qw)
	e := Vec3{X: radius, Y: radius, Z: radius}
	return Aabb{Min: vsub(rotatedCenter, e), Max: vadd(rotatedCenter, e)}
}

func primitiveBounds(op Op, nextf func() float64, nextVec3 func() Vec3) Aabb {
	switch op {
	case OpPlane:
		// A half-space has no finite conservative box; the caller is
		// expected to intersect/subtract it against a bounded shape, per
		// spec's emphasis on grid-sizing use only. We report a very large
		// box rather than an unbounded one so downstream grid sizing
		// degrades instead of panicking.
		nextVec3()
		nextf()
		const big = 1e6
		return Aabb{Min: Vec3{X: -big, Y: -big, Z: -big}, Max: Vec3{X: big, Y: big, Z: big}}
	case OpSphere:
		c := nextVec3()
		r := nextf()
		e := Vec3{X: r, Y: r, Z: r}
		return Aabb{Min: vsub(c, e), Max: vadd(c, e)}
	case OpCapsule:
		p0 := nextVec3()
		p1 := nextVec3()
		r := nextf()
		e := Vec3{X: r, Y: r, Z: r}
		return Aabb{Min: vsub(vminv(p0, p1), e), Max: vadd(vmaxv(p0, p1), e)}
	case OpTaperedCapsule:
		p0 := nextVec3()
		r0 := nextf()
		p1 := nextVec3()
		r1 := nextf()
		rMax := maxf64(r0, r1)
		e := Vec3{X: rMax, Y: rMax, Z: rMax}
		return Aabb{Min: vsub(vminv(p0, p1), e), Max: vadd(vmaxv(p0, p1), e)}
	case OpRoundedBox:
		h := nextVec3()
		r := nextf()
		e := vadd(h, Vec3{X: r, Y: r, Z: r})
		return Aabb{Min: vscale(-1, e), Max: e}
	case OpBiconvexLens:
		lower := nextf()
		upper := nextf()
		chord := nextf()
		halfChord := chord / 2
		maxSagitta := maxf64(lower, upper)
		e := Vec3{X: halfChord, Y: maxSagitta, Z: halfChord}
		return Aabb{Min: vscale(-1, e), Max: e}
	case OpRoundedCylinder:
		rc := nextf()
		h := nextf()
		rr := nextf()
		e := Vec3{X: rc + rr, Y: h + rr, Z: rc + rr}
		return Aabb{Min: vscale(-1, e), Max: e}
	case OpTorus:
		rMajor := nextf()
		rMinor := nextf()
		e := Vec3{X: rMajor + rMinor, Y: rMinor, Z: rMajor + rMinor}
		return Aabb{Min: vscale(-1, e), Max: e}
	case OpTorusSector:
		rMajor := nextf()
		rMinor := nextf()
		nextf()
		nextf()
		e := Vec3{X: rMajor + rMinor, Y: rMinor, Z: rMajor + rMinor}
		return Aabb{Min: vscale(-1, e), Max: e}
	case OpCone:
		r := nextf()
		h := nextf()
		return Aabb{Min: Vec3{X: -r, Y: 0, Z: -r}, Max: Vec3{X: r, Y: h, Z: r}}
	}
	return Aabb{}
}
