package sdf

// Eval evaluates prog at point and returns its color and signed distance.
// It is a total function over any well-formed Program: all state (the pc,
// the constant cursor, the two stacks, current_position) lives on the
// Go call stack for this single invocation, so concurrent calls to Eval
// never share mutable state (spec §5).
func Eval(prog *Program, point Vec3) Sample {
	var sampleStack [maxSampleDepth]Sample
	var transformStack [maxTransformDepth]Vec3
	sp, tp := 0, 0

	cp := 0
	pos := point

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
			return sampleStack[sp-1]

		case isPrimitive(op):
			sampleStack[sp] = evalPrimitive(op, pos, nextf, nextVec3)
			sp++

		case op == OpMaterial:
			rgb := nextVec3()
			sampleStack[sp-1].Rgb = rgb

		case isCombinator(op):
			a := sampleStack[sp-1]
			b := sampleStack[sp-2]
			sp--
			var result Sample
			if isSmoothCombinator(op) {
				k := nextf()
				switch op {
				case OpUnionSmooth:
					result = sampleUnionSmooth(a, b, k)
				case OpSubtractSmooth:
					result = sampleSubtractSmooth(a, b, k)
				case OpIntersectSmooth:
					result = sampleIntersectSmooth(a, b, k)
				}
			} else {
				switch op {
				case OpUnion:
					result = sampleUnion(a, b)
				case OpSubtract:
					result = sampleSubtract(a, b)
				case OpIntersect:
					result = sampleIntersect(a, b)
				}
			}
			sampleStack[sp-1] = result

		case op == OpPushTranslation:
			transformStack[tp] = pos
			tp++
			pos = vadd(pos, nextVec3())

		case op == OpPushRotation:
			transformStack[tp] = pos
			tp++
			qx, qy, qz, qw := nextf(), nextf(), nextf(), nextf()
			pos = rotateByQuat(pos, qx, qy, qz, qw)

		case op == OpPushScale:
			transformStack[tp] = pos
			tp++
			s := nextf()
			pos = vscale(s, pos)

		case op == OpPopTransform:
			tp--
			pos = transformStack[tp]

		case op == OpPopScale:
			tp--
			pos = transformStack[tp]
			invS := nextf()
			sampleStack[sp-1].D *= invS
		}
	}

	// A well-formed program always returns via OpEnd; this is reached only
	// for a malformed program with no End opcode.
	if sp > 0 {
		return sampleStack[sp-1]
	}
	return Sample{}
}

// rotateByQuat rotates v by quaternion q=(x,y,z,w) using the standard
// formula v + 2*(qxyz x (qxyz x v + w*v)), avoiding a full quaternion
// product.
func rotateByQuat(v Vec3, qx, qy, qz, qw float64) Vec3 {
	qxyz := Vec3{X: qx, Y: qy, Z: qz}
	t := vadd(vcross(qxyz, v), vscale(qw, v))
	return vadd(v, vscale(2, vcross(qxyz, t)))
}

func evalPrimitive(op Op, pos Vec3, nextf func() float64, nextVec3 func() Vec3) Sample {
	switch op {
	case OpPlane:
		n := nextVec3()
		d := nextf()
		return sdrgbPlane(pos, n, d)
	case OpSphere:
		c := nextVec3()
		r := nextf()
		return sdrgbSphere(pos, c, r)
	case OpCapsule:
		p0 := nextVec3()
		p1 := nextVec3()
		r := nextf()
		return sdrgbCapsule(pos, p0, p1, r)
	case OpTaperedCapsule:
		p0 := nextVec3()
		r0 := nextf()
		p1 := nextVec3()
		r1 := nextf()
		return sdrgbTaperedCapsule(pos, p0, r0, p1, r1)
	case OpRoundedBox:
		h := nextVec3()
		r := nextf()
		return sdrgbRoundedBox(pos, h, r)
	case OpBiconvexLens:
		lower := nextf()
		upper := nextf()
		chord := nextf()
		return sdrgbBiconvexLens(pos, lower, upper, chord)
	case OpRoundedCylinder:
		rc := nextf()
		h := nextf()
		rr := nextf()
		return sdrgbRoundedCylinder(pos, rc, h, rr)
	case OpTorus:
		rMajor := nextf()
		rMinor := nextf()
		return sdrgbTorus(pos, rMajor, rMinor)
	case OpTorusSector:
		rMajor := nextf()
		rMinor := nextf()
		sinA := nextf()
		cosA := nextf()
		return sdrgbTorusSector(pos, rMajor, rMinor, sinA, cosA)
	case OpCone:
		r := nextf()
		h := nextf()
		return sdrgbCone(pos, r, h)
	}
	return Sample{}
}
