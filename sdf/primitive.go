package sdf

import "math"

// white is the default material color for a primitive that has not been
// overridden by a Material opcode.
var white = Vec3{X: 1, Y: 1, Z: 1}

// sdPlane returns the signed distance to a plane with unit normal n and
// offset d: dot(pos, n) + d.
func sdPlane(pos, n Vec3, d float64) float64 {
	return vdot(pos, n) + d
}

// sdSphere returns |pos - c| - r.
func sdSphere(pos, c Vec3, r float64) float64 {
	return vnorm(vsub(pos, c)) - r
}

// sdRoundedBox: q = |pos| - h + r; |max(q,0)| + min(max(q.x,q.y,q.z),0) - r.
func sdRoundedBox(pos, h Vec3, r float64) float64 {
	q := vsub(vabs(pos), vsub(h, Vec3{X: r, Y: r, Z: r}))
	outside := vnorm(vmax(q, 0))
	inside := minf64(vmaxComp(q), 0)
	return outside + inside - r
}

// sdTorus: |(|pos.xz|-R, pos.y)| - r.
func sdTorus(pos Vec3, rMajor, rMinor float64) float64 {
	qx := math.Hypot(pos.X, pos.Z) - rMajor
	return math.Hypot(qx, pos.Y) - rMinor
}

// sdTorusSector folds pos.x to |pos.x| then selects the nearest point on
// either the straight sector edge or the circular rim, per spec §4.1.
func sdTorusSector(pos Vec3, rMajor, rMinor, sinA, cosA float64) float64 {
	px := absf64(pos.X)
	var k float64
	if cosA*px > sinA*pos.Z {
		k = px*sinA + pos.Z*cosA
	} else {
		k = math.Hypot(px, pos.Z)
	}
	p2 := px*px + pos.Y*pos.Y + pos.Z*pos.Z
	return math.Sqrt(p2+rMajor*rMajor-2*rMajor*k) - rMinor
}

// sdCapsule projects pos-p0 onto p1-p0 clamped to [0,1] and returns the
// distance to that projection minus r.
func sdCapsule(pos, p0, p1 Vec3, r float64) float64 {
	pa := vsub(pos, p0)
	ba := vsub(p1, p0)
	h := clampf64(vdot(pa, ba)/vdot(ba, ba), 0, 1)
	return vnorm(vsub(pa, vscale(h, ba))) - r
}

// sdRoundedCylinder has its axis along Y.
func sdRoundedCylinder(pos Vec3, rc, h, rr float64) float64 {
	dx := math.Hypot(pos.X, pos.Z) - rc + rr
	dy := absf64(pos.Y) - h + rr
	return minf64(maxf64(dx, dy), 0) + math.Hypot(maxf64(dx, 0), maxf64(dy, 0)) - rr
}

// sdTaperedCapsule implements inigo quilez's round-cone formula for two
// differently-sized spheres joined by a conical shaft, per spec §4.1's
// three-way branch on a^2*z*|z|*l^2 vs rr^2*x^2 and a^2*y*|y|*l^2 vs
// rr^2*x^2 (rr=r0-r1, a^2=l^2-rr^2).
func sdTaperedCapsule(pos, p0 Vec3, r0 float64, p1 Vec3, r1 float64) float64 {
	ba := vsub(p1, p0)
	l2 := vdot(ba, ba)
	rr := r0 - r1
	a2 := l2 - rr*rr
	il2 := 1.0 / l2

	pa := vsub(pos, p0)
	y := vdot(pa, ba)
	z := y - l2
	x2 := l2 * (l2*vdot(pa, pa) - y*y)
	y2 := y * y * l2
	z2 := z * z * l2

	k := signf64(rr) * rr * rr * x2
	if signf64(z)*a2*z2 > k {
		return math.Sqrt(x2+z2)*il2 - r1
	}
	if signf64(y)*a2*y2 < k {
		return math.Sqrt(x2+y2)*il2 - r0
	}
	return (math.Sqrt(x2*a2*il2)+y*rr)*il2 - r0
}

func signf64(a float64) float64 {
	if a > 0 {
		return 1
	} else if a < 0 {
		return -1
	}
	return 0
}

// sdCone: base at origin, apex at (0,h,0), per inigo quilez's capped-cone
// formula evaluated with the query point measured from the apex
// (wy = pos.Y-h). q=(r,-h) is the apex-to-base-rim edge vector; k=sign(q.y)
// folds the two candidate half-plane tests (lateral wall, base cap) into
// one sign term, per spec §4.1.
func sdCone(pos Vec3, r, h float64) float64 {
	qx, qy := r, -h
	qlen2 := qx*qx + qy*qy

	wx := math.Hypot(pos.X, pos.Z)
	wy := pos.Y - h

	t := clampf64((wx*qx+wy*qy)/qlen2, 0, 1)
	ax, ay := wx-qx*t, wy-qy*t

	tb := clampf64(wx/qx, 0, 1)
	bx, by := wx-qx*tb, wy-qy

	d := minf64(ax*ax+ay*ay, bx*bx+by*by)

	k := signf64(qy)
	s := maxf64(k*(wx*qy-wy*qx), k*(wy-qy))
	if s < 0 {
		return -math.Sqrt(d)
	}
	return math.Sqrt(d)
}

// sdBiconvexLens is the intersection of two spheres whose centers and
// radii are derived from the chord and two sagittas, per spec §4.1.
func sdBiconvexLens(pos Vec3, lowerSagitta, upperSagitta, chord float64) float64 {
	rLower := (chord*chord/4 + lowerSagitta*lowerSagitta) / (2 * lowerSagitta)
	rUpper := (chord*chord/4 + upperSagitta*upperSagitta) / (2 * upperSagitta)
	cLower := Vec3{Y: -(rLower - lowerSagitta)}
	cUpper := Vec3{Y: rUpper - upperSagitta}
	dLower := sdSphere(pos, cLower, rLower)
	dUpper := sdSphere(pos, cUpper, rUpper)
	return maxf64(dLower, dUpper)
}

//-----------------------------------------------------------------------------
// rgb-carrying wrappers: rgb is always white unless later overridden by a
// Material opcode (handled in the interpreter, not here).

func sdrgbPlane(pos Vec3, n Vec3, d float64) Sample {
	return Sample{Rgb: white, D: sdPlane(pos, n, d)}
}

func sdrgbSphere(pos, c Vec3, r float64) Sample {
	return Sample{Rgb: white, D: sdSphere(pos, c, r)}
}

func sdrgbRoundedBox(pos, h Vec3, r float64) Sample {
	return Sample{Rgb: white, D: sdRoundedBox(pos, h, r)}
}

func sdrgbTorus(pos Vec3, rMajor, rMinor float64) Sample {
	return Sample{Rgb: white, D: sdTorus(pos, rMajor, rMinor)}
}

func sdrgbTorusSector(pos Vec3, rMajor, rMinor, sinA, cosA float64) Sample {
	return Sample{Rgb: white, D: sdTorusSector(pos, rMajor, rMinor, sinA, cosA)}
}

func sdrgbCapsule(pos, p0, p1 Vec3, r float64) Sample {
	return Sample{Rgb: white, D: sdCapsule(pos, p0, p1, r)}
}

func sdrgbRoundedCylinder(pos Vec3, rc, h, rr float64) Sample {
	return Sample{Rgb: white, D: sdRoundedCylinder(pos, rc, h, rr)}
}

func sdrgbTaperedCapsule(pos, p0 Vec3, r0 float64, p1 Vec3, r1 float64) Sample {
	return Sample{Rgb: white, D: sdTaperedCapsule(pos, p0, r0, p1, r1)}
}

func sdrgbCone(pos Vec3, r, h float64) Sample {
	return Sample{Rgb: white, D: sdCone(pos, r, h)}
}

func sdrgbBiconvexLens(pos Vec3, lowerSagitta, upperSagitta, chord float64) Sample {
	return Sample{Rgb: white, D: sdBiconvexLens(pos, lowerSagitta, upperSagitta, chord)}
}
