package sdf

import "math"

// Builder assembles a Program opcode-by-opcode, performing the
// static-analysis contract from spec §4.2 as each opcode is appended:
// simulated sample/transform stack depth never exceeds
// maxSampleDepth/maxTransformDepth, PopScale always carries the inverse
// of its matching PushScale, and transform depth returns to zero before
// Finish. This mirrors the teacher's pattern of establishing an invariant
// at construction time (render/tet4.go's NewMeshTet4) rather than
// checking it on every hot-path call.
type Builder struct {
	p   Program
	sp  int
	tp  int
	err error

	// scaleStack tracks the scale factor pushed by each PushScale, so
	// PopScale's constant can be validated as its exact inverse.
	scaleStack []float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) fail(reason string) {
	if b.err == nil {
		b.err = &BuildError{Reason: reason}
	}
}

func (b *Builder) pushConstants(c ...float32) {
	b.p.constants = append(b.p.constants, c...)
}

func (b *Builder) emit(op Op, c ...float32) {
	if b.err != nil {
		return
	}
	if isPrimitive(op) {
		if b.sp >= maxSampleDepth {
			b.fail("sample stack overflow")
			return
		}
		b.sp++
	} else if isCombinator(op) {
		if b.sp < 2 {
			b.fail("combinator with fewer than two operands on the stack")
			return
		}
		b.sp--
	} else if isPushTransform(op) {
		if b.tp >= maxTransformDepth {
			b.fail("transform stack overflow")
			return
		}
		b.tp++
	} else if isPopTransform(op) {
		if b.tp == 0 {
			b.fail("unbalanced PopTransform/PopScale")
			return
		}
		b.tp--
	}
	b.p.opcodes = append(b.p.opcodes, op)
	b.pushConstants(c...)
}

// Plane pushes dot(pos,n)+d.
func (b *Builder) Plane(n Vec3, d float64) *Builder {
	b.emit(OpPlane, f32(n.X), f32(n.Y), f32(n.Z), f32(d))
	return b
}

// Sphere pushes |pos-c|-r.
func (b *Builder) Sphere(c Vec3, r float64) *Builder {
	b.emit(OpSphere, f32(c.X), f32(c.Y), f32(c.Z), f32(r))
	return b
}

// Capsule pushes the capsule primitive between p0 and p1 with radius r.
func (b *Builder) Capsule(p0, p1 Vec3, r float64) *Builder {
	b.emit(OpCapsule, f32(p0.X), f32(p0.Y), f32(p0.Z), f32(p1.X), f32(p1.Y), f32(p1.Z), f32(r))
	return b
}

// TaperedCapsule pushes a capsule whose two end spheres have radii r0, r1.
func (b *Builder) TaperedCapsule(p0 Vec3, r0 float64, p1 Vec3, r1 float64) *Builder {
	b.emit(OpTaperedCapsule, f32(p0.X), f32(p0.Y), f32(p0.Z), f32(r0), f32(p1.X), f32(p1.Y), f32(p1.Z), f32(r1))
	return b
}

// RoundedBox pushes a box of half-size h with corner radius r.
func (b *Builder) RoundedBox(h Vec3, r float64) *Builder {
	b.emit(OpRoundedBox, f32(h.X), f32(h.Y), f32(h.Z), f32(r))
	return b
}

// Torus pushes a torus of major radius R and minor (tube) radius r.
func (b *Builder) Torus(rMajor, rMinor float64) *Builder {
	b.emit(OpTorus, f32(rMajor), f32(rMinor))
	return b
}

// TorusSector pushes a partial torus spanning a half-angle alpha (radians).
func (b *Builder) TorusSector(rMajor, rMinor, alpha float64) *Builder {
	b.emit(OpTorusSector, f32(rMajor), f32(rMinor), f32(math.Sin(alpha)), f32(math.Cos(alpha)))
	return b
}

// RoundedCylinder pushes a cylinder of radius rc and half-height h with
// edge radius rr.
func (b *Builder) RoundedCylinder(rc, h, rr float64) *Builder {
	b.emit(OpRoundedCylinder, f32(rc), f32(h), f32(rr))
	return b
}

// Cone pushes a cone with base radius r and apex height h.
func (b *Builder) Cone(r, h float64) *Builder {
	b.emit(OpCone, f32(r), f32(h))
	return b
}

// BiconvexLens pushes the intersection of two spherical caps defined by
// their sagittas and a shared chord length.
func (b *Builder) BiconvexLens(lowerSagitta, upperSagitta, chord float64) *Builder {
	b.emit(OpBiconvexLens, f32(lowerSagitta), f32(upperSagitta), f32(chord))
	return b
}

// Material overwrites the rgb of the top-of-stack sample, leaving its
// distance unchanged.
func (b *Builder) Material(rgb Vec3) *Builder {
	b.emit(OpMaterial, f32(rgb.X), f32(rgb.Y), f32(rgb.Z))
	return b
}

// Union pops the top two samples and pushes their argmin-by-distance.
func (b *Builder) Union() *Builder { b.emit(OpUnion); return b }

// UnionSmooth is Union blended over a region of size k.
func (b *Builder) UnionSmooth(k float64) *Builder {
	b.emit(OpUnionSmooth, f32(k))
	return b
}

// Subtract pops the top two samples (a, b) and carves a out of b.
func (b *Builder) Subtract() *Builder { b.emit(OpSubtract); return b }

// SubtractSmooth is Subtract blended over a region of size k.
func (b *Builder) SubtractSmooth(k float64) *Builder {
	b.emit(OpSubtractSmooth, f32(k))
	return b
}

// Intersect pops the top two samples and pushes their argmax-by-distance.
func (b *Builder) Intersect() *Builder { b.emit(OpIntersect); return b }

// IntersectSmooth is Intersect blended over a region of size k.
func (b *Builder) IntersectSmooth(k float64) *Builder {
	b.emit(OpIntersectSmooth, f32(k))
	return b
}

// PushTranslation moves the shapes built before the matching PopTransform
// by t. It emits -t as the opcode's constant: the interpreter adds the
// constant to current_position, so a query at p reaches them at p-t.
func (b *Builder) PushTranslation(t Vec3) *Builder {
	b.emit(OpPushTranslation, f32(-t.X), f32(-t.Y), f32(-t.Z))
	return b
}

// PushRotation saves current_position and rotates it by the quaternion q
// (x,y,z,w).
func (b *Builder) PushRotation(qx, qy, qz, qw float64) *Builder {
	b.emit(OpPushRotation, f32(qx), f32(qy), f32(qz), f32(qw))
	return b
}

// PushScale saves current_position and scales it uniformly by s.
func (b *Builder) PushScale(s float64) *Builder {
	if b.err == nil {
		if s == 0 {
			b.fail("PushScale with zero scale factor")
			return b
		}
		b.scaleStack = append(b.scaleStack, s)
	}
	b.emit(OpPushScale, f32(s))
	return b
}

// PopTransform restores current_position from the transform stack; it
// must match a PushTranslation or PushRotation.
func (b *Builder) PopTransform() *Builder {
	b.emit(OpPopTransform)
	return b
}

// PopScale restores current_position and rescales the top sample's
// distance by 1/s, where s is the scale of the matching PushScale.
func (b *Builder) PopScale() *Builder {
	if b.err == nil {
		if len(b.scaleStack) == 0 {
			b.fail("PopScale without matching PushScale")
			return b
		}
		s := b.scaleStack[len(b.scaleStack)-1]
		b.scaleStack = b.scaleStack[:len(b.scaleStack)-1]
		b.emit(OpPopScale, f32(1/s))
		return b
	}
	b.emit(OpPopScale, 0)
	return b
}

// Finish appends End and validates the program is well-formed: balanced
// transforms, exactly one sample on the stack. It returns the accumulated
// error from any prior call instead, if one occurred.
func (b *Builder) Finish() (*Program, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.tp != 0 {
		return nil, &BuildError{Reason: "transform depth nonzero at End"}
	}
	if b.sp != 1 {
		return nil, &BuildError{Reason: "program does not leave exactly one sample on the stack at End"}
	}
	b.p.opcodes = append(b.p.opcodes, OpEnd)
	prog := b.p
	return &prog, nil
}

func f32(v float64) float32 { return float32(v) }
