// Package sdfb is a small expression-tree sugar layer over sdf.Builder:
// spec.md keeps program authoring as an external collaborator's
// responsibility, and this is that collaborator — it lets a caller write
// nested shape expressions (Union(Sphere(...), Translate(...))) instead
// of hand-sequencing stack-machine opcodes, then compiles the tree to a
// sdf.Program in one pass.
package sdfb

import (
	"math"

	"github.com/philpax/opensaft/sdf"
)

// Node is one node of a shape expression tree: emitting it appends the
// opcodes for its subtree (and everything it contains) to b, leaving
// exactly one new sample on b's stack.
type Node func(b *sdf.Builder)

// Compile assembles root into a finished Program.
func Compile(root Node) (*sdf.Program, error) {
	b := sdf.NewBuilder()
	root(b)
	return b.Finish()
}

// Primitives.

func Plane(n sdf.Vec3, d float64) Node {
	return func(b *sdf.Builder) { b.Plane(n, d) }
}

func Sphere(c sdf.Vec3, r float64) Node {
	return func(b *sdf.Builder) { b.Sphere(c, r) }
}

func Capsule(p0, p1 sdf.Vec3, r float64) Node {
	return func(b *sdf.Builder) { b.Capsule(p0, p1, r) }
}

func TaperedCapsule(p0 sdf.Vec3, r0 float64, p1 sdf.Vec3, r1 float64) Node {
	return func(b *sdf.Builder) { b.TaperedCapsule(p0, r0, p1, r1) }
}

func RoundedBox(h sdf.Vec3, r float64) Node {
	return func(b *sdf.Builder) { b.RoundedBox(h, r) }
}

func Torus(rMajor, rMinor float64) Node {
	return func(b *sdf.Builder) { b.Torus(rMajor, rMinor) }
}

func TorusSector(rMajor, rMinor, alpha float64) Node {
	return func(b *sdf.Builder) { b.TorusSector(rMajor, rMinor, alpha) }
}

func RoundedCylinder(rc, h, rr float64) Node {
	return func(b *sdf.Builder) { b.RoundedCylinder(rc, h, rr) }
}

func Cone(r, h float64) Node {
	return func(b *sdf.Builder) { b.Cone(r, h) }
}

func BiconvexLens(lowerSagitta, upperSagitta, chord float64) Node {
	return func(b *sdf.Builder) { b.BiconvexLens(lowerSagitta, upperSagitta, chord) }
}

// Colored overwrites n's material color.
func Colored(rgb sdf.Vec3, n Node) Node {
	return func(b *sdf.Builder) {
		n(b)
		b.Material(rgb)
	}
}

// CSG combinators. k<=0 selects the hard (non-smooth) opcode. Union and
// Intersect with no nodes emit nothing and leave no sample on the stack.

func Union(k float64, nodes ...Node) Node {
	return func(b *sdf.Builder) {
		foldCombinator(b, k, nodes, (*sdf.Builder).Union, (*sdf.Builder).UnionSmooth)
	}
}

func Intersect(k float64, nodes ...Node) Node {
	return func(b *sdf.Builder) {
		foldCombinator(b, k, nodes, (*sdf.Builder).Intersect, (*sdf.Builder).IntersectSmooth)
	}
}

// Subtract carves tool out of base: base \ tool.
func Subtract(base, tool Node, k float64) Node {
	return func(b *sdf.Builder) {
		base(b)
		tool(b)
		if k > 0 {
			b.SubtractSmooth(k)
		} else {
			b.Subtract()
		}
	}
}

func foldCombinator(b *sdf.Builder, k float64, nodes []Node, hard func(*sdf.Builder) *sdf.Builder, smooth func(*sdf.Builder, float64) *sdf.Builder) {
	if len(nodes) == 0 {
		return
	}
	nodes[0](b)
	for _, n := range nodes[1:] {
		n(b)
		if k > 0 {
			smooth(b, k)
		} else {
			hard(b)
		}
	}
}

// Transforms.

func Translate(t sdf.Vec3, n Node) Node {
	return func(b *sdf.Builder) {
		b.PushTranslation(t)
		n(b)
		b.PopTransform()
	}
}

// Rotate rotates the query point by angle radians (right-handed) about
// axis (need not be normalized) before n sees it, so n appears rotated by
// -angle in world space.
func Rotate(axis sdf.Vec3, angle float64, n Node) Node {
	qx, qy, qz, qw := axisAngleToQuat(axis, angle)
	return func(b *sdf.Builder) {
		b.PushRotation(qx, qy, qz, qw)
		n(b)
		b.PopTransform()
	}
}

func Scale(s float64, n Node) Node {
	return func(b *sdf.Builder) {
		b.PushScale(s)
		n(b)
		b.PopScale()
	}
}

func axisAngleToQuat(axis sdf.Vec3, angle float64) (x, y, z, w float64) {
	length := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if length == 0 {
		return 0, 0, 0, 1
	}
	ax, ay, az := axis.X/length, axis.Y/length, axis.Z/length
	half := angle / 2
	s := math.Sin(half)
	return ax * s, ay * s, az * s, math.Cos(half)
}
