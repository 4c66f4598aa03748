// Package sdf implements the signed-distance-field bytecode language: the
// opcode set, the constant pool and binary layout, the stack-VM
// interpreter, primitive distance kernels, CSG combinators, conservative
// bounds, and a diagnostic sphere tracer.
package sdf

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a 3D vector. It is an alias of gonum's r3.Vec so the rest of
// this package gets vetted vector arithmetic (Add/Sub/Scale/Dot/Cross/Norm)
// without hand-rolling it; only this file imports gonum/spatial/r3 by name.
type Vec3 = r3.Vec

func vadd(a, b Vec3) Vec3   { return r3.Add(a, b) }
func vsub(a, b Vec3) Vec3   { return r3.Sub(a, b) }
func vscale(s float64, a Vec3) Vec3 { return r3.Scale(s, a) }
func vdot(a, b Vec3) float64 { return r3.Dot(a, b) }
func vcross(a, b Vec3) Vec3 { return r3.Cross(a, b) }
func vnorm(a Vec3) float64  { return r3.Norm(a) }

func vabs(a Vec3) Vec3 {
	return Vec3{X: absf64(a.X), Y: absf64(a.Y), Z: absf64(a.Z)}
}

func vmax(a Vec3, s float64) Vec3 {
	return Vec3{X: maxf64(a.X, s), Y: maxf64(a.Y, s), Z: maxf64(a.Z, s)}
}

func vmaxv(a, b Vec3) Vec3 {
	return Vec3{X: maxf64(a.X, b.X), Y: maxf64(a.Y, b.Y), Z: maxf64(a.Z, b.Z)}
}

func vminv(a, b Vec3) Vec3 {
	return Vec3{X: minf64(a.X, b.X), Y: minf64(a.Y, b.Y), Z: minf64(a.Z, b.Z)}
}

func vmaxComp(a Vec3) float64 {
	return maxf64(a.X, maxf64(a.Y, a.Z))
}

func absf64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampf64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mixf64(x, y, a float64) float64 {
	return x*(1-a) + y*a
}
