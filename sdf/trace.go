package sdf

// Hit is the result of a successful sphere trace: the surface position,
// its material color, and the central-difference gradient there.
type Hit struct {
	Position Vec3
	Rgb      Vec3
	Normal   Vec3
}

// TraceLimits bounds a Trace call.
type TraceLimits struct {
	MaxSteps int
	MaxT     float64
	EpsHit   float64
	EpsStep  float64
}

// DefaultTraceLimits returns reasonable defaults for interactive use.
func DefaultTraceLimits() TraceLimits {
	return TraceLimits{
		MaxSteps: 256,
		MaxT:     1000,
		EpsHit:   1e-4,
		EpsStep:  1e-5,
	}
}

// Trace sphere-marches prog from origin along dir (a diagnostic, not
// part of the mesh pipeline): repeatedly advances t by max(eval(...).D,
// EpsStep) until the distance drops below EpsHit (hit), t exceeds MaxT
// (miss), or MaxSteps is exhausted (miss). Normal is the central-
// difference gradient at the hit position with step EpsHit.
func Trace(prog *Program, origin, dir Vec3, limits TraceLimits) (Hit, bool) {
	t := 0.0
	for i := 0; i < limits.MaxSteps; i++ {
		p := vadd(origin, vscale(t, dir))
		s := Eval(prog, p)
		if absf64(s.D) < limits.EpsHit {
			return Hit{
				Position: p,
				Rgb:      s.Rgb,
				Normal:   gradient(prog, p, limits.EpsHit),
			}, true
		}
		t += maxf64(s.D, limits.EpsStep)
		if t > limits.MaxT {
			break
		}
	}
	return Hit{}, false
}

// gradient estimates the normalized gradient of prog's distance field at
// p via central differences with step delta.
func gradient(prog *Program, p Vec3, delta float64) Vec3 {
	dx := Vec3{X: delta}
	dy := Vec3{Y: delta}
	dz := Vec3{Z: delta}
	g := Vec3{
		X: Eval(prog, vadd(p, dx)).D - Eval(prog, vsub(p, dx)).D,
		Y: Eval(prog, vadd(p, dy)).D - Eval(prog, vsub(p, dy)).D,
		Z: Eval(prog, vadd(p, dz)).D - Eval(prog, vsub(p, dz)).D,
	}
	n := vnorm(g)
	if n < 1e-12 {
		return Vec3{Y: 1}
	}
	return vscale(1/n, g)
}
