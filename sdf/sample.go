package sdf

// Sample is the result of evaluating a program at a point: a material
// color and a signed distance. distance<0 is inside, =0 is the surface,
// >0 is outside. rgb carries the color of the primitive that won the
// combinator chain feeding this sample.
type Sample struct {
	Rgb Vec3
	D   float64
}

// maxSampleDepth and maxTransformDepth bound the two stacks the
// interpreter runs on. They are fixed for predictable performance and to
// leave room for a future stackless, batched GPU evaluator: the Builder
// rejects programs that would need more, the interpreter never grows
// them at runtime.
const (
	maxSampleDepth    = 64
	maxTransformDepth = 64
)

func sampleUnion(a, b Sample) Sample {
	if a.D < b.D {
		return a
	}
	return b
}

// sampleSubtract realizes "subtract a from b": if -a.D > b.D the carved
// cavity wins, taking a's material with its distance negated.
func sampleSubtract(a, b Sample) Sample {
	if -a.D > b.D {
		return Sample{Rgb: a.Rgb, D: -a.D}
	}
	return b
}

func sampleIntersect(a, b Sample) Sample {
	if a.D > b.D {
		return a
	}
	return b
}

func sampleUnionSmooth(a, b Sample, k float64) Sample {
	h := clampf64(0.5+0.5*(b.D-a.D)/k, 0, 1)
	d := mixf64(b.D, a.D, h) - k*h*(1-h)
	rgb := vlerp(b.Rgb, a.Rgb, h)
	return Sample{Rgb: rgb, D: d}
}

// sampleSubtractSmooth matches the reference formula verbatim, including
// the use of a.Rgb (not b.Rgb) in the blend: the open question in the
// design notes says this is preserved for bit-compatibility, not because
// its perceptual behavior at large k has been independently justified.
func sampleSubtractSmooth(a, b Sample, k float64) Sample {
	h := clampf64(0.5-0.5*(b.D+a.D)/k, 0, 1)
	rgb := vlerp(b.Rgb, a.Rgb, h)
	d := mixf64(b.D, -a.D, h) + k*h*(1-h)
	return Sample{Rgb: rgb, D: d}
}

func sampleIntersectSmooth(a, b Sample, k float64) Sample {
	h := clampf64(0.5-0.5*(b.D-a.D)/k, 0, 1)
	d := mixf64(b.D, a.D, h) + k*h*(1-h)
	rgb := vlerp(b.Rgb, a.Rgb, h)
	return Sample{Rgb: rgb, D: d}
}

func vlerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: mixf64(a.X, b.X, t),
		Y: mixf64(a.Y, b.Y, t),
		Z: mixf64(a.Z, b.Z, t),
	}
}
