package sdf

// Op is a bytecode opcode tag. Values are fixed for bit-compatibility with
// the wire format in Program.Encode/DecodeProgram; never renumber them.
type Op uint16

const (
	OpPlane           Op = 0
	OpSphere          Op = 1
	OpCapsule         Op = 2
	OpTaperedCapsule  Op = 3
	OpMaterial        Op = 4
	OpUnion           Op = 5
	OpUnionSmooth     Op = 6
	OpSubtract        Op = 7
	OpSubtractSmooth  Op = 8
	OpIntersect       Op = 9
	OpIntersectSmooth Op = 10
	OpPushTranslation Op = 11
	OpPushRotation    Op = 12
	OpPopTransform    Op = 13
	OpPushScale       Op = 14
	OpPopScale        Op = 15
	OpEnd             Op = 16
	OpRoundedBox      Op = 17
	OpBiconvexLens    Op = 18
	OpRoundedCylinder Op = 19
	OpTorus           Op = 20
	OpTorusSector     Op = 21
	OpCone            Op = 22
)

// numConstants is the number of float32 constants each opcode consumes
// from the constant pool, in the order documented in sdf/opcode.go's
// opcode table (spec §6).
var numConstants = map[Op]int{
	OpPlane:           4, // vec4
	OpSphere:          4, // vec3, f32
	OpCapsule:         7, // vec3, vec3, f32
	OpTaperedCapsule:  8, // vec3, f32, vec3, f32
	OpMaterial:        3, // vec3
	OpUnion:           0,
	OpUnionSmooth:     1,
	OpSubtract:        0,
	OpSubtractSmooth:  1,
	OpIntersect:       0,
	OpIntersectSmooth: 1,
	OpPushTranslation: 3, // vec3
	OpPushRotation:    4, // vec4 quaternion
	OpPopTransform:    0,
	OpPushScale:       1, // f32
	OpPopScale:        1, // f32 (= 1/scale)
	OpEnd:             0,
	OpRoundedBox:      4, // vec3, f32
	OpBiconvexLens:    3, // f32, f32, f32
	OpRoundedCylinder: 3, // f32, f32, f32
	OpTorus:           2, // f32, f32
	OpTorusSector:     4, // R, r, sinA, cosA
	OpCone:            2, // r, h
}

// isPrimitive reports whether op pushes a new sample onto the sample
// stack (as opposed to combining, transforming, or terminating).
func isPrimitive(op Op) bool {
	switch op {
	case OpPlane, OpSphere, OpCapsule, OpTaperedCapsule, OpRoundedBox,
		OpBiconvexLens, OpRoundedCylinder, OpTorus, OpTorusSector, OpCone:
		return true
	}
	return false
}

func isCombinator(op Op) bool {
	switch op {
	case OpUnion, OpUnionSmooth, OpSubtract, OpSubtractSmooth,
		OpIntersect, OpIntersectSmooth:
		return true
	}
	return false
}

func isSmoothCombinator(op Op) bool {
	switch op {
	case OpUnionSmooth, OpSubtractSmooth, OpIntersectSmooth:
		return true
	}
	return false
}

func isPushTransform(op Op) bool {
	switch op {
	case OpPushTranslation, OpPushRotation, OpPushScale:
		return true
	}
	return false
}

func isPopTransform(op Op) bool {
	return op == OpPopTransform || op == OpPopScale
}

func (op Op) String() string {
	switch op {
	case OpPlane:
		return "Plane"
	case OpSphere:
		return "Sphere"
	case OpCapsule:
		return "Capsule"
	case OpTaperedCapsule:
		return "TaperedCapsule"
	case OpMaterial:
		return "Material"
	case OpUnion:
		return "Union"
	case OpUnionSmooth:
		return "UnionSmooth"
	case OpSubtract:
		return "Subtract"
	case OpSubtractSmooth:
		return "SubtractSmooth"
	case OpIntersect:
		return "Intersect"
	case OpIntersectSmooth:
		return "IntersectSmooth"
	case OpPushTranslation:
		return "PushTranslation"
	case OpPushRotation:
		return "PushRotation"
	case OpPopTransform:
		return "PopTransform"
	case OpPushScale:
		return "PushScale"
	case OpPopScale:
		return "PopScale"
	case OpEnd:
		return "End"
	case OpRoundedBox:
		return "RoundedBox"
	case OpBiconvexLens:
		return "BiconvexLens"
	case OpRoundedCylinder:
		return "RoundedCylinder"
	case OpTorus:
		return "Torus"
	case OpTorusSector:
		return "TorusSector"
	case OpCone:
		return "Cone"
	default:
		return "Op(unknown)"
	}
}
