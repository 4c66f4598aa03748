package sdf

import (
	"encoding/binary"
	"math"
)

// Program is a compiled SDF bytecode program: a flat opcode sequence and
// its constant pool. Both buffers are owned by the Program; no shared
// mutable state with the Builder that produced them.
type Program struct {
	opcodes   []Op
	constants []float32
}

// Opcodes returns the program's opcode sequence, terminated by OpEnd.
func (p *Program) Opcodes() []Op { return p.opcodes }

// Constants returns the program's constant pool, in declaration order.
func (p *Program) Constants() []float32 { return p.constants }

// Encode appends the serialized wire format to dst and returns it:
// u32 n_op, n_op x u16 opcodes, u32 n_const, n_const x f32 constants, all
// little-endian. This is the thin, external serialization layer spec.md
// keeps out of the core's scope; Program owns only the in-memory arrays.
func (p *Program) Encode(dst []byte) []byte {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], uint32(len(p.opcodes)))
	dst = append(dst, buf[:]...)
	for _, op := range p.opcodes {
		var obuf [2]byte
		binary.LittleEndian.PutUint16(obuf[:], uint16(op))
		dst = append(dst, obuf[:]...)
	}

	binary.LittleEndian.PutUint32(buf[:], uint32(len(p.constants)))
	dst = append(dst, buf[:]...)
	for _, c := range p.constants {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(c))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// DecodeProgram parses the wire format produced by Program.Encode. It does
// not re-run the Builder's static-analysis contract; a program decoded
// from an untrusted source should be treated the same as one assembled by
// hand with Builder skipped.
func DecodeProgram(src []byte) (*Program, error) {
	if len(src) < 4 {
		return nil, shortBufferError("opcode count")
	}
	nOp := binary.LittleEndian.Uint32(src)
	src = src[4:]

	if uint64(len(src)) < uint64(nOp)*2 {
		return nil, shortBufferError("opcodes")
	}
	opcodes := make([]Op, nOp)
	for i := range opcodes {
		opcodes[i] = Op(binary.LittleEndian.Uint16(src))
		src = src[2:]
	}

	if len(src) < 4 {
		return nil, shortBufferError("constant count")
	}
	nConst := binary.LittleEndian.Uint32(src)
	src = src[4:]

	if uint64(len(src)) < uint64(nConst)*4 {
		return nil, shortBufferError("constants")
	}
	constants := make([]float32, nConst)
	for i := range constants {
		constants[i] = math.Float32frombits(binary.LittleEndian.Uint32(src))
		src = src[4:]
	}

	return &Program{opcodes: opcodes, constants: constants}, nil
}

func shortBufferError(field string) error {
	return &BuildError{Reason: "truncated program buffer reading " + field}
}
