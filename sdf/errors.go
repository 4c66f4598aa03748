package sdf

import "fmt"

// BuildError is returned by Builder.Finish when a program fails the
// static-analysis contract: stack overflow or underflow, unbalanced
// push/pop, a zero PushScale factor, or other than one value left on the
// stack at End. DecodeProgram returns it for a truncated buffer. Opcode
// values are not checked: the Builder only emits known opcodes, and
// DecodeProgram accepts any tag.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("sdf: build error: %s", e.Reason)
}
