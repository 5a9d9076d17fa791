package intcode

import "fmt"

type ErrInvalidOpcode struct {
	Opcode  int
	Address int
}

func (e ErrInvalidOpcode) Error() string {
	return fmt.Sprintf("invalid opcode %d at address %d", e.Opcode, e.Address)
}

type ErrAccessViolation struct {
	Address int
}

func (e ErrAccessViolation) Error() string {
	return fmt.Sprintf("access violation at address %d", e.Address)
}

type ErrNoSolution struct {
	Target int
}

func (e ErrNoSolution) Error() string {
	return fmt.Sprintf("no noun and verb produce %d", e.Target)
}

type ErrProgram struct {
	msg string
}

func NewErrProgram(msg string) error {
	return ErrProgram{
		msg: msg,
	}
}

func (e ErrProgram) Error() string {
	return e.msg
}
