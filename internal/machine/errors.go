package machine

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

var (
	// ErrInvalidOpcode is returned for instruction words that match no known instruction.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrStackOverflow is returned for a call with a full call stack.
	ErrStackOverflow = chip8.ErrStackOverflow
	// ErrStackUnderflow is returned for a return with an empty call stack.
	ErrStackUnderflow = chip8.ErrStackUnderflow
	// ErrLoad is returned when a ROM does not fit into memory.
	ErrLoad = errors.New("loading rom")
)

// OpcodeError reports an unrecognized instruction word and where it was fetched.
type OpcodeError struct {
	PC uint16
	Hi byte
	Lo byte
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("%s %02X%02X at pc $%03X", ErrInvalidOpcode, e.Hi, e.Lo, e.PC)
}

// Unwrap returns ErrInvalidOpcode.
func (e *OpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}
