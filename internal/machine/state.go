package machine

import "fmt"

// Mode is the execution mode of the machine.
type Mode int

const (
	// Running executes one instruction per step.
	Running Mode = iota
	// AwaitingKey blocks on a key press for the register of the wait instruction.
	AwaitingKey
	// Halted stops execution after a fatal error.
	Halted
)

// State is the run state of the machine. Register is only valid while
// awaiting a key, Err only while halted.
type State struct {
	Mode     Mode
	Register byte
	Err      error
}

// String implements the fmt.Stringer interface.
func (s State) String() string {
	switch s.Mode {
	case Running:
		return "running"
	case AwaitingKey:
		return fmt.Sprintf("awaiting key for V%X", s.Register)
	case Halted:
		return fmt.Sprintf("halted: %v", s.Err)
	default:
		return fmt.Sprintf("unknown mode %d", int(s.Mode))
	}
}
