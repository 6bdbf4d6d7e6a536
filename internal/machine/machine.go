// Package machine contains the CHIP-8 machine state: memory, registers,
// the index register, the program counter, the call stack and the timers.
package machine

import (
	"fmt"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: reserved interpreter area, left zeroed
//	0x200-0xFFF: program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000

	// AddressMask masks any address into the 4KB address space.
	AddressMask = MemorySize - 1

	// ProgramStart is the address the ROM is loaded to and execution starts at.
	ProgramStart = 0x200

	// MaxROMSize is the largest ROM that fits between ProgramStart and the end of memory.
	MaxROMSize = MemorySize - ProgramStart

	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16

	// FlagRegister is the index of VF, the carry/borrow/collision register.
	FlagRegister = 0xF

	// DefaultStackDepth is the call stack capacity of the original interpreter.
	DefaultStackDepth = 8

	// MaxStackDepth is the largest supported call stack capacity.
	MaxStackDepth = 16
)

// Machine is the complete register and memory state of a CHIP-8 machine.
// It is owned by a single goroutine, the keypad is kept separately.
type Machine struct {
	Memory [MemorySize]byte
	V      [RegisterCount]byte
	I      uint16
	PC     uint16

	DelayTimer byte
	SoundTimer byte

	stack []uint16
	depth int
	state State
}

// New returns a zeroed machine with the given call stack capacity.
// The program counter points to ProgramStart.
func New(stackDepth int) (*Machine, error) {
	if stackDepth < 1 || stackDepth > MaxStackDepth {
		return nil, fmt.Errorf("invalid stack depth %d, must be between 1 and %d", stackDepth, MaxStackDepth)
	}

	m := &Machine{
		PC:    ProgramStart,
		stack: make([]uint16, 0, stackDepth),
		depth: stackDepth,
	}
	return m, nil
}

// LoadROM copies the ROM verbatim to ProgramStart.
func (m *Machine) LoadROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: rom size %d exceeds available memory of %d bytes", ErrLoad, len(rom), MaxROMSize)
	}
	copy(m.Memory[ProgramStart:], rom)
	return nil
}

// Read returns the memory byte at the wrapped address.
func (m *Machine) Read(address uint16) byte {
	return m.Memory[address&AddressMask]
}

// Write sets the memory byte at the wrapped address.
func (m *Machine) Write(address uint16, value byte) {
	m.Memory[address&AddressMask] = value
}

// Fetch returns the big-endian instruction word bytes at the program counter.
func (m *Machine) Fetch() (byte, byte) {
	return m.Read(m.PC), m.Read(m.PC + 1)
}

// Push saves a return address on the call stack.
func (m *Machine) Push(address uint16) error {
	if len(m.stack) == m.depth {
		return fmt.Errorf("%w: depth %d reached at pc $%03X", ErrStackOverflow, m.depth, m.PC)
	}
	m.stack = append(m.stack, address)
	return nil
}

// Pop returns the most recently saved return address.
func (m *Machine) Pop() (uint16, error) {
	if len(m.stack) == 0 {
		return 0, fmt.Errorf("%w: return at pc $%03X", ErrStackUnderflow, m.PC)
	}
	address := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return address, nil
}

// StackPointer returns the index of the next free stack slot.
func (m *Machine) StackPointer() int {
	return len(m.stack)
}

// Stack returns a copy of the saved return addresses, oldest first.
func (m *Machine) Stack() []uint16 {
	s := make([]uint16, len(m.stack))
	copy(s, m.stack)
	return s
}

// StackDepth returns the call stack capacity.
func (m *Machine) StackDepth() int {
	return m.depth
}

// DecrementTimers counts both timers down by one tick, stopping at zero.
func (m *Machine) DecrementTimers() {
	if m.DelayTimer > 0 {
		m.DelayTimer--
	}
	if m.SoundTimer > 0 {
		m.SoundTimer--
	}
}

// State returns the current run state.
func (m *Machine) State() State {
	return m.state
}

// SetState changes the run state.
func (m *Machine) SetState(state State) {
	m.state = state
}
