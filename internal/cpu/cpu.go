// Package cpu implements the CHIP-8 instruction executor. One Step fetches,
// decodes and applies a single instruction to the machine state.
package cpu

import (
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Keys is the read side of the keypad.
type Keys interface {
	Held(index byte) bool
	FirstHeld() (byte, bool)
}

// Quirks configures the behavior where CHIP-8 interpreters historically
// differ.
type Quirks struct {
	// LogicResetsFlag sets VF to 0 after OR, AND and XOR, matching the
	// original COSMAC VIP interpreter. When disabled VF is left untouched.
	LogicResetsFlag bool
}

// DefaultQuirks returns the quirks of the original interpreter.
func DefaultQuirks() Quirks {
	return Quirks{
		LogicResetsFlag: true,
	}
}

// Option configures a CPU.
type Option func(*CPU)

// WithQuirks sets the compatibility quirks.
func WithQuirks(quirks Quirks) Option {
	return func(c *CPU) {
		c.quirks = quirks
	}
}

// WithSeed seeds the random number source of the random instruction.
func WithSeed(seed uint64) Option {
	return func(c *CPU) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	}
}

// WithTrace logs every executed instruction at debug level.
func WithTrace(enabled bool) Option {
	return func(c *CPU) {
		c.trace = enabled
	}
}

// CPU executes instructions on a machine. It is not safe for concurrent use,
// only the keypad may be written from other goroutines.
type CPU struct {
	logger *log.Logger
	mach   *machine.Machine
	screen *display.Buffer
	keys   Keys

	quirks Quirks
	rng    *rand.Rand
	trace  bool

	executed uint64
	sprite   [15]byte
}

// New returns a CPU operating on the given machine state, framebuffer and keypad.
func New(logger *log.Logger, mach *machine.Machine, screen *display.Buffer, keys Keys, options ...Option) *CPU {
	c := &CPU{
		logger: logger,
		mach:   mach,
		screen: screen,
		keys:   keys,
		quirks: DefaultQuirks(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Step executes one instruction. frame signals that a frame boundary has been
// reached: only then the timers are decremented and instructions that change
// the framebuffer take effect. A framebuffer instruction outside of a frame
// boundary is held and retried by the next step.
//
// After a fatal error the machine halts and every following step returns
// the same error.
func (c *CPU) Step(frame bool) error {
	state := c.mach.State()
	if state.Mode == machine.Halted {
		return state.Err
	}

	if frame {
		c.mach.DecrementTimers()
	}

	if state.Mode == machine.AwaitingKey {
		c.resumeKeyWait(state.Register)
		return nil
	}

	pc := c.mach.PC
	hi, lo := c.mach.Fetch()
	ins := instruction.Decode(hi, lo)

	done, err := c.execute(pc, ins, frame)
	if err != nil {
		c.mach.SetState(machine.State{Mode: machine.Halted, Err: err})
		c.logger.Debug("Execution halted",
			log.Hex("pc", pc),
			log.Hex("opcode", uint16(hi)<<8|uint16(lo)),
			log.Err(err))
		return err
	}

	if done {
		c.executed++
		if c.trace {
			c.logger.Debug("Executed instruction",
				log.Hex("pc", pc),
				log.Hex("opcode", uint16(hi)<<8|uint16(lo)),
				log.String("instruction", ins.String()))
		}
	}
	return nil
}

// Executed returns the number of instructions that took effect.
func (c *CPU) Executed() uint64 {
	return c.executed
}

// Machine returns the machine state the CPU operates on.
func (c *CPU) Machine() *machine.Machine {
	return c.mach
}

// advance moves the program counter to the next instruction.
func (c *CPU) advance() {
	c.mach.PC = (c.mach.PC + 2) & machine.AddressMask
}

// skipIf advances past the next instruction if the condition is true.
func (c *CPU) skipIf(condition bool) {
	if condition {
		c.mach.PC = (c.mach.PC + 4) & machine.AddressMask
		return
	}
	c.advance()
}

// jump sets the program counter to the wrapped address.
func (c *CPU) jump(address uint16) {
	c.mach.PC = address & machine.AddressMask
}

// setFlag sets VF to 1 if the condition is true, otherwise to 0.
func (c *CPU) setFlag(condition bool) {
	if condition {
		c.mach.V[machine.FlagRegister] = 1
	} else {
		c.mach.V[machine.FlagRegister] = 0
	}
}
