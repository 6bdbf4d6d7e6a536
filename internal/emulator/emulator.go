// Package emulator wires the machine state, framebuffer, keypad and executor
// into a single CHIP-8 system instance.
package emulator

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Config contains the settings of an emulator instance.
type Config struct {
	StackDepth int
	Quirks     cpu.Quirks
	Seed       uint64 // 0 seeds the random source from the runtime
	Trace      bool
}

// DefaultConfig returns the configuration of the original interpreter.
func DefaultConfig() Config {
	return Config{
		StackDepth: machine.DefaultStackDepth,
		Quirks:     cpu.DefaultQuirks(),
	}
}

// Emulator is one CHIP-8 system running one ROM.
type Emulator struct {
	logger *log.Logger
	mach   *machine.Machine
	screen *display.Buffer
	keys   *keypad.Keypad
	cpu    *cpu.CPU
}

// New returns an emulator with zeroed state.
func New(logger *log.Logger, cfg Config) (*Emulator, error) {
	mach, err := machine.New(cfg.StackDepth)
	if err != nil {
		return nil, fmt.Errorf("creating machine: %w", err)
	}

	screen := display.New()
	keys := keypad.New()

	options := []cpu.Option{
		cpu.WithQuirks(cfg.Quirks),
		cpu.WithTrace(cfg.Trace),
	}
	if cfg.Seed != 0 {
		options = append(options, cpu.WithSeed(cfg.Seed))
	}

	return &Emulator{
		logger: logger,
		mach:   mach,
		screen: screen,
		keys:   keys,
		cpu:    cpu.New(logger, mach, screen, keys, options...),
	}, nil
}

// LoadROM copies the ROM into memory at the program start address.
func (e *Emulator) LoadROM(rom []byte) error {
	if err := e.mach.LoadROM(rom); err != nil {
		return fmt.Errorf("loading rom into memory: %w", err)
	}
	e.logger.Debug("Loaded ROM",
		log.Hex("address", uint16(machine.ProgramStart)),
		log.Int("size", len(rom)))
	return nil
}

// Step executes one instruction, see cpu.CPU.Step.
func (e *Emulator) Step(frame bool) error {
	return e.cpu.Step(frame)
}

// SetKey sets the hold state of a keypad key. It is safe to call from any
// goroutine.
func (e *Emulator) SetKey(index byte, held bool) {
	e.keys.SetKey(index, held)
}

// Framebuffer returns a copy of the framebuffer.
func (e *Emulator) Framebuffer() display.Grid {
	return e.screen.Grid()
}

// Machine returns the machine state.
func (e *Emulator) Machine() *machine.Machine {
	return e.mach
}

// Executed returns the number of instructions that took effect.
func (e *Emulator) Executed() uint64 {
	return e.cpu.Executed()
}
