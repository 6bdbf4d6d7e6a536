// Package pipeline orchestrates the stages of an emulator run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrogolib/log"
)

// Frontend presents frames and feeds keys into the keypad.
type Frontend interface {
	scheduler.Renderer

	// Start begins forwarding input to the keys. Calling quit ends the run.
	Start(ctx context.Context, keys keypad.KeySetter, quit context.CancelFunc) error
	Close() error
}

// Pipeline orchestrates the complete emulator run.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new emulator pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(logger),
	}
}

// Execute loads the ROM file of the options and runs it until the context is
// cancelled, the frontend quits, the frame limit of the options is reached
// or the program fails. The emulator is returned for inspection whenever it
// was created.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, clock scheduler.Clock,
	frontend Frontend) (*emulator.Emulator, error) {

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, clock, frontend)
}

// ExecuteWithROM runs the pipeline with a ROM that is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, opts options.Program,
	clock scheduler.Clock, frontend Frontend) (*emulator.Emulator, error) {

	emu, err := emulator.New(p.logger, config.EmulatorConfig(opts))
	if err != nil {
		return nil, fmt.Errorf("creating emulator: %w", err)
	}
	if err := emu.LoadROM(rom); err != nil {
		return nil, err
	}

	p.printInfo(opts, len(rom))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := frontend.Start(ctx, emu, cancel); err != nil {
		return emu, fmt.Errorf("starting frontend: %w", err)
	}

	sched := scheduler.New(p.logger, clock, emu, schedulerOptions(opts)...)
	err = sched.Run(ctx, emu, frontend)

	if closeErr := frontend.Close(); closeErr != nil {
		p.logger.Error("Closing frontend failed", log.Err(closeErr))
	}

	p.logger.Debug("Run finished",
		log.Int("frames", int(sched.Frames())),
		log.Int("steps", int(sched.Ticks())),
		log.Int("executed", int(emu.Executed())),
		log.Stringer("state", emu.Machine().State()))

	if err != nil {
		return emu, fmt.Errorf("running emulator: %w", err)
	}
	return emu, nil
}

func schedulerOptions(opts options.Program) []scheduler.Option {
	return []scheduler.Option{
		scheduler.WithInstructionsPerSecond(opts.InstructionsPerSecond),
		scheduler.WithFrameLimit(opts.Frames),
	}
}

// printInfo prints information about the ROM being run.
func (p *Pipeline) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Int("stack", opts.StackDepth),
		log.Int("ips", opts.InstructionsPerSecond))
}
