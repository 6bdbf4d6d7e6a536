// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
)

// Mode selects the flag set of a command.
type Mode int

const (
	// Terminal is the interactive runner.
	Terminal Mode = iota
	// Headless is the deterministic runner without input.
	Headless
)

// ParseFlags parses command line flags of the given command mode.
func ParseFlags(mode Mode) (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	switch mode {
	case Terminal:
		readTerminalFlags(flags, &opts)
	case Headless:
		readHeadlessFlags(flags, &opts)
	}

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts, mode); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: %s [options] <ROM file>\n\n", os.Args[0])
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one ROM file can be run, got %d", len(args)),
		}
	}
	return nil
}

// validateOptions checks the ranges of numeric options
func validateOptions(opts options.Program, mode Mode) error {
	if opts.StackDepth < 1 || opts.StackDepth > machine.MaxStackDepth {
		return fmt.Errorf("invalid stack depth %d, valid range: 1-%d", opts.StackDepth, machine.MaxStackDepth)
	}
	if opts.InstructionsPerSecond < 0 {
		return fmt.Errorf("invalid instructions per second %d", opts.InstructionsPerSecond)
	}

	switch mode {
	case Terminal:
		if opts.KeyHold <= 0 {
			return fmt.Errorf("invalid key hold time %s", opts.KeyHold)
		}
	case Headless:
		if opts.Frames == 0 {
			return fmt.Errorf("invalid frame count %d", opts.Frames)
		}
		if opts.StepsPerFrame < 1 {
			return fmt.Errorf("invalid steps per frame %d", opts.StepsPerFrame)
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.IntVar(&opts.StackDepth, "stack", machine.DefaultStackDepth, "call stack depth (1-16)")
	flags.BoolVar(&opts.FlagReset, "vf-reset", true, "reset VF after the logical operations 8xy1, 8xy2 and 8xy3")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 seeds randomly")
	flags.StringVar(&opts.Memviz, "memviz", "", "write a graphviz dump of the machine state to the given file after the run")
}

func readTerminalFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.InstructionsPerSecond, "ips", options.DefaultInstructionsPerSecond, "instructions per second, 0 runs uncapped")
	flags.DurationVar(&opts.KeyHold, "hold", options.DefaultKeyHold, "time a key stays held after a key press")
	flags.StringVar(&opts.StatsView, "statsview", "", "serve runtime statistics on the given address, for example localhost:18066")
}

func readHeadlessFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.Uint64Var(&opts.Frames, "frames", options.DefaultFrames, "number of frames to run")
	flags.IntVar(&opts.StepsPerFrame, "steps-per-frame", options.DefaultStepsPerFrame, "instructions executed per frame")
	flags.BoolVar(&opts.Digest, "digest", false, "print the digest of the final frame")
}
