// Package options contains the program options.
package options

import "time"

// Parameters contains file path options.
type Parameters struct {
	Input  string `arg:"positional" usage:"ROM file to run"`
	Memviz string `flag:"memviz" usage:"write a graphviz dump of the machine state after the run"`
}

// Flags contains behavior options.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode"`
	Trace bool `flag:"trace" usage:"log every executed instruction"`

	StackDepth int    `flag:"stack" usage:"call stack depth (1-16)" default:"8"`
	FlagReset  bool   `flag:"vf-reset" usage:"8xy1/8xy2/8xy3 reset VF" default:"true"`
	Seed       uint64 `flag:"seed" usage:"seed of the random number generator, 0 seeds randomly"`
}

// TerminalFlags contains options of the interactive terminal frontend.
type TerminalFlags struct {
	InstructionsPerSecond int           `flag:"ips" usage:"instructions per second, 0 runs uncapped" default:"700"`
	KeyHold               time.Duration `flag:"hold" usage:"time a key stays held after a key press" default:"150ms"`
	StatsView             string        `flag:"statsview" usage:"serve runtime statistics on the given address"`
}

// HeadlessFlags contains options of the headless runner.
type HeadlessFlags struct {
	Frames        uint64 `flag:"frames" usage:"number of frames to run" default:"60"`
	StepsPerFrame int    `flag:"steps-per-frame" usage:"instructions executed per frame" default:"12"`
	Digest        bool   `flag:"digest" usage:"print the digest of the final frame"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	TerminalFlags
	HeadlessFlags
}

// Defaults of options that have no zero value default.
const (
	DefaultInstructionsPerSecond = 700
	DefaultKeyHold               = 150 * time.Millisecond
	DefaultFrames                = 60
	DefaultStepsPerFrame         = 12
)
