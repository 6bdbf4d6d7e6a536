package cli

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlags_Terminal(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, opts options.Program)
	}{
		{
			name: "defaults",
			args: []string{"prog", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, "pong.ch8", opts.Input)
				assert.Equal(t, 8, opts.StackDepth)
				assert.True(t, opts.FlagReset)
				assert.Equal(t, 700, opts.InstructionsPerSecond)
				assert.Equal(t, options.DefaultKeyHold, opts.KeyHold)
				assert.Equal(t, "", opts.StatsView)
			},
		},
		{
			name: "behavior flags",
			args: []string{"prog", "-debug", "-trace", "-stack", "16", "-vf-reset=false", "-seed", "42", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.True(t, opts.Debug)
				assert.True(t, opts.Trace)
				assert.Equal(t, 16, opts.StackDepth)
				assert.False(t, opts.FlagReset)
				assert.Equal(t, uint64(42), opts.Seed)
			},
		},
		{
			name: "terminal flags",
			args: []string{"prog", "-ips", "0", "-hold", "250ms", "-statsview", "localhost:18066", "pong.ch8"},
			check: func(t *testing.T, opts options.Program) {
				t.Helper()
				assert.Equal(t, 0, opts.InstructionsPerSecond)
				assert.Equal(t, 250*time.Millisecond, opts.KeyHold)
				assert.Equal(t, "localhost:18066", opts.StatsView)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			opts, err := ParseFlags(Terminal)
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestParseFlags_Headless(t *testing.T) {
	setArgs(t, "prog", "-frames", "120", "-steps-per-frame", "20", "-digest", "-memviz", "state.dot", "test.ch8")

	opts, err := ParseFlags(Headless)
	assert.NoError(t, err)
	assert.Equal(t, "test.ch8", opts.Input)
	assert.Equal(t, uint64(120), opts.Frames)
	assert.Equal(t, 20, opts.StepsPerFrame)
	assert.True(t, opts.Digest)
	assert.Equal(t, "state.dot", opts.Memviz)
	assert.Equal(t, 0, opts.InstructionsPerSecond)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		args  []string
		usage bool
	}{
		{name: "missing rom", mode: Terminal, args: []string{"prog"}, usage: true},
		{name: "flag after rom", mode: Terminal, args: []string{"prog", "pong.ch8", "-debug"}, usage: true},
		{name: "two roms", mode: Terminal, args: []string{"prog", "a.ch8", "b.ch8"}, usage: true},
		{name: "stack too deep", mode: Terminal, args: []string{"prog", "-stack", "17", "pong.ch8"}},
		{name: "stack zero", mode: Headless, args: []string{"prog", "-stack", "0", "pong.ch8"}},
		{name: "negative ips", mode: Terminal, args: []string{"prog", "-ips", "-1", "pong.ch8"}},
		{name: "zero hold", mode: Terminal, args: []string{"prog", "-hold", "0s", "pong.ch8"}},
		{name: "zero frames", mode: Headless, args: []string{"prog", "-frames", "0", "pong.ch8"}},
		{name: "zero steps per frame", mode: Headless, args: []string{"prog", "-steps-per-frame", "0", "pong.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setArgs(t, tt.args...)

			_, err := ParseFlags(tt.mode)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
