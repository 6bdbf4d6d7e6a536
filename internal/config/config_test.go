package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
	}{
		{name: "default"},
		{name: "debug", debug: true},
		{name: "quiet", quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.debug, tt.quiet))
		})
	}
}

func TestEmulatorConfig(t *testing.T) {
	opts := options.Program{
		Flags: options.Flags{
			Trace:      true,
			StackDepth: 12,
			FlagReset:  false,
			Seed:       7,
		},
	}

	cfg := EmulatorConfig(opts)
	assert.Equal(t, 12, cfg.StackDepth)
	assert.False(t, cfg.Quirks.LogicResetsFlag)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.Trace)
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, "retrochip8", false, "1.0.0", "abcdef123", "2026-01-02")
	PrintBanner(logger, "retrochip8", true, "1.0.0", "", "")
}
