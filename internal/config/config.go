// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/cpu"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// EmulatorConfig converts the program options to an emulator configuration.
func EmulatorConfig(opts options.Program) emulator.Config {
	return emulator.Config{
		StackDepth: opts.StackDepth,
		Quirks: cpu.Quirks{
			LogicResetsFlag: opts.FlagReset,
		},
		Seed:  opts.Seed,
		Trace: opts.Trace,
	}
}

// PrintBanner logs the program name and version unless running quietly.
func PrintBanner(logger *log.Logger, name string, quiet bool, version, commit, date string) {
	if quiet {
		return
	}
	logger.Info(name, log.String("version", buildinfo.Version(version, commit, date)))
}
