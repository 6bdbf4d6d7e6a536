// Package main implements an interactive CHIP-8 emulator running in a text terminal
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrochip8/internal/statedump"
	"github.com/retroenv/retrochip8/internal/statsview"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags(cli.Terminal)
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, "retrochip8", opts.Quiet, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	config.PrintBanner(logger, "retrochip8", opts.Quiet, version, commit, date)

	if opts.StatsView != "" {
		statsview.Launch(logger, opts.StatsView)
	}

	frontend := terminal.New(logger, os.Stdin, os.Stdout, opts.KeyHold)
	emu, err := pipeline.New(logger).Execute(ctx, opts, scheduler.SystemClock(), frontend)

	if emu != nil && opts.Memviz != "" {
		snapshot := statedump.NewSnapshot(emu.Machine(), emu.Executed())
		if err := statedump.WriteFile(opts.Memviz, snapshot); err != nil {
			logger.Error("Writing state dump failed", log.Err(err))
		}
	}

	if err != nil {
		// Escape in the terminal and Ctrl+C end the run normally
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation stopped")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}
