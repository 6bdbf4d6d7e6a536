// Package main implements a headless CHIP-8 runner that executes a ROM for a
// fixed number of frames and prints the final screen.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/scheduler"
	"github.com/retroenv/retrochip8/internal/screendigest"
	"github.com/retroenv/retrochip8/internal/statedump"
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

	opts, err := cli.ParseFlags(cli.Headless)
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			config.PrintBanner(logger, "chip8headless", opts.Quiet, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	config.PrintBanner(logger, "chip8headless", opts.Quiet, version, commit, date)

	if err := runFile(ctx, logger, opts, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Running failed", log.Err(err))
		os.Exit(1)
	}
}

// runFile runs the ROM with a clock that advances a fixed amount per step,
// which makes the output depend only on the ROM and the options. The last
// frame is printed even when the program failed.
func runFile(ctx context.Context, logger *log.Logger, opts options.Program, output io.Writer) error {
	frontend := headless.New()
	clock := scheduler.NewStepsPerFrameClock(opts.StepsPerFrame)

	emu, runErr := pipeline.New(logger).Execute(ctx, opts, clock, frontend)
	if emu == nil {
		return runErr
	}

	frame := frontend.LastFrame()
	if _, err := io.WriteString(output, frame.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	if opts.Digest {
		if _, err := fmt.Fprintf(output, "digest: %s\n", screendigest.String(frame)); err != nil {
			return fmt.Errorf("writing digest: %w", err)
		}
	}

	if opts.Memviz != "" {
		snapshot := statedump.NewSnapshot(emu.Machine(), emu.Executed())
		if err := statedump.WriteFile(opts.Memviz, snapshot); err != nil {
			return fmt.Errorf("writing state dump: %w", err)
		}
	}

	return runErr
}
