// Package main implements the main entry point for a headless CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/runner"
	"github.com/retroenv/chip8emu/internal/screen"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, emuOpts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(logger, opts)

	fd := int(os.Stdout.Fd())
	r := runner.New(logger, screen.DetectStyle(fd))

	if opts.Disassemble {
		if err := r.Disassemble(opts, os.Stdout); err != nil {
			logger.Fatal("Disassembling failed", log.Err(err))
		}
		return
	}

	runOpts, err := config.CreateRunnerOptions(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}
	screen.CheckWidth(logger, fd)

	if err := run(ctx, logger, r, opts, emuOpts, runOpts); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, r *runner.Runner, opts options.Program,
	emuOpts options.Emulator, runOpts options.Runner) error {

	err := r.Run(ctx, opts, emuOpts, runOpts, os.Stdout)
	// Handle context cancellation (Ctrl+C) gracefully
	if errors.Is(err, context.Canceled) {
		logger.Info("Operation cancelled")
		return nil
	}
	return err
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8emu", log.String("version", buildinfo.Version(version, commit, date)))
}
