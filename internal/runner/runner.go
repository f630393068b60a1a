// Package runner drives a CHIP-8 program headlessly for a fixed number of
// cycles and writes the resulting screen and machine state.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/detector"
	"github.com/retroenv/chip8emu/internal/disasm"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/screen"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Runner orchestrates loading a ROM and executing or listing it.
type Runner struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	style    screen.Style
}

// New creates a new runner that renders the screen with the given style.
func New(logger *log.Logger, style screen.Style) *Runner {
	return &Runner{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		style:    style,
	}
}

// Run loads the ROM named in opts, executes it and writes the final screen
// to w. Cancelling the context stops the run early, the state reached so far
// is still written.
func (r *Runner) Run(ctx context.Context, opts options.Program, emuOpts options.Emulator,
	runOpts options.Runner, w io.Writer) error {

	rom, err := r.load(opts)
	if err != nil {
		return err
	}

	emu := chip8.New(r.logger, emuOpts, nil)
	if err := emu.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	for _, key := range runOpts.Keys {
		if err := emu.SetKey(key, true); err != nil {
			return fmt.Errorf("pressing key: %w", err)
		}
	}

	runErr := r.execute(ctx, emu, runOpts)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if err := r.writeResult(emu, runOpts, w); err != nil {
		return err
	}
	return runErr
}

// Disassemble loads the ROM named in opts and writes its listing to w.
func (r *Runner) Disassemble(opts options.Program, w io.Writer) error {
	rom, err := r.load(opts)
	if err != nil {
		return err
	}

	if err := disasm.Listing(w, rom, chip8.ProgramStart); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}
	return nil
}

func (r *Runner) load(opts options.Program) ([]byte, error) {
	if !r.detector.IsCHIP8(opts.Input) {
		r.logger.Warn("File extension indicates a different system, loading it as CHIP-8 ROM",
			log.String("file", opts.Input))
	}

	rom, err := r.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	r.printInfo(opts, len(rom))
	return rom, nil
}

// execute runs the cycle loop until the cycle limit is reached, a fatal
// error occurs or the context is cancelled.
func (r *Runner) execute(ctx context.Context, emu *chip8.Emulator, runOpts options.Runner) error {
	for cycle := range runOpts.Cycles {
		if err := ctx.Err(); err != nil {
			r.logger.Info("Run cancelled", log.Int("cycle", cycle))
			return fmt.Errorf("running: %w", err)
		}
		if err := emu.Cycle(runOpts.FrameTime); err != nil {
			r.logger.Error("Emulation stopped",
				log.Int("cycle", cycle),
				log.Hex("pc", emu.Registers().PC),
				log.Err(err))
			return fmt.Errorf("running cycle %d: %w", cycle, err)
		}
	}

	if unknown := emu.UnknownOpcodes(); unknown > 0 {
		r.logger.Warn("Program executed unknown opcodes", log.Int("count", int(unknown)))
	}
	return nil
}

func (r *Runner) writeResult(emu *chip8.Emulator, runOpts options.Runner, w io.Writer) error {
	if err := screen.Render(w, emu.Framebuffer(), r.style); err != nil {
		return err
	}

	if runOpts.Registers {
		if _, err := fmt.Fprintf(w, "\n%s\n", emu.State()); err != nil {
			return fmt.Errorf("writing registers: %w", err)
		}
	}

	if runOpts.Screenshot != "" {
		if err := r.writeScreenshot(emu, runOpts); err != nil {
			return err
		}
	}

	if runOpts.DumpMemory {
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing memory dump: %w", err)
		}
		if err := emu.DumpMemory(w); err != nil {
			return fmt.Errorf("writing memory dump: %w", err)
		}
	}
	return nil
}

func (r *Runner) writeScreenshot(emu *chip8.Emulator, runOpts options.Runner) error {
	file, err := os.Create(runOpts.Screenshot)
	if err != nil {
		return fmt.Errorf("creating screenshot file %s: %w", runOpts.Screenshot, err)
	}

	if err := screen.WritePNG(file, emu.Framebuffer(), runOpts.Scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing screenshot file %s: %w", runOpts.Screenshot, err)
	}

	r.logger.Debug("Screenshot written", log.String("file", runOpts.Screenshot))
	return nil
}

// printInfo prints information about the ROM being processed.
func (r *Runner) printInfo(opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	r.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("system", arch.CHIP8System),
		log.Int("size", size),
	)
}
