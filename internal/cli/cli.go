// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/options"
)

var errNegativeCycles = errors.New("cycle count must not be negative")

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	readQuirkFlags(flags, &opts.QuirkFlags)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Emulator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Emulator{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Emulator{}, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	return opts, options.NewEmulator(opts), nil
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
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Cycles < 0 {
		return fmt.Errorf("%w: %d", errNegativeCycles, opts.Cycles)
	}

	// tracing logs at debug level and would be filtered otherwise
	if opts.Trace {
		opts.Debug = true
		opts.Quiet = false
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Keys, "keys", "", "comma separated hex key codes held down for the whole run, for example 1,a")
	flags.IntVar(&opts.Cycles, "cycles", 600, "number of cycles to execute")
	flags.StringVar(&opts.Screenshot, "png", "", "name of a PNG file to write the final screen to")
	flags.IntVar(&opts.FrameRate, "fps", 480, "host frames per second, one cycle is executed per frame")
	flags.IntVar(&opts.Scale, "scale", 8, "pixel scale of the PNG screenshot")
	flags.BoolVar(&opts.Disassemble, "disasm", false, "print a disassembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.DumpMemory, "dump", false, "print a hex dump of the memory after the run")
	flags.BoolVar(&opts.Registers, "regs", false, "print the register state after the run")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readQuirkFlags(flags *flag.FlagSet, opts *options.QuirkFlags) {
	flags.BoolVar(&opts.ShiftUsesVY, "quirk-shift", false, "8xy6/8xyE shift Vy into Vx like the COSMAC VIP")
	flags.BoolVar(&opts.JumpUsesVX, "quirk-jump", false, "Bxnn jumps to xnn + Vx like CHIP-48 and SUPER-CHIP")
	flags.BoolVar(&opts.LoadStoreIncrementsI, "quirk-loadstore", false, "Fx55/Fx65 increment I like the COSMAC VIP")
}
