// Package options contains the program options.
package options

import (
	"time"
)

// Parameters contains file path options.
type Parameters struct {
	Input      string `flag:"i" usage:"input ROM file"`
	Keys       string `flag:"keys" usage:"comma separated hex key codes held down for the whole run (e.g. 1,a)"`
	Screenshot string `flag:"png" usage:"write the final screen as PNG image to this file"`
}

// Flags contains behavior options.
type Flags struct {
	Cycles      int  `flag:"cycles" usage:"number of cycles to execute" default:"600"`
	FrameRate   int  `flag:"fps" usage:"host frames per second, one cycle per frame" default:"480"`
	Scale       int  `flag:"scale" usage:"pixel scale of the PNG screenshot" default:"8"`
	Disassemble bool `flag:"disasm" usage:"print a disassembly listing instead of running"`
	DumpMemory  bool `flag:"dump" usage:"print a memory hex dump after the run"`
	Registers   bool `flag:"regs" usage:"print the register state after the run"`
	Trace       bool `flag:"trace" usage:"log every executed instruction (requires -debug)"`
	Debug       bool `flag:"debug" usage:"enable debug logging"`
	Quiet       bool `flag:"q" usage:"quiet mode"`
}

// QuirkFlags contains the interpreter compatibility options.
type QuirkFlags struct {
	ShiftUsesVY          bool `flag:"quirk-shift" usage:"8xy6/8xyE shift Vy into Vx (COSMAC VIP)"`
	JumpUsesVX           bool `flag:"quirk-jump" usage:"Bxnn jumps to xnn + Vx (CHIP-48/SUPER-CHIP)"`
	LoadStoreIncrementsI bool `flag:"quirk-loadstore" usage:"Fx55/Fx65 increment I (COSMAC VIP)"`
}

// Program options of the emulator command.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}

// Quirks selects between the documented interpreter variants.
// The zero value is the modern behavior.
type Quirks struct {
	ShiftUsesVY          bool // 8xy6/8xyE read Vy instead of Vx
	JumpUsesVX           bool // Bxnn uses Vx instead of V0
	LoadStoreIncrementsI bool // Fx55/Fx65 leave I past the last register
}

// Emulator defines options to control the virtual CPU.
type Emulator struct {
	Quirks Quirks
	Trace  bool // log every executed instruction at debug level
}

// Runner defines options to control the headless host loop.
type Runner struct {
	Cycles     int           // cycles to execute before stopping
	FrameTime  time.Duration // elapsed host time passed to every cycle
	Keys       []int         // key codes held down for the whole run
	Screenshot string        // PNG output file, empty to disable
	Scale      int           // screenshot pixel scale
	DumpMemory bool
	Registers  bool
}

// NewEmulator returns the emulator options derived from the program options.
func NewEmulator(opts Program) Emulator {
	return Emulator{
		Quirks: Quirks{
			ShiftUsesVY:          opts.ShiftUsesVY,
			JumpUsesVX:           opts.JumpUsesVX,
			LoadStoreIncrementsI: opts.LoadStoreIncrementsI,
		},
		Trace: opts.Trace,
	}
}
