// Package chip8 implements the CHIP-8 virtual CPU: memory, registers, call
// stack, framebuffer, keypad and the two 60 Hz timers, driven by one
// fetch-decode-execute cycle per host frame.
//
// The emulator is single threaded. The host sets key state and reads the
// framebuffer between calls to Cycle, never during one.
package chip8

import (
	"fmt"
	"io"
	"time"

	"github.com/retroenv/chip8emu/internal/disasm"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Emulator is a CHIP-8 virtual machine.
type Emulator struct {
	logger *log.Logger
	opts   options.Emulator
	rng    RandomSource

	memory  Memory
	regs    Registers
	stack   Stack
	display Display
	keys    Keyboard
	timers  Timers

	program []byte // pristine copy of the loaded program, restored by Reset
	redraw  bool
	unknown uint64 // count of unknown opcodes executed
	cycles  uint64
}

// New returns an initialized emulator with an empty program area.
// A nil random source selects the math/rand based default.
func New(logger *log.Logger, opts options.Emulator, random RandomSource) *Emulator {
	if random == nil {
		random = mathRandom{}
	}
	e := &Emulator{
		logger: logger,
		opts:   opts,
		rng:    random,
	}
	e.Reset()
	return e
}

// LoadProgram copies a raw ROM image into memory at ProgramStart. The image
// is kept so that Reset can restore it.
func (e *Emulator) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	area, _ := e.memory.Slice(ProgramStart, MaxProgramSize)
	clear(area)
	if err := e.memory.load(ProgramStart, program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	e.program = append(e.program[:0], program...)
	return nil
}

// Reset reinitializes the machine as if freshly started, keeping the loaded
// program.
func (e *Emulator) Reset() {
	e.memory.clear()
	_ = e.memory.load(0, fontSet[:])
	_ = e.memory.load(ProgramStart, e.program)

	e.regs = Registers{PC: ProgramStart}
	e.stack.reset()
	e.display.Clear()
	e.keys = Keyboard{}
	e.timers.reset()
	e.redraw = false
	e.unknown = 0
	e.cycles = 0
}

// Cycle executes one instruction and then advances the timers by the elapsed
// host time. A returned error is fatal, the timers are not advanced for the
// failed cycle.
func (e *Emulator) Cycle(elapsed time.Duration) error {
	if err := e.Step(); err != nil {
		return err
	}
	e.timers.Advance(elapsed)
	return nil
}

// Step fetches, decodes and executes a single instruction without touching
// the timers.
func (e *Emulator) Step() error {
	address := e.regs.PC
	word, err := e.memory.ReadWord(address)
	if err != nil {
		return fmt.Errorf("fetching instruction at $%04X: %w", address, err)
	}
	e.regs.PC += opcodeSize

	op := Decode(word)
	if e.opts.Trace {
		e.logger.Debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", word),
			log.String("instruction", disasm.Disassemble(word)))
	}

	if err := e.execute(op); err != nil {
		return fmt.Errorf("executing opcode %s at $%04X: %w", op, address, err)
	}
	e.cycles++
	return nil
}

// SetKey updates the pressed state of a keypad key.
func (e *Emulator) SetKey(code int, pressed bool) error {
	return e.keys.Set(code, pressed)
}

// Framebuffer returns a copy of the display pixels.
func (e *Emulator) Framebuffer() Framebuffer {
	return e.display.Framebuffer()
}

// Pixel returns whether the pixel at x, y is set.
func (e *Emulator) Pixel(x, y int) bool {
	return e.display.Pixel(x, y)
}

// RedrawPending returns whether the framebuffer changed since the host last
// consumed the redraw signal.
func (e *Emulator) RedrawPending() bool {
	return e.redraw
}

// ConsumeRedraw returns the redraw signal and clears it.
func (e *Emulator) ConsumeRedraw() bool {
	redraw := e.redraw
	e.redraw = false
	return redraw
}

// Memory returns the memory of the machine.
func (e *Emulator) Memory() *Memory {
	return &e.memory
}

// Registers returns the register bank of the machine.
func (e *Emulator) Registers() *Registers {
	return &e.regs
}

// Timers returns the delay and sound timers.
func (e *Emulator) Timers() *Timers {
	return &e.timers
}

// UnknownOpcodes returns how many unrecognized opcodes were skipped since the
// last reset.
func (e *Emulator) UnknownOpcodes() uint64 {
	return e.unknown
}

// DumpMemory writes a hex dump of the whole memory.
func (e *Emulator) DumpMemory(w io.Writer) error {
	return e.memory.Dump(w)
}

// State returns a snapshot of the CPU state.
func (e *Emulator) State() State {
	return State{
		PC:     e.regs.PC,
		I:      e.regs.I,
		V:      e.regs.V,
		SP:     e.stack.SP(),
		Stack:  e.stack.Addresses(),
		Delay:  e.timers.Delay,
		Sound:  e.timers.Sound,
		Cycles: e.cycles,
	}
}
