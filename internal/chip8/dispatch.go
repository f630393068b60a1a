package chip8

import (
	"github.com/retroenv/retrogolib/log"
)

// handler executes one instruction of a dispatch group. PC has already been
// advanced past the instruction.
type handler func(e *Emulator, op Opcode) error

// dispatchTable maps the top nibble of an opcode to its instruction group.
var dispatchTable = [16]handler{
	0x0: (*Emulator).group0,
	0x1: (*Emulator).jump,
	0x2: (*Emulator).call,
	0x3: (*Emulator).skipIfEqualImmediate,
	0x4: (*Emulator).skipIfNotEqualImmediate,
	0x5: (*Emulator).skipIfEqualRegister,
	0x6: (*Emulator).loadImmediate,
	0x7: (*Emulator).addImmediate,
	0x8: (*Emulator).group8,
	0x9: (*Emulator).skipIfNotEqualRegister,
	0xA: (*Emulator).loadIndex,
	0xB: (*Emulator).jumpOffset,
	0xC: (*Emulator).random,
	0xD: (*Emulator).draw,
	0xE: (*Emulator).groupE,
	0xF: (*Emulator).groupF,
}

func (e *Emulator) execute(op Opcode) error {
	return dispatchTable[op.Group&0xF](e, op)
}

// group0 handles the machine-level instructions 00E0, 00EE and the 0000 halt.
func (e *Emulator) group0(op Opcode) error {
	switch op.Word {
	case 0x00E0:
		e.clearScreen()
		return nil
	case 0x00EE:
		return e.ret()
	case 0x0000:
		e.halt()
		return nil
	}
	e.unknownOpcode(op)
	return nil
}

// group8 handles the register to register ALU instructions.
func (e *Emulator) group8(op Opcode) error {
	switch op.N {
	case 0x0:
		e.regs.set(op.X, int(e.regs.get(op.Y)))
	case 0x1:
		e.regs.set(op.X, int(e.regs.get(op.X)|e.regs.get(op.Y)))
	case 0x2:
		e.regs.set(op.X, int(e.regs.get(op.X)&e.regs.get(op.Y)))
	case 0x3:
		e.regs.set(op.X, int(e.regs.get(op.X)^e.regs.get(op.Y)))
	case 0x4:
		e.addRegister(op.X, op.Y)
	case 0x5:
		e.subtract(op.X, op.X, op.Y)
	case 0x6:
		e.shiftRight(op.X, op.Y)
	case 0x7:
		e.subtract(op.X, op.Y, op.X)
	case 0xE:
		e.shiftLeft(op.X, op.Y)
	default:
		e.unknownOpcode(op)
	}
	return nil
}

// groupE handles the key skip instructions. The diagnostic is only emitted
// when neither form matches.
func (e *Emulator) groupE(op Opcode) error {
	switch op.NN {
	case 0x9E:
		return e.skipIfKey(op.X, true)
	case 0xA1:
		return e.skipIfKey(op.X, false)
	}
	e.unknownOpcode(op)
	return nil
}

// groupF handles the timer, keyboard, index and memory block instructions.
func (e *Emulator) groupF(op Opcode) error {
	switch op.NN {
	case 0x07:
		e.regs.set(op.X, int(e.timers.Delay))
	case 0x0A:
		e.waitKey(op.X)
	case 0x15:
		e.timers.Delay = e.regs.get(op.X)
	case 0x18:
		e.timers.Sound = e.regs.get(op.X)
	case 0x1E:
		e.regs.I += uint16(e.regs.get(op.X))
	case 0x29:
		e.regs.I = FontAddress(e.regs.get(op.X))
	case 0x33:
		return e.storeBCD(op.X)
	case 0x55:
		return e.storeRegisters(op.X)
	case 0x65:
		return e.loadRegisters(op.X)
	default:
		e.unknownOpcode(op)
	}
	return nil
}

// unknownOpcode reports an unrecognized instruction. Execution continues with
// the next instruction.
func (e *Emulator) unknownOpcode(op Opcode) {
	e.unknown++
	e.logger.Warn("Unknown opcode",
		log.Hex("opcode", op.Word),
		log.Hex("address", e.regs.PC-opcodeSize))
}
