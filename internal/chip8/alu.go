package chip8

// addRegister adds vy to vx and sets vf to the carry.
// The flag is written after the result so that vf itself can be an operand.
func (e *Emulator) addRegister(x, y uint8) {
	sum := int(e.regs.get(x)) + int(e.regs.get(y))
	e.regs.set(x, sum)
	e.regs.setFlag(sum > 0xFF)
}

// subtract stores minuend - subtrahend in vx and sets vf to 1 if the minuend
// was greater than the subtrahend.
func (e *Emulator) subtract(x, minuend, subtrahend uint8) {
	a := int(e.regs.get(minuend))
	b := int(e.regs.get(subtrahend))
	e.regs.set(x, a-b)
	e.regs.setFlag(a > b)
}

// shiftRight shifts vx right by one and sets vf to the bit shifted out.
func (e *Emulator) shiftRight(x, y uint8) {
	value := e.shiftSource(x, y)
	e.regs.set(x, int(value>>1))
	e.regs.setFlag(value&0x01 != 0)
}

// shiftLeft shifts vx left by one and sets vf to the bit shifted out.
func (e *Emulator) shiftLeft(x, y uint8) {
	value := e.shiftSource(x, y)
	e.regs.set(x, int(value)<<1)
	e.regs.setFlag(value&0x80 != 0)
}

// shiftSource returns the shift operand, vx or vy with the shift quirk.
func (e *Emulator) shiftSource(x, y uint8) byte {
	if e.opts.Quirks.ShiftUsesVY {
		return e.regs.get(y)
	}
	return e.regs.get(x)
}
