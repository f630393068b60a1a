package chip8

import "fmt"

// clearScreen clears the video display memory.
func (e *Emulator) clearScreen() {
	e.display.Clear()
	e.redraw = true
}

// ret returns from a subroutine.
func (e *Emulator) ret() error {
	address, err := e.stack.Pop()
	if err != nil {
		return err
	}
	e.regs.PC = address
	return nil
}

// halt re-executes the current instruction forever.
func (e *Emulator) halt() {
	e.regs.PC -= opcodeSize
}

// jump to address nnn.
func (e *Emulator) jump(op Opcode) error {
	e.regs.PC = op.NNN
	return nil
}

// call the subroutine at nnn, pushing the address of the next instruction.
func (e *Emulator) call(op Opcode) error {
	if err := e.stack.Push(e.regs.PC); err != nil {
		return err
	}
	e.regs.PC = op.NNN
	return nil
}

// skipIfEqualImmediate skips the next instruction if vx == nn.
func (e *Emulator) skipIfEqualImmediate(op Opcode) error {
	e.skipIf(e.regs.get(op.X) == op.NN)
	return nil
}

// skipIfNotEqualImmediate skips the next instruction if vx != nn.
func (e *Emulator) skipIfNotEqualImmediate(op Opcode) error {
	e.skipIf(e.regs.get(op.X) != op.NN)
	return nil
}

// skipIfEqualRegister skips the next instruction if vx == vy.
func (e *Emulator) skipIfEqualRegister(op Opcode) error {
	e.skipIf(e.regs.get(op.X) == e.regs.get(op.Y))
	return nil
}

// skipIfNotEqualRegister skips the next instruction if vx != vy.
func (e *Emulator) skipIfNotEqualRegister(op Opcode) error {
	e.skipIf(e.regs.get(op.X) != e.regs.get(op.Y))
	return nil
}

func (e *Emulator) skipIf(condition bool) {
	if condition {
		e.regs.PC += opcodeSize
	}
}

// loadImmediate loads nn into vx.
func (e *Emulator) loadImmediate(op Opcode) error {
	e.regs.set(op.X, int(op.NN))
	return nil
}

// addImmediate adds nn to vx without touching the carry flag.
func (e *Emulator) addImmediate(op Opcode) error {
	e.regs.set(op.X, int(e.regs.get(op.X))+int(op.NN))
	return nil
}

// loadIndex loads nnn into the address register.
func (e *Emulator) loadIndex(op Opcode) error {
	e.regs.I = op.NNN
	return nil
}

// jumpOffset jumps to nnn + v0, or to xnn + vx with the jump quirk.
func (e *Emulator) jumpOffset(op Opcode) error {
	register := uint8(0)
	if e.opts.Quirks.JumpUsesVX {
		register = op.X
	}
	e.regs.PC = op.NNN + uint16(e.regs.get(register))
	return nil
}

// random loads a random byte masked with nn into vx.
func (e *Emulator) random(op Opcode) error {
	e.regs.set(op.X, int(e.rng.Byte()&op.NN))
	return nil
}

// draw an n byte sprite from I at vx, vy and set vf on collision.
func (e *Emulator) draw(op Opcode) error {
	rows, err := e.memory.Slice(e.regs.I, int(op.N))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}

	e.regs.setFlag(false)
	collision := e.display.DrawSprite(e.regs.get(op.X), e.regs.get(op.Y), rows)
	e.regs.setFlag(collision)
	e.redraw = true
	return nil
}

// skipIfKey skips the next instruction if the pressed state of key vx
// matches pressed.
func (e *Emulator) skipIfKey(x uint8, pressed bool) error {
	down, err := e.keys.Pressed(e.regs.get(x))
	if err != nil {
		return err
	}
	e.skipIf(down == pressed)
	return nil
}

// waitKey stores the lowest pressed key in vx. While no key is pressed the
// instruction is executed again on the next cycle.
func (e *Emulator) waitKey(x uint8) {
	key, ok := e.keys.FirstPressed()
	if !ok {
		e.regs.PC -= opcodeSize
		return
	}
	e.regs.set(x, int(key))
}

// storeBCD stores the hundreds, tens and ones digits of vx at I, I+1 and I+2.
func (e *Emulator) storeBCD(x uint8) error {
	dst, err := e.memory.Slice(e.regs.I, 3)
	if err != nil {
		return fmt.Errorf("storing BCD: %w", err)
	}

	value := e.regs.get(x)
	dst[0] = value / 100
	dst[1] = value / 10 % 10
	dst[2] = value % 10
	return nil
}

// storeRegisters saves registers v0..vx to memory starting at I.
func (e *Emulator) storeRegisters(x uint8) error {
	count := int(x) + 1
	dst, err := e.memory.Slice(e.regs.I, count)
	if err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}

	copy(dst, e.regs.V[:count])
	e.advanceIndex(count)
	return nil
}

// loadRegisters loads registers v0..vx from memory starting at I.
func (e *Emulator) loadRegisters(x uint8) error {
	count := int(x) + 1
	src, err := e.memory.Slice(e.regs.I, count)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}

	for i, value := range src {
		e.regs.set(uint8(i), int(value))
	}
	e.advanceIndex(count)
	return nil
}

func (e *Emulator) advanceIndex(count int) {
	if e.opts.Quirks.LoadStoreIncrementsI {
		e.regs.I += uint16(count)
	}
}
