package chip8

import "fmt"

// RegisterCount is the number of general purpose registers V0-VF.
const RegisterCount = 16

// flagRegister is VF, overwritten by carry, borrow, shift and collision results.
const flagRegister = 0xF

// Registers holds the general purpose registers, the index register and the
// program counter.
type Registers struct {
	V  [RegisterCount]byte
	I  uint16 // not masked, may exceed the memory size
	PC uint16
}

// get returns the register selected by an opcode nibble.
func (r *Registers) get(x uint8) byte {
	return r.V[x&0xF]
}

// set stores the low 8 bits of value in the register selected by an opcode nibble.
func (r *Registers) set(x uint8, value int) {
	r.V[x&0xF] = byte(value & 0xFF)
}

// setFlag stores 1 or 0 in VF.
func (r *Registers) setFlag(set bool) {
	if set {
		r.V[flagRegister] = 1
	} else {
		r.V[flagRegister] = 0
	}
}

// Register returns the value of register V[index].
func (r *Registers) Register(index int) (byte, error) {
	if index < 0 || index >= RegisterCount {
		return 0, fmt.Errorf("%w: V%d", ErrRegisterOutOfRange, index)
	}
	return r.V[index], nil
}

// SetRegister stores the low 8 bits of value in register V[index].
func (r *Registers) SetRegister(index, value int) error {
	if index < 0 || index >= RegisterCount {
		return fmt.Errorf("%w: V%d", ErrRegisterOutOfRange, index)
	}
	r.set(uint8(index), value)
	return nil
}
