package chip8

import "fmt"

// opcodeSize is the size of CHIP-8 instructions in bytes.
const opcodeSize = 2

// Opcode is a decoded 16-bit instruction word. All operand fields are
// extracted by fixed masks, every word decodes.
type Opcode struct {
	Word  uint16
	Group uint8  // bits 15-12, selects the dispatch table entry
	X     uint8  // bits 11-8, register index
	Y     uint8  // bits 7-4, register index
	N     uint8  // bits 3-0, 4-bit immediate
	NN    uint8  // bits 7-0, 8-bit immediate
	NNN   uint16 // bits 11-0, 12-bit address
}

// Decode extracts the operand fields of an instruction word.
func Decode(word uint16) Opcode {
	return Opcode{
		Word:  word,
		Group: uint8(word >> 12),
		X:     uint8(word>>8) & 0xF,
		Y:     uint8(word>>4) & 0xF,
		N:     uint8(word) & 0xF,
		NN:    uint8(word),
		NNN:   word & 0x0FFF,
	}
}

func (o Opcode) String() string {
	return fmt.Sprintf("%04X", o.Word)
}
