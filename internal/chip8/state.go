package chip8

import (
	"fmt"
	"strings"
)

// State is a read-only snapshot of the CPU registers.
type State struct {
	PC     uint16
	I      uint16
	V      [RegisterCount]byte
	SP     int
	Stack  []uint16
	Delay  byte
	Sound  byte
	Cycles uint64
}

// String renders the state as a single line.
func (s State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PC=%04X I=%04X SP=%X DT=%02X ST=%02X", s.PC, s.I, s.SP, s.Delay, s.Sound)
	for i, v := range s.V {
		fmt.Fprintf(&sb, " V%X=%02X", i, v)
	}
	return sb.String()
}
