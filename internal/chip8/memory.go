package chip8

import (
	"fmt"
	"io"
	"strings"
)

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: built-in font glyphs (16 x 5 bytes)
//	0x050-0x1FF: reserved interpreter area
//	0x200-0xFFF: program and work memory
const (
	MemorySize     = 0x1000
	MaxAddress     = MemorySize - 1
	ProgramStart   = 0x200
	MaxProgramSize = MemorySize - ProgramStart
)

// Memory is the flat 4 KiB byte store of the machine.
type Memory struct {
	data [MemorySize]byte
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, fmt.Errorf("%w: reading $%04X", ErrAddressOutOfRange, address)
	}
	return m.data[address], nil
}

// Write stores a byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if address > MaxAddress {
		return fmt.Errorf("%w: writing $%04X", ErrAddressOutOfRange, address)
	}
	m.data[address] = value
	return nil
}

// Slice returns the n bytes starting at address. The returned slice aliases
// the memory, callers that keep it must copy it.
func (m *Memory) Slice(address uint16, n int) ([]byte, error) {
	end := int(address) + n
	if n < 0 || end > MemorySize {
		return nil, fmt.Errorf("%w: $%04X+%d", ErrAddressOutOfRange, address, n)
	}
	return m.data[address:end], nil
}

// ReadWord returns the big-endian 16-bit word at address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	b, err := m.Slice(address, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// load copies data into memory starting at address.
func (m *Memory) load(address uint16, data []byte) error {
	dst, err := m.Slice(address, len(data))
	if err != nil {
		return err
	}
	copy(dst, data)
	return nil
}

func (m *Memory) clear() {
	m.data = [MemorySize]byte{}
}

// Dump writes a hex dump of the memory, 16 bytes per row.
func (m *Memory) Dump(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("Offset ")
	for i := range 16 {
		fmt.Fprintf(&sb, " %02X", i)
	}
	sb.WriteByte('\n')

	for offset := 0; offset < MemorySize; offset += 16 {
		fmt.Fprintf(&sb, "%06X ", offset)
		for _, b := range m.data[offset : offset+16] {
			fmt.Fprintf(&sb, " %02X", b)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
