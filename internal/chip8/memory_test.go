package chip8

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	tests := []struct {
		name    string
		address uint16
		wantErr bool
	}{
		{"first address", 0x000, false},
		{"program start", ProgramStart, false},
		{"last address", MaxAddress, false},
		{"past the end", MaxAddress + 1, true},
		{"far past the end", 0xFFFF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Memory
			err := m.Write(tt.address, 0xAB)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrAddressOutOfRange))
				_, err = m.Read(tt.address)
				assert.True(t, errors.Is(err, ErrAddressOutOfRange))
				return
			}

			assert.NoError(t, err)
			value, err := m.Read(tt.address)
			assert.NoError(t, err)
			assert.Equal(t, byte(0xAB), value)
		})
	}
}

func TestMemory_Slice(t *testing.T) {
	var m Memory

	b, err := m.Slice(MaxAddress-1, 2)
	assert.NoError(t, err)
	assert.Len(t, b, 2)

	_, err = m.Slice(MaxAddress, 2)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	_, err = m.Slice(0, -1)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestMemory_ReadWord(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Write(0x300, 0x12))
	assert.NoError(t, m.Write(0x301, 0x34))

	word, err := m.ReadWord(0x300)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), word)

	_, err = m.ReadWord(MaxAddress)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestMemory_Dump(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Write(0x011, 0xFE))

	var buf bytes.Buffer
	assert.NoError(t, m.Dump(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1+MemorySize/16)
	assert.True(t, strings.HasPrefix(lines[0], "Offset  00 01"))
	assert.Equal(t, "000010  00 FE 00 00 00 00 00 00 00 00 00 00 00 00 00 00", lines[2])
}

func TestRegisters_Accessors(t *testing.T) {
	var r Registers

	assert.NoError(t, r.SetRegister(3, 0x1FF))
	value, err := r.Register(3)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xFF), value)

	assert.True(t, errors.Is(r.SetRegister(16, 1), ErrRegisterOutOfRange))
	assert.True(t, errors.Is(r.SetRegister(-1, 1), ErrRegisterOutOfRange))
	_, err = r.Register(16)
	assert.True(t, errors.Is(err, ErrRegisterOutOfRange))
}
