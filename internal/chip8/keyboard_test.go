package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyboard_Set(t *testing.T) {
	var k Keyboard

	assert.NoError(t, k.Set(0xA, true))
	pressed, err := k.Pressed(0xA)
	assert.NoError(t, err)
	assert.True(t, pressed)

	assert.True(t, errors.Is(k.Set(KeyCount, true), ErrKeyOutOfRange))
	assert.True(t, errors.Is(k.Set(-1, true), ErrKeyOutOfRange))
	_, err = k.Pressed(KeyCount)
	assert.True(t, errors.Is(err, ErrKeyOutOfRange))
}

func TestKeyboard_FirstPressed(t *testing.T) {
	tests := []struct {
		name    string
		pressed []int
		want    byte
		ok      bool
	}{
		{"none", nil, 0, false},
		{"single", []int{0x7}, 0x7, true},
		{"lowest wins", []int{0xF, 0x3, 0x9}, 0x3, true},
		{"key zero", []int{0x0, 0x1}, 0x0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k Keyboard
			for _, code := range tt.pressed {
				assert.NoError(t, k.Set(code, true))
			}
			key, ok := k.FirstPressed()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}
