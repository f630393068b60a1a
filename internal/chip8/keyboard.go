package chip8

import "fmt"

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keyboard is the pressed state of the hex keypad, indexed by key code.
type Keyboard [KeyCount]bool

// Set updates the state of a key.
func (k *Keyboard) Set(code int, pressed bool) error {
	if code < 0 || code >= KeyCount {
		return fmt.Errorf("%w: %d", ErrKeyOutOfRange, code)
	}
	k[code] = pressed
	return nil
}

// Pressed returns whether the key is held down.
func (k *Keyboard) Pressed(code byte) (bool, error) {
	if code >= KeyCount {
		return false, fmt.Errorf("%w: %d", ErrKeyOutOfRange, code)
	}
	return k[code], nil
}

// FirstPressed returns the lowest pressed key code.
func (k *Keyboard) FirstPressed() (byte, bool) {
	for code, pressed := range k {
		if pressed {
			return byte(code), true
		}
	}
	return 0, false
}
