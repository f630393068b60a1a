package chip8

import "errors"

// Fatal conditions returned by the emulator. Callers match them with errors.Is.
var (
	ErrStackOverflow      = errors.New("call stack overflow")
	ErrStackUnderflow     = errors.New("call stack underflow")
	ErrAddressOutOfRange  = errors.New("address out of range")
	ErrRegisterOutOfRange = errors.New("register index out of range")
	ErrKeyOutOfRange      = errors.New("key code out of range")
	ErrProgramTooLarge    = errors.New("program too large")
)
