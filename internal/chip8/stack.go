package chip8

import "fmt"

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack is the bounded LIFO of subroutine return addresses.
// sp always equals the number of stored addresses.
type Stack struct {
	addresses []uint16
	sp        int
}

// Push stores a return address.
func (s *Stack) Push(address uint16) error {
	if s.sp == StackDepth {
		return fmt.Errorf("%w: depth %d", ErrStackOverflow, StackDepth)
	}
	s.addresses = append(s.addresses, address)
	s.sp++
	return nil
}

// Pop removes and returns the most recent return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	address := s.addresses[s.sp]
	s.addresses = s.addresses[:s.sp]
	return address, nil
}

// Len returns the number of stored return addresses.
func (s *Stack) Len() int {
	return len(s.addresses)
}

// SP returns the stack pointer.
func (s *Stack) SP() int {
	return s.sp
}

// Addresses returns a copy of the stored return addresses, oldest first.
func (s *Stack) Addresses() []uint16 {
	return append([]uint16(nil), s.addresses...)
}

func (s *Stack) reset() {
	s.addresses = make([]uint16, 0, StackDepth)
	s.sp = 0
}
