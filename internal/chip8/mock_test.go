package chip8

import (
	"testing"

	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// sequenceRandom returns the configured bytes in order, repeating the last one.
type sequenceRandom struct {
	values []byte
	index  int
}

func (s *sequenceRandom) Byte() byte {
	if len(s.values) == 0 {
		return 0
	}
	value := s.values[s.index]
	if s.index < len(s.values)-1 {
		s.index++
	}
	return value
}

// program converts instruction words to a big-endian ROM image.
func program(words ...uint16) []byte {
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	return data
}

// newTestEmulator returns an emulator with the words loaded at ProgramStart.
func newTestEmulator(t *testing.T, opts options.Emulator, words ...uint16) *Emulator {
	t.Helper()
	e := New(log.NewTestLogger(t), opts, &sequenceRandom{})
	if err := e.LoadProgram(program(words...)); err != nil {
		t.Fatalf("loading program: %v", err)
	}
	return e
}

// step executes count instructions and fails the test on any error.
func step(t *testing.T, e *Emulator, count int) {
	t.Helper()
	for range count {
		if err := e.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
}
