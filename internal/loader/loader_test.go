package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load ROM file", func(t *testing.T) {
		data := []byte{0x12, 0x34, 0x56, 0x78}
		tmpFile := createTempFile(t, data)

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		if diff := cmp.Diff(data, rom); diff != "" {
			t.Errorf("rom: (-want, +got)\n%s", diff)
		}
	})

	t.Run("load ROM filling the program area", func(t *testing.T) {
		tmpFile := createTempFile(t, bytes.Repeat([]byte{0xEA}, chip8.MaxProgramSize))

		rom, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, rom, chip8.MaxProgramSize)
	})

	t.Run("error on oversized file", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, chip8.MaxProgramSize+1))

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyROM))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.ErrorContains(t, err, "opening file")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
