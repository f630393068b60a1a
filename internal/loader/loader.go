// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// ErrEmptyROM is returned for ROM files without content.
var ErrEmptyROM = errors.New("empty ROM file")

// Loader handles loading raw CHIP-8 ROM images from disk.
type Loader struct {
	maxSize int
}

// New creates a new ROM loader that accepts images fitting the program area.
func New() *Loader {
	return &Loader{
		maxSize: chip8.MaxProgramSize,
	}
}

// Load reads the ROM image at path. Images that are empty or do not fit into
// the program area are rejected.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte past the limit to detect oversized images
	data, err := io.ReadAll(io.LimitReader(file, int64(l.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	switch {
	case len(data) == 0:
		return nil, fmt.Errorf("%w: %s", ErrEmptyROM, path)
	case len(data) > l.maxSize:
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", chip8.ErrProgramTooLarge, path, l.maxSize)
	}
	return data, nil
}
