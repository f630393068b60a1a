// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/screen"
	"github.com/retroenv/retrogolib/log"
)

var (
	errInvalidFrameRate = errors.New("frame rate must be positive")
	errInvalidScale     = errors.New("screenshot scale out of range")
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateRunnerOptions converts the command line options into the options of
// the headless run loop.
func CreateRunnerOptions(opts options.Program) (options.Runner, error) {
	if opts.FrameRate <= 0 {
		return options.Runner{}, fmt.Errorf("%w: %d", errInvalidFrameRate, opts.FrameRate)
	}

	if opts.Screenshot != "" && (opts.Scale < 1 || opts.Scale > screen.MaxScale) {
		return options.Runner{}, fmt.Errorf("%w: %d, expected 1-%d", errInvalidScale, opts.Scale, screen.MaxScale)
	}

	keys, err := ParseKeys(opts.Keys)
	if err != nil {
		return options.Runner{}, err
	}

	return options.Runner{
		Cycles:     opts.Cycles,
		FrameTime:  time.Second / time.Duration(opts.FrameRate),
		Keys:       keys,
		DumpMemory: opts.DumpMemory,
		Registers:  opts.Registers,
		Screenshot: opts.Screenshot,
		Scale:      opts.Scale,
	}, nil
}

// ParseKeys parses a comma separated list of hexadecimal key codes.
func ParseKeys(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, part := range parts {
		code, err := strconv.ParseUint(strings.TrimSpace(part), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing key code '%s': %w", part, err)
		}
		if code >= chip8.KeyCount {
			return nil, fmt.Errorf("%w: key code '%s'", chip8.ErrKeyOutOfRange, part)
		}
		keys = append(keys, int(code))
	}
	return keys, nil
}
