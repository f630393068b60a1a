package runner

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/chip8emu/internal/screen"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawZero draws the font glyph for 0 at the top left corner and loops.
var drawZero = []byte{
	0xA0, 0x00, // ld I, $000
	0xD0, 0x15, // drw V0, V1, $5
	0x12, 0x04, // jp $204
}

func TestNew(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)

	assert.NotNil(t, r)
	assert.NotNil(t, r.logger)
	assert.NotNil(t, r.detector)
	assert.NotNil(t, r.loader)
}

func TestRun(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, drawZero)}}
	runOpts := options.Runner{Cycles: 10, FrameTime: time.Second / 60}

	var buf bytes.Buffer
	err := r.Run(context.Background(), opts, options.Emulator{}, runOpts, &buf)
	assert.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "####"+strings.Repeat(".", chip8.Width-4), lines[0])
	assert.Equal(t, "#..#"+strings.Repeat(".", chip8.Width-4), lines[1])
	assert.Equal(t, "####"+strings.Repeat(".", chip8.Width-4), lines[4])
	assert.Equal(t, strings.Repeat(".", chip8.Width), lines[5])
}

func TestRunWithState(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	rom := []byte{
		0xE1, 0x9E, // skp V1
		0x12, 0x00, // jp $200
		0x6A, 0x42, // ld VA, $42
		0x12, 0x06, // jp $206
	}
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, rom)}}
	runOpts := options.Runner{
		Cycles:     4,
		Keys:       []int{0},
		Registers:  true,
		DumpMemory: true,
	}

	var buf bytes.Buffer
	err := r.Run(context.Background(), opts, options.Emulator{}, runOpts, &buf)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "PC=0206")
	assert.Contains(t, output, "VA=42")
	assert.Contains(t, output, "000200  E1 9E 12 00 6A 42 12 06")
}

func TestRunScreenshot(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, drawZero)}}
	screenshot := filepath.Join(t.TempDir(), "screen.png")
	runOpts := options.Runner{Cycles: 3, Screenshot: screenshot, Scale: 2}

	var buf bytes.Buffer
	assert.NoError(t, r.Run(context.Background(), opts, options.Emulator{}, runOpts, &buf))

	file, err := os.Open(screenshot)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	cfg, err := png.DecodeConfig(file)
	assert.NoError(t, err)
	assert.Equal(t, chip8.Width*2, cfg.Width)
	assert.Equal(t, chip8.Height*2, cfg.Height)
}

func TestRunFatalError(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, []byte{0x00, 0xEE})}}

	var buf bytes.Buffer
	err := r.Run(context.Background(), opts, options.Emulator{}, options.Runner{Cycles: 5}, &buf)
	assert.True(t, errors.Is(err, chip8.ErrStackUnderflow))
	assert.Empty(t, buf.String())
}

func TestRunCancelled(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, drawZero)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := r.Run(ctx, opts, options.Emulator{}, options.Runner{Cycles: 100}, &buf)
	assert.True(t, errors.Is(err, context.Canceled))
	// the screen reached so far is still written
	assert.Contains(t, buf.String(), strings.Repeat(".", chip8.Width))
}

func TestRunMissingFile(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	opts := options.Program{Parameters: options.Parameters{Input: "/nonexistent/rom.ch8"}}

	var buf bytes.Buffer
	err := r.Run(context.Background(), opts, options.Emulator{}, options.Runner{Cycles: 1}, &buf)
	assert.ErrorContains(t, err, "loading ROM")
}

func TestDisassemble(t *testing.T) {
	r := New(log.NewTestLogger(t), screen.ASCIIStyle)
	opts := options.Program{Parameters: options.Parameters{Input: createTempFile(t, drawZero)}}

	var buf bytes.Buffer
	assert.NoError(t, r.Disassemble(opts, &buf))

	expected := "0200: A000  ld I, $000\n" +
		"0202: D015  drw V0, V1, $5\n" +
		"0204: 1204  jp $204\n"
	assert.Equal(t, expected, buf.String())
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
