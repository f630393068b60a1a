// Package screen renders the CHIP-8 framebuffer as text.
package screen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Style selects the characters used for lit and unlit pixels.
type Style struct {
	On  string
	Off string
}

var (
	// BlockStyle uses full block glyphs, suited for terminals.
	BlockStyle = Style{On: "█", Off: " "}
	// ASCIIStyle is used when the output is redirected to a file or pipe.
	ASCIIStyle = Style{On: "#", Off: "."}
)

// DetectStyle returns the block style if fd refers to a terminal.
func DetectStyle(fd int) Style {
	if term.IsTerminal(fd) {
		return BlockStyle
	}
	return ASCIIStyle
}

// CheckWidth warns if the terminal on fd is too narrow to show a full
// framebuffer row. Non terminals are ignored.
func CheckWidth(logger *log.Logger, fd int) {
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		logger.Debug("Reading terminal size failed", log.Err(err))
		return
	}
	if width < chip8.Width {
		logger.Warn("Terminal is narrower than the display, rows will wrap",
			log.Int("columns", width),
			log.Int("required", chip8.Width))
	}
}

// Render writes the framebuffer as Height lines of Width characters.
func Render(w io.Writer, fb chip8.Framebuffer, style Style) error {
	buf := bufio.NewWriter(w)
	for _, row := range fb {
		for _, lit := range row {
			if lit {
				_, _ = buf.WriteString(style.On)
			} else {
				_, _ = buf.WriteString(style.Off)
			}
		}
		_ = buf.WriteByte('\n')
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing framebuffer: %w", err)
	}
	return nil
}
