// Package detector handles system detection for ROM files.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector guesses the target system of a ROM file from its extension.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the system indicated by the file extension, or an empty
// system if the extension is not known.
func (d *Detector) Detect(filename string) arch.System {
	system := detectFromFile(filename)
	d.logger.Debug("Detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system
}

// IsCHIP8 reports whether the file may be a CHIP-8 ROM. Files with an
// unknown extension are accepted.
func (d *Detector) IsCHIP8(filename string) bool {
	system := d.Detect(filename)
	return system == arch.CHIP8System || system == ""
}

// detectFromFile determines the system type based on file extension.
func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		return ""
	}
}
