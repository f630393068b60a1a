package screen

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/retroenv/chip8emu/internal/chip8"
	xdraw "golang.org/x/image/draw"
)

// MaxScale limits the size of exported screenshots.
const MaxScale = 32

var errInvalidScale = errors.New("invalid screenshot scale")

var palette = color.Palette{color.Black, color.White}

// WritePNG encodes the framebuffer as a PNG image. Every CHIP-8 pixel becomes
// a square of scale by scale image pixels.
func WritePNG(w io.Writer, fb chip8.Framebuffer, scale int) error {
	if scale < 1 || scale > MaxScale {
		return fmt.Errorf("%w: %d, expected 1-%d", errInvalidScale, scale, MaxScale)
	}

	src := image.NewPaletted(image.Rect(0, 0, chip8.Width, chip8.Height), palette)
	for y, row := range fb {
		for x, lit := range row {
			if lit {
				src.SetColorIndex(x, y, 1)
			}
		}
	}

	dst := image.NewPaletted(image.Rect(0, 0, chip8.Width*scale, chip8.Height*scale), palette)
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return nil
}
