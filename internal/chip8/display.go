package chip8

// Display dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// spriteWidth is the fixed width of a sprite row in pixels.
const spriteWidth = 8

// Framebuffer is the monochrome display, indexed [y][x].
type Framebuffer [Height][Width]bool

// Display owns the framebuffer and implements the sprite blit.
type Display struct {
	pixels Framebuffer
}

// Clear unsets every pixel.
func (d *Display) Clear() {
	d.pixels = Framebuffer{}
}

// Pixel returns whether the pixel at x, y is set. Coordinates wrap.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[wrap(y, Height)][wrap(x, Width)]
}

// Framebuffer returns a copy of the current pixels.
func (d *Display) Framebuffer() Framebuffer {
	return d.pixels
}

// DrawSprite XORs the sprite rows onto the framebuffer with the top left
// corner at x, y. Each row byte holds 8 pixels, MSB first. Coordinates wrap
// around both edges. It returns true if any set pixel was turned off.
func (d *Display) DrawSprite(x, y byte, rows []byte) bool {
	collision := false

	for row, line := range rows {
		py := (int(y) + row) % Height
		for col := range spriteWidth {
			if line&(0x80>>col) == 0 {
				continue
			}

			px := (int(x) + col) % Width
			if d.pixels[py][px] {
				collision = true
			}
			d.pixels[py][px] = !d.pixels[py][px]
		}
	}

	return collision
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}
