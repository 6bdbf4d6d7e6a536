// Package display implements the 64x32 monochrome CHIP-8 framebuffer with
// XOR sprite blitting.
package display

import "strings"

// Framebuffer dimensions in pixels.
const (
	Width  = 64
	Height = 32
)

// Grid is a snapshot of the framebuffer, indexed as Grid[row][column].
type Grid [Height][Width]bool

// Buffer is the framebuffer that sprites are drawn to. Pixels persist until
// the buffer is cleared.
type Buffer struct {
	pixels Grid
}

// New returns an empty framebuffer.
func New() *Buffer {
	return &Buffer{}
}

// Clear unsets all pixels.
func (b *Buffer) Clear() {
	b.pixels = Grid{}
}

// Blit XORs the sprite rows onto the buffer with the top left corner at
// (x0 mod Width, y0 mod Height). The most significant bit of a row is the
// leftmost pixel. Pixels outside of the buffer are clipped, the sprite does
// not wrap around. It returns whether any set pixel was unset.
func (b *Buffer) Blit(x0, y0 int, rows []byte) bool {
	x0 %= Width
	y0 %= Height

	collision := false
	for r, data := range rows {
		y := y0 + r
		if y >= Height {
			break
		}

		for c := range 8 {
			if data&(0x80>>c) == 0 {
				continue
			}
			x := x0 + c
			if x >= Width {
				break
			}

			if b.pixels[y][x] {
				collision = true
			}
			b.pixels[y][x] = !b.pixels[y][x]
		}
	}
	return collision
}

// Pixel returns whether the pixel at the given position is set.
// Positions outside of the buffer are never set.
func (b *Buffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b.pixels[y][x]
}

// Grid returns a copy of the framebuffer content.
func (b *Buffer) Grid() Grid {
	return b.pixels
}

// String renders the grid as text, one line per row, '#' for set pixels.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for _, row := range g {
		for _, set := range row {
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Count returns the number of set pixels.
func (g Grid) Count() int {
	n := 0
	for _, row := range g {
		for _, set := range row {
			if set {
				n++
			}
		}
	}
	return n
}
