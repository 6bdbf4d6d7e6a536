package terminal

import (
	"bytes"

	"github.com/retroenv/retrochip8/internal/display"
)

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
)

// half block characters indexed by top | bottom<<1
var blocks = [4]string{" ", "▀", "▄", "█"}

// renderFrame writes the grid using one text row per two pixel rows. Raw mode
// disables output processing, so every line ends with an explicit carriage
// return.
func renderFrame(buf *bytes.Buffer, grid display.Grid) {
	buf.WriteString(escHome)

	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			var index int
			if grid[y][x] {
				index |= 1
			}
			if y+1 < display.Height && grid[y+1][x] {
				index |= 2
			}
			buf.WriteString(blocks[index])
		}
		buf.WriteString("\r\n")
	}
}
