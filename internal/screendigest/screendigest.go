// Package screendigest computes compact digests of frames, used to compare
// the output of regression runs.
package screendigest

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/spaolacci/murmur3"
)

// Size is the number of bytes of a packed frame.
const Size = display.Width * display.Height / 8

// Pack packs the grid into bytes, 8 pixels per byte with the leftmost pixel
// in the most significant bit.
func Pack(grid display.Grid) [Size]byte {
	var packed [Size]byte
	for y := range display.Height {
		for x := range display.Width {
			if !grid[y][x] {
				continue
			}
			offset := y*display.Width + x
			packed[offset/8] |= 0x80 >> (offset % 8)
		}
	}
	return packed
}

// Sum returns the 64 bit murmur3 digest of the packed grid.
func Sum(grid display.Grid) uint64 {
	packed := Pack(grid)
	return murmur3.Sum64(packed[:])
}

// String returns the digest as fixed width hex string.
func String(grid display.Grid) string {
	return fmt.Sprintf("%016x", Sum(grid))
}
