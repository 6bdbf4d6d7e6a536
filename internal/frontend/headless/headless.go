// Package headless implements a frontend without input and output that keeps
// the last committed frame for inspection after a run.
package headless

import (
	"context"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
)

// Headless records rendered frames.
type Headless struct {
	last   display.Grid
	frames uint64
}

// New returns a headless frontend.
func New() *Headless {
	return &Headless{}
}

// Start does nothing, a headless run has no input.
func (h *Headless) Start(context.Context, keypad.KeySetter, context.CancelFunc) error {
	return nil
}

// Render stores the frame.
func (h *Headless) Render(grid display.Grid) error {
	h.last = grid
	h.frames++
	return nil
}

// Close does nothing.
func (h *Headless) Close() error {
	return nil
}

// LastFrame returns the last rendered frame.
func (h *Headless) LastFrame() display.Grid {
	return h.last
}

// Frames returns the number of rendered frames.
func (h *Headless) Frames() uint64 {
	return h.frames
}
