package scheduler

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/display"
)

var errMockStep = errors.New("mock step failure")

// mockStepper records the frame flag of every step.
type mockStepper struct {
	frames []bool
	failAt int
}

func (m *mockStepper) Step(frame bool) error {
	m.frames = append(m.frames, frame)
	if m.failAt > 0 && len(m.frames) == m.failAt {
		return errMockStep
	}
	return nil
}

// mockScreen counts rendered frames and serves a fixed grid.
type mockScreen struct {
	grid     display.Grid
	rendered int
	err      error
}

func (m *mockScreen) Framebuffer() display.Grid {
	return m.grid
}

func (m *mockScreen) Render(grid display.Grid) error {
	m.rendered++
	return m.err
}
