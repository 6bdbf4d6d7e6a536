package pipeline

import (
	"context"
	"errors"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
)

var errMockStart = errors.New("mock start failure")

// mockFrontend records rendered frames and can press a key or quit once a
// given number of frames was rendered.
type mockFrontend struct {
	keys keypad.KeySetter
	quit context.CancelFunc

	startErr error
	started  bool
	closed   bool

	frames  int
	last    display.Grid
	pressAt int
	press   byte
	quitAt  int
}

func (m *mockFrontend) Start(_ context.Context, keys keypad.KeySetter, quit context.CancelFunc) error {
	if m.startErr != nil {
		return m.startErr
	}
	m.keys = keys
	m.quit = quit
	m.started = true
	return nil
}

func (m *mockFrontend) Render(grid display.Grid) error {
	m.frames++
	m.last = grid
	if m.pressAt > 0 && m.frames == m.pressAt {
		m.keys.SetKey(m.press, true)
	}
	if m.quitAt > 0 && m.frames == m.quitAt {
		m.quit()
	}
	return nil
}

func (m *mockFrontend) Close() error {
	m.closed = true
	return nil
}
