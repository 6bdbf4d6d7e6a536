// Package terminal implements an interactive frontend on a raw mode text
// terminal. Frames are drawn with half block characters and typed keys are
// forwarded to the keypad.
package terminal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrogolib/log"
)

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1B
)

// Terminal renders frames to a terminal and reads keys from it.
type Terminal struct {
	logger *log.Logger
	input  *os.File
	output io.Writer
	hold   time.Duration

	raw   rawMode
	frame bytes.Buffer
	last  display.Grid
	drawn bool

	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a terminal frontend. Keys stay held for the hold time after
// their last press.
func New(logger *log.Logger, input *os.File, output io.Writer, hold time.Duration) *Terminal {
	return &Terminal{
		logger: logger,
		input:  input,
		output: output,
		hold:   hold,
	}
}

// Start switches the terminal into raw mode and starts forwarding typed keys.
// Escape and Ctrl+C call quit.
func (t *Terminal) Start(ctx context.Context, keys keypad.KeySetter, quit context.CancelFunc) error {
	fd := t.input.Fd()
	if err := t.raw.enter(fd); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}

	cols, rows, err := windowSize(fd)
	switch {
	case err != nil:
		t.logger.Debug("Terminal size unknown", log.Err(err))
	case cols < display.Width || rows < display.Height/2:
		t.logger.Warn("Terminal is too small to show the whole screen",
			log.Int("columns", cols),
			log.Int("rows", rows))
	}

	if _, err := io.WriteString(t.output, escHideCursor+escClear); err != nil {
		_ = t.raw.restore()
		return fmt.Errorf("preparing screen: %w", err)
	}

	ctx, t.cancel = context.WithCancel(ctx)
	t.done = make(chan struct{})
	go t.readInput(ctx, newKeyLatch(keys, t.hold), quit)
	return nil
}

// Render draws the grid, unchanged frames are skipped.
func (t *Terminal) Render(grid display.Grid) error {
	if t.drawn && grid == t.last {
		return nil
	}

	t.frame.Reset()
	renderFrame(&t.frame, grid)
	if _, err := t.output.Write(t.frame.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	t.last = grid
	t.drawn = true
	return nil
}

// Close stops the input reader and restores the terminal.
func (t *Terminal) Close() error {
	if t.cancel != nil {
		t.cancel()
		<-t.done
		t.cancel = nil
	}

	if _, err := io.WriteString(t.output, escShowCursor+"\r\n"); err != nil {
		t.logger.Debug("Showing cursor failed", log.Err(err))
	}
	return t.raw.restore()
}

func (t *Terminal) readInput(ctx context.Context, latch *keyLatch, quit context.CancelFunc) {
	defer close(t.done)
	defer latch.releaseAll()

	buf := make([]byte, 32)
	for ctx.Err() == nil {
		n, err := t.input.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			t.logger.Error("Reading terminal input failed", log.Err(err))
			quit()
			return
		}

		now := time.Now()
		if handleInput(buf[:n], latch, now) {
			quit()
			return
		}
		latch.expire(now)
	}
}

// handleInput presses the keys of all typed characters and returns whether
// the user asked to quit. A lone escape byte is the escape key, escape
// sequences of cursor and function keys are ignored.
func handleInput(data []byte, latch *keyLatch, now time.Time) bool {
	if len(data) == 1 && data[0] == keyEscape {
		return true
	}

	for _, b := range data {
		switch b {
		case keyCtrlC:
			return true
		case keyEscape:
			return false
		}

		if index, ok := KeyIndex(b); ok {
			latch.press(index, now)
		}
	}
	return false
}
