//go:build linux || darwin

package terminal

import (
	"fmt"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// rawMode switches a terminal into raw mode and back.
type rawMode struct {
	fd     uintptr
	saved  unix.Termios
	active bool
}

// enter disables line buffering, echo and signal keys. Reads return after
// at most a tenth of a second even when no key was typed.
func (r *rawMode) enter(fd uintptr) error {
	if err := termios.Tcgetattr(fd, &r.saved); err != nil {
		return fmt.Errorf("reading terminal attributes: %w", err)
	}

	attr := r.saved
	termios.Cfmakeraw(&attr)
	attr.Cc[unix.VMIN] = 0
	attr.Cc[unix.VTIME] = 1

	if err := termios.Tcsetattr(fd, termios.TCSANOW, &attr); err != nil {
		return fmt.Errorf("setting terminal attributes: %w", err)
	}

	r.fd = fd
	r.active = true
	return nil
}

func (r *rawMode) restore() error {
	if !r.active {
		return nil
	}
	r.active = false

	if err := termios.Tcsetattr(r.fd, termios.TCSANOW, &r.saved); err != nil {
		return fmt.Errorf("restoring terminal attributes: %w", err)
	}
	return nil
}

// windowSize returns the terminal size in characters.
func windowSize(fd uintptr) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("reading window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}
