//go:build !(linux || darwin)

package terminal

import "errors"

var errUnsupported = errors.New("terminal raw mode is not supported on this platform")

type rawMode struct{}

func (r *rawMode) enter(uintptr) error {
	return errUnsupported
}

func (r *rawMode) restore() error {
	return nil
}

func windowSize(uintptr) (int, int, error) {
	return 0, 0, errUnsupported
}
