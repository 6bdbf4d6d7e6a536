// Package statedump writes the machine state as graphviz graph.
package statedump

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrochip8/internal/machine"
)

// Snapshot is the part of the machine state that is dumped. Memory is left
// out, thousands of nodes do not make a readable graph.
type Snapshot struct {
	PC         uint16
	I          uint16
	V          [machine.RegisterCount]byte
	DelayTimer byte
	SoundTimer byte
	Stack      []uint16
	StackDepth int
	State      string
	Executed   uint64
}

// NewSnapshot copies the dumped state of the machine.
func NewSnapshot(mach *machine.Machine, executed uint64) *Snapshot {
	return &Snapshot{
		PC:         mach.PC,
		I:          mach.I,
		V:          mach.V,
		DelayTimer: mach.DelayTimer,
		SoundTimer: mach.SoundTimer,
		Stack:      mach.Stack(),
		StackDepth: mach.StackDepth(),
		State:      mach.State().String(),
		Executed:   executed,
	}
}

// Write writes the graph of the snapshot in dot format.
func Write(w io.Writer, snapshot *Snapshot) {
	memviz.Map(w, snapshot)
}

// WriteFile writes the graph of the snapshot to a new file.
func WriteFile(path string, snapshot *Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file '%s': %w", path, err)
	}

	Write(file, snapshot)

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file '%s': %w", path, err)
	}
	return nil
}
