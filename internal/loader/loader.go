// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Loader handles loading ROM files from disk.
type Loader struct {
	logger *log.Logger
}

// New creates a new ROM loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger: logger,
	}
}

// Load reads a raw CHIP-8 ROM file. Files that do not fit into the program
// memory are rejected before they are read completely.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	if !knownExtension(path) {
		l.logger.Warn("Unexpected file extension for a CHIP-8 ROM",
			log.String("file", path))
	}

	// one byte more than the limit is enough to detect oversized files
	data, err := io.ReadAll(io.LimitReader(file, machine.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > machine.MaxROMSize {
		return nil, fmt.Errorf("%w: file %s exceeds available memory of %d bytes",
			machine.ErrLoad, path, machine.MaxROMSize)
	}
	if len(data) == 0 {
		l.logger.Warn("ROM file is empty", log.String("file", path))
	}

	l.logger.Debug("Read ROM file",
		log.String("file", path),
		log.Int("size", len(data)))
	return data, nil
}

func knownExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ch8", ".c8", ".rom":
		return true
	default:
		return false
	}
}
