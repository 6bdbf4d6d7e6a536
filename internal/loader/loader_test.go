package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load rom file", func(t *testing.T) {
		data := []byte{0x00, 0xE0, 0x12, 0x00}
		path := createTempFile(t, "test.ch8", data)

		rom, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Equal(t, data, rom)
	})

	t.Run("load largest rom", func(t *testing.T) {
		path := createTempFile(t, "max.ch8", make([]byte, machine.MaxROMSize))

		rom, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Len(t, rom, machine.MaxROMSize)
	})

	t.Run("unknown extension still loads", func(t *testing.T) {
		path := createTempFile(t, "test.bin", []byte{0x60, 0x01})

		rom, err := New(log.NewTestLogger(t)).Load(path)
		assert.NoError(t, err)
		assert.Len(t, rom, 2)
	})

	t.Run("error on oversized file", func(t *testing.T) {
		path := createTempFile(t, "big.ch8", make([]byte, machine.MaxROMSize+1))

		_, err := New(log.NewTestLogger(t)).Load(path)
		assert.True(t, errors.Is(err, machine.ErrLoad))
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New(log.NewTestLogger(t)).Load("/nonexistent/file.ch8")
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestKnownExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"pong.ch8", true},
		{"PONG.CH8", true},
		{"pong.c8", true},
		{"pong.rom", true},
		{"pong.nes", false},
		{"pong", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, knownExtension(tt.path))
		})
	}
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
