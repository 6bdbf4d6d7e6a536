// Package keypad implements the 16 key CHIP-8 input latch. Keys are written
// by an input source that may run in its own goroutine and read by the
// executor, every write is visible to the next read.
package keypad

import "sync/atomic"

// KeyCount is the number of keys on the keypad.
const KeyCount = 16

// KeySetter is implemented by anything that accepts key state changes.
type KeySetter interface {
	SetKey(index byte, held bool)
}

// Keypad holds the current hold state of all keys.
type Keypad struct {
	keys [KeyCount]atomic.Bool
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// SetKey sets the hold state of a key, the index is masked to 0x0-0xF.
func (k *Keypad) SetKey(index byte, held bool) {
	k.keys[index&0x0F].Store(held)
}

// Held returns whether the key is held, the index is masked to 0x0-0xF.
func (k *Keypad) Held(index byte) bool {
	return k.keys[index&0x0F].Load()
}

// FirstHeld returns the lowest index of all held keys.
func (k *Keypad) FirstHeld() (byte, bool) {
	for i := range k.keys {
		if k.keys[i].Load() {
			return byte(i), true
		}
	}
	return 0, false
}

// ReleaseAll releases all keys.
func (k *Keypad) ReleaseAll() {
	for i := range k.keys {
		k.keys[i].Store(false)
	}
}
