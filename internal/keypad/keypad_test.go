package keypad

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSetKey(t *testing.T) {
	k := New()

	_, ok := k.FirstHeld()
	assert.False(t, ok)

	k.SetKey(0xA, true)
	assert.True(t, k.Held(0xA))
	assert.False(t, k.Held(0xB))

	k.SetKey(0xA, false)
	assert.False(t, k.Held(0xA))
}

func TestSetKey_IndexMasked(t *testing.T) {
	k := New()

	k.SetKey(0x13, true)
	assert.True(t, k.Held(0x3))
	assert.True(t, k.Held(0xF3))
}

func TestFirstHeld(t *testing.T) {
	k := New()
	k.SetKey(0xC, true)
	k.SetKey(0x4, true)

	index, ok := k.FirstHeld()
	assert.True(t, ok)
	assert.Equal(t, byte(0x4), index)

	k.ReleaseAll()
	_, ok = k.FirstHeld()
	assert.False(t, ok)
}

func TestConcurrentWriters(t *testing.T) {
	k := New()

	var wg sync.WaitGroup
	for i := range KeyCount {
		wg.Add(1)
		go func(index byte) {
			defer wg.Done()
			k.SetKey(index, true)
		}(byte(i))
	}
	wg.Wait()

	for i := range KeyCount {
		assert.True(t, k.Held(byte(i)))
	}
}
