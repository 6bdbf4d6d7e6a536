package terminal

import (
	"time"

	"github.com/retroenv/retrochip8/internal/keypad"
)

// keyLatch turns key press events into held keys. Terminals report no key
// releases, a key counts as held until no press was seen for the hold time.
type keyLatch struct {
	keys    keypad.KeySetter
	hold    time.Duration
	pressed [keypad.KeyCount]time.Time
}

func newKeyLatch(keys keypad.KeySetter, hold time.Duration) *keyLatch {
	return &keyLatch{
		keys: keys,
		hold: hold,
	}
}

// press marks the key as held, repeated presses extend the hold time.
func (l *keyLatch) press(index byte, now time.Time) {
	index &= 0x0F
	l.keys.SetKey(index, true)
	l.pressed[index] = now
}

// expire releases all keys whose last press is older than the hold time.
func (l *keyLatch) expire(now time.Time) {
	for i, at := range l.pressed {
		if at.IsZero() || now.Sub(at) < l.hold {
			continue
		}
		l.keys.SetKey(byte(i), false)
		l.pressed[i] = time.Time{}
	}
}

// releaseAll releases every held key.
func (l *keyLatch) releaseAll() {
	for i, at := range l.pressed {
		if at.IsZero() {
			continue
		}
		l.keys.SetKey(byte(i), false)
		l.pressed[i] = time.Time{}
	}
}
