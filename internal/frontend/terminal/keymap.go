package terminal

// keyMap maps the 4x4 block 1234/qwer/asdf/zxcv of a QWERTY keyboard onto the
// COSMAC VIP hex keypad layout.
var keyMap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyIndex returns the keypad index of a typed character, upper case letters
// map like their lower case counterparts.
func KeyIndex(b byte) (byte, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	index, ok := keyMap[b]
	return index, ok
}
