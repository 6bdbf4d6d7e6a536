package instruction

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Decode decodes a big-endian instruction word given as its high and low
// byte. The word is matched against the opcode table of its first nibble.
// Words that match no supported instruction decode to Invalid.
func Decode(hi, lo byte) Instruction {
	word := uint16(hi)<<8 | uint16(lo)

	for _, op := range chip8.Opcodes[hi>>4] {
		if op.Info.Mask&word == op.Info.Value {
			return fromOpcode(op.Info, hi, lo)
		}
	}

	return Invalid{Hi: hi, Lo: lo}
}

// fromOpcode maps a matched opcode table entry to its instruction variant.
func fromOpcode(info chip8.OpcodeInfo, hi, lo byte) Instruction {
	x := hi & 0x0F
	y := lo >> 4
	n := lo & 0x0F
	address := uint16(x)<<8 | uint16(lo)

	switch info {
	case chip8.Opcode00E0:
		return Clear{}
	case chip8.Opcode00EE:
		return Return{}
	case chip8.Opcode1000:
		return Jump{Address: address}
	case chip8.Opcode2000:
		return Call{Address: address}
	case chip8.Opcode3000:
		return SkipEqualImm{X: x, Value: lo}
	case chip8.Opcode4000:
		return SkipNotEqualImm{X: x, Value: lo}
	case chip8.Opcode5000:
		return SkipEqualReg{X: x, Y: y}
	case chip8.Opcode6000:
		return LoadImm{X: x, Value: lo}
	case chip8.Opcode7000:
		return AddImm{X: x, Value: lo}
	case chip8.Opcode8000:
		return Move{X: x, Y: y}
	case chip8.Opcode8001:
		return Or{X: x, Y: y}
	case chip8.Opcode8002:
		return And{X: x, Y: y}
	case chip8.Opcode8003:
		return Xor{X: x, Y: y}
	case chip8.Opcode8004:
		return AddReg{X: x, Y: y}
	case chip8.Opcode8005:
		return Sub{X: x, Y: y}
	case chip8.Opcode8006:
		return ShiftRight{X: x, Y: y}
	case chip8.Opcode8007:
		return SubReverse{X: x, Y: y}
	case chip8.Opcode800E:
		return ShiftLeft{X: x, Y: y}
	case chip8.Opcode9000:
		return SkipNotEqualReg{X: x, Y: y}
	case chip8.OpcodeA000:
		return LoadIndex{Address: address}
	case chip8.OpcodeB000:
		return JumpOffset{Address: address}
	case chip8.OpcodeC000:
		return Random{X: x, Mask: lo}
	case chip8.OpcodeD000:
		return Draw{X: x, Y: y, Height: n}
	case chip8.OpcodeE09E:
		return SkipKey{X: x}
	case chip8.OpcodeE0A1:
		return SkipNotKey{X: x}
	case chip8.OpcodeF007:
		return LoadDelay{X: x}
	case chip8.OpcodeF00A:
		return WaitKey{X: x}
	case chip8.OpcodeF015:
		return SetDelay{X: x}
	case chip8.OpcodeF018:
		return SetSound{X: x}
	case chip8.OpcodeF01E:
		return AddIndex{X: x}
	case chip8.OpcodeF033:
		return StoreBCD{X: x}
	case chip8.OpcodeF055:
		return StoreRegisters{X: x}
	case chip8.OpcodeF065:
		return LoadRegisters{X: x}
	}

	// Fx29 needs the built-in font, which is not loaded into memory.
	return Invalid{Hi: hi, Lo: lo}
}
