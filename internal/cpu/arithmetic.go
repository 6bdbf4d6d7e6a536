package cpu

import (
	"github.com/retroenv/retrochip8/internal/instruction"
)

// arithmetic executes the 8xyn register instructions. All results wrap
// around, VF is written after the result so that it wins when x is VF.
func (c *CPU) arithmetic(ins instruction.Instruction) {
	v := &c.mach.V

	switch ins := ins.(type) {
	case instruction.Move:
		v[ins.X] = v[ins.Y]

	case instruction.Or:
		v[ins.X] |= v[ins.Y]
		c.resetFlagAfterLogic()
	case instruction.And:
		v[ins.X] &= v[ins.Y]
		c.resetFlagAfterLogic()
	case instruction.Xor:
		v[ins.X] ^= v[ins.Y]
		c.resetFlagAfterLogic()

	case instruction.AddReg:
		sum := uint16(v[ins.X]) + uint16(v[ins.Y])
		v[ins.X] = byte(sum)
		c.setFlag(sum > 0xFF)

	case instruction.Sub:
		vx, vy := v[ins.X], v[ins.Y]
		v[ins.X] = vx - vy
		c.setFlag(vx >= vy)

	case instruction.SubReverse:
		vx, vy := v[ins.X], v[ins.Y]
		v[ins.X] = vy - vx
		c.setFlag(vy >= vx)

	case instruction.ShiftRight:
		vy := v[ins.Y]
		v[ins.X] = vy >> 1
		c.setFlag(vy&0x01 != 0)

	case instruction.ShiftLeft:
		vy := v[ins.Y]
		v[ins.X] = vy << 1
		c.setFlag(vy&0x80 != 0)
	}
}

func (c *CPU) resetFlagAfterLogic() {
	if c.quirks.LogicResetsFlag {
		c.setFlag(false)
	}
}
