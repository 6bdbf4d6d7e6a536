package cpu

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
)

// execute applies the instruction fetched from pc. It returns false if the
// instruction did not take effect and has to be retried.
func (c *CPU) execute(pc uint16, ins instruction.Instruction, frame bool) (bool, error) {
	switch ins := ins.(type) {
	case instruction.Clear:
		return c.clear(frame), nil
	case instruction.Draw:
		return c.draw(ins, frame), nil

	case instruction.Return:
		return true, c.ret()
	case instruction.Call:
		return true, c.call(ins.Address)
	case instruction.Jump:
		c.jump(ins.Address)
	case instruction.JumpOffset:
		c.jump(ins.Address + uint16(c.mach.V[0]))

	case instruction.SkipEqualImm:
		c.skipIf(c.mach.V[ins.X] == ins.Value)
	case instruction.SkipNotEqualImm:
		c.skipIf(c.mach.V[ins.X] != ins.Value)
	case instruction.SkipEqualReg:
		c.skipIf(c.mach.V[ins.X] == c.mach.V[ins.Y])
	case instruction.SkipNotEqualReg:
		c.skipIf(c.mach.V[ins.X] != c.mach.V[ins.Y])
	case instruction.SkipKey:
		c.skipIf(c.keys.Held(c.mach.V[ins.X]))
	case instruction.SkipNotKey:
		c.skipIf(!c.keys.Held(c.mach.V[ins.X]))

	case instruction.LoadImm:
		c.mach.V[ins.X] = ins.Value
		c.advance()
	case instruction.AddImm:
		c.mach.V[ins.X] += ins.Value
		c.advance()
	case instruction.Random:
		c.mach.V[ins.X] = byte(c.rng.UintN(256)) & ins.Mask
		c.advance()

	case instruction.Move, instruction.Or, instruction.And, instruction.Xor,
		instruction.AddReg, instruction.Sub, instruction.SubReverse,
		instruction.ShiftRight, instruction.ShiftLeft:
		c.arithmetic(ins)
		c.advance()

	case instruction.LoadIndex:
		c.mach.I = ins.Address & machine.AddressMask
		c.advance()
	case instruction.AddIndex:
		c.mach.I = (c.mach.I + uint16(c.mach.V[ins.X])) & machine.AddressMask
		c.advance()
	case instruction.StoreBCD:
		c.storeBCD(ins.X)
		c.advance()
	case instruction.StoreRegisters:
		c.storeRegisters(ins.X)
		c.advance()
	case instruction.LoadRegisters:
		c.loadRegisters(ins.X)
		c.advance()

	case instruction.LoadDelay:
		c.mach.V[ins.X] = c.mach.DelayTimer
		c.advance()
	case instruction.SetDelay:
		c.mach.DelayTimer = c.mach.V[ins.X]
		c.advance()
	case instruction.SetSound:
		c.mach.SoundTimer = c.mach.V[ins.X]
		c.advance()
	case instruction.WaitKey:
		return c.waitKey(ins.X), nil

	case instruction.Invalid:
		return false, &machine.OpcodeError{PC: pc, Hi: ins.Hi, Lo: ins.Lo}
	default:
		return false, fmt.Errorf("%w: unsupported instruction %T at pc $%03X", machine.ErrInvalidOpcode, ins, pc)
	}

	return true, nil
}

func (c *CPU) call(address uint16) error {
	if err := c.mach.Push((c.mach.PC + 2) & machine.AddressMask); err != nil {
		return fmt.Errorf("calling $%03X: %w", address, err)
	}
	c.jump(address)
	return nil
}

func (c *CPU) ret() error {
	address, err := c.mach.Pop()
	if err != nil {
		return fmt.Errorf("returning from subroutine: %w", err)
	}
	c.jump(address)
	return nil
}
